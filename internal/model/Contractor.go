package model

import (
	"github.com/renovalte/renovalte/internal/constant"
)

// Contractor is shared, read-only directory data from the marketplace's point of
// view: rows are created by import/seed tooling and never mutated by the
// invitation flow.
type Contractor struct {
	BaseModel
	Name       string `gorm:"type:varchar(200);not null" json:"name" form:"name" binding:"required"`
	Address    string `gorm:"type:varchar(300)" json:"address" form:"address"`
	City       string `gorm:"type:varchar(100)" json:"city" form:"city"`
	PostalCode string `gorm:"type:varchar(20)" json:"postalCode" form:"postalCode"`
	State      string `gorm:"type:varchar(100)" json:"state" form:"state"`
	Phone      string `gorm:"type:varchar(20)" json:"phone" form:"phone"`
	Website    string `gorm:"type:text" json:"website" form:"website"`
	Email      string `gorm:"type:text" json:"email" form:"email"`

	PriceRange      string `gorm:"type:varchar(50)" json:"priceRange" form:"priceRange"`
	ServiceArea     string `gorm:"type:varchar(200)" json:"serviceArea" form:"serviceArea"`
	BusinessSize    string `gorm:"type:varchar(50)" json:"businessSize" form:"businessSize"`
	YearsInBusiness *int   `gorm:"type:integer" json:"yearsInBusiness" form:"yearsInBusiness"`

	Services        string `gorm:"type:text" json:"services" form:"services"`
	Description     string `gorm:"type:text" json:"description" form:"description"`
	Specializations string `gorm:"type:text" json:"specializations" form:"specializations"`

	// Rating out of 5.0
	Rating       *float64 `gorm:"type:numeric(3,2)" json:"rating" form:"rating"`
	ReviewsCount int      `gorm:"type:integer;not null;default:0" json:"reviewsCount" form:"reviewsCount"`

	Certifications string `gorm:"type:text" json:"certifications" form:"certifications"`
	KfwEligible    bool   `gorm:"type:boolean;not null;default:false" json:"kfwEligible" form:"kfwEligible"`
	Source         string `gorm:"type:varchar(100)" json:"source" form:"source"`
	AdditionalInfo string `gorm:"type:text" json:"additionalInfo" form:"additionalInfo"`

	ProjectTypes []ContractorProjectType `gorm:"constraint:OnDelete:CASCADE" json:"projectTypes"`
}

func (c Contractor) TableName() string {
	return "contractors"
}

// ProjectTypeList flattens the association for serialization.
func (c Contractor) ProjectTypeList() []constant.ProjectType {
	out := make([]constant.ProjectType, 0, len(c.ProjectTypes))
	for _, pt := range c.ProjectTypes {
		out = append(out, pt.ProjectType)
	}

	return out
}

// ContractorProjectType is one row of a contractor's capability set. The unique
// index makes the set membership check a direct equality join.
type ContractorProjectType struct {
	ID           uint                 `gorm:"primaryKey;autoIncrement" json:"-"`
	ContractorID uint                 `gorm:"not null;uniqueIndex:idx_contractor_project_type" json:"-"`
	ProjectType  constant.ProjectType `gorm:"type:varchar(50);not null;uniqueIndex:idx_contractor_project_type" json:"projectType"`
}

func (cpt ContractorProjectType) TableName() string {
	return "contractor_project_types"
}
