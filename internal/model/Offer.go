package model

import (
	"time"

	"github.com/renovalte/renovalte/internal/constant"
)

// Offer is one contractor's bid opportunity for one project. At most one row
// exists per (contractor, project) pair; the invitation flow get-or-creates it.
type Offer struct {
	BaseModel
	ContractorID uint       `gorm:"not null;uniqueIndex:idx_offers_contractor_project" json:"contractorId"`
	Contractor   Contractor `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProjectID    uint       `gorm:"not null;uniqueIndex:idx_offers_contractor_project" json:"projectId"`
	Project      Project    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID       uint       `gorm:"not null;index" json:"userId"`
	User         User       `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	LetterFileID *uint `gorm:"index" json:"letterFileId"`
	LetterFile   *File `json:"letterFile,omitempty"`

	Status constant.OfferStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Amount *float64 `gorm:"type:numeric(10,2)" json:"amount"`
	Notes  string   `gorm:"type:text" json:"notes"`

	// Token grants one file submission while the offer is pending. Cleared in
	// the same update that marks the offer submitted, never reissued after.
	Token *string `gorm:"type:varchar(64);uniqueIndex" json:"-"`

	SubmittedAt *time.Time `gorm:"type:timestamptz" json:"submittedAt"`
}

func (o Offer) TableName() string {
	return "offers"
}

func (o Offer) HasToken() bool {
	return o.Token != nil && *o.Token != ""
}
