package model

import (
	"github.com/renovalte/renovalte/internal/constant"
)

type Project struct {
	BaseModel
	Name        string               `gorm:"type:varchar(200);not null" json:"name" form:"name" binding:"required,strNotEmpty,max=200"`
	ProjectType constant.ProjectType `gorm:"type:varchar(50);not null;default:'general'" json:"projectType" form:"projectType"`
	Address     string               `gorm:"type:varchar(200)" json:"address" form:"address"`
	City        string               `gorm:"type:varchar(100)" json:"city" form:"city"`
	PostalCode  string               `gorm:"type:varchar(20)" json:"postalCode" form:"postalCode"`
	State       string               `gorm:"type:varchar(100)" json:"state" form:"state"`
	Budget      float64              `gorm:"type:numeric(12,2);not null;default:0" json:"budget" form:"budget" binding:"omitempty,gte=0"`

	AdditionalInformation string `gorm:"type:text" json:"additionalInformation" form:"additionalInformation"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (p Project) TableName() string {
	return "projects"
}
