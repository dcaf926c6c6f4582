package models

import (
	"time"

	"liman/internal/shared/constants"
)

// PlanTypeModel represents the database persistence model for plan types.
type PlanTypeModel struct {
	ID           uint   `gorm:"primarykey"`
	Label        string `gorm:"not null;size:64;uniqueIndex"`
	SFIDRequired bool   `gorm:"not null;default:false"`
	NSIDRequired bool   `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (PlanTypeModel) TableName() string {
	return constants.TablePlanTypes
}

// ProductModel represents the database persistence model for products.
type ProductModel struct {
	ID         uint   `gorm:"primarykey"`
	Name       string `gorm:"not null;size:128"`
	PlanTypeID uint   `gorm:"not null;index"`
	PlanType   PlanTypeModel
	NetsuiteID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}
