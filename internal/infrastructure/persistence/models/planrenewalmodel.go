package models

import (
	"time"

	"liman/internal/shared/constants"
)

// PlanRenewalModel represents the database persistence model for plan
// renewals.
type PlanRenewalModel struct {
	ID                    uint   `gorm:"primarykey"`
	PriorPlanID           uint   `gorm:"not null;index"`
	PriorPlanUUID         string `gorm:"not null;size:36;index"`
	RenewedPlanID         *uint  `gorm:"index"`
	EffectiveDate         time.Time
	RenewedExpirationDate time.Time
	NumberOfLicenses      int  `gorm:"not null;default:0"`
	Processed             bool `gorm:"not null;default:false;index"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the table name for GORM
func (PlanRenewalModel) TableName() string {
	return constants.TablePlanRenewals
}
