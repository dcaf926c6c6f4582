package models

import (
	"time"

	"liman/internal/shared/constants"
)

// CustomerAgreementModel represents the database persistence model for
// customer agreements.
type CustomerAgreementModel struct {
	ID                           uint    `gorm:"primarykey"`
	UUID                         string  `gorm:"not null;size:36;uniqueIndex"`
	EnterpriseCustomerUUID       string  `gorm:"not null;size:36;index"`
	EnterpriseCustomerSlug       string  `gorm:"not null;size:128;index"`
	DefaultEnterpriseCatalogUUID *string `gorm:"size:36"`
	AutoAppliedPlanID            *uint   `gorm:"index"`
	// LicenseDurationBeforePurgeDays is stored in whole days
	LicenseDurationBeforePurgeDays int `gorm:"not null;default:90"`
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}

// TableName specifies the table name for GORM
func (CustomerAgreementModel) TableName() string {
	return constants.TableCustomerAgreements
}
