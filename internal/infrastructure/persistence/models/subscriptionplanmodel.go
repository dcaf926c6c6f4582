package models

import (
	"time"

	"gorm.io/datatypes"

	"liman/internal/shared/constants"
)

// SubscriptionPlanModel represents the database persistence model for
// subscription plans. This is the anti-corruption layer between domain and
// database.
type SubscriptionPlanModel struct {
	ID                      uint      `gorm:"primarykey"`
	UUID                    string    `gorm:"not null;size:36;uniqueIndex"`
	Title                   string    `gorm:"not null;size:128"`
	CustomerAgreementID     uint      `gorm:"not null;index"`
	ProductID               *uint     `gorm:"index"`
	EnterpriseCatalogUUID   *string   `gorm:"size:36"`
	SalesforceOpportunityID *string   `gorm:"size:18"`
	NumLicenses             int       `gorm:"not null;default:0"`
	ForInternalUseOnly      bool      `gorm:"not null;default:false"`
	IsRevocationCapEnabled  bool      `gorm:"not null;default:false"`
	RevokeMaxPercentage     int       `gorm:"not null;default:100"`
	StartDate               time.Time `gorm:"not null;index:idx_plan_window,priority:1"`
	ExpirationDate          time.Time `gorm:"not null;index:idx_plan_window,priority:2"`
	IsActive                bool      `gorm:"not null;default:false;index"`
	Metadata                datatypes.JSON
	Version                 int `gorm:"not null;default:1"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionPlanModel) TableName() string {
	return constants.TableSubscriptionPlans
}
