package dto

import (
	"time"
)

type SubscriptionPlanDTO struct {
	ID                      uint                   `json:"id"`
	UUID                    string                 `json:"uuid"`
	Title                   string                 `json:"title"`
	CustomerAgreementID     uint                   `json:"customer_agreement_id"`
	ProductID               *uint                  `json:"product_id,omitempty"`
	EnterpriseCatalogUUID   *string                `json:"enterprise_catalog_uuid,omitempty"`
	SalesforceOpportunityID *string                `json:"salesforce_opportunity_id,omitempty"`
	NumLicenses             int                    `json:"num_licenses"`
	ForInternalUseOnly      bool                   `json:"for_internal_use_only"`
	IsRevocationCapEnabled  bool                   `json:"is_revocation_cap_enabled"`
	RevokeMaxPercentage     int                    `json:"revoke_max_percentage"`
	StartDate               time.Time              `json:"start_date"`
	ExpirationDate          time.Time              `json:"expiration_date"`
	IsActive                bool                   `json:"is_active"`
	Metadata                map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt               time.Time              `json:"created_at"`
	UpdatedAt               time.Time              `json:"updated_at"`
}

type CustomerAgreementDTO struct {
	ID                           uint      `json:"id"`
	UUID                         string    `json:"uuid"`
	EnterpriseCustomerUUID       string    `json:"enterprise_customer_uuid"`
	EnterpriseCustomerSlug       string    `json:"enterprise_customer_slug"`
	DefaultEnterpriseCatalogUUID *string   `json:"default_enterprise_catalog_uuid,omitempty"`
	AutoAppliedPlanID            *uint     `json:"auto_applied_plan_id,omitempty"`
	LicenseDurationBeforePurge   string    `json:"license_duration_before_purge"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

type PlanTypeDTO struct {
	ID           uint   `json:"id"`
	Label        string `json:"label"`
	SFIDRequired bool   `json:"sf_id_required"`
	NSIDRequired bool   `json:"ns_id_required"`
}

type ProductDTO struct {
	ID         uint         `json:"id"`
	Name       string       `json:"name"`
	PlanType   *PlanTypeDTO `json:"plan_type"`
	NetsuiteID *int64       `json:"netsuite_id,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type PlanRenewalDTO struct {
	ID                    uint      `json:"id"`
	PriorPlanID           uint      `json:"prior_plan_id"`
	PriorPlanUUID         string    `json:"prior_plan_uuid"`
	RenewedPlanID         *uint     `json:"renewed_plan_id,omitempty"`
	EffectiveDate         time.Time `json:"effective_date"`
	RenewedExpirationDate time.Time `json:"renewed_expiration_date"`
	NumberOfLicenses      int       `json:"number_of_licenses"`
	Processed             bool      `json:"processed"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type AutoApplyChoiceDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type AutoApplyChoicesDTO struct {
	Choices  []AutoApplyChoiceDTO `json:"choices"`
	Selected string               `json:"selected"`
}
