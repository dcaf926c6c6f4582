package subscriptions

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan is a time-bounded grant of a pool of licenses to an
// enterprise customer, issued under a customer agreement.
type SubscriptionPlan struct {
	id                      uint
	uuid                    uuid.UUID
	title                   string
	customerAgreementID     uint
	productID               *uint
	enterpriseCatalogUUID   *uuid.UUID
	salesforceOpportunityID *string
	numLicenses             int
	forInternalUseOnly      bool
	isRevocationCapEnabled  bool
	revokeMaxPercentage     int
	startDate               time.Time
	expirationDate          time.Time
	isActive                bool
	metadata                map[string]interface{}
	version                 int
	createdAt               time.Time
	updatedAt               time.Time
}

func NewSubscriptionPlan(title string, customerAgreementID uint, numLicenses int,
	startDate, expirationDate time.Time) (*SubscriptionPlan, error) {

	if title == "" {
		return nil, fmt.Errorf("plan title is required")
	}
	if len(title) > 128 {
		return nil, fmt.Errorf("plan title too long (max 128 characters)")
	}
	if customerAgreementID == 0 {
		return nil, fmt.Errorf("customer agreement is required")
	}
	if numLicenses < 1 {
		return nil, fmt.Errorf("number of licenses must be at least 1")
	}
	if expirationDate.Before(startDate) {
		return nil, fmt.Errorf("expiration date cannot be before start date")
	}

	now := time.Now().UTC()
	return &SubscriptionPlan{
		uuid:                uuid.New(),
		title:               title,
		customerAgreementID: customerAgreementID,
		numLicenses:         numLicenses,
		startDate:           startDate.UTC(),
		expirationDate:      expirationDate.UTC(),
		isActive:            false,
		metadata:            make(map[string]interface{}),
		version:             1,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructSubscriptionPlan(id uint, planUUID uuid.UUID, title string,
	customerAgreementID uint, productID *uint, enterpriseCatalogUUID *uuid.UUID,
	salesforceOpportunityID *string, numLicenses int, forInternalUseOnly,
	isRevocationCapEnabled bool, revokeMaxPercentage int, startDate,
	expirationDate time.Time, isActive bool, metadata map[string]interface{},
	version int, createdAt, updatedAt time.Time) (*SubscriptionPlan, error) {

	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if planUUID == uuid.Nil {
		return nil, fmt.Errorf("plan UUID cannot be nil")
	}

	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &SubscriptionPlan{
		id:                      id,
		uuid:                    planUUID,
		title:                   title,
		customerAgreementID:     customerAgreementID,
		productID:               productID,
		enterpriseCatalogUUID:   enterpriseCatalogUUID,
		salesforceOpportunityID: salesforceOpportunityID,
		numLicenses:             numLicenses,
		forInternalUseOnly:      forInternalUseOnly,
		isRevocationCapEnabled:  isRevocationCapEnabled,
		revokeMaxPercentage:     revokeMaxPercentage,
		startDate:               startDate,
		expirationDate:          expirationDate,
		isActive:                isActive,
		metadata:                metadata,
		version:                 version,
		createdAt:               createdAt,
		updatedAt:               updatedAt,
	}, nil
}

func (p *SubscriptionPlan) ID() uint {
	return p.id
}

func (p *SubscriptionPlan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *SubscriptionPlan) UUID() uuid.UUID {
	return p.uuid
}

func (p *SubscriptionPlan) Title() string {
	return p.title
}

func (p *SubscriptionPlan) CustomerAgreementID() uint {
	return p.customerAgreementID
}

func (p *SubscriptionPlan) ProductID() *uint {
	return p.productID
}

func (p *SubscriptionPlan) EnterpriseCatalogUUID() *uuid.UUID {
	return p.enterpriseCatalogUUID
}

func (p *SubscriptionPlan) SalesforceOpportunityID() *string {
	return p.salesforceOpportunityID
}

func (p *SubscriptionPlan) NumLicenses() int {
	return p.numLicenses
}

func (p *SubscriptionPlan) ForInternalUseOnly() bool {
	return p.forInternalUseOnly
}

func (p *SubscriptionPlan) IsRevocationCapEnabled() bool {
	return p.isRevocationCapEnabled
}

func (p *SubscriptionPlan) RevokeMaxPercentage() int {
	return p.revokeMaxPercentage
}

func (p *SubscriptionPlan) StartDate() time.Time {
	return p.startDate
}

func (p *SubscriptionPlan) ExpirationDate() time.Time {
	return p.expirationDate
}

func (p *SubscriptionPlan) IsActive() bool {
	return p.isActive
}

func (p *SubscriptionPlan) Metadata() map[string]interface{} {
	return p.metadata
}

// Version returns the aggregate version for optimistic locking
func (p *SubscriptionPlan) Version() int {
	return p.version
}

func (p *SubscriptionPlan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *SubscriptionPlan) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *SubscriptionPlan) Rename(title string) error {
	if title == "" {
		return fmt.Errorf("plan title is required")
	}
	if len(title) > 128 {
		return fmt.Errorf("plan title too long (max 128 characters)")
	}
	p.title = title
	p.touch()
	return nil
}

func (p *SubscriptionPlan) AssignProduct(productID uint) error {
	if productID == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.productID = &productID
	p.touch()
	return nil
}

func (p *SubscriptionPlan) SetEnterpriseCatalogUUID(catalogUUID *uuid.UUID) {
	p.enterpriseCatalogUUID = catalogUUID
	p.touch()
}

func (p *SubscriptionPlan) SetSalesforceOpportunityID(opportunityID *string) {
	p.salesforceOpportunityID = opportunityID
	p.touch()
}

func (p *SubscriptionPlan) SetNumLicenses(numLicenses int) error {
	if numLicenses < 1 {
		return fmt.Errorf("number of licenses must be at least 1")
	}
	p.numLicenses = numLicenses
	p.touch()
	return nil
}

func (p *SubscriptionPlan) MarkForInternalUseOnly(internal bool) {
	p.forInternalUseOnly = internal
	p.touch()
}

// SetRevocationCap records the cap flag and percentage as submitted.
// Range enforcement is deliberately left to the validation rules so the
// rejection carries the admin-facing field and message.
func (p *SubscriptionPlan) SetRevocationCap(enabled bool, maxPercentage int) {
	p.isRevocationCapEnabled = enabled
	p.revokeMaxPercentage = maxPercentage
	p.touch()
}

func (p *SubscriptionPlan) Reschedule(startDate, expirationDate time.Time) error {
	if expirationDate.Before(startDate) {
		return fmt.Errorf("expiration date cannot be before start date")
	}
	p.startDate = startDate.UTC()
	p.expirationDate = expirationDate.UTC()
	p.touch()
	return nil
}

func (p *SubscriptionPlan) RelinkCustomerAgreement(customerAgreementID uint) error {
	if customerAgreementID == 0 {
		return fmt.Errorf("customer agreement is required")
	}
	p.customerAgreementID = customerAgreementID
	p.touch()
	return nil
}

func (p *SubscriptionPlan) Activate() {
	if p.isActive {
		return
	}
	p.isActive = true
	p.touch()
}

func (p *SubscriptionPlan) Deactivate() {
	if !p.isActive {
		return
	}
	p.isActive = false
	p.touch()
}

// IsCurrent reports whether the plan is active and its date range contains now.
func (p *SubscriptionPlan) IsCurrent(now time.Time) bool {
	return p.isActive && !now.Before(p.startDate) && !now.After(p.expirationDate)
}

func (p *SubscriptionPlan) touch() {
	p.updatedAt = time.Now().UTC()
	p.version++
}
