package subscriptions

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CustomerAgreement is the contractual parent entity under which one or more
// subscription plans are issued for an enterprise customer.
type CustomerAgreement struct {
	id                           uint
	uuid                         uuid.UUID
	enterpriseCustomerUUID       uuid.UUID
	enterpriseCustomerSlug       string
	defaultEnterpriseCatalogUUID *uuid.UUID
	autoAppliedPlanID            *uint
	licenseDurationBeforePurge   time.Duration
	createdAt                    time.Time
	updatedAt                    time.Time
}

func NewCustomerAgreement(enterpriseCustomerUUID uuid.UUID, enterpriseCustomerSlug string,
	licenseDurationBeforePurge time.Duration) (*CustomerAgreement, error) {

	if enterpriseCustomerUUID == uuid.Nil {
		return nil, fmt.Errorf("enterprise customer UUID is required")
	}
	if enterpriseCustomerSlug == "" {
		return nil, fmt.Errorf("enterprise customer slug is required")
	}
	if licenseDurationBeforePurge < 0 {
		return nil, fmt.Errorf("license duration before purge cannot be negative")
	}

	now := time.Now().UTC()
	return &CustomerAgreement{
		uuid:                       uuid.New(),
		enterpriseCustomerUUID:     enterpriseCustomerUUID,
		enterpriseCustomerSlug:     enterpriseCustomerSlug,
		licenseDurationBeforePurge: licenseDurationBeforePurge,
		createdAt:                  now,
		updatedAt:                  now,
	}, nil
}

func ReconstructCustomerAgreement(id uint, agreementUUID, enterpriseCustomerUUID uuid.UUID,
	enterpriseCustomerSlug string, defaultEnterpriseCatalogUUID *uuid.UUID,
	autoAppliedPlanID *uint, licenseDurationBeforePurge time.Duration,
	createdAt, updatedAt time.Time) (*CustomerAgreement, error) {

	if id == 0 {
		return nil, fmt.Errorf("agreement ID cannot be zero")
	}
	if agreementUUID == uuid.Nil {
		return nil, fmt.Errorf("agreement UUID cannot be nil")
	}

	return &CustomerAgreement{
		id:                           id,
		uuid:                         agreementUUID,
		enterpriseCustomerUUID:       enterpriseCustomerUUID,
		enterpriseCustomerSlug:       enterpriseCustomerSlug,
		defaultEnterpriseCatalogUUID: defaultEnterpriseCatalogUUID,
		autoAppliedPlanID:            autoAppliedPlanID,
		licenseDurationBeforePurge:   licenseDurationBeforePurge,
		createdAt:                    createdAt,
		updatedAt:                    updatedAt,
	}, nil
}

func (a *CustomerAgreement) ID() uint {
	return a.id
}

func (a *CustomerAgreement) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("agreement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("agreement ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *CustomerAgreement) UUID() uuid.UUID {
	return a.uuid
}

func (a *CustomerAgreement) EnterpriseCustomerUUID() uuid.UUID {
	return a.enterpriseCustomerUUID
}

func (a *CustomerAgreement) EnterpriseCustomerSlug() string {
	return a.enterpriseCustomerSlug
}

func (a *CustomerAgreement) DefaultEnterpriseCatalogUUID() *uuid.UUID {
	return a.defaultEnterpriseCatalogUUID
}

// AutoAppliedPlanID is the plan currently used for auto-applied licenses,
// or nil when none is designated.
func (a *CustomerAgreement) AutoAppliedPlanID() *uint {
	return a.autoAppliedPlanID
}

func (a *CustomerAgreement) LicenseDurationBeforePurge() time.Duration {
	return a.licenseDurationBeforePurge
}

func (a *CustomerAgreement) CreatedAt() time.Time {
	return a.createdAt
}

func (a *CustomerAgreement) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *CustomerAgreement) SetDefaultEnterpriseCatalogUUID(catalogUUID *uuid.UUID) {
	a.defaultEnterpriseCatalogUUID = catalogUUID
	a.updatedAt = time.Now().UTC()
}

func (a *CustomerAgreement) SetLicenseDurationBeforePurge(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("license duration before purge cannot be negative")
	}
	a.licenseDurationBeforePurge = d
	a.updatedAt = time.Now().UTC()
	return nil
}

// DesignateAutoAppliedPlan points auto-applied licenses at the given plan.
func (a *CustomerAgreement) DesignateAutoAppliedPlan(planID uint) error {
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	a.autoAppliedPlanID = &planID
	a.updatedAt = time.Now().UTC()
	return nil
}

// ClearAutoAppliedPlan removes the auto-applied plan designation.
func (a *CustomerAgreement) ClearAutoAppliedPlan() {
	a.autoAppliedPlanID = nil
	a.updatedAt = time.Now().UTC()
}
