package subscriptions

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlanRenewal is a scheduled future subscription plan that extends or
// replaces a prior plan when it expires.
type PlanRenewal struct {
	id                    uint
	priorPlanID           uint
	priorPlanUUID         uuid.UUID
	renewedPlanID         *uint
	effectiveDate         time.Time
	renewedExpirationDate time.Time
	numberOfLicenses      int
	processed             bool
	createdAt             time.Time
	updatedAt             time.Time
}

func NewPlanRenewal(priorPlanID uint, priorPlanUUID uuid.UUID,
	effectiveDate, renewedExpirationDate time.Time, numberOfLicenses int) (*PlanRenewal, error) {

	if priorPlanID == 0 {
		return nil, fmt.Errorf("prior subscription plan is required")
	}
	if priorPlanUUID == uuid.Nil {
		return nil, fmt.Errorf("prior subscription plan UUID is required")
	}
	if numberOfLicenses < 1 {
		return nil, fmt.Errorf("number of licenses must be at least 1")
	}

	now := time.Now().UTC()
	return &PlanRenewal{
		priorPlanID:           priorPlanID,
		priorPlanUUID:         priorPlanUUID,
		effectiveDate:         effectiveDate.UTC(),
		renewedExpirationDate: renewedExpirationDate.UTC(),
		numberOfLicenses:      numberOfLicenses,
		createdAt:             now,
		updatedAt:             now,
	}, nil
}

func ReconstructPlanRenewal(id, priorPlanID uint, priorPlanUUID uuid.UUID,
	renewedPlanID *uint, effectiveDate, renewedExpirationDate time.Time,
	numberOfLicenses int, processed bool, createdAt, updatedAt time.Time) (*PlanRenewal, error) {

	if id == 0 {
		return nil, fmt.Errorf("renewal ID cannot be zero")
	}
	if priorPlanID == 0 {
		return nil, fmt.Errorf("prior subscription plan is required")
	}

	return &PlanRenewal{
		id:                    id,
		priorPlanID:           priorPlanID,
		priorPlanUUID:         priorPlanUUID,
		renewedPlanID:         renewedPlanID,
		effectiveDate:         effectiveDate,
		renewedExpirationDate: renewedExpirationDate,
		numberOfLicenses:      numberOfLicenses,
		processed:             processed,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}, nil
}

func (r *PlanRenewal) ID() uint {
	return r.id
}

func (r *PlanRenewal) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("renewal ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("renewal ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *PlanRenewal) PriorPlanID() uint {
	return r.priorPlanID
}

func (r *PlanRenewal) PriorPlanUUID() uuid.UUID {
	return r.priorPlanUUID
}

// RenewedPlanID is the plan created when this renewal was processed, or nil
// while the renewal is still pending.
func (r *PlanRenewal) RenewedPlanID() *uint {
	return r.renewedPlanID
}

func (r *PlanRenewal) EffectiveDate() time.Time {
	return r.effectiveDate
}

func (r *PlanRenewal) RenewedExpirationDate() time.Time {
	return r.renewedExpirationDate
}

func (r *PlanRenewal) NumberOfLicenses() int {
	return r.numberOfLicenses
}

func (r *PlanRenewal) Processed() bool {
	return r.processed
}

func (r *PlanRenewal) CreatedAt() time.Time {
	return r.createdAt
}

func (r *PlanRenewal) UpdatedAt() time.Time {
	return r.updatedAt
}

// MarkProcessed records the plan produced by processing this renewal.
func (r *PlanRenewal) MarkProcessed(renewedPlanID uint) error {
	if r.processed {
		return fmt.Errorf("renewal is already processed")
	}
	if renewedPlanID == 0 {
		return fmt.Errorf("renewed plan ID cannot be zero")
	}
	r.renewedPlanID = &renewedPlanID
	r.processed = true
	r.updatedAt = time.Now().UTC()
	return nil
}
