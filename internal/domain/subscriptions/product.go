package subscriptions

import (
	"fmt"
	"time"
)

// PlanType classifies products and gates which external identifiers a
// dependent record must carry.
type PlanType struct {
	id           uint
	label        string
	sfIDRequired bool
	nsIDRequired bool
}

func NewPlanType(label string, sfIDRequired, nsIDRequired bool) (*PlanType, error) {
	if label == "" {
		return nil, fmt.Errorf("plan type label is required")
	}
	return &PlanType{
		label:        label,
		sfIDRequired: sfIDRequired,
		nsIDRequired: nsIDRequired,
	}, nil
}

func ReconstructPlanType(id uint, label string, sfIDRequired, nsIDRequired bool) (*PlanType, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan type ID cannot be zero")
	}
	return &PlanType{
		id:           id,
		label:        label,
		sfIDRequired: sfIDRequired,
		nsIDRequired: nsIDRequired,
	}, nil
}

func (t *PlanType) ID() uint {
	return t.id
}

func (t *PlanType) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("plan type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan type ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *PlanType) Label() string {
	return t.label
}

// SFIDRequired reports whether plans on products of this type must carry a
// Salesforce opportunity ID.
func (t *PlanType) SFIDRequired() bool {
	return t.sfIDRequired
}

// NSIDRequired reports whether products of this type must carry a Netsuite ID.
func (t *PlanType) NSIDRequired() bool {
	return t.nsIDRequired
}

// Product is a sellable offering a subscription plan is issued against.
type Product struct {
	id         uint
	name       string
	planType   *PlanType
	netsuiteID *int64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewProduct(name string, planType *PlanType) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if planType == nil {
		return nil, fmt.Errorf("plan type is required")
	}

	now := time.Now().UTC()
	return &Product{
		name:      name,
		planType:  planType,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProduct(id uint, name string, planType *PlanType, netsuiteID *int64,
	createdAt, updatedAt time.Time) (*Product, error) {

	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if planType == nil {
		return nil, fmt.Errorf("plan type is required")
	}

	return &Product{
		id:         id,
		name:       name,
		planType:   planType,
		netsuiteID: netsuiteID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (p *Product) ID() uint {
	return p.id
}

func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) PlanType() *PlanType {
	return p.planType
}

func (p *Product) NetsuiteID() *int64 {
	return p.netsuiteID
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("product name is required")
	}
	p.name = name
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Product) SetNetsuiteID(netsuiteID *int64) {
	p.netsuiteID = netsuiteID
	p.updatedAt = time.Now().UTC()
}

func (p *Product) ChangePlanType(planType *PlanType) error {
	if planType == nil {
		return fmt.Errorf("plan type is required")
	}
	p.planType = planType
	p.updatedAt = time.Now().UTC()
	return nil
}
