package subscriptions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PlanFilter narrows plan listings.
type PlanFilter struct {
	CustomerAgreementID *uint
	IsActive            *bool
	Page                int
	PageSize            int
}

// PlanRepository persists subscription plans. Lookups return (nil, nil) when
// no record matches.
type PlanRepository interface {
	Create(ctx context.Context, plan *SubscriptionPlan) error
	GetByID(ctx context.Context, id uint) (*SubscriptionPlan, error)
	GetByUUID(ctx context.Context, planUUID uuid.UUID) (*SubscriptionPlan, error)
	Update(ctx context.Context, plan *SubscriptionPlan) error
	List(ctx context.Context, filter PlanFilter) ([]*SubscriptionPlan, int64, error)
	// ListCurrentByAgreement returns the plans under an agreement that are
	// active and whose date range contains now.
	ListCurrentByAgreement(ctx context.Context, agreementID uint, now time.Time) ([]*SubscriptionPlan, error)
}

// CustomerAgreementRepository persists customer agreements.
type CustomerAgreementRepository interface {
	Create(ctx context.Context, agreement *CustomerAgreement) error
	GetByID(ctx context.Context, id uint) (*CustomerAgreement, error)
	GetByUUID(ctx context.Context, agreementUUID uuid.UUID) (*CustomerAgreement, error)
	Update(ctx context.Context, agreement *CustomerAgreement) error
}

// ProductRepository persists products and their plan types. Products are
// always loaded with their plan type.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	Update(ctx context.Context, product *Product) error
	List(ctx context.Context) ([]*Product, error)
	GetPlanType(ctx context.Context, id uint) (*PlanType, error)
	ListPlanTypes(ctx context.Context) ([]*PlanType, error)
}

// PlanRenewalRepository persists plan renewals.
type PlanRenewalRepository interface {
	Create(ctx context.Context, renewal *PlanRenewal) error
	GetByID(ctx context.Context, id uint) (*PlanRenewal, error)
	ListByPriorPlan(ctx context.Context, priorPlanID uint) ([]*PlanRenewal, error)
}
