package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"liman/internal/domain/subscriptions"
)

// =====================================================================
// Mock repositories
// =====================================================================

type mockPlanRepo struct {
	plans        map[uuid.UUID]*subscriptions.SubscriptionPlan
	currentPlans []*subscriptions.SubscriptionPlan
	createErr    error
	created      []*subscriptions.SubscriptionPlan
	updated      []*subscriptions.SubscriptionPlan
	nextID       uint
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: make(map[uuid.UUID]*subscriptions.SubscriptionPlan), nextID: 1}
}

func (m *mockPlanRepo) add(plan *subscriptions.SubscriptionPlan) {
	m.plans[plan.UUID()] = plan
}

func (m *mockPlanRepo) Create(ctx context.Context, plan *subscriptions.SubscriptionPlan) error {
	if m.createErr != nil {
		return m.createErr
	}
	_ = plan.SetID(m.nextID)
	m.nextID++
	m.plans[plan.UUID()] = plan
	m.created = append(m.created, plan)
	return nil
}

func (m *mockPlanRepo) GetByID(ctx context.Context, id uint) (*subscriptions.SubscriptionPlan, error) {
	for _, plan := range m.plans {
		if plan.ID() == id {
			return plan, nil
		}
	}
	return nil, nil
}

func (m *mockPlanRepo) GetByUUID(ctx context.Context, planUUID uuid.UUID) (*subscriptions.SubscriptionPlan, error) {
	return m.plans[planUUID], nil
}

func (m *mockPlanRepo) Update(ctx context.Context, plan *subscriptions.SubscriptionPlan) error {
	m.plans[plan.UUID()] = plan
	m.updated = append(m.updated, plan)
	return nil
}

func (m *mockPlanRepo) List(ctx context.Context, filter subscriptions.PlanFilter) ([]*subscriptions.SubscriptionPlan, int64, error) {
	result := make([]*subscriptions.SubscriptionPlan, 0, len(m.plans))
	for _, plan := range m.plans {
		result = append(result, plan)
	}
	return result, int64(len(result)), nil
}

func (m *mockPlanRepo) ListCurrentByAgreement(ctx context.Context, agreementID uint, now time.Time) ([]*subscriptions.SubscriptionPlan, error) {
	return m.currentPlans, nil
}

type mockAgreementRepo struct {
	agreements map[uuid.UUID]*subscriptions.CustomerAgreement
	updated    []*subscriptions.CustomerAgreement
}

func newMockAgreementRepo() *mockAgreementRepo {
	return &mockAgreementRepo{agreements: make(map[uuid.UUID]*subscriptions.CustomerAgreement)}
}

func (m *mockAgreementRepo) add(agreement *subscriptions.CustomerAgreement) {
	m.agreements[agreement.UUID()] = agreement
}

func (m *mockAgreementRepo) Create(ctx context.Context, agreement *subscriptions.CustomerAgreement) error {
	m.agreements[agreement.UUID()] = agreement
	return nil
}

func (m *mockAgreementRepo) GetByID(ctx context.Context, id uint) (*subscriptions.CustomerAgreement, error) {
	for _, agreement := range m.agreements {
		if agreement.ID() == id {
			return agreement, nil
		}
	}
	return nil, nil
}

func (m *mockAgreementRepo) GetByUUID(ctx context.Context, agreementUUID uuid.UUID) (*subscriptions.CustomerAgreement, error) {
	return m.agreements[agreementUUID], nil
}

func (m *mockAgreementRepo) Update(ctx context.Context, agreement *subscriptions.CustomerAgreement) error {
	m.agreements[agreement.UUID()] = agreement
	m.updated = append(m.updated, agreement)
	return nil
}

type mockProductRepo struct {
	products  map[uint]*subscriptions.Product
	planTypes map[uint]*subscriptions.PlanType
	nextID    uint
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{
		products:  make(map[uint]*subscriptions.Product),
		planTypes: make(map[uint]*subscriptions.PlanType),
		nextID:    1,
	}
}

func (m *mockProductRepo) add(product *subscriptions.Product) {
	m.products[product.ID()] = product
}

func (m *mockProductRepo) addPlanType(planType *subscriptions.PlanType) {
	m.planTypes[planType.ID()] = planType
}

func (m *mockProductRepo) Create(ctx context.Context, product *subscriptions.Product) error {
	_ = product.SetID(m.nextID)
	m.nextID++
	m.products[product.ID()] = product
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uint) (*subscriptions.Product, error) {
	return m.products[id], nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *subscriptions.Product) error {
	m.products[product.ID()] = product
	return nil
}

func (m *mockProductRepo) List(ctx context.Context) ([]*subscriptions.Product, error) {
	result := make([]*subscriptions.Product, 0, len(m.products))
	for _, product := range m.products {
		result = append(result, product)
	}
	return result, nil
}

func (m *mockProductRepo) GetPlanType(ctx context.Context, id uint) (*subscriptions.PlanType, error) {
	return m.planTypes[id], nil
}

func (m *mockProductRepo) ListPlanTypes(ctx context.Context) ([]*subscriptions.PlanType, error) {
	result := make([]*subscriptions.PlanType, 0, len(m.planTypes))
	for _, planType := range m.planTypes {
		result = append(result, planType)
	}
	return result, nil
}

type mockRenewalRepo struct {
	renewals []*subscriptions.PlanRenewal
	nextID   uint
}

func newMockRenewalRepo() *mockRenewalRepo {
	return &mockRenewalRepo{nextID: 1}
}

func (m *mockRenewalRepo) Create(ctx context.Context, renewal *subscriptions.PlanRenewal) error {
	_ = renewal.SetID(m.nextID)
	m.nextID++
	m.renewals = append(m.renewals, renewal)
	return nil
}

func (m *mockRenewalRepo) GetByID(ctx context.Context, id uint) (*subscriptions.PlanRenewal, error) {
	for _, renewal := range m.renewals {
		if renewal.ID() == id {
			return renewal, nil
		}
	}
	return nil, nil
}

func (m *mockRenewalRepo) ListByPriorPlan(ctx context.Context, priorPlanID uint) ([]*subscriptions.PlanRenewal, error) {
	result := make([]*subscriptions.PlanRenewal, 0)
	for _, renewal := range m.renewals {
		if renewal.PriorPlanID() == priorPlanID {
			result = append(result, renewal)
		}
	}
	return result, nil
}

// =====================================================================
// Mock choice cache
// =====================================================================

type mockChoiceCache struct {
	entries     map[uuid.UUID]*subscriptions.ChoiceList
	getErr      error
	setErr      error
	invalidated []uuid.UUID
}

func newMockChoiceCache() *mockChoiceCache {
	return &mockChoiceCache{entries: make(map[uuid.UUID]*subscriptions.ChoiceList)}
}

func (m *mockChoiceCache) GetChoices(ctx context.Context, agreementUUID uuid.UUID) (*subscriptions.ChoiceList, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.entries[agreementUUID], nil
}

func (m *mockChoiceCache) SetChoices(ctx context.Context, agreementUUID uuid.UUID, list subscriptions.ChoiceList) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[agreementUUID] = &list
	return nil
}

func (m *mockChoiceCache) InvalidateChoices(ctx context.Context, agreementUUID uuid.UUID) error {
	delete(m.entries, agreementUUID)
	m.invalidated = append(m.invalidated, agreementUUID)
	return nil
}
