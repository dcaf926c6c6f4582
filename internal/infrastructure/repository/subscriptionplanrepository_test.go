package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"liman/internal/domain/subscriptions"
	"liman/internal/infrastructure/persistence/models"
	apperrors "liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.SubscriptionPlanModel{},
		&models.CustomerAgreementModel{},
		&models.PlanTypeModel{},
		&models.ProductModel{},
		&models.PlanRenewalModel{},
	)
	require.NoError(t, err)

	return db
}

func repoTestNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func createTestPlan(t *testing.T, title string, agreementID uint) *subscriptions.SubscriptionPlan {
	t.Helper()
	start := repoTestNow().AddDate(0, -1, 0)
	plan, err := subscriptions.NewSubscriptionPlan(title, agreementID, 10, start, start.AddDate(1, 0, 0))
	require.NoError(t, err)
	return plan
}

func TestSubscriptionPlanRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	plan := createTestPlan(t, "Enterprise Plan", 1)
	catalogUUID := uuid.New()
	plan.SetEnterpriseCatalogUUID(&catalogUUID)
	plan.Metadata()["source"] = "salesforce"

	require.NoError(t, repo.Create(ctx, plan))
	assert.NotZero(t, plan.ID())

	found, err := repo.GetByID(ctx, plan.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, plan.UUID(), found.UUID())
	assert.Equal(t, "Enterprise Plan", found.Title())
	require.NotNil(t, found.EnterpriseCatalogUUID())
	assert.Equal(t, catalogUUID, *found.EnterpriseCatalogUUID())
	assert.Equal(t, "salesforce", found.Metadata()["source"])

	byUUID, err := repo.GetByUUID(ctx, plan.UUID())
	require.NoError(t, err)
	require.NotNil(t, byUUID)
	assert.Equal(t, plan.ID(), byUUID.ID())
}

func TestSubscriptionPlanRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	found, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = repo.GetByUUID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSubscriptionPlanRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	plan := createTestPlan(t, "Original", 1)
	require.NoError(t, repo.Create(ctx, plan))

	require.NoError(t, plan.Rename("Renamed"))
	require.NoError(t, plan.SetNumLicenses(42))
	plan.Activate()

	require.NoError(t, repo.Update(ctx, plan))

	found, err := repo.GetByID(ctx, plan.ID())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Title())
	assert.Equal(t, 42, found.NumLicenses())
	assert.True(t, found.IsActive())
}

func TestSubscriptionPlanRepository_UpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	plan := createTestPlan(t, "Ghost", 1)
	require.NoError(t, plan.SetID(777))

	err := repo.Update(ctx, plan)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSubscriptionPlanRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	a := createTestPlan(t, "Plan A", 1)
	a.Activate()
	b := createTestPlan(t, "Plan B", 1)
	c := createTestPlan(t, "Plan C", 2)
	c.Activate()
	for _, plan := range []*subscriptions.SubscriptionPlan{a, b, c} {
		require.NoError(t, repo.Create(ctx, plan))
	}

	agreementID := uint(1)
	plans, total, err := repo.List(ctx, subscriptions.PlanFilter{CustomerAgreementID: &agreementID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, plans, 2)

	active := true
	plans, total, err = repo.List(ctx, subscriptions.PlanFilter{IsActive: &active})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, plans, 2)

	plans, total, err = repo.List(ctx, subscriptions.PlanFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, plans, 2)
}

func TestSubscriptionPlanRepository_ListCurrentByAgreement(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionPlanRepository(db, logger.NewLogger())
	ctx := context.Background()
	now := repoTestNow()

	current := createTestPlan(t, "Current", 1)
	current.Activate()
	require.NoError(t, repo.Create(ctx, current))

	inactive := createTestPlan(t, "Inactive", 1)
	require.NoError(t, repo.Create(ctx, inactive))

	expired := createTestPlan(t, "Expired", 1)
	require.NoError(t, expired.Reschedule(now.AddDate(-2, 0, 0), now.AddDate(-1, 0, 0)))
	expired.Activate()
	require.NoError(t, repo.Create(ctx, expired))

	future := createTestPlan(t, "Future", 1)
	require.NoError(t, future.Reschedule(now.AddDate(0, 1, 0), now.AddDate(1, 1, 0)))
	future.Activate()
	require.NoError(t, repo.Create(ctx, future))

	otherAgreement := createTestPlan(t, "Other", 2)
	otherAgreement.Activate()
	require.NoError(t, repo.Create(ctx, otherAgreement))

	plans, err := repo.ListCurrentByAgreement(ctx, 1, now)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Current", plans[0].Title())
}

func TestCustomerAgreementRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerAgreementRepository(db, logger.NewLogger())
	ctx := context.Background()

	agreement, err := subscriptions.NewCustomerAgreement(uuid.New(), "acme-corp", 90*24*time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, agreement))
	assert.NotZero(t, agreement.ID())

	require.NoError(t, agreement.DesignateAutoAppliedPlan(5))
	catalogUUID := uuid.New()
	agreement.SetDefaultEnterpriseCatalogUUID(&catalogUUID)
	require.NoError(t, repo.Update(ctx, agreement))

	found, err := repo.GetByUUID(ctx, agreement.UUID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "acme-corp", found.EnterpriseCustomerSlug())
	require.NotNil(t, found.AutoAppliedPlanID())
	assert.Equal(t, uint(5), *found.AutoAppliedPlanID())
	require.NotNil(t, found.DefaultEnterpriseCatalogUUID())
	assert.Equal(t, catalogUUID, *found.DefaultEnterpriseCatalogUUID())
	assert.Equal(t, 90*24*time.Hour, found.LicenseDurationBeforePurge())
}

func TestProductRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, db.Create(&models.PlanTypeModel{Label: "OCE", SFIDRequired: true, NSIDRequired: true}).Error)

	planType, err := repo.GetPlanType(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, planType)
	assert.True(t, planType.SFIDRequired())

	product, err := subscriptions.NewProduct("B2B Subscription", planType)
	require.NoError(t, err)
	nsID := int64(110034)
	product.SetNetsuiteID(&nsID)
	require.NoError(t, repo.Create(ctx, product))

	found, err := repo.GetByID(ctx, product.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "B2B Subscription", found.Name())
	assert.Equal(t, "OCE", found.PlanType().Label())
	require.NotNil(t, found.NetsuiteID())
	assert.EqualValues(t, 110034, *found.NetsuiteID())

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestPlanRenewalRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRenewalRepository(db, logger.NewLogger())
	ctx := context.Background()

	priorUUID := uuid.New()
	effective := repoTestNow().AddDate(1, 0, 0)
	renewal, err := subscriptions.NewPlanRenewal(1, priorUUID, effective, effective.AddDate(1, 0, 0), 10)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, renewal))

	renewals, err := repo.ListByPriorPlan(ctx, 1)
	require.NoError(t, err)
	require.Len(t, renewals, 1)
	assert.Equal(t, priorUUID, renewals[0].PriorPlanUUID())
	assert.False(t, renewals[0].Processed())

	none, err := repo.ListByPriorPlan(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}
