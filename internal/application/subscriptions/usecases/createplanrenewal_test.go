package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liman/internal/domain/subscriptions"
	apperrors "liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

func renewalTestNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func testPriorPlan(t *testing.T) *subscriptions.SubscriptionPlan {
	t.Helper()
	start := renewalTestNow().AddDate(-1, 0, 0)
	plan, err := subscriptions.NewSubscriptionPlan("Prior Plan", 1, 25, start, start.AddDate(2, 0, 0))
	require.NoError(t, err)
	require.NoError(t, plan.SetID(1))
	return plan
}

func newRenewalFixture(t *testing.T) (*CreatePlanRenewalUseCase, *mockRenewalRepo, *mockPlanRepo) {
	t.Helper()
	renewalRepo := newMockRenewalRepo()
	planRepo := newMockPlanRepo()
	uc := NewCreatePlanRenewalUseCase(
		renewalRepo, planRepo, subscriptions.NewPlanValidator(testLimits()), logger.NewLogger())
	uc.now = renewalTestNow
	return uc, renewalRepo, planRepo
}

func TestCreatePlanRenewal_Success(t *testing.T) {
	uc, renewalRepo, planRepo := newRenewalFixture(t)
	prior := testPriorPlan(t)
	planRepo.add(prior)

	effective := prior.ExpirationDate()
	result, err := uc.Execute(context.Background(), CreatePlanRenewalCommand{
		PriorPlanUUID:         prior.UUID(),
		EffectiveDate:         effective,
		RenewedExpirationDate: effective.AddDate(1, 0, 0),
		NumberOfLicenses:      25,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, prior.ID(), result.PriorPlanID)
	assert.False(t, result.Processed)
	require.Len(t, renewalRepo.renewals, 1)
}

func TestCreatePlanRenewal_PriorPlanNotFound(t *testing.T) {
	uc, _, _ := newRenewalFixture(t)
	prior := testPriorPlan(t)

	_, err := uc.Execute(context.Background(), CreatePlanRenewalCommand{
		PriorPlanUUID:         prior.UUID(),
		EffectiveDate:         prior.ExpirationDate(),
		RenewedExpirationDate: prior.ExpirationDate().AddDate(1, 0, 0),
		NumberOfLicenses:      25,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreatePlanRenewal_EffectiveDateInPast(t *testing.T) {
	uc, renewalRepo, planRepo := newRenewalFixture(t)
	prior := testPriorPlan(t)
	planRepo.add(prior)

	yesterday := renewalTestNow().AddDate(0, 0, -1)
	_, err := uc.Execute(context.Background(), CreatePlanRenewalCommand{
		PriorPlanUUID:         prior.UUID(),
		EffectiveDate:         yesterday,
		RenewedExpirationDate: yesterday.AddDate(1, 0, 0),
		NumberOfLicenses:      25,
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, subscriptions.FieldEffectiveDate, appErr.Field)
	assert.Equal(t,
		"A subscription renewal can not be scheduled to become effective in the past.",
		appErr.Message)
	assert.Empty(t, renewalRepo.renewals)
}

func TestCreatePlanRenewal_EffectiveBeforePriorExpiration(t *testing.T) {
	uc, _, planRepo := newRenewalFixture(t)
	prior := testPriorPlan(t)
	planRepo.add(prior)

	effective := prior.ExpirationDate().AddDate(0, -1, 0)
	_, err := uc.Execute(context.Background(), CreatePlanRenewalCommand{
		PriorPlanUUID:         prior.UUID(),
		EffectiveDate:         effective,
		RenewedExpirationDate: effective.AddDate(1, 0, 0),
		NumberOfLicenses:      25,
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, subscriptions.FieldEffectiveDate, appErr.Field)
	assert.Equal(t,
		"A subscription renewal can not take effect before a subscription expires.",
		appErr.Message)
}

func TestCreatePlanRenewal_ExpiresBeforeEffective(t *testing.T) {
	uc, _, planRepo := newRenewalFixture(t)
	prior := testPriorPlan(t)
	planRepo.add(prior)

	effective := prior.ExpirationDate().AddDate(0, 1, 0)
	_, err := uc.Execute(context.Background(), CreatePlanRenewalCommand{
		PriorPlanUUID:         prior.UUID(),
		EffectiveDate:         effective,
		RenewedExpirationDate: effective.AddDate(0, 0, -1),
		NumberOfLicenses:      25,
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, subscriptions.FieldRenewedExpirationDate, appErr.Field)
}
