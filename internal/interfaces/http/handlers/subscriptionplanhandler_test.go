package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subdto "liman/internal/application/subscriptions/dto"
	"liman/internal/application/subscriptions/usecases"
	"liman/internal/domain/subscriptions"
	"liman/internal/interfaces/http/handlers/testutil"
	"liman/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreatePlanUC struct {
	result  *subdto.SubscriptionPlanDTO
	err     error
	lastCmd usecases.CreateSubscriptionPlanCommand
}

func (m *mockCreatePlanUC) Execute(ctx context.Context, cmd usecases.CreateSubscriptionPlanCommand) (*subdto.SubscriptionPlanDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockUpdatePlanUC struct {
	result *subdto.SubscriptionPlanDTO
	err    error
}

func (m *mockUpdatePlanUC) Execute(ctx context.Context, cmd usecases.UpdateSubscriptionPlanCommand) (*subdto.SubscriptionPlanDTO, error) {
	return m.result, m.err
}

type mockGetPlanUC struct {
	result *subdto.SubscriptionPlanDTO
	err    error
}

func (m *mockGetPlanUC) Execute(ctx context.Context, query usecases.GetSubscriptionPlanQuery) (*subdto.SubscriptionPlanDTO, error) {
	return m.result, m.err
}

type mockListPlansUC struct {
	result    *usecases.ListSubscriptionPlansResult
	err       error
	lastQuery usecases.ListSubscriptionPlansQuery
}

func (m *mockListPlansUC) Execute(ctx context.Context, query usecases.ListSubscriptionPlansQuery) (*usecases.ListSubscriptionPlansResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func handlerTestPlanDTO(t *testing.T) *subdto.SubscriptionPlanDTO {
	t.Helper()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	plan, err := subscriptions.NewSubscriptionPlan("Enterprise Plan", 1, 50, start, end)
	require.NoError(t, err)
	require.NoError(t, plan.SetID(1))
	return subdto.ToSubscriptionPlanDTO(plan)
}

func validCreatePlanRequest() CreateSubscriptionPlanRequest {
	return CreateSubscriptionPlanRequest{
		Title:               "Enterprise Plan",
		CustomerAgreementID: 1,
		NumLicenses:         50,
		StartDate:           "2025-01-01",
		ExpirationDate:      "2025-12-31",
		IsActive:            true,
	}
}

// =====================================================================
// TestSubscriptionPlanHandler_CreatePlan
// =====================================================================

func TestSubscriptionPlanHandler_CreatePlan_Success(t *testing.T) {
	mockUC := &mockCreatePlanUC{result: handlerTestPlanDTO(t)}
	handler := NewSubscriptionPlanHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/subscription-plans", validCreatePlanRequest())

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 100, mockUC.lastCmd.RevokeMaxPercentage)
}

func TestSubscriptionPlanHandler_CreatePlan_InvalidRequest(t *testing.T) {
	handler := NewSubscriptionPlanHandler(nil, nil, nil, nil)

	reqBody := map[string]string{"title": "Incomplete"}
	c, w := testutil.NewTestContext(http.MethodPost, "/subscription-plans", reqBody)

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestSubscriptionPlanHandler_CreatePlan_InvalidStartDate(t *testing.T) {
	handler := NewSubscriptionPlanHandler(nil, nil, nil, nil)

	reqBody := validCreatePlanRequest()
	reqBody.StartDate = "not-a-date"
	c, w := testutil.NewTestContext(http.MethodPost, "/subscription-plans", reqBody)

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "start_date", resp.Error.Field)
	assert.Equal(t, "Enter a valid date.", resp.Error.Message)
}

func TestSubscriptionPlanHandler_CreatePlan_RejectionPropagated(t *testing.T) {
	mockUC := &mockCreatePlanUC{
		err: errors.NewFieldValidationError("product", "You must specify a product."),
	}
	handler := NewSubscriptionPlanHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/subscription-plans", validCreatePlanRequest())

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "product", resp.Error.Field)
	assert.Equal(t, "You must specify a product.", resp.Error.Message)
}

func TestSubscriptionPlanHandler_CreatePlan_ExplicitRevocationCap(t *testing.T) {
	mockUC := &mockCreatePlanUC{result: handlerTestPlanDTO(t)}
	handler := NewSubscriptionPlanHandler(mockUC, nil, nil, nil)

	cap := 25
	reqBody := validCreatePlanRequest()
	reqBody.IsRevocationCapEnabled = true
	reqBody.RevokeMaxPercentage = &cap
	c, w := testutil.NewTestContext(http.MethodPost, "/subscription-plans", reqBody)

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 25, mockUC.lastCmd.RevokeMaxPercentage)
	assert.True(t, mockUC.lastCmd.IsRevocationCapEnabled)
}

// =====================================================================
// TestSubscriptionPlanHandler_UpdatePlan
// =====================================================================

func TestSubscriptionPlanHandler_UpdatePlan_Success(t *testing.T) {
	mockUC := &mockUpdatePlanUC{result: handlerTestPlanDTO(t)}
	handler := NewSubscriptionPlanHandler(nil, mockUC, nil, nil)

	title := "Renamed Plan"
	reqBody := UpdateSubscriptionPlanRequest{Title: &title}
	c, w := testutil.NewTestContext(http.MethodPatch, "/subscription-plans/test", reqBody)
	testutil.SetURLParam(c, "uuid", "8d5ef0e5-3c5d-43f4-94ac-ba2b0df5e2dc")

	handler.UpdatePlan(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestSubscriptionPlanHandler_UpdatePlan_InvalidUUID(t *testing.T) {
	handler := NewSubscriptionPlanHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPatch, "/subscription-plans/bogus", UpdateSubscriptionPlanRequest{})
	testutil.SetURLParam(c, "uuid", "bogus")

	handler.UpdatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionPlanHandler_UpdatePlan_InvalidExpirationDate(t *testing.T) {
	handler := NewSubscriptionPlanHandler(nil, nil, nil, nil)

	bad := "31-12-2025"
	reqBody := UpdateSubscriptionPlanRequest{ExpirationDate: &bad}
	c, w := testutil.NewTestContext(http.MethodPatch, "/subscription-plans/test", reqBody)
	testutil.SetURLParam(c, "uuid", "8d5ef0e5-3c5d-43f4-94ac-ba2b0df5e2dc")

	handler.UpdatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "expiration_date", resp.Error.Field)
}

// =====================================================================
// TestSubscriptionPlanHandler_GetPlan
// =====================================================================

func TestSubscriptionPlanHandler_GetPlan_Success(t *testing.T) {
	mockUC := &mockGetPlanUC{result: handlerTestPlanDTO(t)}
	handler := NewSubscriptionPlanHandler(nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/subscription-plans/test", nil)
	testutil.SetURLParam(c, "uuid", "8d5ef0e5-3c5d-43f4-94ac-ba2b0df5e2dc")

	handler.GetPlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubscriptionPlanHandler_GetPlan_NotFound(t *testing.T) {
	mockUC := &mockGetPlanUC{err: errors.NewNotFoundError("subscription plan not found")}
	handler := NewSubscriptionPlanHandler(nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/subscription-plans/test", nil)
	testutil.SetURLParam(c, "uuid", "8d5ef0e5-3c5d-43f4-94ac-ba2b0df5e2dc")

	handler.GetPlan(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestSubscriptionPlanHandler_ListPlans
// =====================================================================

func TestSubscriptionPlanHandler_ListPlans_Success(t *testing.T) {
	mockUC := &mockListPlansUC{
		result: &usecases.ListSubscriptionPlansResult{
			Plans: []*subdto.SubscriptionPlanDTO{handlerTestPlanDTO(t)},
			Total: 1,
		},
	}
	handler := NewSubscriptionPlanHandler(nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/subscription-plans", nil)
	testutil.SetQueryParams(c, map[string]string{
		"customer_agreement_id": "1",
		"is_active":             "true",
	})

	handler.ListPlans(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.lastQuery.CustomerAgreementID)
	assert.Equal(t, uint(1), *mockUC.lastQuery.CustomerAgreementID)
	require.NotNil(t, mockUC.lastQuery.IsActive)
	assert.True(t, *mockUC.lastQuery.IsActive)
}

func TestSubscriptionPlanHandler_ListPlans_InvalidFilter(t *testing.T) {
	handler := NewSubscriptionPlanHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/subscription-plans", nil)
	testutil.SetQueryParams(c, map[string]string{"customer_agreement_id": "abc"})

	handler.ListPlans(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
