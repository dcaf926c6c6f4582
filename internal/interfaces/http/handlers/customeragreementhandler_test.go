package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
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

type mockGetAgreementUC struct {
	result *subdto.CustomerAgreementDTO
	err    error
}

func (m *mockGetAgreementUC) Execute(ctx context.Context, query usecases.GetCustomerAgreementQuery) (*subdto.CustomerAgreementDTO, error) {
	return m.result, m.err
}

type mockUpdateAgreementUC struct {
	result  *subdto.CustomerAgreementDTO
	err     error
	lastCmd usecases.UpdateCustomerAgreementCommand
}

func (m *mockUpdateAgreementUC) Execute(ctx context.Context, cmd usecases.UpdateCustomerAgreementCommand) (*subdto.CustomerAgreementDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetChoicesUC struct {
	result *subdto.AutoApplyChoicesDTO
	err    error
}

func (m *mockGetChoicesUC) Execute(ctx context.Context, query usecases.GetAutoApplyChoicesQuery) (*subdto.AutoApplyChoicesDTO, error) {
	return m.result, m.err
}

type mockSetAutoAppliedUC struct {
	result  *subdto.CustomerAgreementDTO
	err     error
	lastCmd usecases.SetAutoAppliedPlanCommand
}

func (m *mockSetAutoAppliedUC) Execute(ctx context.Context, cmd usecases.SetAutoAppliedPlanCommand) (*subdto.CustomerAgreementDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func handlerTestAgreementDTO(t *testing.T) *subdto.CustomerAgreementDTO {
	t.Helper()
	agreement, err := subscriptions.NewCustomerAgreement(uuid.New(), "acme-corp", 90*24*time.Hour)
	require.NoError(t, err)
	require.NoError(t, agreement.SetID(1))
	return subdto.ToCustomerAgreementDTO(agreement)
}

// =====================================================================
// TestCustomerAgreementHandler_GetAgreement
// =====================================================================

func TestCustomerAgreementHandler_GetAgreement_Success(t *testing.T) {
	mockUC := &mockGetAgreementUC{result: handlerTestAgreementDTO(t)}
	handler := NewCustomerAgreementHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/customer-agreements/test", nil)
	testutil.SetURLParam(c, "uuid", "6ec53e12-5e64-4a09-a2cf-2f09ca437b0a")

	handler.GetAgreement(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestCustomerAgreementHandler_GetAgreement_NotFound(t *testing.T) {
	mockUC := &mockGetAgreementUC{err: errors.NewNotFoundError("customer agreement not found")}
	handler := NewCustomerAgreementHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/customer-agreements/test", nil)
	testutil.SetURLParam(c, "uuid", "6ec53e12-5e64-4a09-a2cf-2f09ca437b0a")

	handler.GetAgreement(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerAgreementHandler_GetAgreement_InvalidUUID(t *testing.T) {
	handler := NewCustomerAgreementHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/customer-agreements/bogus", nil)
	testutil.SetURLParam(c, "uuid", "bogus")

	handler.GetAgreement(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestCustomerAgreementHandler_UpdateAgreement
// =====================================================================

func TestCustomerAgreementHandler_UpdateAgreement_Success(t *testing.T) {
	mockUC := &mockUpdateAgreementUC{result: handlerTestAgreementDTO(t)}
	handler := NewCustomerAgreementHandler(nil, mockUC, nil, nil)

	catalogUUID := "0b1654e0-0a7e-4b5c-a2ce-6eccf2de8b23"
	days := 60
	reqBody := UpdateCustomerAgreementRequest{
		DefaultEnterpriseCatalogUUID:   &catalogUUID,
		LicenseDurationBeforePurgeDays: &days,
	}
	c, w := testutil.NewTestContext(http.MethodPatch, "/customer-agreements/test", reqBody)
	testutil.SetURLParam(c, "uuid", "6ec53e12-5e64-4a09-a2cf-2f09ca437b0a")

	handler.UpdateAgreement(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.lastCmd.LicenseDurationBeforePurge)
	assert.Equal(t, 60*24*time.Hour, *mockUC.lastCmd.LicenseDurationBeforePurge)
}

func TestCustomerAgreementHandler_UpdateAgreement_InvalidCatalogUUID(t *testing.T) {
	mockUC := &mockUpdateAgreementUC{
		err: errors.NewFieldValidationError("default_enterprise_catalog_uuid", "Enter a valid UUID."),
	}
	handler := NewCustomerAgreementHandler(nil, mockUC, nil, nil)

	bad := "not-a-uuid"
	reqBody := UpdateCustomerAgreementRequest{DefaultEnterpriseCatalogUUID: &bad}
	c, w := testutil.NewTestContext(http.MethodPatch, "/customer-agreements/test", reqBody)
	testutil.SetURLParam(c, "uuid", "6ec53e12-5e64-4a09-a2cf-2f09ca437b0a")

	handler.UpdateAgreement(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "default_enterprise_catalog_uuid", resp.Error.Field)
	assert.Equal(t, "Enter a valid UUID.", resp.Error.Message)
}

// =====================================================================
// TestCustomerAgreementHandler_GetAutoApplyChoices
// =====================================================================

func TestCustomerAgreementHandler_GetAutoApplyChoices_Success(t *testing.T) {
	mockUC := &mockGetChoicesUC{
		result: &subdto.AutoApplyChoicesDTO{
			Choices: []subdto.AutoApplyChoiceDTO{
				{Value: "", Label: "------"},
				{Value: "8d5ef0e5-3c5d-43f4-94ac-ba2b0df5e2dc", Label: "Enterprise Plan"},
			},
		},
	}
	handler := NewCustomerAgreementHandler(nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/customer-agreements/test/auto-apply-choices", nil)
	testutil.SetURLParam(c, "uuid", "6ec53e12-5e64-4a09-a2cf-2f09ca437b0a")

	handler.GetAutoApplyChoices(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestCustomerAgreementHandler_GetAutoApplyChoices_AgreementNotFound(t *testing.T) {
	mockUC := &mockGetChoicesUC{err: errors.NewNotFoundError("customer agreement not found")}
	handler := NewCustomerAgreementHandler(nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/customer-agreements/test/auto-apply-choices", nil)
	testutil.SetURLParam(c, "uuid", "6ec53e12-5e64-4a09-a2cf-2f09ca437b0a")

	handler.GetAutoApplyChoices(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestCustomerAgreementHandler_SetAutoAppliedPlan
// =====================================================================

func TestCustomerAgreementHandler_SetAutoAppliedPlan_Success(t *testing.T) {
	mockUC := &mockSetAutoAppliedUC{result: handlerTestAgreementDTO(t)}
	handler := NewCustomerAgreementHandler(nil, nil, nil, mockUC)

	reqBody := SetAutoAppliedPlanRequest{Choice: "8d5ef0e5-3c5d-43f4-94ac-ba2b0df5e2dc"}
	c, w := testutil.NewTestContext(http.MethodPut, "/customer-agreements/test/auto-applied-plan", reqBody)
	testutil.SetURLParam(c, "uuid", "6ec53e12-5e64-4a09-a2cf-2f09ca437b0a")

	handler.SetAutoAppliedPlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "8d5ef0e5-3c5d-43f4-94ac-ba2b0df5e2dc", mockUC.lastCmd.Choice)
}

func TestCustomerAgreementHandler_SetAutoAppliedPlan_ClearWithEmptyChoice(t *testing.T) {
	mockUC := &mockSetAutoAppliedUC{result: handlerTestAgreementDTO(t)}
	handler := NewCustomerAgreementHandler(nil, nil, nil, mockUC)

	reqBody := SetAutoAppliedPlanRequest{Choice: ""}
	c, w := testutil.NewTestContext(http.MethodPut, "/customer-agreements/test/auto-applied-plan", reqBody)
	testutil.SetURLParam(c, "uuid", "6ec53e12-5e64-4a09-a2cf-2f09ca437b0a")

	handler.SetAutoAppliedPlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockUC.lastCmd.Choice)
}

func TestCustomerAgreementHandler_SetAutoAppliedPlan_InvalidChoice(t *testing.T) {
	mockUC := &mockSetAutoAppliedUC{
		err: errors.NewFieldValidationError(
			"auto_applicable_subscription",
			"Select a valid choice. That choice is not one of the available choices.",
		),
	}
	handler := NewCustomerAgreementHandler(nil, nil, nil, mockUC)

	reqBody := SetAutoAppliedPlanRequest{Choice: "8d5ef0e5-3c5d-43f4-94ac-ba2b0df5e2dc"}
	c, w := testutil.NewTestContext(http.MethodPut, "/customer-agreements/test/auto-applied-plan", reqBody)
	testutil.SetURLParam(c, "uuid", "6ec53e12-5e64-4a09-a2cf-2f09ca437b0a")

	handler.SetAutoAppliedPlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "auto_applicable_subscription", resp.Error.Field)
	assert.Equal(t, "Select a valid choice. That choice is not one of the available choices.", resp.Error.Message)
}
