package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"liman/internal/application/subscriptions/usecases"
	"liman/internal/shared/errors"
	"liman/internal/shared/logger"
	"liman/internal/shared/utils"
)

type CustomerAgreementHandler struct {
	getAgreementUC    getCustomerAgreementUseCase
	updateAgreementUC updateCustomerAgreementUseCase
	getChoicesUC      getAutoApplyChoicesUseCase
	setAutoAppliedUC  setAutoAppliedPlanUseCase
	logger            logger.Interface
}

func NewCustomerAgreementHandler(
	getAgreementUC getCustomerAgreementUseCase,
	updateAgreementUC updateCustomerAgreementUseCase,
	getChoicesUC getAutoApplyChoicesUseCase,
	setAutoAppliedUC setAutoAppliedPlanUseCase,
) *CustomerAgreementHandler {
	return &CustomerAgreementHandler{
		getAgreementUC:    getAgreementUC,
		updateAgreementUC: updateAgreementUC,
		getChoicesUC:      getChoicesUC,
		setAutoAppliedUC:  setAutoAppliedUC,
		logger:            logger.NewLogger(),
	}
}

type UpdateCustomerAgreementRequest struct {
	DefaultEnterpriseCatalogUUID   *string `json:"default_enterprise_catalog_uuid"`
	LicenseDurationBeforePurgeDays *int    `json:"license_duration_before_purge_days" binding:"omitempty,min=1"`
}

type SetAutoAppliedPlanRequest struct {
	Choice string `json:"auto_applicable_subscription"`
}

func (h *CustomerAgreementHandler) GetAgreement(c *gin.Context) {
	agreementUUID, err := parseUUIDParam(c, "uuid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAgreementUC.Execute(c.Request.Context(), usecases.GetCustomerAgreementQuery{
		AgreementUUID: agreementUUID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CustomerAgreementHandler) UpdateAgreement(c *gin.Context) {
	agreementUUID, err := parseUUIDParam(c, "uuid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomerAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update agreement", "agreement_uuid", agreementUUID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateCustomerAgreementCommand{
		AgreementUUID:                agreementUUID,
		DefaultEnterpriseCatalogUUID: req.DefaultEnterpriseCatalogUUID,
	}
	if req.LicenseDurationBeforePurgeDays != nil {
		duration := time.Duration(*req.LicenseDurationBeforePurgeDays) * 24 * time.Hour
		cmd.LicenseDurationBeforePurge = &duration
	}

	result, err := h.updateAgreementUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer agreement updated successfully", result)
}

func (h *CustomerAgreementHandler) GetAutoApplyChoices(c *gin.Context) {
	agreementUUID, err := parseUUIDParam(c, "uuid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getChoicesUC.Execute(c.Request.Context(), usecases.GetAutoApplyChoicesQuery{
		AgreementUUID: agreementUUID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CustomerAgreementHandler) SetAutoAppliedPlan(c *gin.Context) {
	agreementUUID, err := parseUUIDParam(c, "uuid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetAutoAppliedPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set auto-applied plan", "agreement_uuid", agreementUUID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.setAutoAppliedUC.Execute(c.Request.Context(), usecases.SetAutoAppliedPlanCommand{
		AgreementUUID: agreementUUID,
		Choice:        req.Choice,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Auto-applied plan updated successfully", result)
}
