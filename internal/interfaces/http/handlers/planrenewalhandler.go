package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liman/internal/application/subscriptions/usecases"
	"liman/internal/shared/biztime"
	"liman/internal/shared/errors"
	"liman/internal/shared/logger"
	"liman/internal/shared/utils"
)

type PlanRenewalHandler struct {
	createRenewalUC createPlanRenewalUseCase
	listRenewalsUC  listPlanRenewalsUseCase
	logger          logger.Interface
}

func NewPlanRenewalHandler(
	createRenewalUC createPlanRenewalUseCase,
	listRenewalsUC listPlanRenewalsUseCase,
) *PlanRenewalHandler {
	return &PlanRenewalHandler{
		createRenewalUC: createRenewalUC,
		listRenewalsUC:  listRenewalsUC,
		logger:          logger.NewLogger(),
	}
}

type CreatePlanRenewalRequest struct {
	PriorPlanUUID         string `json:"prior_plan_uuid" binding:"required"`
	EffectiveDate         string `json:"effective_date" binding:"required"`
	RenewedExpirationDate string `json:"renewed_expiration_date" binding:"required"`
	NumberOfLicenses      int    `json:"number_of_licenses" binding:"required,min=1"`
}

func (h *PlanRenewalHandler) CreateRenewal(c *gin.Context) {
	var req CreatePlanRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create renewal", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	priorPlanUUID, err := parseUUIDString(req.PriorPlanUUID, "prior_plan_uuid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	effectiveDate, err := biztime.ParseDateUTC(req.EffectiveDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewFieldValidationError("effective_date", "Enter a valid date."))
		return
	}
	renewedExpirationDate, err := biztime.ParseDateUTC(req.RenewedExpirationDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewFieldValidationError("renewed_expiration_date", "Enter a valid date."))
		return
	}

	cmd := usecases.CreatePlanRenewalCommand{
		PriorPlanUUID:         priorPlanUUID,
		EffectiveDate:         effectiveDate,
		RenewedExpirationDate: renewedExpirationDate,
		NumberOfLicenses:      req.NumberOfLicenses,
	}

	result, err := h.createRenewalUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan renewal created successfully")
}

func (h *PlanRenewalHandler) ListRenewals(c *gin.Context) {
	priorPlanUUID, err := parseUUIDParam(c, "uuid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRenewalsUC.Execute(c.Request.Context(), usecases.ListPlanRenewalsQuery{
		PriorPlanUUID: priorPlanUUID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
