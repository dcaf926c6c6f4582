package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"liman/internal/application/subscriptions/usecases"
	"liman/internal/shared/biztime"
	"liman/internal/shared/errors"
	"liman/internal/shared/logger"
	"liman/internal/shared/utils"
)

type SubscriptionPlanHandler struct {
	createPlanUC createSubscriptionPlanUseCase
	updatePlanUC updateSubscriptionPlanUseCase
	getPlanUC    getSubscriptionPlanUseCase
	listPlansUC  listSubscriptionPlansUseCase
	logger       logger.Interface
}

func NewSubscriptionPlanHandler(
	createPlanUC createSubscriptionPlanUseCase,
	updatePlanUC updateSubscriptionPlanUseCase,
	getPlanUC getSubscriptionPlanUseCase,
	listPlansUC listSubscriptionPlansUseCase,
) *SubscriptionPlanHandler {
	return &SubscriptionPlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		getPlanUC:    getPlanUC,
		listPlansUC:  listPlansUC,
		logger:       logger.NewLogger(),
	}
}

type CreateSubscriptionPlanRequest struct {
	Title                   string  `json:"title" binding:"required,max=128"`
	CustomerAgreementID     uint    `json:"customer_agreement_id" binding:"required"`
	ProductID               *uint   `json:"product_id"`
	EnterpriseCatalogUUID   *string `json:"enterprise_catalog_uuid"`
	SalesforceOpportunityID *string `json:"salesforce_opportunity_id"`
	NumLicenses             int     `json:"num_licenses" binding:"required"`
	ForInternalUseOnly      bool    `json:"for_internal_use_only"`
	IsRevocationCapEnabled  bool    `json:"is_revocation_cap_enabled"`
	RevokeMaxPercentage     *int    `json:"revoke_max_percentage"`
	StartDate               string  `json:"start_date" binding:"required"`
	ExpirationDate          string  `json:"expiration_date" binding:"required"`
	IsActive                bool    `json:"is_active"`
}

type UpdateSubscriptionPlanRequest struct {
	Title                   *string `json:"title"`
	CustomerAgreementID     *uint   `json:"customer_agreement_id"`
	ProductID               *uint   `json:"product_id"`
	EnterpriseCatalogUUID   *string `json:"enterprise_catalog_uuid"`
	SalesforceOpportunityID *string `json:"salesforce_opportunity_id"`
	NumLicenses             *int    `json:"num_licenses"`
	ForInternalUseOnly      *bool   `json:"for_internal_use_only"`
	IsRevocationCapEnabled  *bool   `json:"is_revocation_cap_enabled"`
	RevokeMaxPercentage     *int    `json:"revoke_max_percentage"`
	StartDate               *string `json:"start_date"`
	ExpirationDate          *string `json:"expiration_date"`
	IsActive                *bool   `json:"is_active"`
}

func (h *SubscriptionPlanHandler) CreatePlan(c *gin.Context) {
	var req CreateSubscriptionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	startDate, err := biztime.ParseDateUTC(req.StartDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewFieldValidationError("start_date", "Enter a valid date."))
		return
	}
	expirationDate, err := biztime.ParseDateUTC(req.ExpirationDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewFieldValidationError("expiration_date", "Enter a valid date."))
		return
	}

	cmd := usecases.CreateSubscriptionPlanCommand{
		Title:                   req.Title,
		CustomerAgreementID:     req.CustomerAgreementID,
		ProductID:               req.ProductID,
		EnterpriseCatalogUUID:   req.EnterpriseCatalogUUID,
		SalesforceOpportunityID: req.SalesforceOpportunityID,
		NumLicenses:             req.NumLicenses,
		ForInternalUseOnly:      req.ForInternalUseOnly,
		IsRevocationCapEnabled:  req.IsRevocationCapEnabled,
		StartDate:               startDate,
		ExpirationDate:          expirationDate,
		IsActive:                req.IsActive,
	}
	if req.RevokeMaxPercentage != nil {
		cmd.RevokeMaxPercentage = *req.RevokeMaxPercentage
	} else {
		cmd.RevokeMaxPercentage = 100
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription plan created successfully")
}

func (h *SubscriptionPlanHandler) UpdatePlan(c *gin.Context) {
	planUUID, err := parseUUIDParam(c, "uuid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubscriptionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "plan_uuid", planUUID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateSubscriptionPlanCommand{
		PlanUUID:                planUUID,
		Title:                   req.Title,
		CustomerAgreementID:     req.CustomerAgreementID,
		ProductID:               req.ProductID,
		EnterpriseCatalogUUID:   req.EnterpriseCatalogUUID,
		SalesforceOpportunityID: req.SalesforceOpportunityID,
		NumLicenses:             req.NumLicenses,
		ForInternalUseOnly:      req.ForInternalUseOnly,
		IsRevocationCapEnabled:  req.IsRevocationCapEnabled,
		RevokeMaxPercentage:     req.RevokeMaxPercentage,
		IsActive:                req.IsActive,
	}

	if req.StartDate != nil {
		startDate, err := biztime.ParseDateUTC(*req.StartDate)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewFieldValidationError("start_date", "Enter a valid date."))
			return
		}
		cmd.StartDate = &startDate
	}
	if req.ExpirationDate != nil {
		expirationDate, err := biztime.ParseDateUTC(*req.ExpirationDate)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewFieldValidationError("expiration_date", "Enter a valid date."))
			return
		}
		cmd.ExpirationDate = &expirationDate
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription plan updated successfully", result)
}

func (h *SubscriptionPlanHandler) GetPlan(c *gin.Context) {
	planUUID, err := parseUUIDParam(c, "uuid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), usecases.GetSubscriptionPlanQuery{PlanUUID: planUUID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionPlanHandler) ListPlans(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListSubscriptionPlansQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if raw := c.Query("customer_agreement_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid customer_agreement_id"))
			return
		}
		agreementID := uint(id)
		query.CustomerAgreementID = &agreementID
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid is_active"))
			return
		}
		query.IsActive = &active
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Plans, result.Total, pagination.Page, pagination.PageSize)
}

// parseUUIDParam reads and parses a UUID path parameter.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.NewBadRequestError("invalid " + name)
	}
	return parsed, nil
}

// parseUUIDString parses a UUID submitted in a request body field.
func parseUUIDString(raw, field string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.NewFieldValidationError(field, "Enter a valid UUID.")
	}
	return parsed, nil
}
