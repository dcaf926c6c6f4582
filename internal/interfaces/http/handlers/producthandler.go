package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"liman/internal/application/subscriptions/usecases"
	"liman/internal/shared/errors"
	"liman/internal/shared/logger"
	"liman/internal/shared/utils"
)

type ProductHandler struct {
	createProductUC createProductUseCase
	updateProductUC updateProductUseCase
	listProductsUC  listProductsUseCase
	logger          logger.Interface
}

func NewProductHandler(
	createProductUC createProductUseCase,
	updateProductUC updateProductUseCase,
	listProductsUC listProductsUseCase,
) *ProductHandler {
	return &ProductHandler{
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		listProductsUC:  listProductsUC,
		logger:          logger.NewLogger(),
	}
}

type CreateProductRequest struct {
	Name       string `json:"name" binding:"required,max=128"`
	PlanTypeID uint   `json:"plan_type_id" binding:"required"`
	NetsuiteID *int64 `json:"netsuite_id"`
}

type UpdateProductRequest struct {
	Name            *string `json:"name"`
	PlanTypeID      *uint   `json:"plan_type_id"`
	NetsuiteID      *int64  `json:"netsuite_id"`
	ClearNetsuiteID bool    `json:"clear_netsuite_id"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateProductCommand{
		Name:       req.Name,
		PlanTypeID: req.PlanTypeID,
		NetsuiteID: req.NetsuiteID,
	}

	result, err := h.createProductUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Product created successfully")
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update product", "product_id", productID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateProductCommand{
		ProductID:       productID,
		Name:            req.Name,
		PlanTypeID:      req.PlanTypeID,
		NetsuiteID:      req.NetsuiteID,
		ClearNetsuiteID: req.ClearNetsuiteID,
	}

	result, err := h.updateProductUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", result)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	result, err := h.listProductsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseProductID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid product id")
	}
	return uint(id), nil
}
