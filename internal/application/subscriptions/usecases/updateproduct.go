package usecases

import (
	"context"
	"fmt"

	"liman/internal/application/subscriptions/dto"
	"liman/internal/domain/subscriptions"
	apperrors "liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

// UpdateProductCommand carries the submitted changes; nil pointer fields are
// left untouched. ClearNetsuiteID removes the Netsuite ID.
type UpdateProductCommand struct {
	ProductID       uint
	Name            *string
	PlanTypeID      *uint
	NetsuiteID      *int64
	ClearNetsuiteID bool
}

type UpdateProductUseCase struct {
	productRepo subscriptions.ProductRepository
	validator   *subscriptions.PlanValidator
	logger      logger.Interface
}

func NewUpdateProductUseCase(
	productRepo subscriptions.ProductRepository,
	validator *subscriptions.PlanValidator,
	logger logger.Interface,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		validator:   validator,
		logger:      logger,
	}
}

func (uc *UpdateProductUseCase) Execute(
	ctx context.Context,
	cmd UpdateProductCommand,
) (*dto.ProductDTO, error) {
	product, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		uc.logger.Errorw("failed to fetch product", "error", err, "product_id", cmd.ProductID)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	if cmd.Name != nil {
		if err := product.Rename(*cmd.Name); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
	}
	if cmd.PlanTypeID != nil {
		planType, err := uc.productRepo.GetPlanType(ctx, *cmd.PlanTypeID)
		if err != nil {
			uc.logger.Errorw("failed to fetch plan type", "error", err, "plan_type_id", *cmd.PlanTypeID)
			return nil, fmt.Errorf("failed to fetch plan type: %w", err)
		}
		if planType == nil {
			return nil, apperrors.NewNotFoundError("plan type not found")
		}
		if err := product.ChangePlanType(planType); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
	}
	if cmd.ClearNetsuiteID {
		product.SetNetsuiteID(nil)
	} else if cmd.NetsuiteID != nil {
		product.SetNetsuiteID(cmd.NetsuiteID)
	}

	if rejection := uc.validator.ValidateProduct(product); rejection != nil {
		uc.logger.Infow("product update rejected",
			"field", rejection.Field, "message", rejection.Message, "product_id", cmd.ProductID)
		return nil, apperrors.NewFieldValidationError(rejection.Field, rejection.Message)
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		uc.logger.Errorw("failed to update product", "error", err, "product_id", cmd.ProductID)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	uc.logger.Infow("product updated", "product_id", product.ID(), "name", product.Name())

	return dto.ToProductDTO(product), nil
}
