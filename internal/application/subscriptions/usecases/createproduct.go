package usecases

import (
	"context"
	"fmt"

	"liman/internal/application/subscriptions/dto"
	"liman/internal/domain/subscriptions"
	apperrors "liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

type CreateProductCommand struct {
	Name       string
	PlanTypeID uint
	NetsuiteID *int64
}

type CreateProductUseCase struct {
	productRepo subscriptions.ProductRepository
	validator   *subscriptions.PlanValidator
	logger      logger.Interface
}

func NewCreateProductUseCase(
	productRepo subscriptions.ProductRepository,
	validator *subscriptions.PlanValidator,
	logger logger.Interface,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		validator:   validator,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(
	ctx context.Context,
	cmd CreateProductCommand,
) (*dto.ProductDTO, error) {
	planType, err := uc.productRepo.GetPlanType(ctx, cmd.PlanTypeID)
	if err != nil {
		uc.logger.Errorw("failed to fetch plan type", "error", err, "plan_type_id", cmd.PlanTypeID)
		return nil, fmt.Errorf("failed to fetch plan type: %w", err)
	}
	if planType == nil {
		return nil, apperrors.NewNotFoundError("plan type not found")
	}

	product, err := subscriptions.NewProduct(cmd.Name, planType)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if cmd.NetsuiteID != nil {
		product.SetNetsuiteID(cmd.NetsuiteID)
	}

	if rejection := uc.validator.ValidateProduct(product); rejection != nil {
		uc.logger.Infow("product rejected",
			"field", rejection.Field, "message", rejection.Message, "name", cmd.Name)
		return nil, apperrors.NewFieldValidationError(rejection.Field, rejection.Message)
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		uc.logger.Errorw("failed to persist product", "error", err)
		return nil, fmt.Errorf("failed to persist product: %w", err)
	}

	uc.logger.Infow("product created", "product_id", product.ID(), "name", product.Name())

	return dto.ToProductDTO(product), nil
}
