package usecases

import (
	"context"
	"fmt"

	"liman/internal/application/subscriptions/dto"
	"liman/internal/domain/subscriptions"
	"liman/internal/shared/logger"
)

type ListProductsUseCase struct {
	productRepo subscriptions.ProductRepository
	logger      logger.Interface
}

func NewListProductsUseCase(
	productRepo subscriptions.ProductRepository,
	logger logger.Interface,
) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]*dto.ProductDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return dto.ToProductDTOs(products), nil
}
