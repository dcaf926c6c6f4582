package handlers

import (
	"context"

	subdto "liman/internal/application/subscriptions/dto"
	"liman/internal/application/subscriptions/usecases"
)

// Use case interfaces for ProductHandler

type createProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProductCommand) (*subdto.ProductDTO, error)
}

type updateProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProductCommand) (*subdto.ProductDTO, error)
}

type listProductsUseCase interface {
	Execute(ctx context.Context) ([]*subdto.ProductDTO, error)
}
