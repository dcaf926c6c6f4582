package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"liman/internal/domain/subscriptions"
	"liman/internal/infrastructure/persistence/models"
	"liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewProductRepository(db *gorm.DB, logger logger.Interface) subscriptions.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *subscriptions.Product) error {
	model := r.toModel(product)

	if err := r.db.WithContext(ctx).Omit("PlanType").Create(model).Error; err != nil {
		r.logger.Errorw("failed to create product", "error", err, "name", product.Name())
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := product.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscriptions.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Preload("PlanType").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get product by ID", "error", err, "product_id", id)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return r.toEntity(&model)
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *subscriptions.Product) error {
	model := r.toModel(product)

	result := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("id = ?", product.ID()).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"plan_type_id": model.PlanTypeID,
			"netsuite_id":  model.NetsuiteID,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update product", "error", result.Error, "product_id", product.ID())
		return fmt.Errorf("failed to update product: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("product not found")
	}

	return nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context) ([]*subscriptions.Product, error) {
	var modelList []models.ProductModel
	if err := r.db.WithContext(ctx).Preload("PlanType").Order("id").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*subscriptions.Product, 0, len(modelList))
	for i := range modelList {
		product, err := r.toEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *ProductRepositoryImpl) GetPlanType(ctx context.Context, id uint) (*subscriptions.PlanType, error) {
	var model models.PlanTypeModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan type by ID", "error", err, "plan_type_id", id)
		return nil, fmt.Errorf("failed to get plan type: %w", err)
	}

	return r.planTypeToEntity(&model)
}

func (r *ProductRepositoryImpl) ListPlanTypes(ctx context.Context) ([]*subscriptions.PlanType, error) {
	var modelList []models.PlanTypeModel
	if err := r.db.WithContext(ctx).Order("id").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list plan types", "error", err)
		return nil, fmt.Errorf("failed to list plan types: %w", err)
	}

	planTypes := make([]*subscriptions.PlanType, 0, len(modelList))
	for i := range modelList {
		planType, err := r.planTypeToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		planTypes = append(planTypes, planType)
	}

	return planTypes, nil
}

func (r *ProductRepositoryImpl) toModel(product *subscriptions.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:         product.ID(),
		Name:       product.Name(),
		PlanTypeID: product.PlanType().ID(),
		NetsuiteID: product.NetsuiteID(),
		CreatedAt:  product.CreatedAt(),
		UpdatedAt:  product.UpdatedAt(),
	}
}

func (r *ProductRepositoryImpl) toEntity(model *models.ProductModel) (*subscriptions.Product, error) {
	planType, err := r.planTypeToEntity(&model.PlanType)
	if err != nil {
		return nil, err
	}

	return subscriptions.ReconstructProduct(
		model.ID,
		model.Name,
		planType,
		model.NetsuiteID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (r *ProductRepositoryImpl) planTypeToEntity(model *models.PlanTypeModel) (*subscriptions.PlanType, error) {
	return subscriptions.ReconstructPlanType(
		model.ID,
		model.Label,
		model.SFIDRequired,
		model.NSIDRequired,
	)
}
