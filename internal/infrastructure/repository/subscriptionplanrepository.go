package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"liman/internal/domain/subscriptions"
	"liman/internal/infrastructure/persistence/models"
	"liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

type SubscriptionPlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionPlanRepository(db *gorm.DB, logger logger.Interface) subscriptions.PlanRepository {
	return &SubscriptionPlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionPlanRepositoryImpl) Create(ctx context.Context, plan *subscriptions.SubscriptionPlan) error {
	model, err := r.toModel(plan)
	if err != nil {
		r.logger.Errorw("failed to convert plan to model", "error", err)
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription plan", "error", err, "plan_uuid", plan.UUID())
		return fmt.Errorf("failed to create subscription plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SubscriptionPlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscriptions.SubscriptionPlan, error) {
	var model models.SubscriptionPlanModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get subscription plan: %w", err)
	}

	return r.toEntity(&model)
}

func (r *SubscriptionPlanRepositoryImpl) GetByUUID(ctx context.Context, planUUID uuid.UUID) (*subscriptions.SubscriptionPlan, error) {
	var model models.SubscriptionPlanModel
	if err := r.db.WithContext(ctx).Where("uuid = ?", planUUID.String()).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription plan by UUID", "error", err, "plan_uuid", planUUID)
		return nil, fmt.Errorf("failed to get subscription plan by UUID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *SubscriptionPlanRepositoryImpl) Update(ctx context.Context, plan *subscriptions.SubscriptionPlan) error {
	model, err := r.toModel(plan)
	if err != nil {
		r.logger.Errorw("failed to convert plan to model", "error", err)
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.SubscriptionPlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"title":                     model.Title,
			"customer_agreement_id":     model.CustomerAgreementID,
			"product_id":                model.ProductID,
			"enterprise_catalog_uuid":   model.EnterpriseCatalogUUID,
			"salesforce_opportunity_id": model.SalesforceOpportunityID,
			"num_licenses":              model.NumLicenses,
			"for_internal_use_only":     model.ForInternalUseOnly,
			"is_revocation_cap_enabled": model.IsRevocationCapEnabled,
			"revoke_max_percentage":     model.RevokeMaxPercentage,
			"start_date":                model.StartDate,
			"expiration_date":           model.ExpirationDate,
			"is_active":                 model.IsActive,
			"metadata":                  model.Metadata,
			"version":                   model.Version,
			"updated_at":                model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update subscription plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update subscription plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("subscription plan not found")
	}

	return nil
}

func (r *SubscriptionPlanRepositoryImpl) List(ctx context.Context, filter subscriptions.PlanFilter) ([]*subscriptions.SubscriptionPlan, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SubscriptionPlanModel{})

	if filter.CustomerAgreementID != nil {
		query = query.Where("customer_agreement_id = ?", *filter.CustomerAgreementID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscription plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscription plans: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var modelList []models.SubscriptionPlanModel
	if err := query.Order("id").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list subscription plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscription plans: %w", err)
	}

	plans := make([]*subscriptions.SubscriptionPlan, 0, len(modelList))
	for i := range modelList {
		plan, err := r.toEntity(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, plan)
	}

	return plans, total, nil
}

func (r *SubscriptionPlanRepositoryImpl) ListCurrentByAgreement(ctx context.Context, agreementID uint, now time.Time) ([]*subscriptions.SubscriptionPlan, error) {
	var modelList []models.SubscriptionPlanModel
	err := r.db.WithContext(ctx).
		Where("customer_agreement_id = ?", agreementID).
		Where("is_active = ?", true).
		Where("start_date <= ?", now).
		Where("expiration_date >= ?", now).
		Order("start_date").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list current plans", "error", err, "agreement_id", agreementID)
		return nil, fmt.Errorf("failed to list current plans: %w", err)
	}

	plans := make([]*subscriptions.SubscriptionPlan, 0, len(modelList))
	for i := range modelList {
		plan, err := r.toEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

func (r *SubscriptionPlanRepositoryImpl) toModel(plan *subscriptions.SubscriptionPlan) (*models.SubscriptionPlanModel, error) {
	var metadata datatypes.JSON
	if len(plan.Metadata()) > 0 {
		data, err := json.Marshal(plan.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal plan metadata: %w", err)
		}
		metadata = data
	}

	model := &models.SubscriptionPlanModel{
		ID:                      plan.ID(),
		UUID:                    plan.UUID().String(),
		Title:                   plan.Title(),
		CustomerAgreementID:     plan.CustomerAgreementID(),
		ProductID:               plan.ProductID(),
		SalesforceOpportunityID: plan.SalesforceOpportunityID(),
		NumLicenses:             plan.NumLicenses(),
		ForInternalUseOnly:      plan.ForInternalUseOnly(),
		IsRevocationCapEnabled:  plan.IsRevocationCapEnabled(),
		RevokeMaxPercentage:     plan.RevokeMaxPercentage(),
		StartDate:               plan.StartDate(),
		ExpirationDate:          plan.ExpirationDate(),
		IsActive:                plan.IsActive(),
		Metadata:                metadata,
		Version:                 plan.Version(),
		CreatedAt:               plan.CreatedAt(),
		UpdatedAt:               plan.UpdatedAt(),
	}

	if catalogUUID := plan.EnterpriseCatalogUUID(); catalogUUID != nil {
		s := catalogUUID.String()
		model.EnterpriseCatalogUUID = &s
	}

	return model, nil
}

func (r *SubscriptionPlanRepositoryImpl) toEntity(model *models.SubscriptionPlanModel) (*subscriptions.SubscriptionPlan, error) {
	planUUID, err := uuid.Parse(model.UUID)
	if err != nil {
		return nil, fmt.Errorf("invalid plan UUID in database: %w", err)
	}

	var catalogUUID *uuid.UUID
	if model.EnterpriseCatalogUUID != nil {
		parsed, err := uuid.Parse(*model.EnterpriseCatalogUUID)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog UUID in database: %w", err)
		}
		catalogUUID = &parsed
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan metadata: %w", err)
		}
	}

	return subscriptions.ReconstructSubscriptionPlan(
		model.ID,
		planUUID,
		model.Title,
		model.CustomerAgreementID,
		model.ProductID,
		catalogUUID,
		model.SalesforceOpportunityID,
		model.NumLicenses,
		model.ForInternalUseOnly,
		model.IsRevocationCapEnabled,
		model.RevokeMaxPercentage,
		model.StartDate,
		model.ExpirationDate,
		model.IsActive,
		metadata,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
