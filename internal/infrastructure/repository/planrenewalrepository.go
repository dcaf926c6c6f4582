package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"liman/internal/domain/subscriptions"
	"liman/internal/infrastructure/persistence/models"
	"liman/internal/shared/logger"
)

type PlanRenewalRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRenewalRepository(db *gorm.DB, logger logger.Interface) subscriptions.PlanRenewalRepository {
	return &PlanRenewalRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PlanRenewalRepositoryImpl) Create(ctx context.Context, renewal *subscriptions.PlanRenewal) error {
	model := r.toModel(renewal)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan renewal", "error", err, "prior_plan_id", renewal.PriorPlanID())
		return fmt.Errorf("failed to create plan renewal: %w", err)
	}

	if err := renewal.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *PlanRenewalRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscriptions.PlanRenewal, error) {
	var model models.PlanRenewalModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan renewal by ID", "error", err, "renewal_id", id)
		return nil, fmt.Errorf("failed to get plan renewal: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PlanRenewalRepositoryImpl) ListByPriorPlan(ctx context.Context, priorPlanID uint) ([]*subscriptions.PlanRenewal, error) {
	var modelList []models.PlanRenewalModel
	err := r.db.WithContext(ctx).
		Where("prior_plan_id = ?", priorPlanID).
		Order("effective_date").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list plan renewals", "error", err, "prior_plan_id", priorPlanID)
		return nil, fmt.Errorf("failed to list plan renewals: %w", err)
	}

	renewals := make([]*subscriptions.PlanRenewal, 0, len(modelList))
	for i := range modelList {
		renewal, err := r.toEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		renewals = append(renewals, renewal)
	}

	return renewals, nil
}

func (r *PlanRenewalRepositoryImpl) toModel(renewal *subscriptions.PlanRenewal) *models.PlanRenewalModel {
	return &models.PlanRenewalModel{
		ID:                    renewal.ID(),
		PriorPlanID:           renewal.PriorPlanID(),
		PriorPlanUUID:         renewal.PriorPlanUUID().String(),
		RenewedPlanID:         renewal.RenewedPlanID(),
		EffectiveDate:         renewal.EffectiveDate(),
		RenewedExpirationDate: renewal.RenewedExpirationDate(),
		NumberOfLicenses:      renewal.NumberOfLicenses(),
		Processed:             renewal.Processed(),
		CreatedAt:             renewal.CreatedAt(),
		UpdatedAt:             renewal.UpdatedAt(),
	}
}

func (r *PlanRenewalRepositoryImpl) toEntity(model *models.PlanRenewalModel) (*subscriptions.PlanRenewal, error) {
	priorPlanUUID, err := uuid.Parse(model.PriorPlanUUID)
	if err != nil {
		return nil, fmt.Errorf("invalid prior plan UUID in database: %w", err)
	}

	return subscriptions.ReconstructPlanRenewal(
		model.ID,
		model.PriorPlanID,
		priorPlanUUID,
		model.RenewedPlanID,
		model.EffectiveDate,
		model.RenewedExpirationDate,
		model.NumberOfLicenses,
		model.Processed,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
