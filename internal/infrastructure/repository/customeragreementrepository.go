package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"liman/internal/domain/subscriptions"
	"liman/internal/infrastructure/persistence/models"
	"liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

type CustomerAgreementRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCustomerAgreementRepository(db *gorm.DB, logger logger.Interface) subscriptions.CustomerAgreementRepository {
	return &CustomerAgreementRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *CustomerAgreementRepositoryImpl) Create(ctx context.Context, agreement *subscriptions.CustomerAgreement) error {
	model := r.toModel(agreement)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create customer agreement", "error", err, "agreement_uuid", agreement.UUID())
		return fmt.Errorf("failed to create customer agreement: %w", err)
	}

	if err := agreement.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CustomerAgreementRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscriptions.CustomerAgreement, error) {
	var model models.CustomerAgreementModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get customer agreement by ID", "error", err, "agreement_id", id)
		return nil, fmt.Errorf("failed to get customer agreement: %w", err)
	}

	return r.toEntity(&model)
}

func (r *CustomerAgreementRepositoryImpl) GetByUUID(ctx context.Context, agreementUUID uuid.UUID) (*subscriptions.CustomerAgreement, error) {
	var model models.CustomerAgreementModel
	if err := r.db.WithContext(ctx).Where("uuid = ?", agreementUUID.String()).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get customer agreement by UUID", "error", err, "agreement_uuid", agreementUUID)
		return nil, fmt.Errorf("failed to get customer agreement by UUID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *CustomerAgreementRepositoryImpl) Update(ctx context.Context, agreement *subscriptions.CustomerAgreement) error {
	model := r.toModel(agreement)

	result := r.db.WithContext(ctx).Model(&models.CustomerAgreementModel{}).
		Where("id = ?", agreement.ID()).
		Updates(map[string]interface{}{
			"default_enterprise_catalog_uuid":    model.DefaultEnterpriseCatalogUUID,
			"auto_applied_plan_id":               model.AutoAppliedPlanID,
			"license_duration_before_purge_days": model.LicenseDurationBeforePurgeDays,
			"updated_at":                         model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update customer agreement", "error", result.Error, "agreement_id", agreement.ID())
		return fmt.Errorf("failed to update customer agreement: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("customer agreement not found")
	}

	return nil
}

func (r *CustomerAgreementRepositoryImpl) toModel(agreement *subscriptions.CustomerAgreement) *models.CustomerAgreementModel {
	model := &models.CustomerAgreementModel{
		ID:                             agreement.ID(),
		UUID:                           agreement.UUID().String(),
		EnterpriseCustomerUUID:         agreement.EnterpriseCustomerUUID().String(),
		EnterpriseCustomerSlug:         agreement.EnterpriseCustomerSlug(),
		AutoAppliedPlanID:              agreement.AutoAppliedPlanID(),
		LicenseDurationBeforePurgeDays: int(agreement.LicenseDurationBeforePurge() / (24 * time.Hour)),
		CreatedAt:                      agreement.CreatedAt(),
		UpdatedAt:                      agreement.UpdatedAt(),
	}

	if catalogUUID := agreement.DefaultEnterpriseCatalogUUID(); catalogUUID != nil {
		s := catalogUUID.String()
		model.DefaultEnterpriseCatalogUUID = &s
	}

	return model
}

func (r *CustomerAgreementRepositoryImpl) toEntity(model *models.CustomerAgreementModel) (*subscriptions.CustomerAgreement, error) {
	agreementUUID, err := uuid.Parse(model.UUID)
	if err != nil {
		return nil, fmt.Errorf("invalid agreement UUID in database: %w", err)
	}

	customerUUID, err := uuid.Parse(model.EnterpriseCustomerUUID)
	if err != nil {
		return nil, fmt.Errorf("invalid enterprise customer UUID in database: %w", err)
	}

	var catalogUUID *uuid.UUID
	if model.DefaultEnterpriseCatalogUUID != nil {
		parsed, err := uuid.Parse(*model.DefaultEnterpriseCatalogUUID)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog UUID in database: %w", err)
		}
		catalogUUID = &parsed
	}

	return subscriptions.ReconstructCustomerAgreement(
		model.ID,
		agreementUUID,
		customerUUID,
		model.EnterpriseCustomerSlug,
		catalogUUID,
		model.AutoAppliedPlanID,
		time.Duration(model.LicenseDurationBeforePurgeDays)*24*time.Hour,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
