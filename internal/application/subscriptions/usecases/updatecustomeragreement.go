package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"liman/internal/application/subscriptions/dto"
	"liman/internal/domain/subscriptions"
	apperrors "liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

// UpdateCustomerAgreementCommand carries the submitted changes; nil pointer
// fields are left untouched. DefaultEnterpriseCatalogUUID distinguishes "not
// submitted" (nil) from "cleared" (pointer to empty string).
type UpdateCustomerAgreementCommand struct {
	AgreementUUID                uuid.UUID
	DefaultEnterpriseCatalogUUID *string
	LicenseDurationBeforePurge   *time.Duration
}

type UpdateCustomerAgreementUseCase struct {
	agreementRepo subscriptions.CustomerAgreementRepository
	logger        logger.Interface
}

func NewUpdateCustomerAgreementUseCase(
	agreementRepo subscriptions.CustomerAgreementRepository,
	logger logger.Interface,
) *UpdateCustomerAgreementUseCase {
	return &UpdateCustomerAgreementUseCase{
		agreementRepo: agreementRepo,
		logger:        logger,
	}
}

func (uc *UpdateCustomerAgreementUseCase) Execute(
	ctx context.Context,
	cmd UpdateCustomerAgreementCommand,
) (*dto.CustomerAgreementDTO, error) {
	agreement, err := uc.agreementRepo.GetByUUID(ctx, cmd.AgreementUUID)
	if err != nil {
		uc.logger.Errorw("failed to fetch customer agreement", "error", err, "agreement_uuid", cmd.AgreementUUID)
		return nil, fmt.Errorf("failed to fetch customer agreement: %w", err)
	}
	if agreement == nil {
		return nil, apperrors.NewNotFoundError("customer agreement not found")
	}

	if cmd.DefaultEnterpriseCatalogUUID != nil {
		if *cmd.DefaultEnterpriseCatalogUUID == "" {
			agreement.SetDefaultEnterpriseCatalogUUID(nil)
		} else {
			catalogUUID, err := uuid.Parse(*cmd.DefaultEnterpriseCatalogUUID)
			if err != nil {
				return nil, apperrors.NewFieldValidationError(
					"default_enterprise_catalog_uuid", "Enter a valid UUID.")
			}
			agreement.SetDefaultEnterpriseCatalogUUID(&catalogUUID)
		}
	}
	if cmd.LicenseDurationBeforePurge != nil {
		if err := agreement.SetLicenseDurationBeforePurge(*cmd.LicenseDurationBeforePurge); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
	}

	if err := uc.agreementRepo.Update(ctx, agreement); err != nil {
		uc.logger.Errorw("failed to update customer agreement", "error", err, "agreement_uuid", cmd.AgreementUUID)
		return nil, fmt.Errorf("failed to update customer agreement: %w", err)
	}

	uc.logger.Infow("customer agreement updated", "agreement_uuid", agreement.UUID())

	return dto.ToCustomerAgreementDTO(agreement), nil
}
