package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"liman/internal/application/subscriptions/dto"
	"liman/internal/domain/subscriptions"
	apperrors "liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

type GetCustomerAgreementQuery struct {
	AgreementUUID uuid.UUID
}

type GetCustomerAgreementUseCase struct {
	agreementRepo subscriptions.CustomerAgreementRepository
	logger        logger.Interface
}

func NewGetCustomerAgreementUseCase(
	agreementRepo subscriptions.CustomerAgreementRepository,
	logger logger.Interface,
) *GetCustomerAgreementUseCase {
	return &GetCustomerAgreementUseCase{
		agreementRepo: agreementRepo,
		logger:        logger,
	}
}

func (uc *GetCustomerAgreementUseCase) Execute(
	ctx context.Context,
	query GetCustomerAgreementQuery,
) (*dto.CustomerAgreementDTO, error) {
	agreement, err := uc.agreementRepo.GetByUUID(ctx, query.AgreementUUID)
	if err != nil {
		uc.logger.Errorw("failed to fetch customer agreement", "error", err, "agreement_uuid", query.AgreementUUID)
		return nil, fmt.Errorf("failed to fetch customer agreement: %w", err)
	}
	if agreement == nil {
		return nil, apperrors.NewNotFoundError("customer agreement not found")
	}

	return dto.ToCustomerAgreementDTO(agreement), nil
}
