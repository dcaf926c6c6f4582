package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"liman/internal/application/subscriptions/dto"
	"liman/internal/domain/subscriptions"
	"liman/internal/shared/biztime"
	apperrors "liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

type GetAutoApplyChoicesQuery struct {
	AgreementUUID uuid.UUID
}

// GetAutoApplyChoicesUseCase derives the selectable plans for auto-applied
// licenses under a customer agreement. Derived lists are cached per
// agreement; the cache is best effort and never fails the request.
type GetAutoApplyChoicesUseCase struct {
	planRepo      subscriptions.PlanRepository
	agreementRepo subscriptions.CustomerAgreementRepository
	choiceCache   ChoiceCache
	logger        logger.Interface
	now           func() time.Time
}

func NewGetAutoApplyChoicesUseCase(
	planRepo subscriptions.PlanRepository,
	agreementRepo subscriptions.CustomerAgreementRepository,
	choiceCache ChoiceCache,
	logger logger.Interface,
) *GetAutoApplyChoicesUseCase {
	return &GetAutoApplyChoicesUseCase{
		planRepo:      planRepo,
		agreementRepo: agreementRepo,
		choiceCache:   choiceCache,
		logger:        logger,
		now:           biztime.NowUTC,
	}
}

func (uc *GetAutoApplyChoicesUseCase) Execute(
	ctx context.Context,
	query GetAutoApplyChoicesQuery,
) (*dto.AutoApplyChoicesDTO, error) {
	agreement, err := uc.agreementRepo.GetByUUID(ctx, query.AgreementUUID)
	if err != nil {
		uc.logger.Errorw("failed to fetch customer agreement", "error", err, "agreement_uuid", query.AgreementUUID)
		return nil, fmt.Errorf("failed to fetch customer agreement: %w", err)
	}
	if agreement == nil {
		return nil, apperrors.NewNotFoundError("customer agreement not found")
	}

	if cached, err := uc.choiceCache.GetChoices(ctx, agreement.UUID()); err != nil {
		uc.logger.Warnw("failed to read auto-apply choices cache",
			"error", err, "agreement_uuid", agreement.UUID())
	} else if cached != nil {
		return dto.ToAutoApplyChoicesDTO(*cached), nil
	}

	plans, err := uc.planRepo.ListCurrentByAgreement(ctx, agreement.ID(), uc.now())
	if err != nil {
		uc.logger.Errorw("failed to list current plans", "error", err, "agreement_id", agreement.ID())
		return nil, fmt.Errorf("failed to list current plans: %w", err)
	}

	list := subscriptions.BuildAutoApplyChoices(plans, agreement.AutoAppliedPlanID())

	if err := uc.choiceCache.SetChoices(ctx, agreement.UUID(), list); err != nil {
		uc.logger.Warnw("failed to cache auto-apply choices",
			"error", err, "agreement_uuid", agreement.UUID())
	}

	return dto.ToAutoApplyChoicesDTO(list), nil
}
