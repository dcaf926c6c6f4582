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

// SetAutoAppliedPlanCommand designates the plan used for auto-applied
// licenses under an agreement. Choice is a plan UUID from the derived choice
// list, or empty to clear the designation.
type SetAutoAppliedPlanCommand struct {
	AgreementUUID uuid.UUID
	Choice        string
}

type SetAutoAppliedPlanUseCase struct {
	agreementRepo subscriptions.CustomerAgreementRepository
	planRepo      subscriptions.PlanRepository
	choiceCache   ChoiceCache
	logger        logger.Interface
	now           func() time.Time
}

func NewSetAutoAppliedPlanUseCase(
	agreementRepo subscriptions.CustomerAgreementRepository,
	planRepo subscriptions.PlanRepository,
	choiceCache ChoiceCache,
	logger logger.Interface,
) *SetAutoAppliedPlanUseCase {
	return &SetAutoAppliedPlanUseCase{
		agreementRepo: agreementRepo,
		planRepo:      planRepo,
		choiceCache:   choiceCache,
		logger:        logger,
		now:           biztime.NowUTC,
	}
}

func (uc *SetAutoAppliedPlanUseCase) Execute(
	ctx context.Context,
	cmd SetAutoAppliedPlanCommand,
) (*dto.CustomerAgreementDTO, error) {
	agreement, err := uc.agreementRepo.GetByUUID(ctx, cmd.AgreementUUID)
	if err != nil {
		uc.logger.Errorw("failed to fetch customer agreement", "error", err, "agreement_uuid", cmd.AgreementUUID)
		return nil, fmt.Errorf("failed to fetch customer agreement: %w", err)
	}
	if agreement == nil {
		return nil, apperrors.NewNotFoundError("customer agreement not found")
	}

	planUUID, err := subscriptions.PlanUUIDForChoice(cmd.Choice)
	if err != nil {
		return nil, uc.invalidChoice()
	}

	if planUUID == nil {
		agreement.ClearAutoAppliedPlan()
	} else {
		plan, err := uc.planRepo.GetByUUID(ctx, *planUUID)
		if err != nil {
			uc.logger.Errorw("failed to fetch subscription plan", "error", err, "plan_uuid", *planUUID)
			return nil, fmt.Errorf("failed to fetch subscription plan: %w", err)
		}
		// Only plans that would appear in the derived choice list are
		// accepted: under this agreement, active, and currently in range.
		if plan == nil || plan.CustomerAgreementID() != agreement.ID() || !plan.IsCurrent(uc.now()) {
			return nil, uc.invalidChoice()
		}
		if err := agreement.DesignateAutoAppliedPlan(plan.ID()); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
	}

	if err := uc.agreementRepo.Update(ctx, agreement); err != nil {
		uc.logger.Errorw("failed to update customer agreement", "error", err, "agreement_uuid", cmd.AgreementUUID)
		return nil, fmt.Errorf("failed to update customer agreement: %w", err)
	}

	if err := uc.choiceCache.InvalidateChoices(ctx, agreement.UUID()); err != nil {
		uc.logger.Warnw("failed to invalidate auto-apply choices cache",
			"error", err, "agreement_uuid", agreement.UUID())
	}

	uc.logger.Infow("auto-applied plan designation updated",
		"agreement_uuid", agreement.UUID(), "choice", cmd.Choice)

	return dto.ToCustomerAgreementDTO(agreement), nil
}

func (uc *SetAutoAppliedPlanUseCase) invalidChoice() error {
	return apperrors.NewFieldValidationError(
		"auto_applicable_subscription",
		"Select a valid choice. That choice is not one of the available choices.",
	)
}
