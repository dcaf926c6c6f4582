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

type CreatePlanRenewalCommand struct {
	PriorPlanUUID         uuid.UUID
	EffectiveDate         time.Time
	RenewedExpirationDate time.Time
	NumberOfLicenses      int
}

type CreatePlanRenewalUseCase struct {
	renewalRepo subscriptions.PlanRenewalRepository
	planRepo    subscriptions.PlanRepository
	validator   *subscriptions.PlanValidator
	logger      logger.Interface
	now         func() time.Time
}

func NewCreatePlanRenewalUseCase(
	renewalRepo subscriptions.PlanRenewalRepository,
	planRepo subscriptions.PlanRepository,
	validator *subscriptions.PlanValidator,
	logger logger.Interface,
) *CreatePlanRenewalUseCase {
	return &CreatePlanRenewalUseCase{
		renewalRepo: renewalRepo,
		planRepo:    planRepo,
		validator:   validator,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *CreatePlanRenewalUseCase) Execute(
	ctx context.Context,
	cmd CreatePlanRenewalCommand,
) (*dto.PlanRenewalDTO, error) {
	priorPlan, err := uc.planRepo.GetByUUID(ctx, cmd.PriorPlanUUID)
	if err != nil {
		uc.logger.Errorw("failed to fetch prior plan", "error", err, "plan_uuid", cmd.PriorPlanUUID)
		return nil, fmt.Errorf("failed to fetch prior plan: %w", err)
	}
	if priorPlan == nil {
		return nil, apperrors.NewNotFoundError("prior subscription plan not found")
	}

	renewal, err := subscriptions.NewPlanRenewal(
		priorPlan.ID(),
		priorPlan.UUID(),
		cmd.EffectiveDate,
		cmd.RenewedExpirationDate,
		cmd.NumberOfLicenses,
	)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if rejection := uc.validator.ValidateRenewal(renewal, priorPlan, uc.now()); rejection != nil {
		uc.logger.Infow("plan renewal rejected",
			"field", rejection.Field, "message", rejection.Message, "prior_plan_uuid", cmd.PriorPlanUUID)
		return nil, apperrors.NewFieldValidationError(rejection.Field, rejection.Message)
	}

	if err := uc.renewalRepo.Create(ctx, renewal); err != nil {
		uc.logger.Errorw("failed to persist plan renewal", "error", err)
		return nil, fmt.Errorf("failed to persist plan renewal: %w", err)
	}

	uc.logger.Infow("plan renewal created",
		"renewal_id", renewal.ID(), "prior_plan_uuid", cmd.PriorPlanUUID,
		"effective_date", renewal.EffectiveDate())

	return dto.ToPlanRenewalDTO(renewal), nil
}
