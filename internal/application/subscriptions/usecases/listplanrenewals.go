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

type ListPlanRenewalsQuery struct {
	PriorPlanUUID uuid.UUID
}

type ListPlanRenewalsUseCase struct {
	renewalRepo subscriptions.PlanRenewalRepository
	planRepo    subscriptions.PlanRepository
	logger      logger.Interface
}

func NewListPlanRenewalsUseCase(
	renewalRepo subscriptions.PlanRenewalRepository,
	planRepo subscriptions.PlanRepository,
	logger logger.Interface,
) *ListPlanRenewalsUseCase {
	return &ListPlanRenewalsUseCase{
		renewalRepo: renewalRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

func (uc *ListPlanRenewalsUseCase) Execute(
	ctx context.Context,
	query ListPlanRenewalsQuery,
) ([]*dto.PlanRenewalDTO, error) {
	plan, err := uc.planRepo.GetByUUID(ctx, query.PriorPlanUUID)
	if err != nil {
		uc.logger.Errorw("failed to fetch prior plan", "error", err, "plan_uuid", query.PriorPlanUUID)
		return nil, fmt.Errorf("failed to fetch prior plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("subscription plan not found")
	}

	renewals, err := uc.renewalRepo.ListByPriorPlan(ctx, plan.ID())
	if err != nil {
		uc.logger.Errorw("failed to list plan renewals", "error", err, "plan_id", plan.ID())
		return nil, fmt.Errorf("failed to list plan renewals: %w", err)
	}

	return dto.ToPlanRenewalDTOs(renewals), nil
}
