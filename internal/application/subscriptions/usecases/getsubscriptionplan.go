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

type GetSubscriptionPlanQuery struct {
	PlanUUID uuid.UUID
}

type GetSubscriptionPlanUseCase struct {
	planRepo subscriptions.PlanRepository
	logger   logger.Interface
}

func NewGetSubscriptionPlanUseCase(
	planRepo subscriptions.PlanRepository,
	logger logger.Interface,
) *GetSubscriptionPlanUseCase {
	return &GetSubscriptionPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetSubscriptionPlanUseCase) Execute(
	ctx context.Context,
	query GetSubscriptionPlanQuery,
) (*dto.SubscriptionPlanDTO, error) {
	plan, err := uc.planRepo.GetByUUID(ctx, query.PlanUUID)
	if err != nil {
		uc.logger.Errorw("failed to fetch subscription plan", "error", err, "plan_uuid", query.PlanUUID)
		return nil, fmt.Errorf("failed to fetch subscription plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("subscription plan not found")
	}

	return dto.ToSubscriptionPlanDTO(plan), nil
}
