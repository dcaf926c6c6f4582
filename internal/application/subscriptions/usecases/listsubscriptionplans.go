package usecases

import (
	"context"
	"fmt"

	"liman/internal/application/subscriptions/dto"
	"liman/internal/domain/subscriptions"
	"liman/internal/shared/logger"
)

type ListSubscriptionPlansQuery struct {
	CustomerAgreementID *uint
	IsActive            *bool
	Page                int
	PageSize            int
}

type ListSubscriptionPlansResult struct {
	Plans []*dto.SubscriptionPlanDTO
	Total int64
}

type ListSubscriptionPlansUseCase struct {
	planRepo subscriptions.PlanRepository
	logger   logger.Interface
}

func NewListSubscriptionPlansUseCase(
	planRepo subscriptions.PlanRepository,
	logger logger.Interface,
) *ListSubscriptionPlansUseCase {
	return &ListSubscriptionPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListSubscriptionPlansUseCase) Execute(
	ctx context.Context,
	query ListSubscriptionPlansQuery,
) (*ListSubscriptionPlansResult, error) {
	filter := subscriptions.PlanFilter{
		CustomerAgreementID: query.CustomerAgreementID,
		IsActive:            query.IsActive,
		Page:                query.Page,
		PageSize:            query.PageSize,
	}

	plans, total, err := uc.planRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list subscription plans", "error", err)
		return nil, fmt.Errorf("failed to list subscription plans: %w", err)
	}

	return &ListSubscriptionPlansResult{
		Plans: dto.ToSubscriptionPlanDTOs(plans),
		Total: total,
	}, nil
}
