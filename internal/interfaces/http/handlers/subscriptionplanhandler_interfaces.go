package handlers

import (
	"context"

	subdto "liman/internal/application/subscriptions/dto"
	"liman/internal/application/subscriptions/usecases"
)

// Use case interfaces for SubscriptionPlanHandler

type createSubscriptionPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubscriptionPlanCommand) (*subdto.SubscriptionPlanDTO, error)
}

type updateSubscriptionPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSubscriptionPlanCommand) (*subdto.SubscriptionPlanDTO, error)
}

type getSubscriptionPlanUseCase interface {
	Execute(ctx context.Context, query usecases.GetSubscriptionPlanQuery) (*subdto.SubscriptionPlanDTO, error)
}

type listSubscriptionPlansUseCase interface {
	Execute(ctx context.Context, query usecases.ListSubscriptionPlansQuery) (*usecases.ListSubscriptionPlansResult, error)
}
