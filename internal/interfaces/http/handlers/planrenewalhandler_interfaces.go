package handlers

import (
	"context"

	subdto "liman/internal/application/subscriptions/dto"
	"liman/internal/application/subscriptions/usecases"
)

// Use case interfaces for PlanRenewalHandler

type createPlanRenewalUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanRenewalCommand) (*subdto.PlanRenewalDTO, error)
}

type listPlanRenewalsUseCase interface {
	Execute(ctx context.Context, query usecases.ListPlanRenewalsQuery) ([]*subdto.PlanRenewalDTO, error)
}
