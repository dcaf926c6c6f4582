package handlers

import (
	"context"

	subdto "liman/internal/application/subscriptions/dto"
	"liman/internal/application/subscriptions/usecases"
)

// Use case interfaces for CustomerAgreementHandler

type getCustomerAgreementUseCase interface {
	Execute(ctx context.Context, query usecases.GetCustomerAgreementQuery) (*subdto.CustomerAgreementDTO, error)
}

type updateCustomerAgreementUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCustomerAgreementCommand) (*subdto.CustomerAgreementDTO, error)
}

type getAutoApplyChoicesUseCase interface {
	Execute(ctx context.Context, query usecases.GetAutoApplyChoicesQuery) (*subdto.AutoApplyChoicesDTO, error)
}

type setAutoAppliedPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetAutoAppliedPlanCommand) (*subdto.CustomerAgreementDTO, error)
}
