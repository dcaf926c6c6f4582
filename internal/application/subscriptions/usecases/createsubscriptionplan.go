package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"liman/internal/application/subscriptions/dto"
	"liman/internal/domain/subscriptions"
	apperrors "liman/internal/shared/errors"
	"liman/internal/shared/logger"
)

type CreateSubscriptionPlanCommand struct {
	Title                   string
	CustomerAgreementID     uint
	ProductID               *uint
	EnterpriseCatalogUUID   *string
	SalesforceOpportunityID *string
	NumLicenses             int
	ForInternalUseOnly      bool
	IsRevocationCapEnabled  bool
	RevokeMaxPercentage     int
	StartDate               time.Time
	ExpirationDate          time.Time
	IsActive                bool
}

type CreateSubscriptionPlanUseCase struct {
	planRepo      subscriptions.PlanRepository
	agreementRepo subscriptions.CustomerAgreementRepository
	productRepo   subscriptions.ProductRepository
	validator     *subscriptions.PlanValidator
	choiceCache   ChoiceCache
	logger        logger.Interface
}

func NewCreateSubscriptionPlanUseCase(
	planRepo subscriptions.PlanRepository,
	agreementRepo subscriptions.CustomerAgreementRepository,
	productRepo subscriptions.ProductRepository,
	validator *subscriptions.PlanValidator,
	choiceCache ChoiceCache,
	logger logger.Interface,
) *CreateSubscriptionPlanUseCase {
	return &CreateSubscriptionPlanUseCase{
		planRepo:      planRepo,
		agreementRepo: agreementRepo,
		productRepo:   productRepo,
		validator:     validator,
		choiceCache:   choiceCache,
		logger:        logger,
	}
}

func (uc *CreateSubscriptionPlanUseCase) Execute(
	ctx context.Context,
	cmd CreateSubscriptionPlanCommand,
) (*dto.SubscriptionPlanDTO, error) {
	if cmd.NumLicenses < uc.validator.Limits().MinNumLicenses {
		return nil, apperrors.NewFieldValidationError(
			subscriptions.FieldNumLicenses,
			fmt.Sprintf("Ensure this value is greater than or equal to %d.", uc.validator.Limits().MinNumLicenses),
		)
	}

	agreement, err := uc.agreementRepo.GetByID(ctx, cmd.CustomerAgreementID)
	if err != nil {
		uc.logger.Errorw("failed to fetch customer agreement", "error", err, "agreement_id", cmd.CustomerAgreementID)
		return nil, fmt.Errorf("failed to fetch customer agreement: %w", err)
	}
	if agreement == nil {
		return nil, apperrors.NewNotFoundError("customer agreement not found")
	}

	plan, err := subscriptions.NewSubscriptionPlan(
		cmd.Title,
		cmd.CustomerAgreementID,
		cmd.NumLicenses,
		cmd.StartDate,
		cmd.ExpirationDate,
	)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if cmd.EnterpriseCatalogUUID != nil {
		catalogUUID, err := uuid.Parse(*cmd.EnterpriseCatalogUUID)
		if err != nil {
			return nil, apperrors.NewFieldValidationError(
				subscriptions.FieldEnterpriseCatalogUUID, "Enter a valid UUID.")
		}
		plan.SetEnterpriseCatalogUUID(&catalogUUID)
	}
	if cmd.SalesforceOpportunityID != nil {
		plan.SetSalesforceOpportunityID(cmd.SalesforceOpportunityID)
	}
	plan.MarkForInternalUseOnly(cmd.ForInternalUseOnly)
	plan.SetRevocationCap(cmd.IsRevocationCapEnabled, cmd.RevokeMaxPercentage)
	if cmd.IsActive {
		plan.Activate()
	}

	var product *subscriptions.Product
	if cmd.ProductID != nil {
		product, err = uc.productRepo.GetByID(ctx, *cmd.ProductID)
		if err != nil {
			uc.logger.Errorw("failed to fetch product", "error", err, "product_id", *cmd.ProductID)
			return nil, fmt.Errorf("failed to fetch product: %w", err)
		}
		if product == nil {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		if err := plan.AssignProduct(*cmd.ProductID); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
	}

	// The agreement link is always new on creation, so the catalog rule applies.
	if rejection := uc.validator.ValidateSubscriptionPlan(plan, agreement, product, true); rejection != nil {
		uc.logger.Infow("subscription plan rejected",
			"field", rejection.Field, "message", rejection.Message, "title", cmd.Title)
		return nil, apperrors.NewFieldValidationError(rejection.Field, rejection.Message)
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to persist subscription plan", "error", err)
		return nil, fmt.Errorf("failed to persist subscription plan: %w", err)
	}

	if err := uc.choiceCache.InvalidateChoices(ctx, agreement.UUID()); err != nil {
		uc.logger.Warnw("failed to invalidate auto-apply choices cache",
			"error", err, "agreement_uuid", agreement.UUID())
	}

	uc.logger.Infow("subscription plan created",
		"plan_id", plan.ID(), "plan_uuid", plan.UUID(), "agreement_id", cmd.CustomerAgreementID)

	return dto.ToSubscriptionPlanDTO(plan), nil
}
