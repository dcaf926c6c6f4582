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

// UpdateSubscriptionPlanCommand carries the submitted changes; nil pointer
// fields are left untouched. EnterpriseCatalogUUID and
// SalesforceOpportunityID distinguish "not submitted" (nil) from "cleared"
// (pointer to empty string).
type UpdateSubscriptionPlanCommand struct {
	PlanUUID                uuid.UUID
	Title                   *string
	CustomerAgreementID     *uint
	ProductID               *uint
	EnterpriseCatalogUUID   *string
	SalesforceOpportunityID *string
	NumLicenses             *int
	ForInternalUseOnly      *bool
	IsRevocationCapEnabled  *bool
	RevokeMaxPercentage     *int
	StartDate               *time.Time
	ExpirationDate          *time.Time
	IsActive                *bool
}

type UpdateSubscriptionPlanUseCase struct {
	planRepo      subscriptions.PlanRepository
	agreementRepo subscriptions.CustomerAgreementRepository
	productRepo   subscriptions.ProductRepository
	validator     *subscriptions.PlanValidator
	choiceCache   ChoiceCache
	logger        logger.Interface
}

func NewUpdateSubscriptionPlanUseCase(
	planRepo subscriptions.PlanRepository,
	agreementRepo subscriptions.CustomerAgreementRepository,
	productRepo subscriptions.ProductRepository,
	validator *subscriptions.PlanValidator,
	choiceCache ChoiceCache,
	logger logger.Interface,
) *UpdateSubscriptionPlanUseCase {
	return &UpdateSubscriptionPlanUseCase{
		planRepo:      planRepo,
		agreementRepo: agreementRepo,
		productRepo:   productRepo,
		validator:     validator,
		choiceCache:   choiceCache,
		logger:        logger,
	}
}

func (uc *UpdateSubscriptionPlanUseCase) Execute(
	ctx context.Context,
	cmd UpdateSubscriptionPlanCommand,
) (*dto.SubscriptionPlanDTO, error) {
	plan, err := uc.planRepo.GetByUUID(ctx, cmd.PlanUUID)
	if err != nil {
		uc.logger.Errorw("failed to fetch subscription plan", "error", err, "plan_uuid", cmd.PlanUUID)
		return nil, fmt.Errorf("failed to fetch subscription plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("subscription plan not found")
	}

	previousAgreementID := plan.CustomerAgreementID()

	if err := uc.applyChanges(plan, cmd); err != nil {
		return nil, err
	}

	agreementChanged := plan.CustomerAgreementID() != previousAgreementID

	agreement, err := uc.agreementRepo.GetByID(ctx, plan.CustomerAgreementID())
	if err != nil {
		uc.logger.Errorw("failed to fetch customer agreement", "error", err, "agreement_id", plan.CustomerAgreementID())
		return nil, fmt.Errorf("failed to fetch customer agreement: %w", err)
	}
	if agreement == nil {
		return nil, apperrors.NewNotFoundError("customer agreement not found")
	}

	var product *subscriptions.Product
	if plan.ProductID() != nil {
		product, err = uc.productRepo.GetByID(ctx, *plan.ProductID())
		if err != nil {
			uc.logger.Errorw("failed to fetch product", "error", err, "product_id", *plan.ProductID())
			return nil, fmt.Errorf("failed to fetch product: %w", err)
		}
		if product == nil {
			return nil, apperrors.NewNotFoundError("product not found")
		}
	}

	if rejection := uc.validator.ValidateSubscriptionPlan(plan, agreement, product, agreementChanged); rejection != nil {
		uc.logger.Infow("subscription plan update rejected",
			"field", rejection.Field, "message", rejection.Message, "plan_uuid", cmd.PlanUUID)
		return nil, apperrors.NewFieldValidationError(rejection.Field, rejection.Message)
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update subscription plan", "error", err, "plan_uuid", cmd.PlanUUID)
		return nil, fmt.Errorf("failed to update subscription plan: %w", err)
	}

	// Title, dates, activation, and agreement links all shape the choice list,
	// so the cache is dropped for the current agreement and, when relinked,
	// the previous one too.
	uc.invalidateChoices(ctx, agreement.UUID())
	if agreementChanged {
		if previous, err := uc.agreementRepo.GetByID(ctx, previousAgreementID); err == nil && previous != nil {
			uc.invalidateChoices(ctx, previous.UUID())
		}
	}

	uc.logger.Infow("subscription plan updated", "plan_id", plan.ID(), "plan_uuid", plan.UUID())

	return dto.ToSubscriptionPlanDTO(plan), nil
}

func (uc *UpdateSubscriptionPlanUseCase) applyChanges(
	plan *subscriptions.SubscriptionPlan,
	cmd UpdateSubscriptionPlanCommand,
) error {
	if cmd.Title != nil {
		if err := plan.Rename(*cmd.Title); err != nil {
			return apperrors.NewBadRequestError(err.Error())
		}
	}
	if cmd.CustomerAgreementID != nil && *cmd.CustomerAgreementID != plan.CustomerAgreementID() {
		if err := plan.RelinkCustomerAgreement(*cmd.CustomerAgreementID); err != nil {
			return apperrors.NewBadRequestError(err.Error())
		}
	}
	if cmd.ProductID != nil {
		if err := plan.AssignProduct(*cmd.ProductID); err != nil {
			return apperrors.NewBadRequestError(err.Error())
		}
	}
	if cmd.EnterpriseCatalogUUID != nil {
		if *cmd.EnterpriseCatalogUUID == "" {
			plan.SetEnterpriseCatalogUUID(nil)
		} else {
			catalogUUID, err := uuid.Parse(*cmd.EnterpriseCatalogUUID)
			if err != nil {
				return apperrors.NewFieldValidationError(
					subscriptions.FieldEnterpriseCatalogUUID, "Enter a valid UUID.")
			}
			plan.SetEnterpriseCatalogUUID(&catalogUUID)
		}
	}
	if cmd.SalesforceOpportunityID != nil {
		if *cmd.SalesforceOpportunityID == "" {
			plan.SetSalesforceOpportunityID(nil)
		} else {
			plan.SetSalesforceOpportunityID(cmd.SalesforceOpportunityID)
		}
	}
	if cmd.NumLicenses != nil {
		if *cmd.NumLicenses < uc.validator.Limits().MinNumLicenses {
			return apperrors.NewFieldValidationError(
				subscriptions.FieldNumLicenses,
				fmt.Sprintf("Ensure this value is greater than or equal to %d.", uc.validator.Limits().MinNumLicenses),
			)
		}
		if err := plan.SetNumLicenses(*cmd.NumLicenses); err != nil {
			return apperrors.NewBadRequestError(err.Error())
		}
	}
	if cmd.ForInternalUseOnly != nil {
		plan.MarkForInternalUseOnly(*cmd.ForInternalUseOnly)
	}
	if cmd.IsRevocationCapEnabled != nil || cmd.RevokeMaxPercentage != nil {
		enabled := plan.IsRevocationCapEnabled()
		if cmd.IsRevocationCapEnabled != nil {
			enabled = *cmd.IsRevocationCapEnabled
		}
		pct := plan.RevokeMaxPercentage()
		if cmd.RevokeMaxPercentage != nil {
			pct = *cmd.RevokeMaxPercentage
		}
		plan.SetRevocationCap(enabled, pct)
	}
	if cmd.StartDate != nil || cmd.ExpirationDate != nil {
		start := plan.StartDate()
		if cmd.StartDate != nil {
			start = *cmd.StartDate
		}
		expiration := plan.ExpirationDate()
		if cmd.ExpirationDate != nil {
			expiration = *cmd.ExpirationDate
		}
		if err := plan.Reschedule(start, expiration); err != nil {
			return apperrors.NewBadRequestError(err.Error())
		}
	}
	if cmd.IsActive != nil {
		if *cmd.IsActive {
			plan.Activate()
		} else {
			plan.Deactivate()
		}
	}
	return nil
}

func (uc *UpdateSubscriptionPlanUseCase) invalidateChoices(ctx context.Context, agreementUUID uuid.UUID) {
	if err := uc.choiceCache.InvalidateChoices(ctx, agreementUUID); err != nil {
		uc.logger.Warnw("failed to invalidate auto-apply choices cache",
			"error", err, "agreement_uuid", agreementUUID)
	}
}
