package dto

import (
	"liman/internal/domain/subscriptions"
)

func ToSubscriptionPlanDTO(plan *subscriptions.SubscriptionPlan) *SubscriptionPlanDTO {
	if plan == nil {
		return nil
	}

	result := &SubscriptionPlanDTO{
		ID:                      plan.ID(),
		UUID:                    plan.UUID().String(),
		Title:                   plan.Title(),
		CustomerAgreementID:     plan.CustomerAgreementID(),
		ProductID:               plan.ProductID(),
		SalesforceOpportunityID: plan.SalesforceOpportunityID(),
		NumLicenses:             plan.NumLicenses(),
		ForInternalUseOnly:      plan.ForInternalUseOnly(),
		IsRevocationCapEnabled:  plan.IsRevocationCapEnabled(),
		RevokeMaxPercentage:     plan.RevokeMaxPercentage(),
		StartDate:               plan.StartDate(),
		ExpirationDate:          plan.ExpirationDate(),
		IsActive:                plan.IsActive(),
		Metadata:                plan.Metadata(),
		CreatedAt:               plan.CreatedAt(),
		UpdatedAt:               plan.UpdatedAt(),
	}

	if catalogUUID := plan.EnterpriseCatalogUUID(); catalogUUID != nil {
		s := catalogUUID.String()
		result.EnterpriseCatalogUUID = &s
	}

	return result
}

func ToSubscriptionPlanDTOs(plans []*subscriptions.SubscriptionPlan) []*SubscriptionPlanDTO {
	result := make([]*SubscriptionPlanDTO, 0, len(plans))
	for _, plan := range plans {
		result = append(result, ToSubscriptionPlanDTO(plan))
	}
	return result
}

func ToCustomerAgreementDTO(agreement *subscriptions.CustomerAgreement) *CustomerAgreementDTO {
	if agreement == nil {
		return nil
	}

	result := &CustomerAgreementDTO{
		ID:                         agreement.ID(),
		UUID:                       agreement.UUID().String(),
		EnterpriseCustomerUUID:     agreement.EnterpriseCustomerUUID().String(),
		EnterpriseCustomerSlug:     agreement.EnterpriseCustomerSlug(),
		AutoAppliedPlanID:          agreement.AutoAppliedPlanID(),
		LicenseDurationBeforePurge: agreement.LicenseDurationBeforePurge().String(),
		CreatedAt:                  agreement.CreatedAt(),
		UpdatedAt:                  agreement.UpdatedAt(),
	}

	if catalogUUID := agreement.DefaultEnterpriseCatalogUUID(); catalogUUID != nil {
		s := catalogUUID.String()
		result.DefaultEnterpriseCatalogUUID = &s
	}

	return result
}

func ToPlanTypeDTO(planType *subscriptions.PlanType) *PlanTypeDTO {
	if planType == nil {
		return nil
	}
	return &PlanTypeDTO{
		ID:           planType.ID(),
		Label:        planType.Label(),
		SFIDRequired: planType.SFIDRequired(),
		NSIDRequired: planType.NSIDRequired(),
	}
}

func ToProductDTO(product *subscriptions.Product) *ProductDTO {
	if product == nil {
		return nil
	}
	return &ProductDTO{
		ID:         product.ID(),
		Name:       product.Name(),
		PlanType:   ToPlanTypeDTO(product.PlanType()),
		NetsuiteID: product.NetsuiteID(),
		CreatedAt:  product.CreatedAt(),
		UpdatedAt:  product.UpdatedAt(),
	}
}

func ToProductDTOs(products []*subscriptions.Product) []*ProductDTO {
	result := make([]*ProductDTO, 0, len(products))
	for _, product := range products {
		result = append(result, ToProductDTO(product))
	}
	return result
}

func ToPlanRenewalDTO(renewal *subscriptions.PlanRenewal) *PlanRenewalDTO {
	if renewal == nil {
		return nil
	}
	return &PlanRenewalDTO{
		ID:                    renewal.ID(),
		PriorPlanID:           renewal.PriorPlanID(),
		PriorPlanUUID:         renewal.PriorPlanUUID().String(),
		RenewedPlanID:         renewal.RenewedPlanID(),
		EffectiveDate:         renewal.EffectiveDate(),
		RenewedExpirationDate: renewal.RenewedExpirationDate(),
		NumberOfLicenses:      renewal.NumberOfLicenses(),
		Processed:             renewal.Processed(),
		CreatedAt:             renewal.CreatedAt(),
		UpdatedAt:             renewal.UpdatedAt(),
	}
}

func ToPlanRenewalDTOs(renewals []*subscriptions.PlanRenewal) []*PlanRenewalDTO {
	result := make([]*PlanRenewalDTO, 0, len(renewals))
	for _, renewal := range renewals {
		result = append(result, ToPlanRenewalDTO(renewal))
	}
	return result
}

func ToAutoApplyChoicesDTO(list subscriptions.ChoiceList) *AutoApplyChoicesDTO {
	choices := make([]AutoApplyChoiceDTO, 0, len(list.Choices))
	for _, c := range list.Choices {
		choices = append(choices, AutoApplyChoiceDTO{Value: c.Value, Label: c.Label})
	}
	return &AutoApplyChoicesDTO{Choices: choices, Selected: list.Selected}
}
