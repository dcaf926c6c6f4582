package subscriptions

import (
	"fmt"
	"time"
)

// Form field names reported in rejections. These match the admin form field
// names surfaced to staff users.
const (
	FieldEnterpriseCatalogUUID   = "enterprise_catalog_uuid"
	FieldNumLicenses             = "num_licenses"
	FieldRevokeMaxPercentage     = "revoke_max_percentage"
	FieldProduct                 = "product"
	FieldSalesforceOpportunityID = "salesforce_opportunity_id"
	FieldEffectiveDate           = "effective_date"
	FieldRenewedExpirationDate   = "renewed_expiration_date"
	FieldNetsuiteID              = "netsuite_id"
)

// Rejection identifies the form field a submission was rejected on, with a
// human-readable message. It is the expected negative outcome of validation,
// not a system failure; a nil Rejection means the submission is accepted.
type Rejection struct {
	Field   string
	Message string
}

func (r *Rejection) String() string {
	return fmt.Sprintf("%s: %s", r.Field, r.Message)
}

// Limits holds the configured license-count bounds applied during plan
// validation. Only internal-use plans may exceed MaxNumLicenses.
type Limits struct {
	MinNumLicenses int
	MaxNumLicenses int
}

// rule pairs a failure predicate with the field and message reported when it
// fires. Rules are evaluated in declaration order and the first failure wins.
type rule struct {
	failed  func() bool
	field   string
	message string
}

func firstRejection(rules []rule) *Rejection {
	for _, r := range rules {
		if r.failed() {
			return &Rejection{Field: r.field, Message: r.message}
		}
	}
	return nil
}

// PlanValidator evaluates the administrative business rules applied to
// submitted subscription plans, renewals, and products before they are
// committed. It holds no mutable state and performs no I/O; all related
// records are supplied by the caller.
type PlanValidator struct {
	limits Limits
}

func NewPlanValidator(limits Limits) *PlanValidator {
	return &PlanValidator{limits: limits}
}

// Limits returns the configured license-count bounds.
func (v *PlanValidator) Limits() Limits {
	return v.limits
}

// ValidateSubscriptionPlan checks a candidate plan against its linked
// customer agreement and product. agreementChanged reports whether the
// customer-agreement link was set or changed on this submission; the catalog
// rule only applies then. The product argument is nil when the candidate has
// no product set.
func (v *PlanValidator) ValidateSubscriptionPlan(plan *SubscriptionPlan,
	agreement *CustomerAgreement, product *Product, agreementChanged bool) *Rejection {

	rules := []rule{
		{
			failed: func() bool {
				if !agreementChanged {
					return false
				}
				if plan.EnterpriseCatalogUUID() != nil {
					return false
				}
				return agreement == nil || agreement.DefaultEnterpriseCatalogUUID() == nil
			},
			field:   FieldEnterpriseCatalogUUID,
			message: "The subscription must have an enterprise catalog uuid from itself or its customer agreement",
		},
		{
			failed: func() bool {
				return plan.NumLicenses() > v.limits.MaxNumLicenses && !plan.ForInternalUseOnly()
			},
			field:   FieldNumLicenses,
			message: fmt.Sprintf("Non-test subscriptions may not have more than %d licenses", v.limits.MaxNumLicenses),
		},
		{
			failed: func() bool {
				if !plan.IsRevocationCapEnabled() {
					return false
				}
				pct := plan.RevokeMaxPercentage()
				return pct > 100 || pct < 0
			},
			field:   FieldRevokeMaxPercentage,
			message: "Must be a valid percentage (0-100).",
		},
		{
			failed:  func() bool { return product == nil },
			field:   FieldProduct,
			message: "You must specify a product.",
		},
		{
			failed: func() bool {
				return product.PlanType().SFIDRequired() && plan.SalesforceOpportunityID() == nil
			},
			field:   FieldSalesforceOpportunityID,
			message: "You must specify Salesforce ID for selected product.",
		},
	}

	return firstRejection(rules)
}

// ValidateRenewal checks a candidate renewal against the plan it renews.
// Dates must satisfy start <= expiration <= effective <= renewed expiration,
// and the effective date may not be in the past at submission time.
func (v *PlanValidator) ValidateRenewal(renewal *PlanRenewal,
	priorPlan *SubscriptionPlan, now time.Time) *Rejection {

	rules := []rule{
		{
			failed:  func() bool { return renewal.EffectiveDate().Before(now) },
			field:   FieldEffectiveDate,
			message: "A subscription renewal can not be scheduled to become effective in the past.",
		},
		{
			failed:  func() bool { return renewal.RenewedExpirationDate().Before(renewal.EffectiveDate()) },
			field:   FieldRenewedExpirationDate,
			message: "A subscription renewal can not expire before it becomes effective.",
		},
		{
			failed:  func() bool { return renewal.EffectiveDate().Before(priorPlan.ExpirationDate()) },
			field:   FieldEffectiveDate,
			message: "A subscription renewal can not take effect before a subscription expires.",
		},
	}

	return firstRejection(rules)
}

// ValidateProduct checks a candidate product against its plan type.
func (v *PlanValidator) ValidateProduct(product *Product) *Rejection {
	rules := []rule{
		{
			failed: func() bool {
				return product.PlanType().NSIDRequired() && product.NetsuiteID() == nil
			},
			field:   FieldNetsuiteID,
			message: "You must specify Netsuite ID for selected plan type.",
		},
	}

	return firstRejection(rules)
}
