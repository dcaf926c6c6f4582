// Package constants defines application-wide constants.
package constants

// Database table names
const (
	TableSubscriptionPlans  = "subscription_plans"
	TableCustomerAgreements = "customer_agreements"
	TableProducts           = "products"
	TablePlanTypes          = "plan_types"
	TablePlanRenewals       = "plan_renewals"
)

// Runtime environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Date layout used for plan and renewal dates in the admin API.
const DateLayout = "2006-01-02"
