package migration

import (
	"liman/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerAgreementModel{},
		&models.PlanTypeModel{},
		&models.ProductModel{},
		&models.SubscriptionPlanModel{},
		&models.PlanRenewalModel{},
	}
}
