package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"liman/internal/application/subscriptions/usecases"
	"liman/internal/domain/subscriptions"
	infracache "liman/internal/infrastructure/cache"
	"liman/internal/infrastructure/config"
	"liman/internal/infrastructure/repository"
	"liman/internal/interfaces/http/handlers"
	"liman/internal/interfaces/http/middleware"
	"liman/internal/shared/logger"
	"liman/internal/shared/utils"
)

// Router wires repositories, use cases, and handlers into a gin engine.
type Router struct {
	engine           *gin.Engine
	cfg              *config.Config
	log              logger.Interface
	planHandler      *handlers.SubscriptionPlanHandler
	renewalHandler   *handlers.PlanRenewalHandler
	productHandler   *handlers.ProductHandler
	agreementHandler *handlers.CustomerAgreementHandler
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	planRepo := repository.NewSubscriptionPlanRepository(db, log)
	agreementRepo := repository.NewCustomerAgreementRepository(db, log)
	productRepo := repository.NewProductRepository(db, log)
	renewalRepo := repository.NewPlanRenewalRepository(db, log)

	validator := subscriptions.NewPlanValidator(subscriptions.Limits{
		MinNumLicenses: cfg.Subscriptions.MinNumLicenses,
		MaxNumLicenses: cfg.Subscriptions.MaxNumLicenses,
	})

	choiceCacheTTL := time.Duration(cfg.Subscriptions.ChoiceCacheTTLSeconds) * time.Second
	choiceCache := infracache.NewRedisChoiceCache(redisClient, choiceCacheTTL, log)

	createPlanUC := usecases.NewCreateSubscriptionPlanUseCase(planRepo, agreementRepo, productRepo, validator, choiceCache, log)
	updatePlanUC := usecases.NewUpdateSubscriptionPlanUseCase(planRepo, agreementRepo, productRepo, validator, choiceCache, log)
	getPlanUC := usecases.NewGetSubscriptionPlanUseCase(planRepo, log)
	listPlansUC := usecases.NewListSubscriptionPlansUseCase(planRepo, log)

	createRenewalUC := usecases.NewCreatePlanRenewalUseCase(renewalRepo, planRepo, validator, log)
	listRenewalsUC := usecases.NewListPlanRenewalsUseCase(renewalRepo, planRepo, log)

	createProductUC := usecases.NewCreateProductUseCase(productRepo, validator, log)
	updateProductUC := usecases.NewUpdateProductUseCase(productRepo, validator, log)
	listProductsUC := usecases.NewListProductsUseCase(productRepo, log)

	getAgreementUC := usecases.NewGetCustomerAgreementUseCase(agreementRepo, log)
	updateAgreementUC := usecases.NewUpdateCustomerAgreementUseCase(agreementRepo, log)
	getChoicesUC := usecases.NewGetAutoApplyChoicesUseCase(planRepo, agreementRepo, choiceCache, log)
	setAutoAppliedUC := usecases.NewSetAutoAppliedPlanUseCase(agreementRepo, planRepo, choiceCache, log)

	return &Router{
		engine: engine,
		cfg:    cfg,
		log:    log,
		planHandler: handlers.NewSubscriptionPlanHandler(
			createPlanUC, updatePlanUC, getPlanUC, listPlansUC,
		),
		renewalHandler: handlers.NewPlanRenewalHandler(createRenewalUC, listRenewalsUC),
		productHandler: handlers.NewProductHandler(createProductUC, updateProductUC, listProductsUC),
		agreementHandler: handlers.NewCustomerAgreementHandler(
			getAgreementUC, updateAgreementUC, getChoicesUC, setAutoAppliedUC,
		),
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "ok", nil)
	})

	admin := r.engine.Group("/api/admin")
	{
		plans := admin.Group("/subscription-plans")
		{
			plans.POST("", r.planHandler.CreatePlan)
			plans.GET("", r.planHandler.ListPlans)
			plans.GET("/:uuid", r.planHandler.GetPlan)
			plans.PATCH("/:uuid", r.planHandler.UpdatePlan)
			plans.GET("/:uuid/renewals", r.renewalHandler.ListRenewals)
		}

		admin.POST("/plan-renewals", r.renewalHandler.CreateRenewal)

		products := admin.Group("/products")
		{
			products.POST("", r.productHandler.CreateProduct)
			products.GET("", r.productHandler.ListProducts)
			products.PATCH("/:id", r.productHandler.UpdateProduct)
		}

		agreements := admin.Group("/customer-agreements")
		{
			agreements.GET("/:uuid", r.agreementHandler.GetAgreement)
			agreements.PATCH("/:uuid", r.agreementHandler.UpdateAgreement)
			agreements.GET("/:uuid/auto-apply-choices", r.agreementHandler.GetAutoApplyChoices)
			agreements.PUT("/:uuid/auto-applied-plan", r.agreementHandler.SetAutoAppliedPlan)
		}
	}
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
