package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/internal/controllers"
	"tailorshop/internal/repositories"
	"tailorshop/internal/services"
	"tailorshop/pkg/config"
	"tailorshop/pkg/eventbus"
	"tailorshop/pkg/middleware"
	"tailorshop/pkg/service"
)

// Container exposes the services main needs beyond HTTP: the background
// scheduler and the event listeners hang off these.
type Container struct {
	Billing       *services.BillingService
	Notifications *services.NotificationService
}

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	bus *eventbus.Bus,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) *Container {
	api := e.Group("/api")

	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	userRepo := repositories.NewUserRepository(dbConn, txManager)
	roleRepo := repositories.NewRoleRepository(dbConn)
	statusRepo := repositories.NewStatusRepository(dbConn)
	transitionRepo := repositories.NewTransitionRepository(dbConn)
	orderRepo := repositories.NewOrderRepository(dbConn)
	historyRepo := repositories.NewOrderHistoryRepository(dbConn)
	billRepo := repositories.NewBillRepository(dbConn)
	invoiceRepo := repositories.NewInvoiceRepository(dbConn)
	paymentRepo := repositories.NewPaymentRepository(dbConn)
	counterRepo := repositories.NewCounterRepository()
	garmentRepo := repositories.NewGarmentTypeRepository(dbConn)
	workTypeRepo := repositories.NewWorkTypeRepository(dbConn)
	customerRepo := repositories.NewCustomerRepository(dbConn)
	trialRepo := repositories.NewTrialRepository(dbConn)
	fabricRepo := repositories.NewFabricRepository(dbConn)
	configRepo := repositories.NewConfigRepository(dbConn)
	activityRepo := repositories.NewActivityLogRepository(dbConn)
	notificationRepo := repositories.NewNotificationRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)

	authPerms := services.NewAuthPermissionService(userRepo, roleRepo, cacheRepo, logger, cfg.Cache.RolePermissionsTTL)
	registry := services.NewStatusRegistryService(statusRepo, transitionRepo, cacheRepo, logger, cfg.Cache.TransitionTableTTL)
	billingService := services.NewBillingService(billRepo, orderRepo, trialRepo, configRepo, invoiceRepo, txManager, logger)
	lifecycleService := services.NewOrderLifecycleService(registry, orderRepo, historyRepo, paymentRepo, activityRepo, txManager, bus, logger)
	orderService := services.NewOrderService(
		orderRepo, counterRepo, garmentRepo, workTypeRepo, customerRepo,
		billRepo, invoiceRepo, configRepo, activityRepo, registry, txManager, bus, logger,
	)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, billRepo, invoiceRepo, userRepo, activityRepo, txManager, bus, logger)
	trialService := services.NewTrialService(trialRepo, orderRepo, billingService, txManager, bus, logger)
	catalogService := services.NewCatalogService(garmentRepo, workTypeRepo, logger)
	customerService := services.NewCustomerService(customerRepo, activityRepo, logger)
	inventoryService := services.NewInventoryService(fabricRepo, orderRepo, activityRepo, txManager, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo, roleRepo, authPerms, logger)
	configService := services.NewConfigService(configRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, userRepo, logger)
	reportService := services.NewReportService(reportRepo, invoiceRepo, fabricRepo, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc, authPerms, authPerms, logger)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, controllers.NewAuthController(authService, userService, logger))
	runStatusRouter(secureGroup, controllers.NewStatusController(registry, logger), authMW)
	runOrderRouter(secureGroup, controllers.NewOrderController(orderService, lifecycleService, logger), authMW)
	runBillingRouter(secureGroup, controllers.NewBillingController(billingService, logger), authMW)
	runPaymentRouter(secureGroup, controllers.NewPaymentController(paymentService, logger), authMW)
	runTrialRouter(secureGroup, controllers.NewTrialController(trialService, logger), authMW)
	runCatalogRouter(secureGroup, controllers.NewCatalogController(catalogService, logger), authMW)
	runCustomerRouter(secureGroup, controllers.NewCustomerController(customerService, logger), authMW)
	runInventoryRouter(secureGroup, controllers.NewInventoryController(inventoryService, logger), authMW)
	runUserRouter(secureGroup, controllers.NewUserController(userService, logger), authMW)
	runConfigRouter(secureGroup, controllers.NewConfigController(configService, logger), authMW)
	runNotificationRouter(secureGroup, controllers.NewNotificationController(notificationService, logger))
	runReportRouter(secureGroup, controllers.NewReportController(reportService, logger), authMW)

	logger.Info("routes registered")

	return &Container{
		Billing:       billingService,
		Notifications: notificationService,
	}
}
