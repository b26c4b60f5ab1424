package v1

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"esteticar/internal/domain/auth"
	"esteticar/internal/domain/catalogs/addon"
	"esteticar/internal/domain/catalogs/customer"
	"esteticar/internal/domain/catalogs/employee"
	"esteticar/internal/domain/catalogs/product"
	"esteticar/internal/domain/catalogs/supplier"
	"esteticar/internal/domain/catalogs/vehicle"
	"esteticar/internal/domain/documents/sale"
	"esteticar/internal/domain/documents/serviceorder"
	"esteticar/internal/domain/finance/accounts"
	"esteticar/internal/domain/finance/cashbook"
	"esteticar/internal/domain/reports"
	"esteticar/internal/infrastructure/http/v1/handlers"
	"esteticar/internal/infrastructure/http/v1/middleware"
	"esteticar/internal/infrastructure/storage/postgres"
	"esteticar/pkg/logger"
)

// RouterConfig holds the services the router exposes.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	// CORSOrigins lists allowed browser origins. Empty means localhost
	// development defaults.
	CORSOrigins []string

	AuthService *auth.Service

	Customers *customer.Service
	Vehicles  *vehicle.Service
	Employees *employee.Service
	Suppliers *supplier.Service
	Products  *product.Service
	Addons    *addon.Service

	Sales         *sale.Service
	ServiceOrders *serviceorder.Service

	Accounts *accounts.Service
	Cashbook *cashbook.Service

	Reports *reports.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.HeaderRequestID}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

		// Public auth endpoints
		publicAuth := apiV1.Group("/auth")
		publicAuth.POST("/login", authHandler.Login)
		publicAuth.POST("/refresh", authHandler.Refresh)

		// Everything else requires a valid session
		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.AuthService))

		protected.POST("/auth/logout", authHandler.Logout)
		protected.POST("/auth/register", middleware.RequireRole("admin"), authHandler.Register)

		registerCatalogRoutes(protected, baseHandler, cfg)
		registerDocumentRoutes(protected, baseHandler, cfg)
		registerFinanceRoutes(protected, baseHandler, cfg)
		registerReportRoutes(protected, baseHandler, cfg)
	}

	return router
}

// registerCatalogRoutes registers registry endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	customerHandler := handlers.NewCustomerHandler(base, cfg.Customers)
	RegisterCatalogRoutes(rg.Group("/customers"), customerHandler)

	vehicleHandler := handlers.NewVehicleHandler(base, cfg.Vehicles)
	vehicles := rg.Group("/vehicles")
	vehicles.GET("/plate/:plate", vehicleHandler.GetByPlate)
	RegisterCatalogRoutes(vehicles, vehicleHandler)
	rg.GET("/customers/:id/vehicles", vehicleHandler.ListByCustomer)

	employeeHandler := handlers.NewEmployeeHandler(base, cfg.Employees)
	RegisterCatalogRoutes(rg.Group("/employees"), employeeHandler)

	supplierHandler := handlers.NewSupplierHandler(base, cfg.Suppliers)
	RegisterCatalogRoutes(rg.Group("/suppliers"), supplierHandler)

	productHandler := handlers.NewProductHandler(base, cfg.Products)
	products := rg.Group("/products")
	products.POST("/:id/adjust-stock", productHandler.AdjustStock)
	RegisterCatalogRoutes(products, productHandler)

	addonHandler := handlers.NewAddonHandler(base, cfg.Addons)
	RegisterCatalogRoutes(rg.Group("/addons"), addonHandler)
}

// registerDocumentRoutes registers sale and service-order endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	saleHandler := handlers.NewSaleHandler(base, cfg.Sales)
	sales := rg.Group("/sales")
	{
		sales.GET("", saleHandler.List)
		sales.POST("", saleHandler.Create)
		sales.GET("/:id", saleHandler.Get)
		sales.DELETE("/:id", saleHandler.Delete)
		sales.POST("/:id/pay", saleHandler.Pay)
		sales.POST("/:id/cancel", saleHandler.Cancel)
	}

	orderHandler := handlers.NewServiceOrderHandler(base, cfg.ServiceOrders)
	orders := rg.Group("/service-orders")
	{
		orders.GET("", orderHandler.List)
		orders.POST("", orderHandler.Create)
		orders.GET("/:id", orderHandler.Get)
		orders.PUT("/:id", orderHandler.Update)
		orders.DELETE("/:id", orderHandler.Delete)
		orders.POST("/:id/pay", orderHandler.Pay)
		orders.POST("/:id/cancel", orderHandler.Cancel)
	}
}

// registerFinanceRoutes registers account and cashbook endpoints.
func registerFinanceRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	registerAccountRoutes := func(group *gin.RouterGroup, kind accounts.Kind) {
		handler := handlers.NewAccountHandler(base, cfg.Accounts, kind)
		group.GET("", handler.List)
		group.POST("", handler.Create)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
		group.POST("/:id/pay", handler.Pay)
		group.POST("/:id/cancel", handler.Cancel)
	}
	registerAccountRoutes(rg.Group("/accounts-payable"), accounts.KindPayable)
	registerAccountRoutes(rg.Group("/accounts-receivable"), accounts.KindReceivable)

	cashbookHandler := handlers.NewCashbookHandler(base, cfg.Cashbook)
	cash := rg.Group("/cashbook")
	{
		cash.GET("", cashbookHandler.List)
		cash.POST("", cashbookHandler.Create)
		cash.GET("/:id", cashbookHandler.Get)
		cash.PUT("/:id", cashbookHandler.Update)
		cash.DELETE("/:id", cashbookHandler.Delete)
	}
}

// registerReportRoutes registers reporting endpoints.
func registerReportRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	reportHandler := handlers.NewReportHandler(base, cfg.Reports)
	rep := rg.Group("/reports")
	{
		rep.GET("/sales", reportHandler.Sales)
		rep.GET("/services", reportHandler.Services)
		rep.GET("/customers", reportHandler.Customers)
		rep.GET("/stock", reportHandler.Stock)
		rep.GET("/financial", reportHandler.Financial)
		rep.GET("/cash-flow", reportHandler.CashFlow)
		rep.GET("/general", reportHandler.General)
		rep.POST("/export", reportHandler.Export)
	}
}
