// Package main is the entry point for the esteticar API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"esteticar/internal/core/id"
	"esteticar/internal/domain"
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
	v1 "esteticar/internal/infrastructure/http/v1"
	"esteticar/internal/infrastructure/storage/postgres"
	"esteticar/internal/infrastructure/storage/postgres/auth_repo"
	"esteticar/internal/infrastructure/storage/postgres/catalog_repo"
	"esteticar/internal/infrastructure/storage/postgres/document_repo"
	"esteticar/internal/infrastructure/storage/postgres/finance_repo"
	"esteticar/internal/infrastructure/storage/postgres/report_repo"
	"esteticar/internal/infrastructure/vehiclelookup"
	"esteticar/pkg/logger"
	"esteticar/pkg/numerator"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("no .env file loaded: %v\n", err)
	}

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting esteticar server")

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv("DATABASE_URL")))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)
	numeratorService := numerator.New(pool)

	// --- Audit ---
	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- Registry services ---
	customerService := customer.NewService(catalog_repo.NewCustomerRepo(txManager), txManager, numeratorService)

	var lookup vehicle.Lookup
	if lookupURL := os.Getenv("VEHICLE_LOOKUP_URL"); lookupURL != "" {
		lookupCfg := vehiclelookup.DefaultConfig(lookupURL, os.Getenv("VEHICLE_LOOKUP_API_KEY"))
		lookup = vehiclelookup.NewClient(lookupCfg)
		log.Infow("vehicle plate lookup enabled", "url", lookupURL)
	}
	vehicleService := vehicle.NewService(catalog_repo.NewVehicleRepo(txManager), customerService, lookup, txManager, numeratorService)

	employeeService := employee.NewService(catalog_repo.NewEmployeeRepo(txManager), txManager, numeratorService)
	supplierService := supplier.NewService(catalog_repo.NewSupplierRepo(txManager), txManager, numeratorService)
	productService := product.NewService(catalog_repo.NewProductRepo(txManager), txManager, numeratorService)
	addonService := addon.NewService(catalog_repo.NewAddonRepo(txManager), txManager, numeratorService)

	wireAudit(customerService.Hooks(), auditService, "customer", func(c *customer.Customer) id.ID { return c.ID })
	wireAudit(vehicleService.Hooks(), auditService, "vehicle", func(v *vehicle.Vehicle) id.ID { return v.ID })
	wireAudit(employeeService.Hooks(), auditService, "employee", func(e *employee.Employee) id.ID { return e.ID })
	wireAudit(supplierService.Hooks(), auditService, "supplier", func(s *supplier.Supplier) id.ID { return s.ID })
	wireAudit(productService.Hooks(), auditService, "product", func(p *product.Product) id.ID { return p.ID })
	wireAudit(addonService.Hooks(), auditService, "addon", func(a *addon.Addon) id.ID { return a.ID })

	// --- Document services ---
	saleService := sale.NewService(document_repo.NewSaleRepo(txManager), productService, txManager, numeratorService)
	orderService := serviceorder.NewService(document_repo.NewServiceOrderRepo(txManager), addonService, txManager, numeratorService)

	// --- Finance services ---
	accountService := accounts.NewService(finance_repo.NewAccountRepo(txManager), txManager, numeratorService)
	cashbookService := cashbook.NewService(finance_repo.NewCashbookRepo(txManager), txManager, numeratorService)

	// --- Reports ---
	reportService := reports.NewService(report_repo.NewReportRepo(txManager))

	// --- Auth ---
	tokenManager := auth.NewTokenManager(
		mustEnv("JWT_SECRET"),
		getEnv("JWT_ISSUER", "esteticar"),
		getEnvDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
	)
	authService := auth.NewService(
		auth_repo.NewUserRepo(txManager),
		auth_repo.NewSessionRepo(txManager),
		tokenManager,
		txManager,
		getEnvDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour),
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:        pool,
		Logger:      log,
		CORSOrigins: splitEnv("CORS_ALLOWED_ORIGINS"),
		AuthService: authService,

		Customers: customerService,
		Vehicles:  vehicleService,
		Employees: employeeService,
		Suppliers: supplierService,
		Products:  productService,
		Addons:    addonService,

		Sales:         saleService,
		ServiceOrders: orderService,

		Accounts: accountService,
		Cashbook: cashbookService,

		Reports: reportService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

// wireAudit registers audit hooks on a registry service. Audit failures
// are logged, never propagated; a lost audit row must not fail the
// business operation.
func wireAudit[T interface{ Validate(ctx context.Context) error }](
	hooks *domain.HookRegistry[T],
	audit *postgres.AuditService,
	entityType string,
	entityID func(T) id.ID,
) {
	logChange := func(ctx context.Context, e T, action postgres.AuditAction) error {
		err := audit.LogChange(ctx, entityType, entityID(e), action, map[string]any{"state": e})
		if err != nil {
			logger.Warn(ctx, "audit write failed",
				"entity_type", entityType,
				"action", string(action),
				"error", err,
			)
		}
		return nil
	}

	hooks.OnAfterCreate(func(ctx context.Context, e T) error {
		return logChange(ctx, e, postgres.AuditActionCreate)
	})
	hooks.OnAfterUpdate(func(ctx context.Context, e T) error {
		return logChange(ctx, e, postgres.AuditActionUpdate)
	})
	hooks.OnAfterDelete(func(ctx context.Context, e T) error {
		return logChange(ctx, e, postgres.AuditActionDelete)
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
