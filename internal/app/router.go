// Package app provides router configuration.
package app

import (
	"context"

	"github.com/pharmlab/suppository-service/config"
	"github.com/pharmlab/suppository-service/internal/http"
	"github.com/pharmlab/suppository-service/internal/middleware"
	"github.com/pharmlab/suppository-service/internal/repository"
	"github.com/pharmlab/suppository-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	calculator service.BaseCalculator,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var basesRepo repository.BasesRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		basesRepo = dbComponents.BasesRepo
		loggingService = dbComponents.LoggingService
	}

	// The catalog service falls back to the built-in defaults when no
	// repository is available.
	catalogService := service.NewBaseCatalogService(basesRepo)

	handler := http.NewHandler(calculator, catalogService)
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		if dbComponents.BasesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_bases", dbComponents.BasesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		if dbComponents.MongoDB != nil {
			db := dbComponents.MongoDB
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
				return db.HealthCheck(context.Background())
			}))
		}
	}

	// Catalog admin auth is available only with configured credentials.
	var authService service.AuthService
	if cfg.Auth.AdminUsername != "" && cfg.Auth.AdminPasswordHash != "" {
		authService = service.NewAuthService(cfg.Auth)
	}

	// Buffered worker pool for async request log writes.
	if loggingService != nil {
		middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		CatalogService:    catalogService,
		AuthService:       authService,
		Calculator:        calculator,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
