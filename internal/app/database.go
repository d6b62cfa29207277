// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pharmlab/suppository-service/config"
	"github.com/pharmlab/suppository-service/internal/circuitbreaker"
	"github.com/pharmlab/suppository-service/internal/repository"
	"github.com/pharmlab/suppository-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	BasesRepo           repository.BasesRepositoryInterface
	LoggingService      service.LoggingService
	BasesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
	MongoDB             *repository.MongoDB
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if the database is disabled or connection fails; the service
// then runs on the built-in default catalog without calculation history.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	basesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-bases",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	basesRepo := repository.NewBasesRepository(db)
	basesRepoWithCB := repository.NewBasesRepositoryWithCircuitBreaker(basesRepo, basesCB)

	// Seed the default catalog if none exists
	if err := initializeDefaultBases(basesRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default base catalog")
	}

	return &DatabaseComponents{
		BasesRepo:           basesRepoWithCB,
		LoggingService:      loggingService,
		BasesCircuitBreaker: basesCB,
		LogsCircuitBreaker:  logsCB,
		MongoDB:             db,
	}
}

// initializeDefaultBases creates the default base catalog if none exists.
func initializeDefaultBases(repo repository.BasesRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		_, err := repo.Create(ctx, service.DefaultBases, "system")
		if err != nil {
			return err
		}
		log.Info().Int("bases", len(service.DefaultBases)).Msg("Created default base catalog")
	}

	return nil
}
