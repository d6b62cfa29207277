// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pharmlab/suppository-service/internal/circuitbreaker"
	"github.com/pharmlab/suppository-service/internal/domain/model"
)

// BasesRepositoryWithCircuitBreaker wraps BasesRepository with circuit breaker protection.
type BasesRepositoryWithCircuitBreaker struct {
	repo           *BasesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBasesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBasesRepositoryWithCircuitBreaker(repo *BasesRepository, cb *circuitbreaker.CircuitBreaker) *BasesRepositoryWithCircuitBreaker {
	return &BasesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active base catalog with circuit breaker protection.
// An open circuit returns nil so callers fall back to the default catalog.
func (r *BasesRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*BaseCatalogConfig, error) {
	var result *BaseCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create creates a new base catalog with circuit breaker protection.
func (r *BasesRepositoryWithCircuitBreaker) Create(ctx context.Context, bases []BaseDensity, createdBy string) (*BaseCatalogConfig, error) {
	var result *BaseCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, bases, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates an existing base catalog with circuit breaker protection.
func (r *BasesRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, bases []BaseDensity, updatedBy string) (*BaseCatalogConfig, error) {
	var result *BaseCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, bases, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns base catalog versions with circuit breaker protection.
func (r *BasesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]BaseCatalogConfig, error) {
	var result []BaseCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *BasesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If the circuit is open the entry is dropped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If the circuit is open the entries are dropped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	var result []*model.LogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
