package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pharmlab/suppository-service/internal/domain/model"
	"github.com/pharmlab/suppository-service/internal/repository"
)

// ActionCalculate tags audit entries written for calculations.
const ActionCalculate = "calculate"

// ActionUpdateBases tags audit entries written for catalog updates.
const ActionUpdateBases = "update_bases"

// LoggingService defines the interface for log persistence operations.
type LoggingService interface {
	// CreateLog stores a single log entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// CreateLogs stores multiple log entries in bulk.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// LogCalculation stores an audit record of a completed calculation.
	LogCalculation(ctx context.Context, requestID string, f model.Formulation, result model.CalculationResult) error

	// QueryLogs retrieves log entries matching the query options.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)

	// CountLogs returns the count of log entries matching the query options.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements the LoggingService interface.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{
		repo: repo,
	}
}

// CreateLog stores a single log entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if s.repo == nil {
		return nil
	}
	prepare(entry)
	return s.repo.Create(ctx, entry)
}

// CreateLogs stores multiple log entries in bulk.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if s.repo == nil || len(entries) == 0 {
		return nil
	}
	for _, entry := range entries {
		prepare(entry)
	}
	return s.repo.CreateMany(ctx, entries)
}

// LogCalculation stores an audit record of a completed calculation. The
// formulation summary and key results go in the Fields map so history
// queries can reconstruct what was asked and answered.
func (s *LoggingServiceImpl) LogCalculation(ctx context.Context, requestID string, f model.Formulation, result model.CalculationResult) error {
	if s.repo == nil {
		return nil
	}

	codes := make([]string, len(result.Warnings))
	for i, w := range result.Warnings {
		codes[i] = string(w.Code)
	}

	apis := make([]map[string]interface{}, 0, len(f.Ingredients))
	for _, ing := range f.Ingredients {
		if !ing.Active() {
			continue
		}
		apis = append(apis, map[string]interface{}{
			"name":     ing.Name,
			"amount_g": ing.AmountGrams(),
			"density":  ing.Density,
		})
	}

	entry := &model.LogEntry{
		Level:        "info",
		Message:      "calculation completed",
		RequestID:    requestID,
		ActionType:   ActionCalculate,
		WarningCodes: codes,
		Fields: map[string]interface{}{
			"count":            f.Count,
			"blank_weight_g":   f.BlankWeightG,
			"base_density":     f.BaseDensity,
			"apis":             apis,
			"base_displaced_g": result.BaseDisplacedG,
			"required_base_g":  result.RequiredBaseG,
		},
	}

	return s.CreateLog(ctx, entry)
}

// QueryLogs retrieves log entries matching the query options.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Query(ctx, opts)
}

// CountLogs returns the count of log entries matching the query options.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	return s.repo.Count(ctx, opts)
}

func prepare(entry *model.LogEntry) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
}
