package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pharmlab/suppository-service/internal/domain/model"
	"github.com/pharmlab/suppository-service/internal/mocks"
	"github.com/pharmlab/suppository-service/internal/service"
)

func TestLoggingService_CreateLog(t *testing.T) {
	t.Run("fills id and timestamp before storing", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.LogEntry) bool {
			return !e.ID.IsZero() && !e.Timestamp.IsZero()
		})).Return(nil)
		svc := service.NewLoggingService(repo)

		err := svc.CreateLog(context.Background(), &model.LogEntry{Level: "info", Message: "hello"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("nil repository is a no-op", func(t *testing.T) {
		svc := service.NewLoggingService(nil)

		err := svc.CreateLog(context.Background(), &model.LogEntry{Level: "info"})

		assert.NoError(t, err)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("write failed"))
		svc := service.NewLoggingService(repo)

		err := svc.CreateLog(context.Background(), &model.LogEntry{Level: "info"})

		assert.EqualError(t, err, "write failed")
	})
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("stores entries in bulk", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(entries []*model.LogEntry) bool {
			for _, e := range entries {
				if e.ID.IsZero() || e.Timestamp.IsZero() {
					return false
				}
			}
			return len(entries) == 2
		})).Return(nil)
		svc := service.NewLoggingService(repo)

		err := svc.CreateLogs(context.Background(), []*model.LogEntry{
			{Level: "info", Message: "first"},
			{Level: "warn", Message: "second"},
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("empty slice is a no-op", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		svc := service.NewLoggingService(repo)

		err := svc.CreateLogs(context.Background(), nil)

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "CreateMany")
	})
}

func TestLoggingService_LogCalculation(t *testing.T) {
	f := model.Formulation{
		Count: 2, BlankWeightG: 2.0, BaseDensity: 1.0,
		Ingredients: []model.Ingredient{
			{Name: "Drug A", Amount: 200, Unit: model.UnitMilligram, Density: 3.0},
			{Name: "Ghost", Amount: 0, Unit: model.UnitMilligram, Density: 1.0},
		},
	}
	result, err := service.NewDensityRatioCalculator().Calculate(f)
	require.NoError(t, err)

	t.Run("writes an audit entry with formulation fields", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		var captured *model.LogEntry
		repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*model.LogEntry)
		}).Return(nil)
		svc := service.NewLoggingService(repo)

		err := svc.LogCalculation(context.Background(), "req-123", f, result)

		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, "req-123", captured.RequestID)
		assert.Equal(t, service.ActionCalculate, captured.ActionType)
		assert.Equal(t, "calculation completed", captured.Message)
		assert.Equal(t, 2, captured.Fields["count"])
		assert.Equal(t, result.RequiredBaseG, captured.Fields["required_base_g"])

		// Zero-amount ingredients are left out of the audit record.
		apis := captured.Fields["apis"].([]map[string]interface{})
		require.Len(t, apis, 1)
		assert.Equal(t, "Drug A", apis[0]["name"])
	})

	t.Run("records warning codes", func(t *testing.T) {
		overloaded := model.Formulation{
			Count: 1, BlankWeightG: 0.1, BaseDensity: 1.0,
			Ingredients: []model.Ingredient{{Name: "Heavy", Amount: 2.0, Unit: model.UnitGram, Density: 1.0}},
		}
		warnResult, err := service.NewDensityRatioCalculator().Calculate(overloaded)
		require.NoError(t, err)

		repo := new(mocks.MockLogsRepositoryInterface)
		var captured *model.LogEntry
		repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*model.LogEntry)
		}).Return(nil)
		svc := service.NewLoggingService(repo)

		require.NoError(t, svc.LogCalculation(context.Background(), "req-456", overloaded, warnResult))
		assert.Contains(t, captured.WarningCodes, string(model.WarnNegativeRequiredBase))
	})

	t.Run("nil repository is a no-op", func(t *testing.T) {
		svc := service.NewLoggingService(nil)

		assert.NoError(t, svc.LogCalculation(context.Background(), "req-789", f, result))
	})
}

func TestLoggingService_QueryAndCount(t *testing.T) {
	opts := model.LogQueryOptions{ActionType: service.ActionCalculate, Limit: 10}

	t.Run("query passes options through", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		entries := []*model.LogEntry{{Message: "calculation completed"}}
		repo.On("Query", mock.Anything, opts).Return(entries, nil)
		svc := service.NewLoggingService(repo)

		got, err := svc.QueryLogs(context.Background(), opts)

		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("count passes options through", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Count", mock.Anything, opts).Return(int64(42), nil)
		svc := service.NewLoggingService(repo)

		n, err := svc.CountLogs(context.Background(), opts)

		require.NoError(t, err)
		assert.Equal(t, int64(42), n)
	})

	t.Run("nil repository returns configuration error", func(t *testing.T) {
		svc := service.NewLoggingService(nil)

		_, err := svc.QueryLogs(context.Background(), opts)
		assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

		_, err = svc.CountLogs(context.Background(), opts)
		assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
	})
}
