package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pharmlab/suppository-service/internal/mocks"
	"github.com/pharmlab/suppository-service/internal/repository"
	"github.com/pharmlab/suppository-service/internal/service"
)

func activeCatalog() *repository.BaseCatalogConfig {
	return &repository.BaseCatalogConfig{
		ID: primitive.NewObjectID(),
		Bases: []repository.BaseDensity{
			{Name: "cocoa butter", DensityGML: 0.95},
			{Name: "peg blend", DensityGML: 1.18},
		},
		Active:    true,
		Version:   3,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestBaseCatalogService_GetActive(t *testing.T) {
	tests := []struct {
		name            string
		setupMock       func(*mocks.MockBasesRepositoryInterface)
		expectedError   error
		expectedVersion int
		expectedBases   []repository.BaseDensity
	}{
		{
			name: "returns active catalog",
			setupMock: func(m *mocks.MockBasesRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(activeCatalog(), nil)
			},
			expectedVersion: 3,
			expectedBases: []repository.BaseDensity{
				{Name: "cocoa butter", DensityGML: 0.95},
				{Name: "peg blend", DensityGML: 1.18},
			},
		},
		{
			name: "falls back to defaults when no active document",
			setupMock: func(m *mocks.MockBasesRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil)
			},
			expectedVersion: 0,
			expectedBases:   service.DefaultBases,
		},
		{
			name: "propagates repository error",
			setupMock: func(m *mocks.MockBasesRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockBasesRepositoryInterface)
			tt.setupMock(repo)
			svc := service.NewBaseCatalogService(repo)

			config, err := svc.GetActive(context.Background())

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, config)
			} else {
				require.NoError(t, err)
				require.NotNil(t, config)
				assert.Equal(t, tt.expectedVersion, config.Version)
				assert.Equal(t, tt.expectedBases, config.Bases)
			}
			repo.AssertExpectations(t)
		})
	}

	t.Run("nil repository serves defaults", func(t *testing.T) {
		svc := service.NewBaseCatalogService(nil)

		config, err := svc.GetActive(context.Background())

		require.NoError(t, err)
		assert.Equal(t, service.DefaultBases, config.Bases)
		assert.True(t, config.Active)
	})
}

func TestBaseCatalogService_ResolveDensity(t *testing.T) {
	repo := new(mocks.MockBasesRepositoryInterface)
	repo.On("GetActive", mock.Anything).Return(activeCatalog(), nil)
	svc := service.NewBaseCatalogService(repo)

	tests := []struct {
		name        string
		baseName    string
		expected    float64
		expectedErr error
	}{
		{name: "exact name", baseName: "cocoa butter", expected: 0.95},
		{name: "case-insensitive match", baseName: "Cocoa Butter", expected: 0.95},
		{name: "surrounding whitespace trimmed", baseName: "  peg blend ", expected: 1.18},
		{name: "unknown base", baseName: "lard", expectedErr: service.ErrUnknownBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			density, err := svc.ResolveDensity(context.Background(), tt.baseName)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, density)
			}
		})
	}

	t.Run("defaults resolve without repository", func(t *testing.T) {
		svc := service.NewBaseCatalogService(nil)

		density, err := svc.ResolveDensity(context.Background(), "Witepsol H15")

		require.NoError(t, err)
		assert.Equal(t, 0.96, density)
	})
}

func TestBaseCatalogService_Update(t *testing.T) {
	newBases := []repository.BaseDensity{{Name: "Cocoa Butter", DensityGML: 0.94}}
	normalized := []repository.BaseDensity{{Name: "cocoa butter", DensityGML: 0.94}}

	t.Run("creates first version when no active catalog", func(t *testing.T) {
		repo := new(mocks.MockBasesRepositoryInterface)
		repo.On("GetActive", mock.Anything).Return(nil, nil)
		created := &repository.BaseCatalogConfig{Bases: normalized, Active: true, Version: 1}
		repo.On("Create", mock.Anything, normalized, "admin").Return(created, nil)
		svc := service.NewBaseCatalogService(repo)

		config, err := svc.Update(context.Background(), newBases, "admin")

		require.NoError(t, err)
		assert.Equal(t, 1, config.Version)
		repo.AssertExpectations(t)
	})

	t.Run("updates existing catalog with normalized names", func(t *testing.T) {
		current := activeCatalog()
		repo := new(mocks.MockBasesRepositoryInterface)
		repo.On("GetActive", mock.Anything).Return(current, nil)
		updated := &repository.BaseCatalogConfig{Bases: normalized, Active: true, Version: current.Version + 1}
		repo.On("Update", mock.Anything, current.ID, normalized, "admin").Return(updated, nil)
		svc := service.NewBaseCatalogService(repo)

		config, err := svc.Update(context.Background(), newBases, "admin")

		require.NoError(t, err)
		assert.Equal(t, current.Version+1, config.Version)
		repo.AssertExpectations(t)
	})

	t.Run("nil repository returns configuration error", func(t *testing.T) {
		svc := service.NewBaseCatalogService(nil)

		_, err := svc.Update(context.Background(), newBases, "admin")

		assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
	})
}

func TestBaseCatalogService_List(t *testing.T) {
	t.Run("returns versions from repository", func(t *testing.T) {
		repo := new(mocks.MockBasesRepositoryInterface)
		versions := []repository.BaseCatalogConfig{*activeCatalog()}
		repo.On("List", mock.Anything, 10).Return(versions, nil)
		svc := service.NewBaseCatalogService(repo)

		got, err := svc.List(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, versions, got)
		repo.AssertExpectations(t)
	})

	t.Run("nil repository returns configuration error", func(t *testing.T) {
		svc := service.NewBaseCatalogService(nil)

		_, err := svc.List(context.Background(), 10)

		assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
	})
}
