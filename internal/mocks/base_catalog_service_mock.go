// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pharmlab/suppository-service/internal/repository"
)

type MockBaseCatalogService struct {
	mock.Mock
}

func (m *MockBaseCatalogService) GetActive(ctx context.Context) (*repository.BaseCatalogConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BaseCatalogConfig), args.Error(1)
}

func (m *MockBaseCatalogService) ResolveDensity(ctx context.Context, name string) (float64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBaseCatalogService) Update(ctx context.Context, bases []repository.BaseDensity, updatedBy string) (*repository.BaseCatalogConfig, error) {
	args := m.Called(ctx, bases, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BaseCatalogConfig), args.Error(1)
}

func (m *MockBaseCatalogService) List(ctx context.Context, limit int) ([]repository.BaseCatalogConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BaseCatalogConfig), args.Error(1)
}
