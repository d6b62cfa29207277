// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pharmlab/suppository-service/internal/repository"
)

type MockBasesRepositoryInterface struct {
	mock.Mock
}

func (m *MockBasesRepositoryInterface) GetActive(ctx context.Context) (*repository.BaseCatalogConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BaseCatalogConfig), args.Error(1)
}

func (m *MockBasesRepositoryInterface) Create(ctx context.Context, bases []repository.BaseDensity, createdBy string) (*repository.BaseCatalogConfig, error) {
	args := m.Called(ctx, bases, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BaseCatalogConfig), args.Error(1)
}

func (m *MockBasesRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, bases []repository.BaseDensity, updatedBy string) (*repository.BaseCatalogConfig, error) {
	args := m.Called(ctx, id, bases, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BaseCatalogConfig), args.Error(1)
}

func (m *MockBasesRepositoryInterface) List(ctx context.Context, limit int) ([]repository.BaseCatalogConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BaseCatalogConfig), args.Error(1)
}
