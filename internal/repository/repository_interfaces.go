// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pharmlab/suppository-service/internal/domain/model"
)

// BasesRepositoryInterface defines the interface for base catalog repository operations.
type BasesRepositoryInterface interface {
	GetActive(ctx context.Context) (*BaseCatalogConfig, error)
	Create(ctx context.Context, bases []BaseDensity, createdBy string) (*BaseCatalogConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, bases []BaseDensity, updatedBy string) (*BaseCatalogConfig, error)
	List(ctx context.Context, limit int) ([]BaseCatalogConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
