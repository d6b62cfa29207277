package service

import (
	"context"
	"errors"
	"strings"

	"github.com/pharmlab/suppository-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrUnknownBase is returned when a named base is not in the catalog.
var ErrUnknownBase = errors.New("unknown base")

// DefaultBases is the built-in catalog used when no database is configured
// or no catalog document exists yet. Densities in g/mL at room temperature.
var DefaultBases = []repository.BaseDensity{
	{Name: "cocoa butter", DensityGML: 0.95},
	{Name: "witepsol h15", DensityGML: 0.96},
	{Name: "peg blend", DensityGML: 1.18},
	{Name: "glycerinated gelatin", DensityGML: 1.20},
}

// BaseCatalogService provides base catalog operations.
type BaseCatalogService interface {
	// GetActive returns the active catalog, falling back to DefaultBases
	// when no repository is configured or no document is active.
	GetActive(ctx context.Context) (*repository.BaseCatalogConfig, error)

	// ResolveDensity returns the density of a named base from the active
	// catalog. Matching is case-insensitive. Returns ErrUnknownBase when
	// the name is not present.
	ResolveDensity(ctx context.Context, name string) (float64, error)

	// Update replaces the catalog with a new active version.
	Update(ctx context.Context, bases []repository.BaseDensity, updatedBy string) (*repository.BaseCatalogConfig, error)

	// List returns catalog versions, newest first.
	List(ctx context.Context, limit int) ([]repository.BaseCatalogConfig, error)
}

// BaseCatalogServiceImpl implements BaseCatalogService.
type BaseCatalogServiceImpl struct {
	basesRepo repository.BasesRepositoryInterface
}

// NewBaseCatalogService creates a new base catalog service.
func NewBaseCatalogService(basesRepo repository.BasesRepositoryInterface) BaseCatalogService {
	if basesRepo == nil {
		return &BaseCatalogServiceImpl{}
	}
	return &BaseCatalogServiceImpl{
		basesRepo: basesRepo,
	}
}

func defaultCatalog() *repository.BaseCatalogConfig {
	return &repository.BaseCatalogConfig{
		Bases:   DefaultBases,
		Active:  true,
		Version: 0,
	}
}

func (s *BaseCatalogServiceImpl) GetActive(ctx context.Context) (*repository.BaseCatalogConfig, error) {
	if s.basesRepo == nil {
		return defaultCatalog(), nil
	}

	config, err := s.basesRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return defaultCatalog(), nil
	}
	return config, nil
}

func (s *BaseCatalogServiceImpl) ResolveDensity(ctx context.Context, name string) (float64, error) {
	config, err := s.GetActive(ctx)
	if err != nil {
		return 0, err
	}

	if density, ok := config.Density(normalizeBaseName(name)); ok {
		return density, nil
	}
	return 0, ErrUnknownBase
}

func (s *BaseCatalogServiceImpl) Update(ctx context.Context, bases []repository.BaseDensity, updatedBy string) (*repository.BaseCatalogConfig, error) {
	if s.basesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	for i := range bases {
		bases[i].Name = normalizeBaseName(bases[i].Name)
	}

	current, err := s.basesRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return s.basesRepo.Create(ctx, bases, updatedBy)
	}
	return s.basesRepo.Update(ctx, current.ID, bases, updatedBy)
}

func (s *BaseCatalogServiceImpl) List(ctx context.Context, limit int) ([]repository.BaseCatalogConfig, error) {
	if s.basesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.basesRepo.List(ctx, limit)
}

// normalizeBaseName lowercases and trims a base name so catalog lookups
// are case-insensitive.
func normalizeBaseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
