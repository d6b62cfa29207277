// Package cache defines the caching contract for calculation results.
package cache

import "github.com/pharmlab/suppository-service/internal/domain/model"

// Entry pairs a cached result with the formulation that produced it. Keys
// are input hashes, so a lookup must compare the stored formulation against
// the requested one before trusting the result.
type Entry struct {
	Input  model.Formulation
	Result model.CalculationResult
}

// Cache defines the interface for calculation result caching. Keys are
// input hashes produced by the calculator.
type Cache interface {
	Get(key uint64) (Entry, bool)
	Set(key uint64, entry Entry)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance counters.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
