// Package metrics provides Prometheus metrics collection for the
// suppository service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CalculationsTotal tracks base calculations by outcome.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "base_calculations_total",
			Help: "Total number of density-ratio base calculations",
		},
		[]string{"status"},
	)

	// CalculationDuration tracks base calculation duration.
	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "base_calculation_duration_seconds",
			Help:    "Density-ratio base calculation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// CalculationWarningsTotal tracks advisory warnings raised per code.
	CalculationWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "base_calculation_warnings_total",
			Help: "Total number of advisory warnings raised by calculations",
		},
		[]string{"code"},
	)

	// CacheOperationsTotal tracks result cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current result cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks result cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCalculation records metrics for one base calculation.
func RecordCalculation(duration time.Duration, status string) {
	CalculationDuration.Observe(duration.Seconds())
	CalculationsTotal.WithLabelValues(status).Inc()
}

// RecordWarning records one advisory warning by code.
func RecordWarning(code string) {
	CalculationWarningsTotal.WithLabelValues(code).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
