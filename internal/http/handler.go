package http

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pharmlab/suppository-service/internal/domain/dto"
	"github.com/pharmlab/suppository-service/internal/domain/model"
	"github.com/pharmlab/suppository-service/internal/i18n"
	"github.com/pharmlab/suppository-service/internal/metrics"
	"github.com/pharmlab/suppository-service/internal/middleware"
	"github.com/pharmlab/suppository-service/internal/parse"
	"github.com/pharmlab/suppository-service/internal/repository"
	"github.com/pharmlab/suppository-service/internal/service"
)

// catalogCache provides thread-safe caching of the active base catalog.
type catalogCache struct {
	catalog   atomic.Value // holds *repository.BaseCatalogConfig
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newCatalogCache creates a new catalog cache with the given TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	c := &catalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached catalog if valid, or nil if cache is expired/empty.
func (c *catalogCache) get() *repository.BaseCatalogConfig {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if v := c.catalog.Load(); v != nil {
				if cfg, ok := v.(*repository.BaseCatalogConfig); ok {
					return cfg
				}
			}
		}
	}
	return nil
}

// set stores the catalog in the cache with TTL.
func (c *catalogCache) set(cfg *repository.BaseCatalogConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.catalog.Store(cfg)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for the calculation routes.
type Handler struct {
	calculator     service.BaseCalculator
	catalogService service.BaseCatalogService
	explainer      *service.Explainer
	catalogCache   *catalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL for base catalog caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newCatalogCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.BaseCalculator, catalogService service.BaseCatalogService, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator:     calculator,
		catalogService: catalogService,
		explainer:      service.NewExplainer(),
		catalogCache:   newCatalogCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// resolveBaseDensity looks up a named base in the active catalog, using the
// TTL cache to avoid a database round trip per request.
func (h *Handler) resolveBaseDensity(ctx context.Context, name string) (float64, bool) {
	catalog := h.catalogCache.get()
	if catalog == nil {
		if h.catalogService == nil {
			return 0, false
		}

		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		cfg, err := h.catalogService.GetActive(ctx)
		if err != nil || cfg == nil {
			return 0, false
		}
		h.catalogCache.set(cfg)
		catalog = cfg
	}

	want := strings.ToLower(strings.TrimSpace(name))
	for _, b := range catalog.Bases {
		if strings.ToLower(b.Name) == want {
			return b.DensityGML, true
		}
	}
	return 0, false
}

// InvalidateCatalogCache invalidates the base catalog cache.
// Call this when the catalog is updated.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
}

// localizeWarnings fills the display message of each warning from the
// translation catalog. Codes stay stable; messages follow Accept-Language.
func localizeWarnings(c *gin.Context, warnings []model.Warning) {
	if len(warnings) == 0 {
		return
	}
	locale := i18n.GetLocale(c)
	translator := i18n.GetTranslator()
	for i := range warnings {
		message := translator.Translate(i18n.WarnKeyPrefix+string(warnings[i].Code), locale)
		if warnings[i].Ingredient != "" {
			message = warnings[i].Ingredient + ": " + message
		}
		warnings[i].Message = message
		metrics.RecordWarning(string(warnings[i].Code))
	}
}

// CalculateBase handles POST /api/calculate requests.
//
// @Summary      Calculate required suppository base
// @Description  Runs the five-step density-ratio method: total API mass, estimated blank base weight, per-ingredient density ratios, displaced base, and the required base mass. Advisory warnings flag negative results, implausibly large displacement, and suspected ratio inversion. Supports idempotency via Idempotency-Key header.
// @Tags         Calculations
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculateBaseRequest true "Batch and formulation inputs"
// @Success      200 {object} dto.SuccessResponse "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/calculate [post]
func (h *Handler) CalculateBase(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CalculateBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordCalculation(0, "validation_error")
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	baseDensity := req.BaseDensity
	if req.BaseName != "" && baseDensity == 0 {
		density, ok := h.resolveBaseDensity(c.Request.Context(), req.BaseName)
		if !ok {
			metrics.RecordCalculation(0, "unknown_base")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownBase, nil)
			return
		}
		baseDensity = density
	}

	formulation := req.Formulation(baseDensity)

	start := time.Now()
	result, err := h.calculator.Calculate(formulation)
	if err != nil {
		metrics.RecordCalculation(0, "validation_error")
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}
	duration := time.Since(start)

	localizeWarnings(c, result.Warnings)

	if req.IncludeSteps {
		result.Steps = h.explainer.Steps(formulation, result)
		result.Coaching = h.explainer.Coaching(formulation, result)
	}

	// Calculation history (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok && ls != nil {
			requestID := middleware.GetRequestID(c)
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = ls.LogCalculation(ctx, requestID, formulation, result)
			}()
		}
	}

	metrics.RecordCalculation(duration, "success")
	builder.SuccessOK(result)
}

// ParseFormulation handles POST /api/parse requests.
//
// @Summary      Parse a free-text formulation
// @Description  Parses a one-line formulation such as "N=12; blank 1.8 g; base 0.95; API: Drug A 150 mg, rho 1.2" and, when all inputs are present, runs the calculation. Missing inputs are listed so the caller can supply them.
// @Tags         Calculations
// @Accept       json
// @Produce      json
// @Param        request body dto.ParseFormulationRequest true "Free-text formulation"
// @Success      200 {object} dto.SuccessResponse "Parsed input, with result when complete"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/parse [post]
func (h *Handler) ParseFormulation(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ParseFormulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	parsed := parse.Formulation(req.Text)
	resp := dto.ParseFormulationResponse{
		Input:   parsed.Input,
		Missing: parsed.Missing,
	}

	if parsed.Complete() {
		start := time.Now()
		result, err := h.calculator.Calculate(parsed.Input)
		if err != nil {
			metrics.RecordCalculation(0, "validation_error")
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
			return
		}
		duration := time.Since(start)

		localizeWarnings(c, result.Warnings)

		if req.IncludeSteps {
			result.Steps = h.explainer.Steps(parsed.Input, result)
			result.Coaching = h.explainer.Coaching(parsed.Input, result)
		}

		metrics.RecordCalculation(duration, "success")
		resp.Result = &result
	}

	builder.SuccessOK(resp)
}
