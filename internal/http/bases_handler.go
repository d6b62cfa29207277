package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pharmlab/suppository-service/internal/domain/dto"
	"github.com/pharmlab/suppository-service/internal/middleware"
	"github.com/pharmlab/suppository-service/internal/repository"
	"github.com/pharmlab/suppository-service/internal/service"
)

// BasesHandler provides HTTP handlers for base catalog routes.
type BasesHandler struct {
	catalogService service.BaseCatalogService
	calcHandler    *Handler
}

// NewBasesHandler creates a new BasesHandler instance. The calculation
// handler is optional; when present its catalog cache is invalidated on
// updates.
func NewBasesHandler(catalogService service.BaseCatalogService, calcHandler *Handler) *BasesHandler {
	return &BasesHandler{
		catalogService: catalogService,
		calcHandler:    calcHandler,
	}
}

// GetActiveBases handles GET /api/bases requests.
//
// @Summary      Get active base catalog
// @Description  Returns the currently active suppository base catalog with densities in g/mL
// @Tags         Bases
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active base catalog"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bases [get]
func (h *BasesHandler) GetActiveBases(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.catalogService.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"bases":      config.Bases,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateBases handles PUT /api/bases requests.
//
// @Summary      Update base catalog
// @Description  Replaces the active base catalog with a new version
// @Tags         Bases
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body dto.UpdateBasesRequest true "New base catalog"
// @Success      200 {object} dto.SuccessResponse "Updated base catalog"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/bases [put]
func (h *BasesHandler) UpdateBases(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateBasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	bases := make([]repository.BaseDensity, len(req.Bases))
	for i, b := range req.Bases {
		bases[i] = repository.BaseDensity{Name: b.Name, DensityGML: b.DensityGML}
	}

	updatedBy := req.CreatedBy
	if updatedBy == "" {
		updatedBy = middleware.GetUsername(c)
	}

	config, err := h.catalogService.Update(c.Request.Context(), bases, updatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	if h.calcHandler != nil {
		h.calcHandler.InvalidateCatalogCache()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, service.ActionUpdateBases, "Base catalog updated", map[string]interface{}{
				"base_count": len(config.Bases),
				"version":    config.Version,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"bases":      config.Bases,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListBases handles GET /api/bases/history requests.
//
// @Summary      List base catalog history
// @Description  Returns base catalog versions, newest first
// @Tags         Bases
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Base catalog history"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bases/history [get]
func (h *BasesHandler) ListBases(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.catalogService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	builder.SuccessOK(configs)
}
