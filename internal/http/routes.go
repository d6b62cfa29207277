package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pharmlab/suppository-service/internal/middleware"
	"github.com/pharmlab/suppository-service/internal/service"
)

// CalculationRoutes handles calculation and catalog route registration.
type CalculationRoutes struct {
	handler      *Handler
	basesHandler *BasesHandler
}

// NewCalculationRoutes creates a new CalculationRoutes instance.
func NewCalculationRoutes(calculator service.BaseCalculator, catalogService service.BaseCatalogService) *CalculationRoutes {
	handler := NewHandler(calculator, catalogService)

	var basesHandler *BasesHandler
	if catalogService != nil {
		basesHandler = NewBasesHandler(catalogService, handler)
	}

	return &CalculationRoutes{
		handler:      handler,
		basesHandler: basesHandler,
	}
}

// RegisterPublicRoutes registers all routes without authentication.
// Used when no auth service is configured.
func (r *CalculationRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculate", r.handler.CalculateBase)
	rg.POST("/parse", r.handler.ParseFormulation)

	if r.basesHandler != nil {
		rg.GET("/bases", r.basesHandler.GetActiveBases)
		rg.PUT("/bases", r.basesHandler.UpdateBases)
		rg.GET("/bases/history", r.basesHandler.ListBases)
	}
}

// RegisterRoutes registers public calculation routes and JWT-protects the
// catalog update endpoint.
func (r *CalculationRoutes) RegisterRoutes(rg *gin.RouterGroup, authService service.AuthService) {
	rg.POST("/calculate", r.handler.CalculateBase)
	rg.POST("/parse", r.handler.ParseFormulation)

	if r.basesHandler != nil {
		rg.GET("/bases", r.basesHandler.GetActiveBases)
		rg.GET("/bases/history", r.basesHandler.ListBases)

		protected := rg.Group("")
		protected.Use(middleware.JWTAuth(authService))
		protected.PUT("/bases", r.basesHandler.UpdateBases)
	}
}

// GetHandler returns the underlying calculation handler.
func (r *CalculationRoutes) GetHandler() *Handler {
	return r.handler
}
