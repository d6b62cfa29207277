package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmlab/suppository-service/internal/service"
)

func TestRouter_InfrastructureRoutes(t *testing.T) {
	router := setupRouter()

	t.Run("healthz", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("swagger registered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := setupRouter()

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("client value echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "client-id-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "client-id-1", w.Header().Get("X-Request-ID"))
	})
}

func TestRouter_RateLimitHeaders(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/api/calculate",
		`{"count": 1, "blank_weight_g": 2.0, "base_density": 1.0, "apis": []}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
}

func TestRouter_SwaggerBasicAuth(t *testing.T) {
	calculator := service.NewDensityRatioCalculator()
	handler := NewHandler(calculator, nil)
	cfg := DefaultRouterConfig()
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "secret"
	router := NewRouter(handler, NewHealthHandler(), cfg)

	t.Run("rejected without credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("accepted with credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		req.SetBasicAuth("docs", "secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, http.StatusUnauthorized, w.Code)
		assert.NotEqual(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_APIKeyAuth(t *testing.T) {
	calculator := service.NewDensityRatioCalculator()
	handler := NewHandler(calculator, nil)
	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.APIKeys = map[string]bool{"valid-key": true}
	router := NewRouter(handler, NewHealthHandler(), cfg)

	body := `{"count": 1, "blank_weight_g": 2.0, "base_density": 1.0, "apis": []}`

	t.Run("rejected without key", func(t *testing.T) {
		w := postJSON(router, "/api/calculate", body, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("accepted with key", func(t *testing.T) {
		w := postJSON(router, "/api/calculate", body, map[string]string{"X-API-Key": "valid-key"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("health stays open", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_RequestTimeout(t *testing.T) {
	calculator := service.NewDensityRatioCalculator()
	handler := NewHandler(calculator, nil)
	cfg := DefaultRouterConfig()
	cfg.RequestTimeout = 50 * time.Millisecond
	router := NewRouter(handler, NewHealthHandler(), cfg)

	router.GET("/slow", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
			return
		case <-time.After(time.Second):
			c.Status(http.StatusOK)
		}
	})

	t.Run("slow handler times out", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/slow", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Contains(t, w.Body.String(), "timeout")
	})

	t.Run("fast requests unaffected", func(t *testing.T) {
		w := postJSON(router, "/api/calculate",
			`{"count": 1, "blank_weight_g": 2.0, "base_density": 1.0, "apis": []}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_IdempotencyReplay(t *testing.T) {
	calculator := service.NewDensityRatioCalculator()
	handler := NewHandler(calculator, nil)
	cfg := DefaultRouterConfig()
	cfg.EnableIdempotency = true
	router := NewRouter(handler, NewHealthHandler(), cfg)

	body := `{"count": 1, "blank_weight_g": 2.0, "base_density": 1.0, "apis": [{"name": "Drug A", "amount": 200, "unit": "mg", "density": 3.0}]}`
	headers := map[string]string{"Idempotency-Key": "calc-1"}

	first := postJSON(router, "/api/calculate", body, headers)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Empty(t, first.Header().Get("X-Idempotency-Replayed"))

	second := postJSON(router, "/api/calculate", body, headers)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}
