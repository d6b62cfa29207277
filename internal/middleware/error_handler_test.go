package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestErrorHandler tests deferred error logging and the localized 500 fallback.
func TestErrorHandler(t *testing.T) {
	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(RequestID(), ErrorHandler())
		return router
	}

	t.Run("responds 500 when handler attaches error without writing", func(t *testing.T) {
		router := newRouter()
		router.GET("/fail", func(c *gin.Context) {
			_ = c.Error(errors.New("catalog lookup failed"))
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal_error")
		assert.Contains(t, w.Body.String(), "An unexpected error occurred")
		assert.Contains(t, w.Body.String(), "request_id")
	})

	t.Run("localizes the fallback message", func(t *testing.T) {
		router := newRouter()
		router.GET("/fail", func(c *gin.Context) {
			_ = c.Error(errors.New("catalog lookup failed"))
		})

		req := httptest.NewRequest("GET", "/fail", nil)
		req.Header.Set("Accept-Language", "pt-BR")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Ocorreu um erro inesperado")
	})

	t.Run("keeps the response a handler already wrote", func(t *testing.T) {
		router := newRouter()
		router.GET("/written", func(c *gin.Context) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			_ = c.Error(errors.New("validation failed"))
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/written", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_request")
		assert.NotContains(t, w.Body.String(), "internal_error")
	})

	t.Run("passes error-free requests through", func(t *testing.T) {
		router := newRouter()
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
