package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestRecovery tests panic recovery.
func TestRecovery(t *testing.T) {
	t.Run("recovers from panic with 500", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), Recovery())
		router.GET("/panic", func(c *gin.Context) {
			panic("something broke")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal_error")
	})

	t.Run("passes normal requests through", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
