package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestTimeout tests request deadline enforcement.
func TestTimeout(t *testing.T) {
	t.Run("fast handler completes normally", func(t *testing.T) {
		router := gin.New()
		router.Use(TimeoutWithDuration(time.Second))
		router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("slow handler gets 504", func(t *testing.T) {
		router := gin.New()
		router.Use(TimeoutWithDuration(20 * time.Millisecond))
		router.GET("/slow", func(c *gin.Context) {
			select {
			case <-c.Request.Context().Done():
			case <-time.After(time.Second):
			}
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/slow", nil))

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Contains(t, w.Body.String(), "timeout")
	})
}

// TestDefaultTimeoutConfig tests the default settings.
func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "Request timeout", cfg.ErrorMessage)
}
