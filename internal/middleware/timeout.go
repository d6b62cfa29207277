package middleware

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pharmlab/suppository-service/internal/domain/dto"
	"github.com/pharmlab/suppository-service/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// ErrorMessage is the fallback message when no translator is set.
	ErrorMessage string
}

// DefaultTimeoutConfig returns sensible defaults for the timeout middleware.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout returns a middleware that caps request processing time. The
// deadline propagates through the request context, so catalog and log
// queries against the database are cancelled along with the handler.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		var finished atomic.Bool
		done := make(chan struct{})

		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			finished.Store(true)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			if finished.Load() || c.Writer.Written() {
				return
			}

			message := cfg.ErrorMessage
			if translator := i18n.GetTranslator(); translator != nil {
				message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			}

			resp := dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, resp)
		}
	}
}

// TimeoutWithDuration creates timeout middleware with a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
