package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/pharmlab/suppository-service/internal/domain/dto"
	"github.com/pharmlab/suppository-service/internal/logger"
)

// Recovery returns a middleware that turns a handler panic into a 500
// response instead of tearing down the connection. The stack trace goes to
// the log, never to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log := logger.Logger()
				log.Error().
					Str("request_id", GetRequestID(c)).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("Handler panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:     dto.ErrCodeInternal,
					Message:   "An unexpected error occurred",
					RequestID: GetRequestID(c),
				})
			}
		}()
		c.Next()
	}
}
