package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharmlab/suppository-service/internal/domain/dto"
	"github.com/pharmlab/suppository-service/internal/i18n"
	"github.com/pharmlab/suppository-service/internal/logger"
)

// ErrorHandler returns a middleware that logs errors handlers attached to
// the context and answers with a localized 500 when no handler wrote a
// response. Handlers that already responded keep their status and body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
		c.JSON(http.StatusInternalServerError,
			dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
	}
}
