package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharmlab/suppository-service/internal/domain/dto"
	"github.com/pharmlab/suppository-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys against the
// configured set. The X-API-Key header wins over the api_key query
// parameter. A nil or empty key set disables the check entirely.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "":
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
		case !validKeys[key]:
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
		default:
			c.Next()
		}
	}
}

// abortUnauthorized ends the request with a localized 401 response.
func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	resp := dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}
