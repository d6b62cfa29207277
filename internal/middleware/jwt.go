package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pharmlab/suppository-service/internal/i18n"
	"github.com/pharmlab/suppository-service/internal/service"
)

// JWTAuth returns a middleware that validates JWT tokens issued by the
// auth service. The authenticated username is stored in the context for
// audit records.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set("username", claims.Username)
		c.Set("user_claims", claims)

		c.Next()
	}
}

// GetUsername retrieves the authenticated username from the gin context.
func GetUsername(c *gin.Context) string {
	if v, exists := c.Get("username"); exists {
		if username, ok := v.(string); ok {
			return username
		}
	}
	return ""
}
