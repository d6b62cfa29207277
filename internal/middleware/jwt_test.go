package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmlab/suppository-service/config"
	"github.com/pharmlab/suppository-service/internal/service"
)

func jwtTestSetup(t *testing.T) (service.AuthService, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	authService := service.NewAuthService(config.AuthConfig{
		JWTSecret:         "jwt-test-secret",
		TokenTTL:          time.Minute,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	})

	token, err := authService.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	return authService, token.AccessToken
}

func jwtTestRouter(authService service.AuthService) (*gin.Engine, *string) {
	var username string
	router := gin.New()
	router.Use(JWTAuth(authService))
	router.GET("/protected", func(c *gin.Context) {
		username = GetUsername(c)
		c.Status(http.StatusOK)
	})
	return router, &username
}

// TestJWTAuth tests bearer token enforcement.
func TestJWTAuth(t *testing.T) {
	authService, token := jwtTestSetup(t)

	t.Run("valid token passes and sets username", func(t *testing.T) {
		router, username := jwtTestRouter(authService)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", *username)
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer token", header: "Bearer "},
		{name: "malformed token", header: "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := jwtTestRouter(authService)

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "unauthorized")
		})
	}
}

// TestGetUsername tests the context accessor.
func TestGetUsername(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetUsername(c))

	c.Set("username", "admin")
	assert.Equal(t, "admin", GetUsername(c))
}
