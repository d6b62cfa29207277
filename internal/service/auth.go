package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmlab/suppository-service/config"
	"github.com/pharmlab/suppository-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAuthNotConfigured is returned when no admin credentials are set.
	ErrAuthNotConfigured = errors.New("authentication is not configured")
)

// AuthService provides authentication for the catalog admin endpoints.
// Credentials come from configuration rather than a user store; this
// service issues and validates HS256 access tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.TokenResponse, error)
	ValidateToken(tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	cfg config.AuthConfig
}

// NewAuthService creates a new authentication service.
func NewAuthService(cfg config.AuthConfig) AuthService {
	return &AuthServiceImpl{cfg: cfg}
}

// Login verifies the configured admin credentials and returns an access token.
func (s *AuthServiceImpl) Login(_ context.Context, username, password string) (*dto.TokenResponse, error) {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPasswordHash == "" {
		return nil, ErrAuthNotConfigured
	}

	if username != s.cfg.AdminUsername {
		// Burn a bcrypt comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := dto.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: signed,
		ExpiresIn:   int64(s.cfg.TokenTTL.Seconds()),
		TokenType:   "Bearer",
	}, nil
}

// ValidateToken parses and validates an access token.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	claims := &dto.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
