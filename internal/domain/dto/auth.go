package dto

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the JSON request body for the login endpoint.
//
// @Description Admin credentials for catalog management
type LoginRequest struct {
	// Username is the admin username.
	Username string `json:"username" binding:"required"`
	// Password is the admin password.
	Password string `json:"password" binding:"required"`
} // @name LoginRequest

// TokenResponse carries an issued access token.
//
// @Description Issued JWT access token
type TokenResponse struct {
	// AccessToken is the signed JWT.
	AccessToken string `json:"access_token"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
	// TokenType is always "Bearer".
	TokenType string `json:"token_type" example:"Bearer"`
} // @name TokenResponse

// Claims are the JWT claims carried by issued tokens.
type Claims struct {
	// Username is the authenticated subject.
	Username string `json:"username"`
	jwt.RegisteredClaims
}
