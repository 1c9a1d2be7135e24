package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims are the claims carried by both access and refresh tokens.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	// TokenType distinguishes access tokens from refresh tokens so a refresh
	// token can never be used to authenticate a request.
	TokenType string `json:"token_type"`
}

// TokenPair is the response body of register/login/refresh.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
