package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"sub"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string and returns its claims.
	// Signature, structure and expiry failures all surface as errors.
	ValidateToken(tokenString string) (*Claims, error)

	// IsValid reports whether the token verifies and is unexpired.
	// Every failure mode is swallowed into false.
	IsValid(tokenString string) bool

	// Subject extracts the user ID carried in the token's subject claim.
	// Unlike IsValid, parse and signature failures surface as errors.
	Subject(tokenString string) (uuid.UUID, error)

	// HashToken returns a deterministic hash of a token string, suitable for
	// storing refresh tokens at rest without keeping the raw value.
	HashToken(tokenString string) string

	// RefreshTokenDuration returns the configured duration for refresh tokens.
	RefreshTokenDuration() time.Duration
}
