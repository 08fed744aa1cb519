package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when a refresh token is not found.
var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the standard operations for refresh token persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a refresh token record by its securely stored hash.
	FindByTokenHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteByTokenHash deletes a refresh token by its hash, effectively ending a session.
	DeleteByTokenHash(ctx context.Context, hash string) error

	// DeleteByUser deletes every refresh token belonging to a user, ending all their sessions.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
