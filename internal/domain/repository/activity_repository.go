package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrActivityNotFound is a domain-specific error returned when an activity is not found.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityRepository defines the standard operations for activity persistence.
type ActivityRepository interface {
	// Create persists a new activity entity to the storage.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByID retrieves a single activity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// FindByUser retrieves all activities owned by the given user, in insertion order.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)
}
