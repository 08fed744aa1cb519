package repository

import (
	"context"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationRepository defines the standard operations for recommendation persistence.
type RecommendationRepository interface {
	// Create persists a new recommendation entity to the storage.
	Create(ctx context.Context, recommendation *entity.Recommendation) error

	// FindByUser retrieves all recommendations generated for the given user, in insertion order.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Recommendation, error)

	// FindByActivity retrieves all recommendations attached to the given activity, in insertion order.
	FindByActivity(ctx context.Context, activityID uuid.UUID) ([]*entity.Recommendation, error)
}
