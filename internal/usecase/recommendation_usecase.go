package usecase

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// GenerateRecommendationInput carries the recommendation content produced for
// an activity, plus the user and activity it is attached to.
type GenerateRecommendationInput struct {
	UserID         uuid.UUID
	ActivityID     uuid.UUID
	Type           string
	Recommendation string
	Improvements   []string
	Suggestions    []string
	Safety         []string
}

// RecommendationView is the outward-facing representation of a recommendation record.
type RecommendationView struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	ActivityID     uuid.UUID `json:"activityId"`
	Type           string    `json:"type"`
	Recommendation string    `json:"recommendation"`
	Improvements   []string  `json:"improvements"`
	Suggestions    []string  `json:"suggestions"`
	Safety         []string  `json:"safety"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewRecommendationView maps a domain recommendation to its outward-facing view.
func NewRecommendationView(rec *entity.Recommendation) *RecommendationView {
	if rec == nil {
		return nil
	}

	return &RecommendationView{
		ID:             rec.ID,
		UserID:         rec.UserID,
		ActivityID:     rec.ActivityID,
		Type:           rec.Type.String(),
		Recommendation: rec.Recommendation,
		Improvements:   rec.Improvements,
		Suggestions:    rec.Suggestions,
		Safety:         rec.Safety,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

// RecommendationUsecase defines the interface for recommendation operations.
type RecommendationUsecase interface {
	// Generate builds and persists a recommendation for an existing activity.
	// Both the user and the activity must exist before anything is written.
	Generate(ctx context.Context, input *GenerateRecommendationInput) (*RecommendationView, error)

	// ListForUser returns every recommendation generated for the given user.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*RecommendationView, error)

	// ListForActivity returns every recommendation attached to the given activity.
	ListForActivity(ctx context.Context, activityID uuid.UUID) ([]*RecommendationView, error)
}
