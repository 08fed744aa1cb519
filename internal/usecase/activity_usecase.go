package usecase

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackActivityInput defines the data required to record a finished activity.
type TrackActivityInput struct {
	UserID          uuid.UUID
	Type            string
	DurationMinutes int
	CaloriesBurned  int
	Notes           string
	StartedAt       time.Time
}

// ActivityView is the outward-facing representation of a tracked activity.
type ActivityView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Type            string    `json:"type"`
	DurationMinutes int       `json:"durationMinutes"`
	CaloriesBurned  int       `json:"caloriesBurned"`
	Notes           string    `json:"notes,omitempty"`
	StartedAt       time.Time `json:"startedAt"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewActivityView maps a domain activity to its outward-facing view.
func NewActivityView(activity *entity.Activity) *ActivityView {
	if activity == nil {
		return nil
	}

	return &ActivityView{
		ID:              activity.ID,
		UserID:          activity.UserID,
		Type:            activity.Type.String(),
		DurationMinutes: activity.DurationMinutes,
		CaloriesBurned:  activity.CaloriesBurned,
		Notes:           activity.Notes,
		StartedAt:       activity.StartedAt,
		CreatedAt:       activity.CreatedAt,
	}
}

// ActivityUsecase defines the interface for activity tracking operations.
type ActivityUsecase interface {
	// Track records a new activity for an existing user.
	Track(ctx context.Context, input *TrackActivityInput) (*ActivityView, error)

	// ListForUser returns every activity owned by the given user, oldest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*ActivityView, error)
}
