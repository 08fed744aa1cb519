package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is an AI-generated coaching record tied to one user and one activity.
// Both references must point at existing records when the recommendation is created.
type Recommendation struct {
	ID             uuid.UUID    // The unique ID for this recommendation record.
	UserID         uuid.UUID    // Links this recommendation to the User it was generated for.
	ActivityID     uuid.UUID    // Links this recommendation to the Activity it analyzes.
	Type           ActivityType // The activity category this recommendation applies to.
	Recommendation string       // The main free-text recommendation body.
	Improvements   []string     // Suggested improvements, stored as a JSON column.
	Suggestions    []string     // Follow-up suggestions, stored as a JSON column.
	Safety         []string     // Safety notes, stored as a JSON column.
	CreatedAt      time.Time    // Timestamp of when this record was persisted.
	UpdatedAt      time.Time    // Timestamp of the last modification to this record.
}
