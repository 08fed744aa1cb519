package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single logged workout or movement session.
// Activities are append-only: once tracked they are never mutated or deleted.
type Activity struct {
	ID              uuid.UUID    // The unique ID for this activity record.
	UserID          uuid.UUID    // Links this activity to the User who performed it.
	Type            ActivityType // The enumerated category of the activity.
	DurationMinutes int          // How long the session lasted, in whole minutes.
	CaloriesBurned  int          // Estimated energy expenditure, in kcal.
	Notes           string       // Optional free-text notes from the user.
	StartedAt       time.Time    // When the session started, as reported by the client.
	CreatedAt       time.Time    // Timestamp of when this record was persisted.
}
