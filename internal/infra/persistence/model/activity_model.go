package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table. Activities are append-only rows
// owned by a user through the user_id foreign key.
type ActivityModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ActivityType    string    `gorm:"type:varchar(50);not null"`
	DurationMinutes int       `gorm:"not null;default:0"`
	CaloriesBurned  int       `gorm:"not null;default:0"`
	Notes           string    `gorm:"type:text"`
	StartedAt       time.Time
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
