package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecommendationModel mirrors the 'recommendations' table. The list fields are
// persisted as JSON columns via gorm.io/datatypes.
type RecommendationModel struct {
	ID             uuid.UUID                  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID                  `gorm:"type:uuid;not null;index"`
	ActivityID     uuid.UUID                  `gorm:"type:uuid;not null;index"`
	Type           string                     `gorm:"type:varchar(50)"`
	Recommendation string                     `gorm:"type:text"`
	Improvements   datatypes.JSONSlice[string] `gorm:"type:json"`
	Suggestions    datatypes.JSONSlice[string] `gorm:"type:json"`
	Safety         datatypes.JSONSlice[string] `gorm:"type:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecommendationModel) TableName() string {
	return "recommendations"
}
