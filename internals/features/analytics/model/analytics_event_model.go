package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event type yang dipakai agregasi; selain ini bebas (free-form).
const (
	EventWorkoutPlayed  = "workout_played"
	EventSessionStarted = "session_started"
	EventClubAccessed   = "club_accessed"
)

// AnalyticsEventModel: append-only, tidak pernah di-update/dihapus
type AnalyticsEventModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	ClubID    uuid.UUID      `json:"clubId" gorm:"type:uuid;not null;column:club_id"`
	EventType string         `json:"eventType" gorm:"type:text;not null;column:event_type"`
	WorkoutID *uuid.UUID     `json:"workoutId,omitempty" gorm:"type:uuid;column:workout_id"`
	SessionID string         `json:"sessionId" gorm:"type:text;not null;column:session_id"`
	Metadata  datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb;column:metadata"`
	Timestamp time.Time      `json:"timestamp" gorm:"not null;column:timestamp"`
}

func (AnalyticsEventModel) TableName() string { return "analytics" }
