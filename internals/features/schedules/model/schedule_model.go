package model

import (
	"time"

	"github.com/google/uuid"

	clubModel "courtbeat_backend/internals/features/clubs/model"
	workoutModel "courtbeat_backend/internals/features/workouts/model"
)

// ScheduleModel: satu sesi workout untuk club; Duration = snapshot saat dibuat
type ScheduleModel struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	ClubID      uuid.UUID `json:"clubId" gorm:"type:uuid;not null;column:club_id"`
	WorkoutID   uuid.UUID `json:"workoutId" gorm:"type:uuid;not null;column:workout_id"`
	ScheduledAt time.Time `json:"scheduledAt" gorm:"not null;column:scheduled_at"`
	Duration    int       `json:"duration" gorm:"not null;column:duration"`
	IsCompleted bool      `json:"isCompleted" gorm:"not null;column:is_completed"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`

	Workout *workoutModel.WorkoutModel `json:"workout,omitempty" gorm:"foreignKey:WorkoutID;references:ID"`
	Club    *clubModel.ClubModel       `json:"club,omitempty" gorm:"foreignKey:ClubID;references:ID"`
}

func (ScheduleModel) TableName() string { return "schedules" }
