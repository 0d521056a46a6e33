package dto

import (
	"time"

	"github.com/google/uuid"

	model "courtbeat_backend/internals/features/schedules/model"
)

type CreateScheduleRequest struct {
	ClubID      uuid.UUID `json:"clubId" validate:"required"`
	WorkoutID   uuid.UUID `json:"workoutId" validate:"required"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
}

// ToModel: duration diisi service dari workout (snapshot)
func (r CreateScheduleRequest) ToModel(duration int) *model.ScheduleModel {
	return &model.ScheduleModel{
		ClubID:      r.ClubID,
		WorkoutID:   r.WorkoutID,
		ScheduledAt: r.ScheduledAt.UTC(),
		Duration:    duration,
		IsCompleted: false,
	}
}
