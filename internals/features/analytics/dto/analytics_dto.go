package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "courtbeat_backend/internals/features/analytics/model"
)

type TrackEventRequest struct {
	ClubID    uuid.UUID      `json:"clubId" validate:"required"`
	EventType string         `json:"eventType" validate:"required,max=100"`
	WorkoutID *uuid.UUID     `json:"workoutId"`
	Metadata  datatypes.JSON `json:"metadata"`
}

func (r TrackEventRequest) ToModel(sessionID string, now time.Time) *model.AnalyticsEventModel {
	m := &model.AnalyticsEventModel{
		ClubID:    r.ClubID,
		EventType: strings.TrimSpace(r.EventType),
		WorkoutID: r.WorkoutID,
		SessionID: sessionID,
		Timestamp: now.UTC(),
	}
	if meta := strings.TrimSpace(string(r.Metadata)); meta != "" && meta != "null" {
		m.Metadata = r.Metadata
	}
	return m
}

type WorkoutCount struct {
	WorkoutID uuid.UUID `json:"workoutId"`
	Count     int       `json:"count"`
}

type ClubStatsResponse struct {
	TotalEvents      int            `json:"totalEvents"`
	WorkoutPlays     int            `json:"workoutPlays"`
	Sessions         int            `json:"sessions"`
	UniqueWorkouts   int            `json:"uniqueWorkouts"`
	WorkoutBreakdown []WorkoutCount `json:"workoutBreakdown"`
	PeriodDays       int            `json:"periodDays"`
}
