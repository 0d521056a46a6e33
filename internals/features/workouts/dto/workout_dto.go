// internals/features/workouts/dto/workout_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	scheduleModel "courtbeat_backend/internals/features/schedules/model"
	model "courtbeat_backend/internals/features/workouts/model"
)

/* ===================== REQUESTS ===================== */

type CreateWorkoutRequest struct {
	Title       string             `json:"title" validate:"required,min=1,max=200"`
	Description *string            `json:"description" validate:"omitempty,max=2000"`
	Type        model.WorkoutType  `json:"type" validate:"required,oneof=CONDITIONING PILATES ZUMBA SPORT_SPECIFIC"`
	SportType   *model.SportType   `json:"sportType" validate:"omitempty,oneof=PADEL TENNIS PICKLEBALL GENERAL"`
	Difficulty  *model.Difficulty  `json:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED ALL_LEVELS"`
	Duration    int                `json:"duration" validate:"required,min=1"` // menit

	RequiresReformer *bool `json:"requiresReformer"`
	RequiresRacket   *bool `json:"requiresRacket"`
	RequiresMat      *bool `json:"requiresMat"`
	HasVerbalCues    *bool `json:"hasVerbalCues"`
	HasVisualMods    *bool `json:"hasVisualMods"`

	InstructorNotes *string `json:"instructorNotes" validate:"omitempty,max=2000"`
	ThumbnailURL    *string `json:"thumbnailUrl" validate:"omitempty,max=2000"`
}

// ToModel: default mengikuti DDL (GENERAL, ALL_LEVELS, verbal cues on, aktif)
func (r CreateWorkoutRequest) ToModel() *model.WorkoutModel {
	m := &model.WorkoutModel{
		Title:           strings.TrimSpace(r.Title),
		Description:     trimmedOrNil(r.Description),
		Type:            r.Type,
		SportType:       model.SportGeneral,
		Difficulty:      model.DifficultyAllLevels,
		Duration:        r.Duration,
		HasVerbalCues:   true,
		InstructorNotes: trimmedOrNil(r.InstructorNotes),
		ThumbnailURL:    trimmedOrNil(r.ThumbnailURL),
		IsActive:        true,
		Videos:          []model.VideoModel{},
	}
	if r.SportType != nil {
		m.SportType = *r.SportType
	}
	if r.Difficulty != nil {
		m.Difficulty = *r.Difficulty
	}
	setBool(&m.RequiresReformer, r.RequiresReformer)
	setBool(&m.RequiresRacket, r.RequiresRacket)
	setBool(&m.RequiresMat, r.RequiresMat)
	setBool(&m.HasVerbalCues, r.HasVerbalCues)
	setBool(&m.HasVisualMods, r.HasVisualMods)
	return m
}

// Update: semua optional (partial update)
type UpdateWorkoutRequest struct {
	Title       *string            `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string            `json:"description" validate:"omitempty,max=2000"`
	Type        *model.WorkoutType `json:"type" validate:"omitempty,oneof=CONDITIONING PILATES ZUMBA SPORT_SPECIFIC"`
	SportType   *model.SportType   `json:"sportType" validate:"omitempty,oneof=PADEL TENNIS PICKLEBALL GENERAL"`
	Difficulty  *model.Difficulty  `json:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED ALL_LEVELS"`
	Duration    *int               `json:"duration" validate:"omitempty,min=1"`

	RequiresReformer *bool `json:"requiresReformer"`
	RequiresRacket   *bool `json:"requiresRacket"`
	RequiresMat      *bool `json:"requiresMat"`
	HasVerbalCues    *bool `json:"hasVerbalCues"`
	HasVisualMods    *bool `json:"hasVisualMods"`

	InstructorNotes *string `json:"instructorNotes" validate:"omitempty,max=2000"`
	ThumbnailURL    *string `json:"thumbnailUrl" validate:"omitempty,max=2000"`

	IsActive  *bool `json:"isActive"`
	SortOrder *int  `json:"sortOrder"`
}

// ApplyToModel: terapkan hanya field yang dikirim
func (r *UpdateWorkoutRequest) ApplyToModel(m *model.WorkoutModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.Description = trimmedOrNil(r.Description)
	}
	if r.Type != nil {
		m.Type = *r.Type
	}
	if r.SportType != nil {
		m.SportType = *r.SportType
	}
	if r.Difficulty != nil {
		m.Difficulty = *r.Difficulty
	}
	if r.Duration != nil {
		m.Duration = *r.Duration
	}
	setBool(&m.RequiresReformer, r.RequiresReformer)
	setBool(&m.RequiresRacket, r.RequiresRacket)
	setBool(&m.RequiresMat, r.RequiresMat)
	setBool(&m.HasVerbalCues, r.HasVerbalCues)
	setBool(&m.HasVisualMods, r.HasVisualMods)
	if r.InstructorNotes != nil {
		m.InstructorNotes = trimmedOrNil(r.InstructorNotes)
	}
	if r.ThumbnailURL != nil {
		m.ThumbnailURL = trimmedOrNil(r.ThumbnailURL)
	}
	setBool(&m.IsActive, r.IsActive)
	if r.SortOrder != nil {
		m.SortOrder = *r.SortOrder
	}
}

/* ===================== QUERIES ===================== */

// WorkoutFilter: query GET /api/workouts, semua filter equality
type WorkoutFilter struct {
	Type              *model.WorkoutType `json:"type" validate:"omitempty,oneof=CONDITIONING PILATES ZUMBA SPORT_SPECIFIC"`
	SportType         *model.SportType   `json:"sportType" validate:"omitempty,oneof=PADEL TENNIS PICKLEBALL GENERAL"`
	Difficulty        *model.Difficulty  `json:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED ALL_LEVELS"`
	RequiresReformer  *bool              `json:"requiresReformer"`
	HasReformerAccess *bool              `json:"hasReformerAccess"`
}

// Effective: club tanpa reformer tidak boleh melihat workout reformer,
// apa pun nilai filter requiresReformer.
func (f WorkoutFilter) Effective() WorkoutFilter {
	if f.HasReformerAccess != nil && !*f.HasReformerAccess {
		no := false
		f.RequiresReformer = &no
	}
	return f
}

/* ===================== RESPONSES ===================== */

// VideoSummary: video processed yang ikut di list workout
type VideoSummary struct {
	ID        uuid.UUID `json:"id"`
	StreamURL *string   `json:"streamUrl"`
	Duration  *int      `json:"duration"`
}

type WorkoutListItem struct {
	model.WorkoutModel
	Videos []VideoSummary `json:"videos"`
}

func NewWorkoutListItem(m model.WorkoutModel) WorkoutListItem {
	out := WorkoutListItem{WorkoutModel: m, Videos: make([]VideoSummary, 0, len(m.Videos))}
	for _, v := range m.Videos {
		if !v.IsProcessed {
			continue
		}
		out.Videos = append(out.Videos, VideoSummary{ID: v.ID, StreamURL: v.StreamURL, Duration: v.Duration})
	}
	out.WorkoutModel.Videos = nil
	return out
}

// WorkoutDetailResponse: workout + semua video + 10 jadwal terakhir
type WorkoutDetailResponse struct {
	model.WorkoutModel
	Schedules []scheduleModel.ScheduleModel `json:"schedules"`
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
