package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkoutType string

const (
	WorkoutConditioning  WorkoutType = "CONDITIONING"
	WorkoutPilates       WorkoutType = "PILATES"
	WorkoutZumba         WorkoutType = "ZUMBA"
	WorkoutSportSpecific WorkoutType = "SPORT_SPECIFIC"
)

type SportType string

const (
	SportPadel      SportType = "PADEL"
	SportTennis     SportType = "TENNIS"
	SportPickleball SportType = "PICKLEBALL"
	SportGeneral    SportType = "GENERAL"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
	DifficultyAllLevels    Difficulty = "ALL_LEVELS"
)

// WorkoutModel merepresentasikan tabel workouts (katalog, soft delete via is_active)
type WorkoutModel struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Title       string      `json:"title" gorm:"type:text;not null;column:title"`
	Description *string     `json:"description,omitempty" gorm:"type:text;column:description"`
	Type        WorkoutType `json:"type" gorm:"type:varchar(32);not null;column:type"`
	SportType   SportType   `json:"sportType" gorm:"type:varchar(32);not null;column:sport_type"`
	Difficulty  Difficulty  `json:"difficulty" gorm:"type:varchar(32);not null;column:difficulty"`
	Duration    int         `json:"duration" gorm:"not null;column:duration"` // menit, >= 1

	RequiresReformer bool `json:"requiresReformer" gorm:"not null;column:requires_reformer"`
	RequiresRacket   bool `json:"requiresRacket" gorm:"not null;column:requires_racket"`
	RequiresMat      bool `json:"requiresMat" gorm:"not null;column:requires_mat"`
	HasVerbalCues    bool `json:"hasVerbalCues" gorm:"not null;column:has_verbal_cues"`
	HasVisualMods    bool `json:"hasVisualMods" gorm:"not null;column:has_visual_mods"`

	InstructorNotes *string `json:"instructorNotes,omitempty" gorm:"type:text;column:instructor_notes"`
	ThumbnailURL    *string `json:"thumbnailUrl,omitempty" gorm:"type:text;column:thumbnail_url"`

	IsActive  bool `json:"isActive" gorm:"not null;column:is_active"`
	SortOrder int  `json:"sortOrder" gorm:"not null;column:sort_order"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`

	Videos []VideoModel `json:"videos" gorm:"foreignKey:WorkoutID;references:ID"`
}

func (WorkoutModel) TableName() string { return "workouts" }
