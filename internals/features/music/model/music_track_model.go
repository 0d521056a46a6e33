package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EnergyLow    = "low"
	EnergyMedium = "medium"
	EnergyHigh   = "high"
)

type MusicTrackModel struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Title    string    `json:"title" gorm:"type:text;not null;column:title"`
	Artist   *string   `json:"artist,omitempty" gorm:"type:text;column:artist"`
	Source   string    `json:"source" gorm:"type:varchar(32);not null;column:source"`
	FileURL  string    `json:"fileUrl" gorm:"type:text;not null;column:file_url"`
	Duration int       `json:"duration" gorm:"not null;column:duration"` // detik
	BPM      *int      `json:"bpm,omitempty" gorm:"column:bpm"`
	Energy   string    `json:"energy" gorm:"type:varchar(16);not null;column:energy"`
	Genre    *string   `json:"genre,omitempty" gorm:"type:text;column:genre"`
	IsActive bool      `json:"isActive" gorm:"not null;column:is_active"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
}

func (MusicTrackModel) TableName() string { return "music_tracks" }
