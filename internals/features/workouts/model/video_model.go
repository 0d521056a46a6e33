package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoModel: aset video milik satu workout, binary di-host pihak ketiga (Mux)
type VideoModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	WorkoutID uuid.UUID `json:"workoutId" gorm:"type:uuid;not null;column:workout_id"`
	FileName  string    `json:"fileName" gorm:"type:text;not null;column:file_name"`
	FileSize  int64     `json:"fileSize" gorm:"not null;column:file_size"`

	IsProcessed     bool    `json:"isProcessed" gorm:"not null;column:is_processed"`
	MuxAssetID      *string `json:"muxAssetId,omitempty" gorm:"type:text;column:mux_asset_id"`
	MuxPlaybackID   *string `json:"muxPlaybackId,omitempty" gorm:"type:text;column:mux_playback_id"`
	StreamURL       *string `json:"streamUrl,omitempty" gorm:"type:text;column:stream_url"`
	Duration        *int    `json:"duration,omitempty" gorm:"column:duration"` // detik
	ProcessingError *string `json:"processingError,omitempty" gorm:"type:text;column:processing_error"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`

	Workout *WorkoutModel `json:"workout,omitempty" gorm:"foreignKey:WorkoutID;references:ID"`
}

func (VideoModel) TableName() string { return "videos" }

// StreamURLFor: URL HLS publik dari playback id Mux
func StreamURLFor(playbackID string) string {
	return "https://stream.mux.com/" + playbackID + ".m3u8"
}
