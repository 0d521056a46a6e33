package dto

import (
	"strings"

	model "courtbeat_backend/internals/features/music/model"
)

const DefaultSource = "upload"

type CreateMusicTrackRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=200"`
	Artist   *string `json:"artist" validate:"omitempty,max=200"`
	Source   *string `json:"source" validate:"omitempty,max=32"`
	FileURL  string  `json:"fileUrl" validate:"required,max=2000"`
	Duration int     `json:"duration" validate:"min=0"` // detik
	BPM      *int    `json:"bpm" validate:"omitempty,min=1,max=400"`
	Energy   string  `json:"energy" validate:"required,oneof=low medium high"`
	Genre    *string `json:"genre" validate:"omitempty,max=100"`
	IsActive *bool   `json:"isActive"`
}

func (r CreateMusicTrackRequest) ToModel() *model.MusicTrackModel {
	m := &model.MusicTrackModel{
		Title:    strings.TrimSpace(r.Title),
		Artist:   trimmedOrNil(r.Artist),
		Source:   DefaultSource,
		FileURL:  strings.TrimSpace(r.FileURL),
		Duration: r.Duration,
		BPM:      r.BPM,
		Energy:   r.Energy,
		Genre:    trimmedOrNil(r.Genre),
		IsActive: true,
	}
	if s := trimmedOrNil(r.Source); s != nil {
		m.Source = *s
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
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
