// Package videohost membungkus layanan hosting video eksternal (Mux).
package videohost

import (
	"context"
	"errors"
	"math"
)

var ErrNotConfigured = errors.New("video host not configured")

// Asset: hasil akhir asset di host
type Asset struct {
	ID          string
	Status      string
	PlaybackIDs []string
	Duration    float64 // detik, bisa 0 kalau host belum tahu
}

func (a *Asset) FirstPlaybackID() string {
	if a == nil || len(a.PlaybackIDs) == 0 {
		return ""
	}
	return a.PlaybackIDs[0]
}

// RoundedDuration: durasi dibulatkan ke detik terdekat, nil kalau tidak ada
func (a *Asset) RoundedDuration() *int {
	if a == nil || a.Duration <= 0 {
		return nil
	}
	d := int(math.Round(a.Duration))
	return &d
}

type Client interface {
	// CreateAsset upload file lokal dan tunggu sampai asset siap diputar.
	CreateAsset(ctx context.Context, filePath string) (*Asset, error)
	DeleteAsset(ctx context.Context, assetID string) error
}
