package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "courtbeat_backend/internals/features/music/model"
)

type MusicRepository interface {
	Create(ctx context.Context, m *model.MusicTrackModel) error
	FindActive(ctx context.Context) ([]model.MusicTrackModel, error)
	FindActiveByEnergy(ctx context.Context, energy string) ([]model.MusicTrackModel, error)
}

type musicRepository struct {
	db *gorm.DB
}

func NewMusicRepository(db *gorm.DB) MusicRepository {
	return &musicRepository{db: db}
}

func (r *musicRepository) Create(ctx context.Context, m *model.MusicTrackModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *musicRepository) FindActive(ctx context.Context) ([]model.MusicTrackModel, error) {
	out := []model.MusicTrackModel{}
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// FindActiveByEnergy: bpm terbesar dulu, bpm NULL di akhir
func (r *musicRepository) FindActiveByEnergy(ctx context.Context, energy string) ([]model.MusicTrackModel, error) {
	out := []model.MusicTrackModel{}
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND energy = ?", true, energy).
		Order("bpm DESC NULLS LAST").
		Find(&out).Error
	return out, err
}
