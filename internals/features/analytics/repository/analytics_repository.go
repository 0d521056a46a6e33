package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "courtbeat_backend/internals/features/analytics/model"
	clubModel "courtbeat_backend/internals/features/clubs/model"
)

type AnalyticsRepository interface {
	ClubExists(ctx context.Context, clubID uuid.UUID) (bool, error)
	Create(ctx context.Context, m *model.AnalyticsEventModel) error
	// FindSince: event club dengan timestamp >= since, terbaru dulu
	FindSince(ctx context.Context, clubID uuid.UUID, since time.Time) ([]model.AnalyticsEventModel, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) ClubExists(ctx context.Context, clubID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&clubModel.ClubModel{}).
		Where("id = ?", clubID).
		Count(&n).Error
	return n > 0, err
}

func (r *analyticsRepository) Create(ctx context.Context, m *model.AnalyticsEventModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *analyticsRepository) FindSince(ctx context.Context, clubID uuid.UUID, since time.Time) ([]model.AnalyticsEventModel, error) {
	out := []model.AnalyticsEventModel{}
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND timestamp >= ?", clubID, since).
		Order("timestamp DESC").
		Find(&out).Error
	return out, err
}
