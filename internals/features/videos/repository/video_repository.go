package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "courtbeat_backend/internals/features/workouts/model"
)

type VideoRepository interface {
	Create(ctx context.Context, m *model.VideoModel) error
	FindAll(ctx context.Context) ([]model.VideoModel, error)
	FindByWorkout(ctx context.Context, workoutID uuid.UUID) ([]model.VideoModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.VideoModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
	WorkoutExists(ctx context.Context, workoutID uuid.UUID) (bool, error)

	// dipakai processor
	MarkProcessed(ctx context.Context, id uuid.UUID, assetID string, playbackID *string, duration *int) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error

	// dipakai reaper
	MarkStaleFailed(ctx context.Context, olderThan time.Time, message string) (int64, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, m *model.VideoModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Omit("Workout").Create(m).Error
}

func (r *videoRepository) FindAll(ctx context.Context) ([]model.VideoModel, error) {
	out := []model.VideoModel{}
	err := r.db.WithContext(ctx).
		Preload("Workout").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *videoRepository) FindByWorkout(ctx context.Context, workoutID uuid.UUID) ([]model.VideoModel, error) {
	out := []model.VideoModel{}
	err := r.db.WithContext(ctx).
		Where("workout_id = ?", workoutID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.VideoModel, error) {
	var m model.VideoModel
	if err := r.db.WithContext(ctx).Preload("Workout").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VideoModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *videoRepository) WorkoutExists(ctx context.Context, workoutID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Where("id = ?", workoutID).
		Count(&n).Error
	return n > 0, err
}

func (r *videoRepository) MarkProcessed(ctx context.Context, id uuid.UUID, assetID string, playbackID *string, duration *int) error {
	var stream *string
	if playbackID != nil {
		s := model.StreamURLFor(*playbackID)
		stream = &s
	}
	return r.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"mux_asset_id":     assetID,
			"mux_playback_id":  playbackID,
			"stream_url":       stream,
			"duration":         duration,
			"is_processed":     true,
			"processing_error": nil,
			"updated_at":       time.Now(),
		}).Error
}

func (r *videoRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	return r.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_processed":     false,
			"processing_error": message,
			"updated_at":       time.Now(),
		}).Error
}

// MarkStaleFailed: video yang tidak pernah selesai (proses mati di tengah jalan)
func (r *videoRepository) MarkStaleFailed(ctx context.Context, olderThan time.Time, message string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("is_processed = ? AND processing_error IS NULL AND created_at < ?", false, olderThan).
		Updates(map[string]any{
			"processing_error": message,
			"updated_at":       time.Now(),
		})
	return res.RowsAffected, res.Error
}
