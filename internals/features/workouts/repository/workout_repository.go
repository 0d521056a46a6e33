package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	analyticsModel "courtbeat_backend/internals/features/analytics/model"
	scheduleModel "courtbeat_backend/internals/features/schedules/model"
	"courtbeat_backend/internals/features/workouts/dto"
	model "courtbeat_backend/internals/features/workouts/model"
)

// PlayCount: hasil agregasi workout_played per workout
type PlayCount struct {
	WorkoutID uuid.UUID `gorm:"column:workout_id"`
	Plays     int64     `gorm:"column:plays"`
}

type WorkoutRepository interface {
	Create(ctx context.Context, m *model.WorkoutModel) error
	Save(ctx context.Context, m *model.WorkoutModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.WorkoutModel, error)
	// FindWithVideos: workout + semua video (terbaru dulu)
	FindWithVideos(ctx context.Context, id uuid.UUID) (*model.WorkoutModel, error)
	// FindActive: hanya video processed yang di-preload
	FindActive(ctx context.Context, f dto.WorkoutFilter) ([]model.WorkoutModel, error)
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]model.WorkoutModel, error)
	LatestSchedules(ctx context.Context, workoutID uuid.UUID, limit int) ([]scheduleModel.ScheduleModel, error)
	TopPlayed(ctx context.Context, limit int) ([]PlayCount, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func processedVideos(db *gorm.DB) *gorm.DB {
	return db.Where("is_processed = ?", true).Order("created_at ASC")
}

func (r *workoutRepository) Create(ctx context.Context, m *model.WorkoutModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *workoutRepository) Save(ctx context.Context, m *model.WorkoutModel) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *workoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.WorkoutModel, error) {
	var m model.WorkoutModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *workoutRepository) FindWithVideos(ctx context.Context, id uuid.UUID) (*model.WorkoutModel, error) {
	var m model.WorkoutModel
	err := r.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *workoutRepository) FindActive(ctx context.Context, f dto.WorkoutFilter) ([]model.WorkoutModel, error) {
	q := r.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Where("is_active = ?", true)

	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.SportType != nil {
		q = q.Where("sport_type = ?", *f.SportType)
	}
	if f.Difficulty != nil {
		q = q.Where("difficulty = ?", *f.Difficulty)
	}
	if f.RequiresReformer != nil {
		q = q.Where("requires_reformer = ?", *f.RequiresReformer)
	}

	out := []model.WorkoutModel{}
	err := q.Preload("Videos", processedVideos).
		Order("sort_order ASC").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *workoutRepository) FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]model.WorkoutModel, error) {
	out := []model.WorkoutModel{}
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Videos", processedVideos).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&out).Error
	return out, err
}

func (r *workoutRepository) LatestSchedules(ctx context.Context, workoutID uuid.UUID, limit int) ([]scheduleModel.ScheduleModel, error) {
	out := []scheduleModel.ScheduleModel{}
	err := r.db.WithContext(ctx).
		Where("workout_id = ?", workoutID).
		Order("scheduled_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// TopPlayed: GROUP BY workout_id untuk event workout_played, terbanyak dulu
func (r *workoutRepository) TopPlayed(ctx context.Context, limit int) ([]PlayCount, error) {
	out := []PlayCount{}
	err := r.db.WithContext(ctx).
		Model(&analyticsModel.AnalyticsEventModel{}).
		Select("workout_id, COUNT(*) AS plays").
		Where("event_type = ? AND workout_id IS NOT NULL", analyticsModel.EventWorkoutPlayed).
		Group("workout_id").
		Order("plays DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
