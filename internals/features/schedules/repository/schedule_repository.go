package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "courtbeat_backend/internals/features/schedules/model"
	workoutModel "courtbeat_backend/internals/features/workouts/model"
)

type ScheduleRepository interface {
	FindWorkout(ctx context.Context, workoutID uuid.UUID) (*workoutModel.WorkoutModel, error)
	Create(ctx context.Context, m *model.ScheduleModel) error
	// FindByClub: upcoming → scheduled_at >= now ASC, selain itu < now DESC.
	// Workout di-preload beserta video processed (tertua dulu).
	FindByClub(ctx context.Context, clubID uuid.UUID, now time.Time, upcoming bool, limit int) ([]model.ScheduleModel, error)
	FindDetail(ctx context.Context, id uuid.UUID) (*model.ScheduleModel, error)
	MarkComplete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) FindWorkout(ctx context.Context, workoutID uuid.UUID) (*workoutModel.WorkoutModel, error) {
	var w workoutModel.WorkoutModel
	if err := r.db.WithContext(ctx).Where("id = ?", workoutID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *scheduleRepository) Create(ctx context.Context, m *model.ScheduleModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *scheduleRepository) FindByClub(ctx context.Context, clubID uuid.UUID, now time.Time, upcoming bool, limit int) ([]model.ScheduleModel, error) {
	q := r.db.WithContext(ctx).Where("club_id = ?", clubID)
	if upcoming {
		q = q.Where("scheduled_at >= ?", now).Order("scheduled_at ASC")
	} else {
		q = q.Where("scheduled_at < ?", now).Order("scheduled_at DESC")
	}

	out := []model.ScheduleModel{}
	err := q.
		Preload("Workout").
		Preload("Workout.Videos", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_processed = ?", true).Order("created_at ASC")
		}).
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *scheduleRepository) FindDetail(ctx context.Context, id uuid.UUID) (*model.ScheduleModel, error) {
	var m model.ScheduleModel
	err := r.db.WithContext(ctx).
		Preload("Workout").
		Preload("Workout.Videos", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Club").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkComplete: tanpa cek status sebelumnya; RowsAffected 0 → not found
func (r *scheduleRepository) MarkComplete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&model.ScheduleModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_completed": true, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ScheduleModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
