package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	analyticsModel "courtbeat_backend/internals/features/analytics/model"
	model "courtbeat_backend/internals/features/clubs/model"
	scheduleModel "courtbeat_backend/internals/features/schedules/model"
)

type ClubRepository interface {
	Create(ctx context.Context, m *model.ClubModel) error
	Save(ctx context.Context, m *model.ClubModel) error
	FindAll(ctx context.Context, includeInactive bool) ([]model.ClubModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ClubModel, error)
	FindByEmail(ctx context.Context, email string) (*model.ClubModel, error)
	FindByAccessCode(ctx context.Context, code string) (*model.ClubModel, error)
	AccessCodeExists(ctx context.Context, code string) (bool, error)

	LatestSchedules(ctx context.Context, clubID uuid.UUID, limit int) ([]scheduleModel.ScheduleModel, error)
	LatestEvents(ctx context.Context, clubID uuid.UUID, limit int) ([]analyticsModel.AnalyticsEventModel, error)
	CountEvents(ctx context.Context, clubID uuid.UUID, eventType string) (int64, error)
	CountSchedulesFrom(ctx context.Context, clubID uuid.UUID, from time.Time) (int64, error)
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, m *model.ClubModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *clubRepository) Save(ctx context.Context, m *model.ClubModel) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *clubRepository) FindAll(ctx context.Context, includeInactive bool) ([]model.ClubModel, error) {
	var out []model.ClubModel
	q := r.db.WithContext(ctx).Model(&model.ClubModel{})
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *clubRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ClubModel, error) {
	var m model.ClubModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *clubRepository) FindByEmail(ctx context.Context, email string) (*model.ClubModel, error) {
	var m model.ClubModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *clubRepository) FindByAccessCode(ctx context.Context, code string) (*model.ClubModel, error) {
	var m model.ClubModel
	if err := r.db.WithContext(ctx).Where("access_code = ?", code).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *clubRepository) AccessCodeExists(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.ClubModel{}).
		Where("access_code = ?", code).
		Count(&n).Error
	return n > 0, err
}

/* ===== relasi untuk detail & stats ===== */

func (r *clubRepository) LatestSchedules(ctx context.Context, clubID uuid.UUID, limit int) ([]scheduleModel.ScheduleModel, error) {
	out := []scheduleModel.ScheduleModel{}
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("scheduled_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *clubRepository) LatestEvents(ctx context.Context, clubID uuid.UUID, limit int) ([]analyticsModel.AnalyticsEventModel, error) {
	out := []analyticsModel.AnalyticsEventModel{}
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *clubRepository) CountEvents(ctx context.Context, clubID uuid.UUID, eventType string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&analyticsModel.AnalyticsEventModel{}).
		Where("club_id = ? AND event_type = ?", clubID, eventType).
		Count(&n).Error
	return n, err
}

func (r *clubRepository) CountSchedulesFrom(ctx context.Context, clubID uuid.UUID, from time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&scheduleModel.ScheduleModel{}).
		Where("club_id = ? AND scheduled_at >= ?", clubID, from).
		Count(&n).Error
	return n, err
}
