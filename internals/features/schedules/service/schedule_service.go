package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"courtbeat_backend/internals/features/schedules/dto"
	model "courtbeat_backend/internals/features/schedules/model"
	"courtbeat_backend/internals/features/schedules/repository"
	helper "courtbeat_backend/internals/helpers"
)

const MaxClubSchedules = 50

type ScheduleService struct {
	repo repository.ScheduleRepository
	log  *logrus.Logger

	Now func() time.Time
}

func NewScheduleService(repo repository.ScheduleRepository, log *logrus.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, log: log, Now: time.Now}
}

// Create: durasi di-copy dari workout saat ini. Tidak ada cek bentrok jadwal;
// workout dibaca lalu insert terpisah (tanpa transaksi).
func (s *ScheduleService) Create(ctx context.Context, req dto.CreateScheduleRequest) (*model.ScheduleModel, error) {
	w, err := s.repo.FindWorkout(ctx, req.WorkoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFoundMsg("Workout not found")
		}
		s.log.WithError(err).WithField("workout_id", req.WorkoutID).Error("schedule create: gagal load workout")
		return nil, helper.ErrInternal("Failed to create schedule")
	}

	m := req.ToModel(w.Duration)
	if err := s.repo.Create(ctx, m); err != nil {
		s.log.WithError(err).WithField("club_id", req.ClubID).Error("schedule create gagal")
		return nil, helper.ErrInternal("Failed to create schedule")
	}
	m.Workout = w

	s.log.WithField("schedule_id", m.ID).WithField("club_id", m.ClubID).
		WithField("scheduled_at", m.ScheduledAt.Format(time.RFC3339)).Info("schedule created")
	return m, nil
}

// FindByClub: tiap workout cuma membawa satu video processed pertama
func (s *ScheduleService) FindByClub(ctx context.Context, clubID uuid.UUID, upcoming bool) ([]model.ScheduleModel, error) {
	rows, err := s.repo.FindByClub(ctx, clubID, s.Now(), upcoming, MaxClubSchedules)
	if err != nil {
		s.log.WithError(err).WithField("club_id", clubID).Error("schedule list gagal")
		return nil, helper.ErrInternal("Failed to fetch schedules")
	}
	for i := range rows {
		if w := rows[i].Workout; w != nil && len(w.Videos) > 1 {
			w.Videos = w.Videos[:1]
		}
	}
	return rows, nil
}

func (s *ScheduleService) FindOne(ctx context.Context, id uuid.UUID) (*model.ScheduleModel, error) {
	m, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, s.notFoundOr(id, err, "Failed to fetch schedule")
	}
	return m, nil
}

func (s *ScheduleService) MarkComplete(ctx context.Context, id uuid.UUID) (*model.ScheduleModel, error) {
	if err := s.repo.MarkComplete(ctx, id); err != nil {
		return nil, s.notFoundOr(id, err, "Failed to complete schedule")
	}
	return s.FindOne(ctx, id)
}

// Remove: hard delete
func (s *ScheduleService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.notFoundOr(id, err, "Failed to delete schedule")
	}
	s.log.WithField("schedule_id", id).Info("schedule deleted")
	return nil
}

func (s *ScheduleService) notFoundOr(id uuid.UUID, err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.ErrNotFound("Schedule", id)
	}
	s.log.WithError(err).WithField("schedule_id", id).Error(msg)
	return helper.ErrInternal(msg)
}
