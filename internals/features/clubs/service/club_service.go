package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	analyticsModel "courtbeat_backend/internals/features/analytics/model"
	"courtbeat_backend/internals/features/clubs/dto"
	model "courtbeat_backend/internals/features/clubs/model"
	"courtbeat_backend/internals/features/clubs/repository"
	helper "courtbeat_backend/internals/helpers"
)

const (
	accessCodeAttempts = 10
	detailSchedules    = 10
	detailEvents       = 100

	msgEmailTaken = "Club with this email already exists"
)

type ClubService struct {
	repo repository.ClubRepository
	log  *logrus.Logger

	Now           func() time.Time
	NewAccessCode func() (string, error)
}

func NewClubService(repo repository.ClubRepository, log *logrus.Logger) *ClubService {
	return &ClubService{
		repo:          repo,
		log:           log,
		Now:           time.Now,
		NewAccessCode: helper.GenerateAccessCode,
	}
}

// ========================== CREATE ==========================
func (s *ClubService) Create(ctx context.Context, req dto.CreateClubRequest) (*model.ClubModel, error) {
	req.Normalize()

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, helper.ErrConflict(msgEmailTaken)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.WithError(err).Error("club create: gagal cek email")
		return nil, helper.ErrInternal("Failed to create club")
	}

	code, err := helper.EnsureUniqueAccessCode(ctx, s.NewAccessCode, s.repo.AccessCodeExists, accessCodeAttempts)
	if err != nil {
		s.log.WithError(err).Error("club create: gagal generate access code")
		return nil, helper.ErrInternal("Failed to generate access code")
	}

	m := req.ToModel()
	m.AccessCode = code
	if err := s.repo.Create(ctx, m); err != nil {
		if helper.IsUniqueViolation(err) {
			// balapan email (atau kode) dengan request lain
			return nil, helper.ErrConflict(msgEmailTaken)
		}
		s.log.WithError(err).Error("club create: insert gagal")
		return nil, helper.ErrInternal("Failed to create club")
	}

	s.log.WithField("club_id", m.ID).WithField("access_code", m.AccessCode).Info("club created")
	return m, nil
}

// ========================== READ ==========================
func (s *ClubService) FindAll(ctx context.Context, includeInactive bool) ([]model.ClubModel, error) {
	out, err := s.repo.FindAll(ctx, includeInactive)
	if err != nil {
		s.log.WithError(err).Error("club list gagal")
		return nil, helper.ErrInternal("Failed to fetch clubs")
	}
	return out, nil
}

func (s *ClubService) FindByAccessCode(ctx context.Context, code string) (*model.ClubModel, error) {
	m, err := s.repo.FindByAccessCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFoundMsg("Invalid access code")
		}
		return nil, helper.ErrInternal("Failed to fetch club")
	}
	if !m.IsActive {
		return nil, helper.ErrConflict("This club is not active")
	}
	return m, nil
}

func (s *ClubService) FindOne(ctx context.Context, id uuid.UUID) (*dto.ClubDetailResponse, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	schedules, err := s.repo.LatestSchedules(ctx, id, detailSchedules)
	if err != nil {
		s.log.WithError(err).WithField("club_id", id).Error("club detail: gagal ambil schedules")
		return nil, helper.ErrInternal("Failed to fetch club")
	}
	events, err := s.repo.LatestEvents(ctx, id, detailEvents)
	if err != nil {
		s.log.WithError(err).WithField("club_id", id).Error("club detail: gagal ambil analytics")
		return nil, helper.ErrInternal("Failed to fetch club")
	}

	return &dto.ClubDetailResponse{ClubModel: *m, Schedules: schedules, Analytics: events}, nil
}

// ========================== UPDATE ==========================
func (s *ClubService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClubRequest) (*model.ClubModel, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if req.Email != nil && *req.Email != m.Email {
		other, err := s.repo.FindByEmail(ctx, *req.Email)
		switch {
		case err == nil && other.ID != m.ID:
			return nil, helper.ErrConflict(msgEmailTaken)
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, helper.ErrInternal("Failed to update club")
		}
	}

	req.ApplyToModel(m)
	return s.save(ctx, m)
}

// Remove: soft delete (is_active=false), aman dipanggil berulang
func (s *ClubService) Remove(ctx context.Context, id uuid.UUID) (*model.ClubModel, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	m.IsActive = false
	return s.save(ctx, m)
}

func (s *ClubService) UpgradeToPremium(ctx context.Context, id uuid.UUID) (*model.ClubModel, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	m.SubscriptionTier = model.TierPremium
	return s.save(ctx, m)
}

// ========================== STATS ==========================
func (s *ClubService) GetStats(ctx context.Context, id uuid.UUID) (*dto.ClubStatsResponse, error) {
	club, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	var stats dto.ClubStats
	if stats.TotalWorkouts, err = s.repo.CountEvents(ctx, id, analyticsModel.EventWorkoutPlayed); err != nil {
		return nil, s.statsErr(id, err)
	}
	if stats.TotalSessions, err = s.repo.CountEvents(ctx, id, analyticsModel.EventSessionStarted); err != nil {
		return nil, s.statsErr(id, err)
	}
	if stats.ScheduledWorkouts, err = s.repo.CountSchedulesFrom(ctx, id, s.Now()); err != nil {
		return nil, s.statsErr(id, err)
	}

	return &dto.ClubStatsResponse{Club: club, Stats: stats}, nil
}

/* ===== helpers ===== */

func (s *ClubService) load(ctx context.Context, id uuid.UUID) (*model.ClubModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Club", id)
		}
		s.log.WithError(err).WithField("club_id", id).Error("club load gagal")
		return nil, helper.ErrInternal("Failed to fetch club")
	}
	return m, nil
}

func (s *ClubService) save(ctx context.Context, m *model.ClubModel) (*model.ClubModel, error) {
	if err := s.repo.Save(ctx, m); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, helper.ErrConflict(msgEmailTaken)
		}
		s.log.WithError(err).WithField("club_id", m.ID).Error("club save gagal")
		return nil, helper.ErrInternal("Failed to update club")
	}
	return m, nil
}

func (s *ClubService) statsErr(id uuid.UUID, err error) error {
	s.log.WithError(err).WithField("club_id", id).Error("club stats gagal")
	return helper.ErrInternal("Failed to compute club stats")
}
