package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"courtbeat_backend/internals/features/workouts/dto"
	model "courtbeat_backend/internals/features/workouts/model"
	"courtbeat_backend/internals/features/workouts/repository"
	helper "courtbeat_backend/internals/helpers"
)

const (
	DefaultPopularLimit = 10
	MaxPopularLimit     = 100
	detailSchedules     = 10

	thumbnailDir = "thumbnails"
)

type WorkoutService struct {
	repo      repository.WorkoutRepository
	uploadDir string
	log       *logrus.Logger
}

func NewWorkoutService(repo repository.WorkoutRepository, uploadDir string, log *logrus.Logger) *WorkoutService {
	return &WorkoutService{repo: repo, uploadDir: uploadDir, log: log}
}

// ========================== CREATE ==========================
func (s *WorkoutService) Create(ctx context.Context, req dto.CreateWorkoutRequest) (*model.WorkoutModel, error) {
	m := req.ToModel()
	if err := s.repo.Create(ctx, m); err != nil {
		s.log.WithError(err).Error("workout create gagal")
		return nil, helper.ErrInternal("Failed to create workout")
	}
	s.log.WithField("workout_id", m.ID).WithField("type", m.Type).Info("workout created")
	return m, nil
}

// ========================== READ ==========================
func (s *WorkoutService) FindAll(ctx context.Context, f dto.WorkoutFilter) ([]dto.WorkoutListItem, error) {
	rows, err := s.repo.FindActive(ctx, f.Effective())
	if err != nil {
		s.log.WithError(err).Error("workout list gagal")
		return nil, helper.ErrInternal("Failed to fetch workouts")
	}
	out := make([]dto.WorkoutListItem, 0, len(rows))
	for _, w := range rows {
		out = append(out, dto.NewWorkoutListItem(w))
	}
	return out, nil
}

func (s *WorkoutService) FindOne(ctx context.Context, id uuid.UUID) (*dto.WorkoutDetailResponse, error) {
	m, err := s.repo.FindWithVideos(ctx, id)
	if err != nil {
		return nil, s.loadErr(id, err)
	}
	schedules, err := s.repo.LatestSchedules(ctx, id, detailSchedules)
	if err != nil {
		s.log.WithError(err).WithField("workout_id", id).Error("workout detail: gagal ambil schedules")
		return nil, helper.ErrInternal("Failed to fetch workout")
	}
	return &dto.WorkoutDetailResponse{WorkoutModel: *m, Schedules: schedules}, nil
}

// GetPopular: ranking dari event workout_played. Id yang sudah tidak aktif
// dibuang, jadi hasil bisa kurang dari limit.
func (s *WorkoutService) GetPopular(ctx context.Context, limit int) ([]model.WorkoutModel, error) {
	switch {
	case limit == 0:
		limit = DefaultPopularLimit
	case limit < 1:
		limit = 1
	case limit > MaxPopularLimit:
		limit = MaxPopularLimit
	}

	ranking, err := s.repo.TopPlayed(ctx, limit)
	if err != nil {
		s.log.WithError(err).Error("popular: agregasi gagal")
		return nil, helper.ErrInternal("Failed to fetch popular workouts")
	}
	ids := make([]uuid.UUID, 0, len(ranking))
	for _, r := range ranking {
		ids = append(ids, r.WorkoutID)
	}

	rows, err := s.repo.FindActiveByIDs(ctx, ids)
	if err != nil {
		s.log.WithError(err).Error("popular: gagal ambil workouts")
		return nil, helper.ErrInternal("Failed to fetch popular workouts")
	}
	byID := make(map[uuid.UUID]model.WorkoutModel, len(rows))
	for _, w := range rows {
		if len(w.Videos) > 1 {
			w.Videos = w.Videos[:1]
		}
		byID[w.ID] = w
	}

	out := make([]model.WorkoutModel, 0, len(rows))
	for _, id := range ids {
		if w, ok := byID[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// ========================== UPDATE ==========================
func (s *WorkoutService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateWorkoutRequest) (*model.WorkoutModel, error) {
	m, err := s.repo.FindWithVideos(ctx, id)
	if err != nil {
		return nil, s.loadErr(id, err)
	}
	if req.Duration != nil && *req.Duration < 1 {
		return nil, helper.ErrValidation("duration must be at least 1")
	}
	req.ApplyToModel(m)
	if err := s.repo.Save(ctx, m); err != nil {
		s.log.WithError(err).WithField("workout_id", id).Error("workout update gagal")
		return nil, helper.ErrInternal("Failed to update workout")
	}
	return m, nil
}

// Remove: soft delete, aman dipanggil berulang
func (s *WorkoutService) Remove(ctx context.Context, id uuid.UUID) (*model.WorkoutModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.loadErr(id, err)
	}
	m.IsActive = false
	if err := s.repo.Save(ctx, m); err != nil {
		s.log.WithError(err).WithField("workout_id", id).Error("workout remove gagal")
		return nil, helper.ErrInternal("Failed to deactivate workout")
	}
	return m, nil
}

// SetThumbnail: crop-fill 640x360 JPEG ke UPLOAD_DIR/thumbnails/<id>.jpg
func (s *WorkoutService) SetThumbnail(ctx context.Context, id uuid.UUID, src io.Reader) (*model.WorkoutModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.loadErr(id, err)
	}

	name := id.String() + ".jpg"
	if err := helper.SaveThumbnail(src, filepath.Join(s.uploadDir, thumbnailDir, name)); err != nil {
		s.log.WithError(err).WithField("workout_id", id).Warn("thumbnail ditolak")
		return nil, helper.ErrValidation("Invalid image file")
	}

	url := "/uploads/" + thumbnailDir + "/" + name
	m.ThumbnailURL = &url
	if err := s.repo.Save(ctx, m); err != nil {
		s.log.WithError(err).WithField("workout_id", id).Error("thumbnail: gagal simpan workout")
		return nil, helper.ErrInternal("Failed to update workout")
	}
	return m, nil
}

func (s *WorkoutService) loadErr(id uuid.UUID, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.ErrNotFound("Workout", id)
	}
	s.log.WithError(err).WithField("workout_id", id).Error("workout load gagal")
	return helper.ErrInternal("Failed to fetch workout")
}
