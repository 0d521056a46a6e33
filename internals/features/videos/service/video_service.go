package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"courtbeat_backend/internals/features/videos/dto"
	"courtbeat_backend/internals/features/videos/processor"
	"courtbeat_backend/internals/features/videos/repository"
	"courtbeat_backend/internals/features/videos/videohost"
	model "courtbeat_backend/internals/features/workouts/model"
	helper "courtbeat_backend/internals/helpers"
)

// Submitter: antrian proses video (dipenuhi *processor.Processor)
type Submitter interface {
	Submit(t processor.Task) *processor.Handle
}

type VideoService struct {
	repo      repository.VideoRepository
	proc      Submitter
	host      videohost.Client
	uploadDir string
	log       *logrus.Logger

	Now func() time.Time
}

func NewVideoService(
	repo repository.VideoRepository,
	proc Submitter,
	host videohost.Client,
	uploadDir string,
	log *logrus.Logger,
) *VideoService {
	return &VideoService{repo: repo, proc: proc, host: host, uploadDir: uploadDir, log: log, Now: time.Now}
}

// Create: simpan file, insert row unprocessed, lalu serahkan ke processor.
// Video langsung dikembalikan; Handle boleh diabaikan caller HTTP.
func (s *VideoService) Create(ctx context.Context, workoutID uuid.UUID, up dto.Upload) (*model.VideoModel, *processor.Handle, error) {
	ok, err := s.repo.WorkoutExists(ctx, workoutID)
	if err != nil {
		s.log.WithError(err).WithField("workout_id", workoutID).Error("video upload: gagal cek workout")
		return nil, nil, helper.ErrInternal("Failed to upload video")
	}
	if !ok {
		return nil, nil, helper.ErrNotFound("Workout", workoutID)
	}

	path, err := helper.SaveUpload(up.Body, up.FileName, s.uploadDir, s.Now())
	if err != nil {
		s.log.WithError(err).Error("video upload: gagal simpan file")
		return nil, nil, helper.ErrInternal("Failed to store uploaded file")
	}

	m := &model.VideoModel{
		WorkoutID:   workoutID,
		FileName:    up.FileName,
		FileSize:    up.Size,
		IsProcessed: false,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		_ = os.Remove(path)
		s.log.WithError(err).WithField("workout_id", workoutID).Error("video upload: insert gagal")
		return nil, nil, helper.ErrInternal("Failed to upload video")
	}

	h := s.proc.Submit(processor.Task{VideoID: m.ID, FilePath: path})
	s.log.WithField("video_id", m.ID).WithField("workout_id", workoutID).WithField("size", up.Size).Info("video diterima, diproses di background")
	return m, h, nil
}

func (s *VideoService) FindAll(ctx context.Context) ([]model.VideoModel, error) {
	out, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.WithError(err).Error("video list gagal")
		return nil, helper.ErrInternal("Failed to fetch videos")
	}
	return out, nil
}

func (s *VideoService) FindByWorkout(ctx context.Context, workoutID uuid.UUID) ([]model.VideoModel, error) {
	out, err := s.repo.FindByWorkout(ctx, workoutID)
	if err != nil {
		s.log.WithError(err).WithField("workout_id", workoutID).Error("video list by workout gagal")
		return nil, helper.ErrInternal("Failed to fetch videos")
	}
	return out, nil
}

func (s *VideoService) FindOne(ctx context.Context, id uuid.UUID) (*model.VideoModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Video", id)
		}
		s.log.WithError(err).WithField("video_id", id).Error("video load gagal")
		return nil, helper.ErrInternal("Failed to fetch video")
	}
	return m, nil
}

// Remove: hapus asset di host (best-effort, error cuma di-log) lalu hapus row.
func (s *VideoService) Remove(ctx context.Context, id uuid.UUID) (*model.VideoModel, error) {
	m, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.MuxAssetID != nil && *m.MuxAssetID != "" {
		if err := s.host.DeleteAsset(ctx, *m.MuxAssetID); err != nil {
			s.log.WithError(err).WithField("asset_id", *m.MuxAssetID).Warn("hapus asset di host gagal, lanjut hapus row")
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Video", id)
		}
		s.log.WithError(err).WithField("video_id", id).Error("video delete gagal")
		return nil, helper.ErrInternal("Failed to delete video")
	}
	return m, nil
}
