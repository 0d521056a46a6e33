package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"courtbeat_backend/internals/features/music/dto"
	model "courtbeat_backend/internals/features/music/model"
	"courtbeat_backend/internals/features/music/repository"
	helper "courtbeat_backend/internals/helpers"
)

type MusicService struct {
	repo repository.MusicRepository
	log  *logrus.Logger
}

func NewMusicService(repo repository.MusicRepository, log *logrus.Logger) *MusicService {
	return &MusicService{repo: repo, log: log}
}

func (s *MusicService) FindAll(ctx context.Context) ([]model.MusicTrackModel, error) {
	out, err := s.repo.FindActive(ctx)
	if err != nil {
		s.log.WithError(err).Error("music list gagal")
		return nil, helper.ErrInternal("Failed to fetch music tracks")
	}
	return out, nil
}

func (s *MusicService) FindByEnergy(ctx context.Context, energy string) ([]model.MusicTrackModel, error) {
	switch energy {
	case model.EnergyLow, model.EnergyMedium, model.EnergyHigh:
	default:
		return nil, helper.ErrValidation("energy must be one of low, medium, high")
	}
	out, err := s.repo.FindActiveByEnergy(ctx, energy)
	if err != nil {
		s.log.WithError(err).WithField("energy", energy).Error("music list by energy gagal")
		return nil, helper.ErrInternal("Failed to fetch music tracks")
	}
	return out, nil
}

func (s *MusicService) Create(ctx context.Context, req dto.CreateMusicTrackRequest) (*model.MusicTrackModel, error) {
	m := req.ToModel()
	if err := s.repo.Create(ctx, m); err != nil {
		s.log.WithError(err).Error("music create gagal")
		return nil, helper.ErrInternal("Failed to create music track")
	}
	s.log.WithField("track_id", m.ID).WithField("energy", m.Energy).Info("music track created")
	return m, nil
}
