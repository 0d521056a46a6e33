package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"courtbeat_backend/internals/features/analytics/dto"
	model "courtbeat_backend/internals/features/analytics/model"
	"courtbeat_backend/internals/features/analytics/publisher"
	"courtbeat_backend/internals/features/analytics/repository"
	"courtbeat_backend/internals/features/analytics/session"
	helper "courtbeat_backend/internals/helpers"
	"courtbeat_backend/internals/observability"
)

const DefaultStatsDays = 30

type AnalyticsService struct {
	repo     repository.AnalyticsRepository
	sessions session.Provider
	pub      publisher.Publisher
	log      *logrus.Logger

	Now func() time.Time
}

func NewAnalyticsService(
	repo repository.AnalyticsRepository,
	sessions session.Provider,
	pub publisher.Publisher,
	log *logrus.Logger,
) *AnalyticsService {
	if sessions == nil {
		sessions = session.NewPerCallProvider()
	}
	if pub == nil {
		pub = publisher.NoopPublisher{}
	}
	return &AnalyticsService{repo: repo, sessions: sessions, pub: pub, log: log, Now: time.Now}
}

// TrackEvent: append event. Publish ke stream best-effort, gagal cuma di-log.
func (s *AnalyticsService) TrackEvent(ctx context.Context, req dto.TrackEventRequest) (*model.AnalyticsEventModel, error) {
	ok, err := s.repo.ClubExists(ctx, req.ClubID)
	if err != nil {
		s.log.WithError(err).WithField("club_id", req.ClubID).Error("track event: gagal cek club")
		return nil, helper.ErrInternal("Failed to track event")
	}
	if !ok {
		return nil, helper.ErrNotFound("Club", req.ClubID)
	}

	now := s.Now()
	sid, err := s.sessions.SessionID(ctx, req.ClubID)
	if err != nil {
		s.log.WithError(err).WithField("club_id", req.ClubID).Warn("session provider gagal, pakai id per-call")
		sid = session.NewID(now)
	}

	m := req.ToModel(sid, now)
	if err := s.repo.Create(ctx, m); err != nil {
		s.log.WithError(err).WithField("club_id", req.ClubID).Error("track event gagal")
		return nil, helper.ErrInternal("Failed to track event")
	}
	observability.AnalyticsEvent(m.EventType)

	if err := s.pub.Publish(ctx, *m); err != nil {
		s.log.WithError(err).WithField("event_id", m.ID).Warn("publish event analytics gagal")
	}
	return m, nil
}

// GetClubStats: agregasi event dalam `days` hari terakhir
func (s *AnalyticsService) GetClubStats(ctx context.Context, clubID uuid.UUID, days int) (*dto.ClubStatsResponse, error) {
	if days < 1 {
		return nil, helper.ErrValidation("days must be at least 1")
	}

	since := s.Now().AddDate(0, 0, -days)
	events, err := s.repo.FindSince(ctx, clubID, since)
	if err != nil {
		s.log.WithError(err).WithField("club_id", clubID).Error("club stats gagal")
		return nil, helper.ErrInternal("Failed to fetch analytics")
	}

	out := summarize(events)
	out.PeriodDays = days
	return out, nil
}

func summarize(events []model.AnalyticsEventModel) *dto.ClubStatsResponse {
	sessions := map[string]struct{}{}
	workouts := map[uuid.UUID]struct{}{}
	plays := map[uuid.UUID]int{}
	out := &dto.ClubStatsResponse{TotalEvents: len(events), WorkoutBreakdown: []dto.WorkoutCount{}}

	for _, e := range events {
		sessions[e.SessionID] = struct{}{}
		if e.WorkoutID != nil {
			workouts[*e.WorkoutID] = struct{}{}
		}
		if e.EventType != model.EventWorkoutPlayed {
			continue
		}
		out.WorkoutPlays++
		if e.WorkoutID != nil {
			plays[*e.WorkoutID]++
		}
	}

	for id, n := range plays {
		out.WorkoutBreakdown = append(out.WorkoutBreakdown, dto.WorkoutCount{WorkoutID: id, Count: n})
	}
	sort.Slice(out.WorkoutBreakdown, func(i, j int) bool {
		a, b := out.WorkoutBreakdown[i], out.WorkoutBreakdown[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.WorkoutID.String() < b.WorkoutID.String()
	})

	out.Sessions = len(sessions)
	out.UniqueWorkouts = len(workouts)
	return out
}
