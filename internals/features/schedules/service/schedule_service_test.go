package service

import (
	"context"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"courtbeat_backend/internals/features/schedules/dto"
	model "courtbeat_backend/internals/features/schedules/model"
	workoutModel "courtbeat_backend/internals/features/workouts/model"
	helper "courtbeat_backend/internals/helpers"
)

type fakeScheduleRepo struct {
	workouts  map[uuid.UUID]*workoutModel.WorkoutModel
	schedules map[uuid.UUID]*model.ScheduleModel
	lastLimit int
}

func newFakeRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		workouts:  map[uuid.UUID]*workoutModel.WorkoutModel{},
		schedules: map[uuid.UUID]*model.ScheduleModel{},
	}
}

func (r *fakeScheduleRepo) FindWorkout(_ context.Context, id uuid.UUID) (*workoutModel.WorkoutModel, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeScheduleRepo) Create(_ context.Context, m *model.ScheduleModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	r.schedules[m.ID] = &cp
	return nil
}

func (r *fakeScheduleRepo) withWorkout(s model.ScheduleModel) model.ScheduleModel {
	if w, ok := r.workouts[s.WorkoutID]; ok {
		cp := *w
		cp.Videos = append([]workoutModel.VideoModel(nil), w.Videos...)
		s.Workout = &cp
	}
	return s
}

func (r *fakeScheduleRepo) FindByClub(_ context.Context, clubID uuid.UUID, now time.Time, upcoming bool, limit int) ([]model.ScheduleModel, error) {
	r.lastLimit = limit
	out := []model.ScheduleModel{}
	for _, s := range r.schedules {
		if s.ClubID != clubID {
			continue
		}
		if upcoming == s.ScheduledAt.Before(now) {
			continue
		}
		out = append(out, r.withWorkout(*s))
	}
	sort.Slice(out, func(i, j int) bool {
		if upcoming {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		}
		return out[i].ScheduledAt.After(out[j].ScheduledAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeScheduleRepo) FindDetail(_ context.Context, id uuid.UUID) (*model.ScheduleModel, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := r.withWorkout(*s)
	return &out, nil
}

func (r *fakeScheduleRepo) MarkComplete(_ context.Context, id uuid.UUID) error {
	s, ok := r.schedules[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.IsCompleted = true
	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.schedules[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.schedules, id)
	return nil
}

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newService(repo *fakeScheduleRepo) *ScheduleService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s := NewScheduleService(repo, log)
	s.Now = func() time.Time { return fixedNow }
	return s
}

func addWorkout(repo *fakeScheduleRepo, duration int, videos ...workoutModel.VideoModel) uuid.UUID {
	id := uuid.New()
	repo.workouts[id] = &workoutModel.WorkoutModel{ID: id, Title: "Padel Footwork", Duration: duration, IsActive: true, Videos: videos}
	return id
}

func TestCreateSnapshotsDuration(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	workoutID := addWorkout(repo, 45)

	m, err := svc.Create(context.Background(), dto.CreateScheduleRequest{
		ClubID: uuid.New(), WorkoutID: workoutID, ScheduledAt: fixedNow.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, 45, m.Duration)
	assert.False(t, m.IsCompleted)
	require.NotNil(t, m.Workout)
	assert.Equal(t, "Padel Footwork", m.Workout.Title)

	// durasi workout berubah setelahnya, schedule tetap
	repo.workouts[workoutID].Duration = 60

	got, err := svc.FindOne(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, got.Duration)
	assert.Equal(t, 60, got.Workout.Duration)
}

func TestCreateUnknownWorkout(t *testing.T) {
	svc := newService(newFakeRepo())

	_, err := svc.Create(context.Background(), dto.CreateScheduleRequest{
		ClubID: uuid.New(), WorkoutID: uuid.New(), ScheduledAt: fixedNow,
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, helper.StatusOf(err))
	assert.Equal(t, "Workout not found", err.(*fiber.Error).Message)
}

func TestFindByClubUpcomingFilter(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	clubID := uuid.New()
	workoutID := addWorkout(repo, 30,
		workoutModel.VideoModel{ID: uuid.New(), IsProcessed: true},
		workoutModel.VideoModel{ID: uuid.New(), IsProcessed: true},
	)

	for _, offset := range []time.Duration{-2 * time.Hour, -time.Hour, 0, 3 * time.Hour, time.Hour} {
		_, err := svc.Create(context.Background(), dto.CreateScheduleRequest{
			ClubID: clubID, WorkoutID: workoutID, ScheduledAt: fixedNow.Add(offset),
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), dto.CreateScheduleRequest{
		ClubID: uuid.New(), WorkoutID: workoutID, ScheduledAt: fixedNow.Add(time.Hour),
	})
	require.NoError(t, err)

	upcoming, err := svc.FindByClub(context.Background(), clubID, true)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	assert.Equal(t, fixedNow, upcoming[0].ScheduledAt)
	assert.Equal(t, fixedNow.Add(time.Hour), upcoming[1].ScheduledAt)
	assert.Equal(t, fixedNow.Add(3*time.Hour), upcoming[2].ScheduledAt)
	assert.Equal(t, MaxClubSchedules, repo.lastLimit)
	for _, s := range upcoming {
		assert.Len(t, s.Workout.Videos, 1)
	}

	past, err := svc.FindByClub(context.Background(), clubID, false)
	require.NoError(t, err)
	require.Len(t, past, 2)
	assert.Equal(t, fixedNow.Add(-time.Hour), past[0].ScheduledAt)
	assert.Equal(t, fixedNow.Add(-2*time.Hour), past[1].ScheduledAt)
}

func TestMarkCompleteAndRemove(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	workoutID := addWorkout(repo, 20)

	m, err := svc.Create(context.Background(), dto.CreateScheduleRequest{
		ClubID: uuid.New(), WorkoutID: workoutID, ScheduledAt: fixedNow,
	})
	require.NoError(t, err)

	done, err := svc.MarkComplete(context.Background(), m.ID)
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)

	// tanpa syarat: complete kedua tetap sukses
	_, err = svc.MarkComplete(context.Background(), m.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), m.ID))

	_, err = svc.FindOne(context.Background(), m.ID)
	assert.Equal(t, fiber.StatusNotFound, helper.StatusOf(err))
	assert.Equal(t, fiber.StatusNotFound, helper.StatusOf(svc.Remove(context.Background(), m.ID)))
	_, err = svc.MarkComplete(context.Background(), m.ID)
	assert.Equal(t, fiber.StatusNotFound, helper.StatusOf(err))
}
