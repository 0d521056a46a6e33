package service

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"courtbeat_backend/internals/features/videos/dto"
	"courtbeat_backend/internals/features/videos/processor"
	"courtbeat_backend/internals/features/videos/videohost"
	model "courtbeat_backend/internals/features/workouts/model"
	helper "courtbeat_backend/internals/helpers"
)

type memVideoRepo struct {
	mu       sync.Mutex
	videos   map[uuid.UUID]model.VideoModel
	workouts map[uuid.UUID]bool
}

func newMemVideoRepo() *memVideoRepo {
	return &memVideoRepo{videos: map[uuid.UUID]model.VideoModel{}, workouts: map[uuid.UUID]bool{}}
}

func (r *memVideoRepo) Create(_ context.Context, m *model.VideoModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.videos[m.ID] = *m
	return nil
}

func (r *memVideoRepo) FindAll(context.Context) ([]model.VideoModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.VideoModel{}
	for _, v := range r.videos {
		out = append(out, v)
	}
	return out, nil
}

func (r *memVideoRepo) FindByWorkout(_ context.Context, workoutID uuid.UUID) ([]model.VideoModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.VideoModel{}
	for _, v := range r.videos {
		if v.WorkoutID == workoutID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVideoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.VideoModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.videos[id]; ok {
		return &v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memVideoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.videos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.videos, id)
	return nil
}

func (r *memVideoRepo) WorkoutExists(_ context.Context, id uuid.UUID) (bool, error) {
	return r.workouts[id], nil
}

func (r *memVideoRepo) MarkProcessed(_ context.Context, id uuid.UUID, assetID string, playbackID *string, duration *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.videos[id]
	v.MuxAssetID = &assetID
	v.MuxPlaybackID = playbackID
	if playbackID != nil {
		s := model.StreamURLFor(*playbackID)
		v.StreamURL = &s
	}
	v.Duration = duration
	v.IsProcessed = true
	v.ProcessingError = nil
	r.videos[id] = v
	return nil
}

func (r *memVideoRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.videos[id]
	v.IsProcessed = false
	v.ProcessingError = &message
	r.videos[id] = v
	return nil
}

func (r *memVideoRepo) MarkStaleFailed(context.Context, time.Time, string) (int64, error) {
	return 0, nil
}

// gatedHost: CreateAsset menunggu gate ditutup, supaya state "belum diproses" bisa diamati
type gatedHost struct {
	gate       chan struct{}
	createErr  error
	deleteErr  error
	deletedIDs []string
}

func (h *gatedHost) CreateAsset(ctx context.Context, _ string) (*videohost.Asset, error) {
	select {
	case <-h.gate:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if h.createErr != nil {
		return nil, h.createErr
	}
	return &videohost.Asset{ID: "asset-1", PlaybackIDs: []string{"play-1"}, Duration: 90.4}, nil
}

func (h *gatedHost) DeleteAsset(_ context.Context, id string) error {
	h.deletedIDs = append(h.deletedIDs, id)
	return h.deleteErr
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fixture struct {
	svc     *VideoService
	repo    *memVideoRepo
	host    *gatedHost
	workout uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newMemVideoRepo()
	host := &gatedHost{gate: make(chan struct{})}
	proc := processor.New(host, repo, 2, quietLogger())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = proc.Shutdown(ctx)
	})

	workoutID := uuid.New()
	repo.workouts[workoutID] = true
	return &fixture{
		svc:     NewVideoService(repo, proc, host, t.TempDir(), quietLogger()),
		repo:    repo,
		host:    host,
		workout: workoutID,
	}
}

func upload(name, body string) dto.Upload {
	return dto.Upload{FileName: name, Size: int64(len(body)), Body: strings.NewReader(body)}
}

func waitDone(t *testing.T, h *processor.Handle) processor.Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	res, err := h.Wait(ctx)
	require.NoError(t, err)
	return res
}

func TestVideoLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, h, err := f.svc.Create(ctx, f.workout, upload("clip.mp4", "fake-video"))
	require.NoError(t, err)
	assert.False(t, v.IsProcessed)
	assert.Equal(t, "clip.mp4", v.FileName)
	assert.Equal(t, int64(len("fake-video")), v.FileSize)

	before, err := f.svc.FindOne(ctx, v.ID)
	require.NoError(t, err)
	assert.False(t, before.IsProcessed)
	assert.Nil(t, before.StreamURL)

	close(f.host.gate)
	res := waitDone(t, h)
	require.NoError(t, res.Err)

	after, err := f.svc.FindOne(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, after.IsProcessed)
	require.NotNil(t, after.StreamURL)
	assert.Equal(t, "https://stream.mux.com/play-1.m3u8", *after.StreamURL)
	require.NotNil(t, after.Duration)
	assert.Equal(t, 90, *after.Duration)
	assert.Equal(t, "asset-1", *after.MuxAssetID)
}

func TestVideoProcessingFailureIsRecorded(t *testing.T) {
	f := newFixture(t)
	f.host.createErr = errors.New("mux unavailable")
	close(f.host.gate)

	v, h, err := f.svc.Create(context.Background(), f.workout, upload("clip.mp4", "x"))
	require.NoError(t, err)
	res := waitDone(t, h)
	require.Error(t, res.Err)

	got, err := f.svc.FindOne(context.Background(), v.ID)
	require.NoError(t, err)
	assert.False(t, got.IsProcessed)
	require.NotNil(t, got.ProcessingError)
	assert.Equal(t, "mux unavailable", *got.ProcessingError)
}

func TestCreateForUnknownWorkout(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.Create(context.Background(), uuid.New(), upload("clip.mp4", "x"))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, helper.StatusOf(err))

	entries, _ := os.ReadDir(f.svc.uploadDir)
	assert.Empty(t, entries)
}

func TestRemoveIgnoresHostDeleteError(t *testing.T) {
	f := newFixture(t)
	close(f.host.gate)
	f.host.deleteErr = errors.New("host down")

	v, h, err := f.svc.Create(context.Background(), f.workout, upload("clip.mp4", "x"))
	require.NoError(t, err)
	waitDone(t, h)

	removed, err := f.svc.Remove(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, removed.ID)
	assert.Equal(t, []string{"asset-1"}, f.host.deletedIDs)

	_, err = f.svc.FindOne(context.Background(), v.ID)
	assert.Equal(t, fiber.StatusNotFound, helper.StatusOf(err))

	_, err = f.svc.Remove(context.Background(), v.ID)
	assert.Equal(t, fiber.StatusNotFound, helper.StatusOf(err))
}

func TestRemoveWithoutAssetSkipsHost(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	require.NoError(t, f.repo.Create(context.Background(), &model.VideoModel{ID: id, WorkoutID: f.workout, FileName: "a.mp4"}))

	_, err := f.svc.Remove(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, f.host.deletedIDs)
}
