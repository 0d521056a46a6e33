package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	scheduleModel "courtbeat_backend/internals/features/schedules/model"
	"courtbeat_backend/internals/features/workouts/dto"
	model "courtbeat_backend/internals/features/workouts/model"
	"courtbeat_backend/internals/features/workouts/repository"
	helper "courtbeat_backend/internals/helpers"
)

type fakeWorkoutRepo struct {
	workouts map[uuid.UUID]model.WorkoutModel
	order    []uuid.UUID
	videos   []model.VideoModel
	plays    []uuid.UUID
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: map[uuid.UUID]model.WorkoutModel{}}
}

func (f *fakeWorkoutRepo) Create(_ context.Context, m *model.WorkoutModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	cp.Videos = nil
	f.workouts[m.ID] = cp
	f.order = append(f.order, m.ID)
	return nil
}

func (f *fakeWorkoutRepo) Save(_ context.Context, m *model.WorkoutModel) error {
	cp := *m
	cp.Videos = nil
	f.workouts[m.ID] = cp
	return nil
}

func (f *fakeWorkoutRepo) FindByID(_ context.Context, id uuid.UUID) (*model.WorkoutModel, error) {
	if w, ok := f.workouts[id]; ok {
		return &w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorkoutRepo) withVideos(w model.WorkoutModel, processedOnly bool) model.WorkoutModel {
	w.Videos = []model.VideoModel{}
	for _, v := range f.videos {
		if v.WorkoutID == w.ID && (!processedOnly || v.IsProcessed) {
			w.Videos = append(w.Videos, v)
		}
	}
	return w
}

func (f *fakeWorkoutRepo) FindWithVideos(_ context.Context, id uuid.UUID) (*model.WorkoutModel, error) {
	w, ok := f.workouts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	w = f.withVideos(w, false)
	return &w, nil
}

func (f *fakeWorkoutRepo) FindActive(_ context.Context, flt dto.WorkoutFilter) ([]model.WorkoutModel, error) {
	out := []model.WorkoutModel{}
	for _, id := range f.order {
		w := f.workouts[id]
		if !w.IsActive {
			continue
		}
		if flt.Type != nil && w.Type != *flt.Type {
			continue
		}
		if flt.SportType != nil && w.SportType != *flt.SportType {
			continue
		}
		if flt.Difficulty != nil && w.Difficulty != *flt.Difficulty {
			continue
		}
		if flt.RequiresReformer != nil && w.RequiresReformer != *flt.RequiresReformer {
			continue
		}
		out = append(out, f.withVideos(w, true))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// FindActiveByIDs: urutan sengaja dibalik, service yang wajib mengurutkan
func (f *fakeWorkoutRepo) FindActiveByIDs(_ context.Context, ids []uuid.UUID) ([]model.WorkoutModel, error) {
	out := []model.WorkoutModel{}
	for i := len(ids) - 1; i >= 0; i-- {
		if w, ok := f.workouts[ids[i]]; ok && w.IsActive {
			out = append(out, f.withVideos(w, true))
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) LatestSchedules(context.Context, uuid.UUID, int) ([]scheduleModel.ScheduleModel, error) {
	return []scheduleModel.ScheduleModel{}, nil
}

func (f *fakeWorkoutRepo) TopPlayed(_ context.Context, limit int) ([]repository.PlayCount, error) {
	counts := map[uuid.UUID]int64{}
	for _, id := range f.plays {
		counts[id]++
	}
	out := make([]repository.PlayCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, repository.PlayCount{WorkoutID: id, Plays: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Plays > out[j].Plays })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestWorkoutService(t *testing.T) (*WorkoutService, *fakeWorkoutRepo) {
	repo := newFakeWorkoutRepo()
	return NewWorkoutService(repo, t.TempDir(), quietLogger()), repo
}

func mustCreateWorkout(t *testing.T, svc *WorkoutService, title string, reformer bool) *model.WorkoutModel {
	t.Helper()
	m, err := svc.Create(context.Background(), dto.CreateWorkoutRequest{
		Title:            title,
		Type:             model.WorkoutPilates,
		Duration:         20,
		RequiresReformer: &reformer,
	})
	require.NoError(t, err)
	return m
}

func boolPtr(b bool) *bool { return &b }

func TestCreateWorkoutDefaults(t *testing.T) {
	svc, _ := newTestWorkoutService(t)

	m, err := svc.Create(context.Background(), dto.CreateWorkoutRequest{
		Title:    "Padel Pre-Match Conditioning",
		Type:     model.WorkoutConditioning,
		Duration: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, model.SportGeneral, m.SportType)
	assert.Equal(t, model.DifficultyAllLevels, m.Difficulty)
	assert.True(t, m.HasVerbalCues)
	assert.False(t, m.RequiresReformer)
	assert.True(t, m.IsActive)
	assert.NotNil(t, m.Videos)
	assert.Empty(t, m.Videos)
}

func TestFindAllWithoutReformerAccessNeverReturnsReformerWorkouts(t *testing.T) {
	svc, _ := newTestWorkoutService(t)
	mustCreateWorkout(t, svc, "Reformer Flow", true)
	mustCreateWorkout(t, svc, "Mat Flow", false)

	cases := []dto.WorkoutFilter{
		{HasReformerAccess: boolPtr(false)},
		{HasReformerAccess: boolPtr(false), RequiresReformer: boolPtr(true)},
		{HasReformerAccess: boolPtr(false), RequiresReformer: boolPtr(false)},
	}
	for _, f := range cases {
		out, err := svc.FindAll(context.Background(), f)
		require.NoError(t, err)
		require.Len(t, out, 1)
		for _, w := range out {
			assert.False(t, w.RequiresReformer)
		}
	}

	out, err := svc.FindAll(context.Background(), dto.WorkoutFilter{HasReformerAccess: boolPtr(true)})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = svc.FindAll(context.Background(), dto.WorkoutFilter{RequiresReformer: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Reformer Flow", out[0].Title)
}

func TestFindAllCarriesOnlyProcessedVideoSummaries(t *testing.T) {
	svc, repo := newTestWorkoutService(t)
	w := mustCreateWorkout(t, svc, "Mat Flow", false)

	url := model.StreamURLFor("pb1")
	dur := 95
	repo.videos = []model.VideoModel{
		{ID: uuid.New(), WorkoutID: w.ID, IsProcessed: true, StreamURL: &url, Duration: &dur},
		{ID: uuid.New(), WorkoutID: w.ID, IsProcessed: false},
	}

	out, err := svc.FindAll(context.Background(), dto.WorkoutFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Videos, 1)
	assert.Equal(t, &url, out[0].Videos[0].StreamURL)
	assert.Equal(t, &dur, out[0].Videos[0].Duration)
}

func TestGetPopularRanksAndDropsInactive(t *testing.T) {
	svc, repo := newTestWorkoutService(t)
	a := mustCreateWorkout(t, svc, "A", false)
	b := mustCreateWorkout(t, svc, "B", false)
	repo.plays = []uuid.UUID{a.ID, a.ID, a.ID, b.ID}

	out, err := svc.GetPopular(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, a.ID, out[0].ID)
	assert.Equal(t, b.ID, out[1].ID)

	_, err = svc.Remove(context.Background(), a.ID)
	require.NoError(t, err)

	out, err = svc.GetPopular(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, b.ID, out[0].ID)
}

func TestGetPopularDropsStaleIDsAndKeepsOneVideo(t *testing.T) {
	svc, repo := newTestWorkoutService(t)
	a := mustCreateWorkout(t, svc, "A", false)
	repo.plays = []uuid.UUID{uuid.New(), uuid.New(), a.ID}
	repo.videos = []model.VideoModel{
		{ID: uuid.New(), WorkoutID: a.ID, IsProcessed: true},
		{ID: uuid.New(), WorkoutID: a.ID, IsProcessed: true},
	}

	out, err := svc.GetPopular(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Len(t, out[0].Videos, 1)
}

func TestRemoveWorkoutIsIdempotent(t *testing.T) {
	svc, repo := newTestWorkoutService(t)
	w := mustCreateWorkout(t, svc, "A", false)

	for i := 0; i < 2; i++ {
		out, err := svc.Remove(context.Background(), w.ID)
		require.NoError(t, err)
		assert.False(t, out.IsActive)
	}
	assert.False(t, repo.workouts[w.ID].IsActive)

	_, err := svc.Remove(context.Background(), uuid.New())
	assert.Equal(t, fiber.StatusNotFound, helper.StatusOf(err))
}

func TestUpdateWorkout(t *testing.T) {
	svc, _ := newTestWorkoutService(t)
	w := mustCreateWorkout(t, svc, "A", false)

	dur, order := 45, 3
	out, err := svc.Update(context.Background(), w.ID, dto.UpdateWorkoutRequest{Duration: &dur, SortOrder: &order})
	require.NoError(t, err)
	assert.Equal(t, 45, out.Duration)
	assert.Equal(t, 3, out.SortOrder)
	assert.Equal(t, "A", out.Title)

	zero := 0
	_, err = svc.Update(context.Background(), w.ID, dto.UpdateWorkoutRequest{Duration: &zero})
	assert.Equal(t, fiber.StatusBadRequest, helper.StatusOf(err))

	_, err = svc.Update(context.Background(), uuid.New(), dto.UpdateWorkoutRequest{Duration: &dur})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, helper.StatusOf(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestSetThumbnail(t *testing.T) {
	svc, _ := newTestWorkoutService(t)
	w := mustCreateWorkout(t, svc, "A", false)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1280, 960))))

	out, err := svc.SetThumbnail(context.Background(), w.ID, &buf)
	require.NoError(t, err)
	require.NotNil(t, out.ThumbnailURL)
	assert.Equal(t, "/uploads/thumbnails/"+w.ID.String()+".jpg", *out.ThumbnailURL)

	_, err = os.Stat(filepath.Join(svc.uploadDir, "thumbnails", w.ID.String()+".jpg"))
	assert.NoError(t, err)

	_, err = svc.SetThumbnail(context.Background(), w.ID, bytes.NewReader([]byte("not an image")))
	assert.Equal(t, fiber.StatusBadRequest, helper.StatusOf(err))
}
