package controller_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	analyticsModel "courtbeat_backend/internals/features/analytics/model"
	"courtbeat_backend/internals/features/clubs/dto"
	model "courtbeat_backend/internals/features/clubs/model"
	"courtbeat_backend/internals/features/clubs/controller"
	"courtbeat_backend/internals/features/clubs/route"
	"courtbeat_backend/internals/features/clubs/service"
	scheduleModel "courtbeat_backend/internals/features/schedules/model"
)

type stubClubRepo struct {
	clubs map[uuid.UUID]model.ClubModel
}

func (r *stubClubRepo) Create(_ context.Context, m *model.ClubModel) error {
	m.ID = uuid.New()
	r.clubs[m.ID] = *m
	return nil
}
func (r *stubClubRepo) Save(_ context.Context, m *model.ClubModel) error {
	r.clubs[m.ID] = *m
	return nil
}
func (r *stubClubRepo) FindAll(context.Context, bool) ([]model.ClubModel, error) {
	out := []model.ClubModel{}
	for _, c := range r.clubs {
		out = append(out, c)
	}
	return out, nil
}
func (r *stubClubRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ClubModel, error) {
	if c, ok := r.clubs[id]; ok {
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *stubClubRepo) FindByEmail(_ context.Context, email string) (*model.ClubModel, error) {
	for _, c := range r.clubs {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *stubClubRepo) FindByAccessCode(_ context.Context, code string) (*model.ClubModel, error) {
	for _, c := range r.clubs {
		if c.AccessCode == code {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *stubClubRepo) AccessCodeExists(ctx context.Context, code string) (bool, error) {
	_, err := r.FindByAccessCode(ctx, code)
	return err == nil, nil
}
func (r *stubClubRepo) LatestSchedules(context.Context, uuid.UUID, int) ([]scheduleModel.ScheduleModel, error) {
	return []scheduleModel.ScheduleModel{}, nil
}
func (r *stubClubRepo) LatestEvents(context.Context, uuid.UUID, int) ([]analyticsModel.AnalyticsEventModel, error) {
	return []analyticsModel.AnalyticsEventModel{}, nil
}
func (r *stubClubRepo) CountEvents(_ context.Context, _ uuid.UUID, eventType string) (int64, error) {
	if eventType == analyticsModel.EventWorkoutPlayed {
		return 7, nil
	}
	return 2, nil
}
func (r *stubClubRepo) CountSchedulesFrom(context.Context, uuid.UUID, time.Time) (int64, error) {
	return 3, nil
}

func newClubApp() *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := &stubClubRepo{clubs: map[uuid.UUID]model.ClubModel{}}
	app := fiber.New()
	route.ClubRoutes(app.Group("/api"), controller.NewClubController(service.NewClubService(repo, log), nil))
	return app
}

func send(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeClub(t *testing.T, raw []byte) model.ClubModel {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Data    model.ClubModel `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	require.True(t, env.Success)
	return env.Data
}

func TestCreateClubHTTP(t *testing.T) {
	app := newClubApp()

	code, raw := send(t, app, "POST", "/api/clubs", `{"name":"Smash Club","email":"Owner@Smash.com"}`)
	require.Equal(t, fiber.StatusCreated, code)
	club := decodeClub(t, raw)
	assert.Len(t, club.AccessCode, 8)
	assert.Equal(t, "owner@smash.com", club.Email)
	assert.Equal(t, model.TierBase, club.SubscriptionTier)
	assert.True(t, club.IsActive)

	code, _ = send(t, app, "POST", "/api/clubs", `{"name":"Other","email":"owner@smash.com"}`)
	assert.Equal(t, fiber.StatusConflict, code)

	code, _ = send(t, app, "POST", "/api/clubs", `{"name":"No Email"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = send(t, app, "POST", "/api/clubs", `{"name":"X","email":"x@y.com","courts":4}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestAccessCodeLookupHTTP(t *testing.T) {
	app := newClubApp()

	_, raw := send(t, app, "POST", "/api/clubs", `{"name":"Smash Club","email":"owner@smash.com"}`)
	club := decodeClub(t, raw)

	code, raw := send(t, app, "GET", "/api/clubs/access/"+strings.ToLower(club.AccessCode), "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, club.ID, decodeClub(t, raw).ID)

	code, _ = send(t, app, "GET", "/api/clubs/access/NOPE0000", "")
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = send(t, app, "DELETE", "/api/clubs/"+club.ID.String(), "")
	require.Equal(t, fiber.StatusOK, code)

	code, _ = send(t, app, "GET", "/api/clubs/access/"+club.AccessCode, "")
	assert.Equal(t, fiber.StatusConflict, code)
}

func TestUpgradeAndStatsHTTP(t *testing.T) {
	app := newClubApp()

	_, raw := send(t, app, "POST", "/api/clubs", `{"name":"Smash Club","email":"owner@smash.com"}`)
	club := decodeClub(t, raw)

	code, raw := send(t, app, "PATCH", "/api/clubs/"+club.ID.String()+"/upgrade", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, model.TierPremium, decodeClub(t, raw).SubscriptionTier)

	code, raw = send(t, app, "GET", "/api/clubs/"+club.ID.String()+"/stats", "")
	require.Equal(t, fiber.StatusOK, code)
	var env struct {
		Data dto.ClubStatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, dto.ClubStats{TotalWorkouts: 7, TotalSessions: 2, ScheduledWorkouts: 3}, env.Data.Stats)
}

func TestClubNotFoundAndBadIDHTTP(t *testing.T) {
	app := newClubApp()

	code, _ := send(t, app, "GET", "/api/clubs/"+uuid.NewString(), "")
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = send(t, app, "PATCH", "/api/clubs/"+uuid.NewString(), `{"name":"New"}`)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = send(t, app, "GET", "/api/clubs/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, code)
}
