package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"courtbeat_backend/internals/features/auth/model"
	clubModel "courtbeat_backend/internals/features/clubs/model"
	helper "courtbeat_backend/internals/helpers"
)

type fakeAdminRepo struct {
	byEmail map[string]*model.ClubAdminModel
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*model.ClubAdminModel, error) {
	if a, ok := f.byEmail[email]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ClubAdminModel, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAdminRepo) Create(_ context.Context, m *model.ClubAdminModel) error {
	f.byEmail[m.Email] = m
	return nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestAuthService(t *testing.T) (*AuthService, *model.ClubAdminModel) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	club := &clubModel.ClubModel{ID: uuid.New(), Name: "Test Club", Email: "club@test.io", AccessCode: "TESTCODE", IsActive: true}
	admin := &model.ClubAdminModel{
		ID:           uuid.New(),
		ClubID:       club.ID,
		Email:        "admin@test.io",
		PasswordHash: string(hash),
		Name:         "Test Admin",
		Club:         club,
	}
	repo := &fakeAdminRepo{byEmail: map[string]*model.ClubAdminModel{admin.Email: admin}}
	return NewAuthService(repo, NewTokenIssuer("test-secret", time.Hour), quietLogger()), admin
}

func TestLoginSuccess(t *testing.T) {
	svc, admin := newTestAuthService(t)

	res, err := svc.Login(context.Background(), "admin@test.io", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	assert.Equal(t, admin.ID, res.Admin.ID)
	assert.Equal(t, "Test Admin", res.Admin.Name)
	require.NotNil(t, res.Admin.Club)
	assert.Equal(t, admin.ClubID, res.Admin.Club.ID)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.Subject)
	assert.Equal(t, "admin@test.io", claims.Email)
	assert.Equal(t, admin.ClubID.String(), claims.ClubID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	for _, tc := range []struct{ email, password string }{
		{"admin@test.io", "wrong"},
		{"nobody@test.io", "secret"},
	} {
		_, err := svc.Login(context.Background(), tc.email, tc.password)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, helper.StatusOf(err))
		assert.Equal(t, "Invalid credentials", err.(*fiber.Error).Message)
	}
}

func TestValidateTokenRejectsExpiredAndForeign(t *testing.T) {
	svc, admin := newTestAuthService(t)

	svc.Now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := svc.Login(context.Background(), admin.Email, "secret")
	require.NoError(t, err)

	foreign, err := NewTokenIssuer("other-secret", time.Hour).Issue(admin, time.Now())
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: admin.ID.String()})
	noneTok, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for _, raw := range []string{expired.AccessToken, foreign, noneTok, "garbage"} {
		_, err := svc.ValidateToken(raw)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, helper.StatusOf(err))
		assert.Equal(t, "Invalid token", err.(*fiber.Error).Message)
	}
}

func TestMe(t *testing.T) {
	svc, admin := newTestAuthService(t)
	res, err := svc.Login(context.Background(), admin.Email, "secret")
	require.NoError(t, err)
	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)

	me, err := svc.Me(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, me.Admin.ID)
	assert.Equal(t, admin.ClubID.String(), me.ClubID)
	assert.Greater(t, me.ExpiresAt, time.Now().Unix())
}
