package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"courtbeat_backend/internals/features/auth/dto"
	"courtbeat_backend/internals/features/auth/model"
	"courtbeat_backend/internals/features/auth/repository"
	helper "courtbeat_backend/internals/helpers"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidToken       = "Invalid token"
)

type AuthService struct {
	repo   repository.AdminRepository
	tokens *TokenIssuer
	log    *logrus.Logger

	Now func() time.Time
}

func NewAuthService(repo repository.AdminRepository, tokens *TokenIssuer, log *logrus.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log, Now: time.Now}
}

// ========================== LOGIN ==========================
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			compareWithDummy(password)
			return nil, helper.ErrUnauthenticated(msgInvalidCredentials)
		}
		s.log.WithError(err).Error("login: gagal ambil admin")
		return nil, helper.ErrInternal("Failed to login")
	}

	if err := CheckPasswordHash(admin.PasswordHash, password); err != nil {
		return nil, helper.ErrUnauthenticated(msgInvalidCredentials)
	}

	token, err := s.tokens.Issue(admin, s.Now())
	if err != nil {
		s.log.WithError(err).Error("login: gagal sign token")
		return nil, helper.ErrInternal("Failed to issue token")
	}

	s.log.WithField("admin_id", admin.ID).WithField("club_id", admin.ClubID).Info("admin logged in")
	return &dto.LoginResponse{
		AccessToken: token,
		Admin:       dto.FromAdminModel(admin),
	}, nil
}

// ========================== VALIDATE ==========================
func (s *AuthService) ValidateToken(token string) (*model.TokenClaims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, helper.ErrUnauthenticated(msgInvalidToken)
	}
	return claims, nil
}

// Me: profil admin dari claims token yang sudah tervalidasi.
func (s *AuthService) Me(ctx context.Context, claims *model.TokenClaims) (*dto.MeResponse, error) {
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, helper.ErrUnauthenticated(msgInvalidToken)
	}
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// admin sudah dihapus setelah token terbit
			return nil, helper.ErrUnauthenticated(msgInvalidToken)
		}
		return nil, helper.ErrInternal("Failed to load admin")
	}

	out := &dto.MeResponse{
		Admin:  dto.FromAdminModel(admin),
		ClubID: claims.ClubID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return out, nil
}
