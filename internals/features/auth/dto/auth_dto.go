package dto

import (
	"strings"

	"github.com/google/uuid"

	authModel "courtbeat_backend/internals/features/auth/model"
	clubModel "courtbeat_backend/internals/features/clubs/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type AdminProfile struct {
	ID    uuid.UUID            `json:"id"`
	Name  string               `json:"name"`
	Email string               `json:"email"`
	Club  *clubModel.ClubModel `json:"club,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	Admin       AdminProfile `json:"admin"`
}

type MeResponse struct {
	Admin     AdminProfile `json:"admin"`
	ClubID    string       `json:"clubId"`
	ExpiresAt int64        `json:"expiresAt"`
}

func FromAdminModel(m *authModel.ClubAdminModel) AdminProfile {
	return AdminProfile{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Club:  m.Club,
	}
}
