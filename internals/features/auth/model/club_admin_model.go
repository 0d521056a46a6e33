package model

import (
	"time"

	"github.com/google/uuid"

	clubModel "courtbeat_backend/internals/features/clubs/model"
)

// ClubAdminModel: admin login milik tepat satu club
type ClubAdminModel struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	ClubID       uuid.UUID `json:"clubId" gorm:"type:uuid;not null;column:club_id"`
	Email        string    `json:"email" gorm:"type:text;not null;uniqueIndex:uq_club_admins_email;column:email"`
	PasswordHash string    `json:"-" gorm:"type:text;not null;column:password_hash"`
	Name         string    `json:"name" gorm:"type:text;not null;column:name"`

	Club *clubModel.ClubModel `json:"club,omitempty" gorm:"foreignKey:ClubID;references:ID"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
}

func (ClubAdminModel) TableName() string { return "club_admins" }
