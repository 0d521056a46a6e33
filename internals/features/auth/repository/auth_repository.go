package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtbeat_backend/internals/features/auth/model"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.ClubAdminModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ClubAdminModel, error)
	Create(ctx context.Context, m *model.ClubAdminModel) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// FindByEmail: club ikut di-preload untuk profil login
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.ClubAdminModel, error) {
	var admin model.ClubAdminModel
	if err := r.db.WithContext(ctx).Preload("Club").Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ClubAdminModel, error) {
	var admin model.ClubAdminModel
	if err := r.db.WithContext(ctx).Preload("Club").Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Create(ctx context.Context, m *model.ClubAdminModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Omit("Club").Create(m).Error
}
