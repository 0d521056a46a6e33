package clubs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authModel "courtbeat_backend/internals/features/auth/model"
	authService "courtbeat_backend/internals/features/auth/service"
	clubModel "courtbeat_backend/internals/features/clubs/model"
)

type AdminSeed struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type ClubSeed struct {
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	AccessCode       string      `json:"access_code"`
	ContactPerson    *string     `json:"contact_person"`
	ContactPhone     *string     `json:"contact_phone"`
	SubscriptionTier string      `json:"subscription_tier"`
	HasReformer      bool        `json:"has_reformer"`
	Admins           []AdminSeed `json:"admins"`
}

func LoadClubSeeds(fsys fs.FS, path string) ([]ClubSeed, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("baca %s: %w", path, err)
	}
	var seeds []ClubSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return seeds, nil
}

// SeedClubsFromJSON: club di-key dengan access code, admin dengan email.
// Data yang sudah ada dilewati.
func SeedClubsFromJSON(ctx context.Context, db *gorm.DB, fsys fs.FS, path string, log *logrus.Logger) error {
	log.WithField("file", path).Info("📥 Membaca seed club")
	seeds, err := LoadClubSeeds(fsys, path)
	if err != nil {
		return err
	}

	for _, s := range seeds {
		club, err := upsertClub(ctx, db, s, log)
		if err != nil {
			return err
		}
		for _, a := range s.Admins {
			if err := upsertAdmin(ctx, db, club.ID, a, log); err != nil {
				return err
			}
		}
	}
	return nil
}

func upsertClub(ctx context.Context, db *gorm.DB, s ClubSeed, log *logrus.Logger) (*clubModel.ClubModel, error) {
	code := strings.ToUpper(strings.TrimSpace(s.AccessCode))

	var existing clubModel.ClubModel
	err := db.WithContext(ctx).Where("access_code = ?", code).First(&existing).Error
	if err == nil {
		log.WithField("access_code", code).Info("ℹ️ Club sudah ada, dilewati")
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cek club %s: %w", code, err)
	}

	tier := clubModel.TierBase
	if strings.EqualFold(s.SubscriptionTier, string(clubModel.TierPremium)) {
		tier = clubModel.TierPremium
	}
	club := &clubModel.ClubModel{
		ID:               uuid.New(),
		Name:             s.Name,
		Email:            strings.ToLower(strings.TrimSpace(s.Email)),
		AccessCode:       code,
		ContactPerson:    s.ContactPerson,
		ContactPhone:     s.ContactPhone,
		SubscriptionTier: tier,
		HasReformer:      s.HasReformer,
		IsActive:         true,
	}
	if err := db.WithContext(ctx).Create(club).Error; err != nil {
		return nil, fmt.Errorf("insert club %s: %w", code, err)
	}
	log.WithField("access_code", code).WithField("name", club.Name).Info("✅ Club di-seed")
	return club, nil
}

func upsertAdmin(ctx context.Context, db *gorm.DB, clubID uuid.UUID, a AdminSeed, log *logrus.Logger) error {
	email := strings.ToLower(strings.TrimSpace(a.Email))

	var n int64
	if err := db.WithContext(ctx).Model(&authModel.ClubAdminModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return fmt.Errorf("cek admin %s: %w", email, err)
	}
	if n > 0 {
		log.WithField("email", email).Info("ℹ️ Admin sudah ada, dilewati")
		return nil
	}

	// 🔐 hash password sebelum disimpan
	hash, err := authService.HashPassword(a.Password)
	if err != nil {
		return fmt.Errorf("hash password %s: %w", email, err)
	}
	admin := &authModel.ClubAdminModel{
		ID:           uuid.New(),
		ClubID:       clubID,
		Email:        email,
		PasswordHash: hash,
		Name:         a.Name,
	}
	if err := db.WithContext(ctx).Omit("Club").Create(admin).Error; err != nil {
		return fmt.Errorf("insert admin %s: %w", email, err)
	}
	log.WithField("email", email).Info("✅ Admin di-seed")
	return nil
}
