package seeds

import (
	"context"
	"embed"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"courtbeat_backend/internals/seeds/clubs"
	"courtbeat_backend/internals/seeds/workouts"
)

//go:embed data/*.json
var dataFS embed.FS

const (
	clubsFile    = "data/clubs.json"
	workoutsFile = "data/workouts.json"
)

// RunAllSeeds: data demo (club, admin, katalog workout). Aman dijalankan berulang.
func RunAllSeeds(ctx context.Context, db *gorm.DB, log *logrus.Logger) error {
	log.Info("🌱 Seeding CourtBeat database...")

	//* Club + admin
	if err := clubs.SeedClubsFromJSON(ctx, db, dataFS, clubsFile, log); err != nil {
		return err
	}

	//* Workouts
	if err := workouts.SeedWorkoutsFromJSON(ctx, db, dataFS, workoutsFile, log); err != nil {
		return err
	}

	log.Info("🎉 Seeding selesai")
	return nil
}
