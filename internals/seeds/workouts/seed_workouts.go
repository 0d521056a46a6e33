package workouts

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "courtbeat_backend/internals/features/workouts/model"
)

type WorkoutSeed struct {
	Key            string  `json:"key"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	Type           string  `json:"type"`
	SportType      string  `json:"sport_type"`
	Difficulty     string  `json:"difficulty"`
	Duration       int     `json:"duration"`
	RequiresRacket bool    `json:"requires_racket"`
	RequiresMat    bool    `json:"requires_mat"`
	SortOrder      int     `json:"sort_order"`
}

// SeedID: uuid stabil dari key seed supaya seed ulang tidak menduplikasi
func SeedID(key string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("courtbeat:workout:"+key))
}

func (s WorkoutSeed) ToModel() model.WorkoutModel {
	return model.WorkoutModel{
		ID:             SeedID(s.Key),
		Title:          s.Title,
		Description:    s.Description,
		Type:           model.WorkoutType(s.Type),
		SportType:      model.SportType(s.SportType),
		Difficulty:     model.Difficulty(s.Difficulty),
		Duration:       s.Duration,
		RequiresRacket: s.RequiresRacket,
		RequiresMat:    s.RequiresMat,
		HasVerbalCues:  true,
		IsActive:       true,
		SortOrder:      s.SortOrder,
	}
}

func LoadWorkoutSeeds(fsys fs.FS, path string) ([]WorkoutSeed, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("baca %s: %w", path, err)
	}
	var seeds []WorkoutSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return seeds, nil
}

func SeedWorkoutsFromJSON(ctx context.Context, db *gorm.DB, fsys fs.FS, path string, log *logrus.Logger) error {
	log.WithField("file", path).Info("📥 Membaca seed workout")
	seeds, err := LoadWorkoutSeeds(fsys, path)
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		log.Info("ℹ️ Tidak ada workout untuk di-seed")
		return nil
	}

	rows := make([]model.WorkoutModel, 0, len(seeds))
	for _, s := range seeds {
		rows = append(rows, s.ToModel())
	}

	// bulk insert, id yang sudah ada dilewati
	res := db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert workouts: %w", res.Error)
	}
	log.WithField("inserted", res.RowsAffected).WithField("total", len(rows)).Info("✅ Workouts di-seed")
	return nil
}
