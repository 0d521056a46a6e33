package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (MusicRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return NewMusicRepository(db), mock
}

func TestFindActiveByEnergyOrdersByBPM(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT \* FROM "music_tracks" WHERE is_active = \$1 AND energy = \$2 ORDER BY bpm DESC NULLS LAST`).
		WithArgs(true, "high").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "energy", "bpm"}).
			AddRow(uuid.NewString(), "Fast", "high", 150).
			AddRow(uuid.NewString(), "Faster", "high", 128))

	out, err := repo.FindActiveByEnergy(context.Background(), "high")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Fast", out[0].Title)
	assert.Equal(t, 150, *out[0].BPM)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveNewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT \* FROM "music_tracks" WHERE is_active = \$1 ORDER BY created_at DESC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	out, err := repo.FindActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
	require.NoError(t, mock.ExpectationsWereMet())
}
