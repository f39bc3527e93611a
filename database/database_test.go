package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laptop-service-center/config"
	"laptop-service-center/models"
)

func openMemory(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{Driver: "sqlite", URL: ":memory:"}
}

func TestOpenMigrateAndSeed(t *testing.T) {
	db, err := Open(openMemory(t), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	require.NoError(t, Ping(db))

	inserted, err := Seed(db)
	require.NoError(t, err)
	assert.True(t, inserted)

	var complaints []models.Complaint
	require.NoError(t, db.Order("id").Find(&complaints).Error)
	require.Len(t, complaints, 4)
	assert.Equal(t, "Rahul Sharma", complaints[0].CustomerName)
	assert.Equal(t, models.StatusPending, complaints[0].Status)
	assert.Equal(t, models.StatusCompleted, complaints[3].Status)

	var feedbackCount int64
	require.NoError(t, db.Model(&models.Feedback{}).Count(&feedbackCount).Error)
	assert.EqualValues(t, 3, feedbackCount)

	inserted, err = Seed(db)
	require.NoError(t, err)
	assert.False(t, inserted, "seeding twice must not duplicate rows")
}

func TestRatingCheckConstraint(t *testing.T) {
	db, err := Open(openMemory(t), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))

	err = db.Create(&models.Feedback{CustomerName: "A", Email: "a@example.com", Rating: 9}).Error
	assert.Error(t, err)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestInitializeSetsGlobal(t *testing.T) {
	cfg := openMemory(t)
	cfg.Seed = true
	require.NoError(t, Initialize(cfg, zap.NewNop()))
	t.Cleanup(func() { _ = Close(DB) })

	require.NotNil(t, GetDB())
	var count int64
	require.NoError(t, GetDB().Model(&models.Complaint{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

func TestInitializeFailsOnReadOnlyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readonly.db")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	DB = nil
	err := Initialize(config.DatabaseConfig{Driver: "sqlite", URL: "file:" + path + "?mode=ro"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run migrations")
	assert.Nil(t, DB)
}
