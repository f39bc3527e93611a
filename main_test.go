package main

import (
	"context"
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laptop-service-center/config"
	"laptop-service-center/database"
	"laptop-service-center/models"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := newRootCommand()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "seed"})
}

func TestSeedCommandPopulatesSqlite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "center.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_URL", dbPath)
	t.Setenv("GIN_MODE", "test")

	for i := 0; i < 2; i++ {
		cmd := newRootCommand()
		cmd.SetArgs([]string{"seed"})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
	}

	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", URL: dbPath}, zap.NewNop())
	require.NoError(t, err)
	defer database.Close(db)

	var complaints, feedback int64
	require.NoError(t, db.Model(&models.Complaint{}).Count(&complaints).Error)
	require.NoError(t, db.Model(&models.Feedback{}).Count(&feedback).Error)
	assert.EqualValues(t, 4, complaints)
	assert.EqualValues(t, 3, feedback)
}

func TestMissingEnvFileFails(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--env-file", filepath.Join(t.TempDir(), "nope.env"), "migrate"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestServeReturnsWhenListenFails(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()

	dir := t.TempDir()
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: strconv.Itoa(busy.Addr().(*net.TCPAddr).Port), GinMode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite", URL: filepath.Join(dir, "center.db")},
		JWT:      config.JWTConfig{Secret: "secret", ExpiryHours: 1},
		Admin:    config.AdminConfig{Username: "admin", Password: "admin123"},
		Upload:   config.UploadConfig{Backend: "local", Dir: filepath.Join(dir, "uploads"), URLPrefix: "/uploads"},
		Jobs:     config.JobsConfig{OverdueCron: "0 9 * * *"},
	}

	done := make(chan error, 1)
	go func() { done <- serve(context.Background(), cfg, zap.NewNop()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server failed")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after listen failure")
	}
}
