package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_REQUIRE_TOKEN", "UPLOAD_BACKEND", "UPLOAD_MAX_BYTES", "ESTIMATED_COMPLETION_DAYS", "CORS_ORIGINS", "SMTP_HOST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Same(t, cfg, AppConfig)
	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.False(t, cfg.Admin.RequireToken)
	assert.Equal(t, "local", cfg.Upload.Backend)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, 72*time.Hour, cfg.Complaint.EstimatedCompletion)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.False(t, cfg.Mail.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("ADMIN_REQUIRE_TOKEN", "true")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")
	t.Setenv("ESTIMATED_COMPLETION_DAYS", "5")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("JWT_EXPIRY_HOURS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Admin.RequireToken)
	assert.Equal(t, int64(1024), cfg.Upload.MaxBytes)
	assert.Equal(t, 5*24*time.Hour, cfg.Complaint.EstimatedCompletion)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Mail.Enabled())
	assert.Equal(t, 12, cfg.JWT.ExpiryHours)
}
