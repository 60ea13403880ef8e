package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "portfolio.db", cfg.Database.Path)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "images", cfg.Server.ImagesDir)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 365, cfg.Analytics.RetentionDays)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.True(t, cfg.App.LogPretty)
	assert.False(t, cfg.Contact.SMTPConfigured())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("WATCH_PROJECTS", "true")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.Projects.Watch)
	assert.False(t, cfg.App.LogPretty)
}

func TestFromEnvInvalidValuesFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("CACHE_TTL", "soon")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Cache.RedisDB)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
}

func TestValidateRequiresAdminOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_USERNAME")
}

func TestLoadWithoutEnvFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.App.EnvFileLoaded)
}

func TestLoadAppliesEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("APP_ENV", "development")
	// Register PORT for restoration, then unset it so the file value applies.
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9123\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.App.EnvFileLoaded)
	assert.Equal(t, "9123", cfg.Server.Port)
}
