package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "EcoRoute", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, time.Duration(0), cfg.AI.RequestTimeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "https://www.google.com/maps/embed/v1/directions", cfg.Maps.EmbedBaseURL)
}

func TestEnvOverrides_AI(t *testing.T) {
	t.Run("GOOGLE_API_KEY is used when GEMINI_API_KEY is empty", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "google-key")
		t.Setenv("GEMINI_API_KEY", "")

		cfg := defaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "google-key", cfg.AI.APIKey)
	})

	t.Run("GEMINI_API_KEY takes precedence", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "google-key")
		t.Setenv("GEMINI_API_KEY", "gemini-key")

		cfg := defaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "gemini-key", cfg.AI.APIKey)
	})

	t.Run("timeout and temperature", func(t *testing.T) {
		t.Setenv("AI_REQUEST_TIMEOUT", "45s")
		t.Setenv("AI_TEMPERATURE", "0.9")

		cfg := defaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 45*time.Second, cfg.AI.RequestTimeout)
		assert.InDelta(t, 0.9, cfg.AI.Temperature, 1e-9)
	})
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ecoroute.yaml")
	content := []byte(`
app:
  name: FleetPlanner
  port: 9090
maps:
  google_maps:
    api_key: file-maps-key
redis:
  enabled: true
  guard_ttl: 30s
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv(ConfigFileEnv, path)
	t.Setenv("APP_PORT", "9191")
	t.Setenv("GOOGLE_MAPS_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "FleetPlanner", cfg.App.Name)
	assert.Equal(t, 9191, cfg.App.Port, "environment wins over file")
	assert.Equal(t, "file-maps-key", cfg.Maps.GoogleMaps.APIKey)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.GuardTTL)
	assert.Equal(t, 6379, cfg.Redis.Port, "unset keys keep defaults")
}

func TestLoad_NullSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecoroute.yaml")
	content := []byte("ai:\nredis: ~\nsecurity:\nmaps:\n  google_maps:\napp:\n  port: 9090\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv(ConfigFileEnv, path)
	t.Setenv("APP_PORT", "")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("REDIS_ENABLED", "")

	var cfg *Config
	require.NotPanics(t, func() {
		var err error
		cfg, err = Load()
		require.NoError(t, err)
	})

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, []string{"*"}, cfg.Security.CORSAllowedOrigins)
	require.NotNil(t, cfg.Maps.GoogleMaps)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")

	t.Run("missing file", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("temperature out of range", func(t *testing.T) {
		t.Setenv("AI_TEMPERATURE", "3.5")
		_, err := Load()
		assert.ErrorContains(t, err, "AI_TEMPERATURE")
	})
}

func TestGetEnvAsSlice_TrimsEntries(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	got := getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, got)
}
