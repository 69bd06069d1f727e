package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.API.Debug)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ESCOLAR_API_BASE_URL", "http://escolar.example:4000/")
	t.Setenv("ESCOLAR_API_TIMEOUT", "3s")
	t.Setenv("ESCOLAR_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	// Trailing slash is stripped so path joining stays predictable.
	assert.Equal(t, "http://escolar.example:4000", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("ESCOLAR_API_TIMEOUT", "-2s")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoggerHonorsFormat(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "warn", Format: "json"}}
	logger := cfg.Logger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug), "debug must be disabled at warn level")
}
