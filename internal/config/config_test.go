package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv обнуляет переменные, которые читает LoadConfig
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "PORT", "LOG_LEVEL", "CORS_ORIGIN", "GOOGLE_MAPS_API_KEY",
		"GEOCODE_PAUSE", "GEOCODE_TIMEOUT", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"WEBHOOK_URL", "WEBHOOK_SECRET", "WEBHOOK_TIMEOUT", "WEBHOOK_MAX_RETRIES", "WEBHOOK_BASE_DELAY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 200*time.Millisecond, cfg.GeocodePause)
	assert.Equal(t, 10*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.False(t, cfg.GeocodingEnabled())
	assert.False(t, cfg.EventsEnabled())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ORIGIN", "http://a.test, http://b.test ,")
	t.Setenv("GOOGLE_MAPS_API_KEY", " AIzaKey ")
	t.Setenv("GEOCODE_PAUSE", "0s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// PORT используется, если HTTP_PORT не задан
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "AIzaKey", cfg.GoogleMapsAPIKey)
	assert.True(t, cfg.GeocodingEnabled())
	assert.Equal(t, time.Duration(0), cfg.GeocodePause)
	assert.True(t, cfg.EventsEnabled())
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "70000")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "HTTP_PORT")
}
