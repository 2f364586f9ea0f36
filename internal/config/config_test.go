package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_PORT", "3000")
	t.Setenv("DB_USER", "hueify")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "hueify")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 60, cfg.TokenTTLMin)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.DBPass)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("TOKEN_TTL_MIN", "30")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 30, cfg.TokenTTLMin)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadRateLimitConfigFloors(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	// TTL is raised to outlive several refill cycles.
	assert.Equal(t, 5*time.Minute, cfg.TTL)
}

func TestLoadHistoryCacheConfig(t *testing.T) {
	t.Setenv("HISTORY_CACHE_TTL", "90s")

	cfg := LoadHistoryCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 90*time.Second, cfg.TTL)
	assert.Equal(t, "history", cfg.Prefix)
}
