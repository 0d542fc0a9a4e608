package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, vars map[string]string) *AppConfig {
	t.Helper()
	if _, ok := vars["JWT_SECRET"]; !ok {
		vars["JWT_SECRET"] = "test-secret"
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()
	return &cfg
}

func TestAppConfig_Defaults(t *testing.T) {
	cfg := loadConfig(t, map[string]string{})

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev)
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Empty(t, cfg.Auth.AdminEmail)

	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.True(t, cfg.Postgres.RunMigrationsOnStart)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)

	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)

	assert.False(t, cfg.Statsd.Enabled)
	assert.Empty(t, cfg.Statsd.Address)
	assert.Equal(t, "volunteer_api", cfg.Statsd.Prefix)
}

func TestAppConfig_RequiresJWTSecret(t *testing.T) {
	// Ensure no secret leaks in from the environment.
	t.Setenv("JWT_SECRET", "")

	var cfg AppConfig
	err := env.Parse(&cfg)
	require.Error(t, err)
}

func TestAppConfig_ProductionMode(t *testing.T) {
	cfg := loadConfig(t, map[string]string{
		"APP_ENV": "production",
	})

	assert.False(t, cfg.IsDev)
	assert.True(t, cfg.IsProduction())
}

func TestAppConfig_DevModeFallbacks(t *testing.T) {
	t.Run("DEV flag", func(t *testing.T) {
		cfg := loadConfig(t, map[string]string{
			"APP_ENV": "production",
			"DEV":     "true",
		})
		assert.True(t, cfg.IsDev)
	})

	t.Run("NODE_ENV fallback", func(t *testing.T) {
		cfg := loadConfig(t, map[string]string{
			"APP_ENV":  "production",
			"NODE_ENV": "development",
		})
		assert.True(t, cfg.IsDev)
	})
}

func TestAppConfig_SanitizeGuardrails(t *testing.T) {
	cfg := loadConfig(t, map[string]string{
		"SESSION_TTL":         "5s",
		"RATE_LIMIT_REQUESTS": "-3",
		"RATE_LIMIT_WINDOW":   "1ms",
	})

	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	cfg := loadConfig(t, map[string]string{
		"SESSION_TTL":         "48h",
		"ADMIN_EMAIL":         "root@example.org",
		"ADMIN_PASSWORD":      "bootstrap-me",
		"DB_HOST":             "db.internal",
		"DB_PORT":             "5433",
		"REDIS_ADDR":          "cache.internal:6379",
		"HTTP_ADDR":           ":9090",
		"RATE_LIMIT_REQUESTS": "50",
		"RATE_LIMIT_WINDOW":   "1m",
		"STATSD_ENABLED":      "true",
		"STATSD_ADDRESS":      "metrics.internal:8125",
	})

	assert.Equal(t, 48*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "root@example.org", cfg.Auth.AdminEmail)
	assert.Equal(t, "bootstrap-me", cfg.Auth.AdminPassword)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 50, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.True(t, cfg.Statsd.Enabled)
	assert.Equal(t, "metrics.internal:8125", cfg.Statsd.Address)
}
