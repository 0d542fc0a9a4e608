package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevahub/volunteer-api/config"
)

func buildConfig() *config.AppConfig {
	cfg := &config.AppConfig{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.SessionTTL = 24 * time.Hour
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.Requests = 100
	cfg.RateLimit.Window = 15 * time.Minute
	return cfg
}

func TestBuildServices_WiresContainer(t *testing.T) {
	container, err := BuildServices(ServicesConfig{Config: buildConfig()})
	require.NoError(t, err)

	assert.NotNil(t, container.Auth)
	assert.NotNil(t, container.Applicants)
	require.NotNil(t, container.Metrics)
	assert.False(t, container.Metrics.Enabled())

	// No Redis client means no limiter even when rate limiting is enabled.
	assert.Nil(t, container.Limiter)

	assert.NoError(t, container.Close())
}

func TestBuildServices_RequiresTokenSecret(t *testing.T) {
	cfg := buildConfig()
	cfg.Auth.JWTSecret = ""

	_, err := BuildServices(ServicesConfig{Config: cfg})
	require.Error(t, err)
}
