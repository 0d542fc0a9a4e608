package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Authentication and admin bootstrap configuration
//   - database.go: Database and Redis configuration
//   - http.go: HTTP server and rate limit configuration
//   - observability.go: StatsD metrics configuration
type AppConfig struct {
	// Env names the deployment environment. Cookies are only marked Secure
	// outside development.
	Env string `env:"APP_ENV" envDefault:"development"`

	// IsDev controls development mode behavior.
	// Set DEV=true or APP_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Authentication configuration
	Auth AuthConfig

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Rate limit configuration
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`

	// Metrics configuration
	Statsd StatsdConfig `envPrefix:"STATSD_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.RateLimit.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and APP_ENV environment variables, with
// NODE_ENV as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if c.IsDev {
		return
	}
	appEnv := strings.ToLower(c.Env)
	if appEnv == "development" || appEnv == "dev" {
		c.IsDev = true
		return
	}
	nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
	c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
}

// IsProduction reports whether the application runs in a deployed environment.
func (c *AppConfig) IsProduction() bool {
	return !c.IsDev
}
