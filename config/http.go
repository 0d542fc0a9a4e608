package config

import "time"

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://app.example.com").
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`
}

// RateLimitConfig bounds how many requests a client IP may make per window.
type RateLimitConfig struct {
	// Enabled toggles the limiter. When disabled the server does not
	// connect to Redis at all.
	Enabled bool `env:"ENABLED" envDefault:"true"`

	// Requests is the allowance per window per client IP.
	Requests int `env:"REQUESTS" envDefault:"100"`

	// Window is the fixed window length.
	Window time.Duration `env:"WINDOW" envDefault:"15m"`
}

// Sanitize applies guardrails to rate limit configuration values.
func (r *RateLimitConfig) Sanitize() {
	if r.Requests < 1 {
		r.Requests = 100
	}
	if r.Window < time.Second {
		r.Window = 15 * time.Minute
	}
}
