package config

import "time"

// minSessionTTL guards against accidentally issuing near-instant tokens
// through a typo'd duration.
const minSessionTTL = time.Minute

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// JWTSecret signs session tokens. Required; there is no insecure default.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// SessionTTL bounds how long an issued session token stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// AdminEmail and AdminPassword seed the initial administrator account on
	// startup. When either is empty the bootstrap step is skipped.
	AdminEmail    string `env:"ADMIN_EMAIL"    envDefault:""`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:""`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL < minSessionTTL {
		a.SessionTTL = 24 * time.Hour
	}
}
