// Package model holds the domain entities and request/response shapes.
package model

import (
	"errors"
	"regexp"
	"strings"
	"time"

	domainauth "github.com/sevahub/volunteer-api/internal/domain/auth"
)

// emailPattern mirrors the registration form's loose email check: one "@",
// no whitespace, at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// AdminUser represents a stored administrative account.
// PasswordHash is never serialized; every externally visible projection
// goes through Sanitized.
type AdminUser struct {
	ID           string          `json:"id"         db:"id"`
	Email        string          `json:"email"      db:"email"`
	PasswordHash string          `json:"-"          db:"password_hash"`
	Role         domainauth.Role `json:"role"       db:"role"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// User is the externally visible projection of an AdminUser.
type User struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Role  domainauth.Role `json:"role"`
}

// Sanitized returns the projection of the account safe to serialize.
func (u *AdminUser) Sanitized() User {
	return User{ID: u.ID, Email: u.Email, Role: u.Role}
}

// NormalizeEmail lowercases and trims an email for case-insensitive storage
// and lookup. Uniqueness is defined over the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail reports whether the normalized email has a plausible shape.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(NormalizeEmail(email)) {
		return errors.New("invalid email address")
	}
	return nil
}

// LoginRequest carries the credentials submitted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates LoginRequest shape. Credential correctness is not
// checked here; a shape failure rejects the request before any credential
// lookup happens.
func (r *LoginRequest) Validate() error {
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
