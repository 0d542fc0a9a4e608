// Package auth contains domain-level types for authentication and session claims.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and token claims.
// Only admin exists today; the set comparison in Satisfies keeps the
// check general if more roles are introduced later.
type Role string

const (
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is a known application role.
func (r Role) Valid() bool {
	return r == RoleAdmin
}

// Satisfies reports whether the role grants the required role.
// Written as a set-membership check so adding roles later does not
// require a redesign.
func (r Role) Satisfies(required Role) bool {
	allowed := map[Role]map[Role]bool{
		RoleAdmin: {RoleAdmin: true},
	}
	grants, ok := allowed[r]
	if !ok {
		return false
	}
	return grants[required]
}

// Claims is the decoded, verified content of a session token.
// The server never persists issued tokens; a token is valid purely by
// signature and expiry at verification time.
type Claims struct {
	SubjectID string    `json:"sub"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}
