// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/data and internal/adapters; orchestration
// in internal/service.
package ports

import (
	"context"
	"time"

	domainauth "github.com/sevahub/volunteer-api/internal/domain/auth"
	"github.com/sevahub/volunteer-api/internal/domain/model"
)

// CredentialStore persists administrative accounts and owns password
// hashing/verification. Email comparison is case-insensitive; "not found"
// is signaled with data.ErrAdminUserNotFound, never a panic or nil pair.
type CredentialStore interface {
	// FindByEmail looks up an account by normalized email.
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)

	// FindByID looks up an account by ID. Used by the auth gate to re-fetch
	// the identity behind a verified token so deletions take effect without
	// waiting for token expiry.
	FindByID(ctx context.Context, id string) (*model.AdminUser, error)

	// Create stores a new account with the password transformed through a
	// slow, salted one-way hash. Returns data.ErrAdminEmailExists when the
	// normalized email is already taken; uniqueness is enforced by the
	// backing store, not by check-then-insert.
	Create(ctx context.Context, email, password string) (*model.AdminUser, error)

	// VerifyPassword reports whether the candidate matches the stored hash.
	// Comparison is delegated to the hash primitive.
	VerifyPassword(u *model.AdminUser, candidate string) bool
}

// TokenCodec issues and verifies signed, time-bounded session tokens.
// Tokens are stateless: the server keeps no record of what it issued.
type TokenCodec interface {
	// Issue mints a signed token carrying the user's identity claims,
	// expiring TTL after now.
	Issue(user model.User, now time.Time) (string, error)

	// Verify parses and validates a token. Failures are one of the codec's
	// sentinels: token.ErrMalformed, token.ErrBadSignature, token.ErrExpired.
	Verify(raw string) (*domainauth.Claims, error)

	// TTL reports the validity window applied to issued tokens.
	TTL() time.Duration
}

// RequestLimiter bounds the request rate for a caller key (client IP).
type RequestLimiter interface {
	// Allow reports whether the caller identified by key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
}
