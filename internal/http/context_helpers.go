package httpx

import (
	"context"

	"github.com/sevahub/volunteer-api/internal/domain/model"
)

// identityKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type identityKey struct{}

// SetIdentityInContext returns a child context that carries the authenticated user.
// If user is nil, the original ctx is returned unchanged.
func SetIdentityInContext(ctx context.Context, user *model.User) context.Context {
	if user == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey{}, user)
}

// GetIdentityFromContext returns the authenticated user from context and a
// boolean indicating presence. The user is always the store-resolved identity,
// never raw token claims.
func GetIdentityFromContext(ctx context.Context) (*model.User, bool) {
	if user, ok := ctx.Value(identityKey{}).(*model.User); ok && user != nil {
		return user, true
	}
	return nil, false
}
