package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevahub/volunteer-api/config"
	mocksauth "github.com/sevahub/volunteer-api/internal/mocks/auth"
	"github.com/sevahub/volunteer-api/internal/service"
)

func TestEnsureAdmin_CreatesAndIsIdempotent(t *testing.T) {
	store := mocksauth.NewMemoryCredentialStore()
	auth := service.NewAuthService(service.AuthServiceOptions{
		Credentials: store,
		Tokens:      mocksauth.NewFakeTokenCodec(),
	})
	cfg := config.AuthConfig{AdminEmail: "admin@example.com", AdminPassword: "bootstrap-password"}

	EnsureAdmin(context.Background(), auth, cfg, nil)

	first, err := store.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)

	EnsureAdmin(context.Background(), auth, cfg, nil)

	second, err := store.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestEnsureAdmin_FailureDoesNotPanic(t *testing.T) {
	store := mocksauth.NewMemoryCredentialStore()
	store.FindByEmailErr = errors.New("database offline")
	auth := service.NewAuthService(service.AuthServiceOptions{
		Credentials: store,
		Tokens:      mocksauth.NewFakeTokenCodec(),
	})
	cfg := config.AuthConfig{AdminEmail: "admin@example.com", AdminPassword: "bootstrap-password"}

	assert.NotPanics(t, func() {
		EnsureAdmin(context.Background(), auth, cfg, nil)
	})
}
