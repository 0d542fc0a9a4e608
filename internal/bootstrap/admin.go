package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/sevahub/volunteer-api/config"
	"github.com/sevahub/volunteer-api/internal/service"
)

const adminBootstrapTimeout = 10 * time.Second

// EnsureAdmin seeds the configured administrator account. A failure is
// logged and swallowed: the service still comes up, it just has no admin
// until the next restart or a manual fix.
func EnsureAdmin(ctx context.Context, auth *service.AuthService, cfg config.AuthConfig, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithTimeout(ctx, adminBootstrapTimeout)
	defer cancel()

	if err := auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.ErrorContext(ctx, "admin bootstrap failed", "err", err)
	}
}
