package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sevahub/volunteer-api/config"
	redisadapter "github.com/sevahub/volunteer-api/internal/adapters/redis"
	"github.com/sevahub/volunteer-api/internal/adapters/token"
	"github.com/sevahub/volunteer-api/internal/data"
	"github.com/sevahub/volunteer-api/internal/observability/statsd"
	"github.com/sevahub/volunteer-api/internal/ports"
	"github.com/sevahub/volunteer-api/internal/service"
)

// ServiceContainer holds the application services and their shared adapters.
type ServiceContainer struct {
	Auth       *service.AuthService
	Applicants *service.ApplicantService
	Limiter    ports.RequestLimiter
	Metrics    *statsd.Client
}

// ServicesConfig groups dependencies for BuildServices.
type ServicesConfig struct {
	Config *config.AppConfig
	DB     *sql.DB
	Redis  *goredis.Client
	Logger *slog.Logger
}

// BuildServices wires repositories, adapters, and services together.
func BuildServices(cfg ServicesConfig) (*ServiceContainer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	codec, err := token.NewCodec(token.Config{
		Secret: []byte(cfg.Config.Auth.JWTSecret),
		TTL:    cfg.Config.Auth.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("build token codec: %w", err)
	}

	credentials := data.NewAdminUserRepo(cfg.DB)
	applicants := data.NewApplicantRepo(cfg.DB)

	container := &ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Credentials: credentials,
			Tokens:      codec,
			Logger:      logger,
		}),
		Applicants: service.NewApplicantService(service.ApplicantServiceOptions{
			Applicants: applicants,
		}),
	}

	if cfg.Config.RateLimit.Enabled && cfg.Redis != nil {
		limiter, limiterErr := redisadapter.NewRateLimiter(cfg.Redis, redisadapter.RateLimiterConfig{
			Window: cfg.Config.RateLimit.Window,
			Limit:  int64(cfg.Config.RateLimit.Requests),
		})
		if limiterErr != nil {
			return nil, fmt.Errorf("build rate limiter: %w", limiterErr)
		}
		container.Limiter = limiter
	}

	metrics, metricsErr := statsd.NewClient(statsd.Config{
		Enabled: cfg.Config.Statsd.Enabled,
		Address: cfg.Config.Statsd.Address,
		Prefix:  cfg.Config.Statsd.Prefix,
		Logger:  logger,
		GlobalTags: map[string]string{
			"env": cfg.Config.Env,
		},
	})
	if metricsErr != nil {
		return nil, fmt.Errorf("build statsd client: %w", metricsErr)
	}
	container.Metrics = metrics

	return container, nil
}

// Close releases adapters owned by the container.
func (c *ServiceContainer) Close() error {
	if c == nil || c.Metrics == nil {
		return nil
	}
	return c.Metrics.Close()
}
