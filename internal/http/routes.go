package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/sevahub/volunteer-api/internal/domain/auth"
	"github.com/sevahub/volunteer-api/internal/observability/statsd"
	"github.com/sevahub/volunteer-api/internal/ports"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       AuthServiceInterface
	Applicants ApplicantServiceInterface

	// Limiter bounds request rates per client IP. Nil disables rate limiting.
	Limiter ports.RequestLimiter

	// Metrics receives request counters and timings. Nil disables metrics.
	Metrics statsd.Sink

	// Env names the deployment environment reported by the health endpoint.
	Env string

	Cookies CookieSettings
	Logger  *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth, Cookies: services.Cookies, Logger: logger}
	applicantHandlers := &ApplicantHandlers{Svc: services.Applicants, Logger: logger}

	registerAuthRoutes(mux, authHandlers, services.Auth)
	registerApplicantRoutes(mux, applicantHandlers, services.Auth)

	health := healthHandler(services.Env)
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)

	var handler http.Handler = mux
	if services.Limiter != nil {
		handler = RateLimit(services.Limiter, logger)(handler)
	}
	handler = Metrics(services.Metrics)(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, auth Authenticator) {
	mux.Handle("POST /api/auth/login", http.HandlerFunc(h.Login))
	mux.Handle("GET /api/auth/me", RequireAuth(auth)(http.HandlerFunc(h.Me)))
	mux.Handle("POST /api/auth/logout", http.HandlerFunc(h.Logout))
}

func registerApplicantRoutes(mux *http.ServeMux, h *ApplicantHandlers, auth Authenticator) {
	// Submission is public; review endpoints require an administrator.
	mux.Handle("POST /api/applicants", http.HandlerFunc(h.Create))

	adminOnly := RequireRole(auth, domainauth.RoleAdmin)
	mux.Handle("GET /api/applicants", adminOnly(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/applicants/{id}", adminOnly(http.HandlerFunc(h.Get)))
}
