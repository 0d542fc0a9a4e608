package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/sevahub/volunteer-api/internal/adapters/token"
	domainauth "github.com/sevahub/volunteer-api/internal/domain/auth"
	"github.com/sevahub/volunteer-api/internal/domain/model"
	"github.com/sevahub/volunteer-api/internal/ports"
	"github.com/sevahub/volunteer-api/internal/service"
)

// Authenticator resolves a raw session token to a live identity.
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*model.User, error)
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns a middleware that requires a valid session cookie.
// The token is verified and its subject re-fetched from the credential store;
// requests whose account has disappeared fail even when the token itself is
// still valid.
func RequireAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := authenticateRequest(w, r, auth)
			if !ok {
				return
			}
			ctx := SetIdentityInContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns a middleware that requires authentication plus a role.
// The check runs against the freshly resolved identity, not the token claims,
// so demotions take effect without waiting for token expiry.
func RequireRole(auth Authenticator, required domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := authenticateRequest(w, r, auth)
			if !ok {
				return
			}

			if !user.Role.Satisfies(required) {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}

			ctx := SetIdentityInContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticateRequest extracts and verifies the session cookie. On failure it
// writes the 401 response and returns false.
func authenticateRequest(w http.ResponseWriter, r *http.Request, auth Authenticator) (*model.User, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return nil, false
	}

	user, err := auth.Authenticate(r.Context(), cookie.Value)
	if err != nil {
		code, errCode := classifyAuthError(err)
		WriteError(w, ErrorParams{Code: code, ErrCode: errCode, Err: errors.New(authErrorMessage(errCode))})
		return nil, false
	}
	return user, true
}

// classifyAuthError maps authentication failures to a status and stable error code.
func classifyAuthError(err error) (int, string) {
	switch {
	case errors.Is(err, token.ErrExpired):
		return http.StatusUnauthorized, "token_expired"
	case errors.Is(err, token.ErrBadSignature), errors.Is(err, token.ErrMalformed):
		return http.StatusUnauthorized, "invalid_token"
	case errors.Is(err, service.ErrStaleSession):
		return http.StatusUnauthorized, "stale_session"
	default:
		return http.StatusInternalServerError, "auth_failed"
	}
}

func authErrorMessage(errCode string) string {
	switch errCode {
	case "token_expired":
		return "session expired, sign in again"
	case "invalid_token":
		return "session token is not valid"
	case "stale_session":
		return "session is no longer valid"
	default:
		return "authentication failed"
	}
}

// RateLimit returns a middleware that bounds request rates per client IP.
// Limiter outages fail open: a broken Redis should degrade protection, not
// take down the API.
func RateLimit(limiter ports.RequestLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limiter unavailable", "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				WriteError(w, ErrorParams{
					Code:    http.StatusTooManyRequests,
					ErrCode: "rate_limited",
					Err:     errors.New("too many requests, try again later"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the originating client address, preferring the first
// X-Forwarded-For hop set by the reverse proxy.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
