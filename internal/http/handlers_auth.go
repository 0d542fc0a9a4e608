package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sevahub/volunteer-api/internal/domain/model"
	apperrors "github.com/sevahub/volunteer-api/internal/errors"
	"github.com/sevahub/volunteer-api/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, req *model.LoginRequest) (*service.LoginResult, error)
	Authenticate(ctx context.Context, rawToken string) (*model.User, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc     AuthServiceInterface
	Cookies CookieSettings
	Logger  *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login handles credential sign-in.
// POST /api/auth/login.
//
// A successful login sets the session cookie and returns the sanitized user.
// Malformed requests are rejected with 400 before credentials are checked;
// after that, every failure is the same 401 regardless of which part of the
// credentials was wrong.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "validation_failed",
				Err:     err,
			})
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "invalid_credentials",
				Err:     errors.New("invalid email or password"),
			})
			return
		}
		h.logger().ErrorContext(r.Context(), "login failed", "err", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     errors.New("login failed"),
		})
		return
	}

	setSessionCookie(w, h.Cookies, result.Token)
	WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    result.User,
	})
}

// Me returns the authenticated identity.
// GET /api/auth/me (behind RequireAuth).
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := GetIdentityFromContext(r.Context())
	if !ok {
		// RequireAuth installs the identity; reaching here means the route
		// was wired without it.
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Logout clears the session cookie.
// POST /api/auth/logout.
//
// Tokens are stateless so there is nothing to revoke server-side; the
// response is 200 whether or not the caller had a session.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.Cookies)
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
