package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevahub/volunteer-api/internal/data"
	domainauth "github.com/sevahub/volunteer-api/internal/domain/auth"
	"github.com/sevahub/volunteer-api/internal/domain/model"
	apperrors "github.com/sevahub/volunteer-api/internal/errors"
	"github.com/sevahub/volunteer-api/internal/ports"
)

// ErrInvalidCredentials is returned for any login failure against the
// credential store. Unknown email and wrong password collapse into this one
// error so responses cannot be used to probe which addresses have accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrStaleSession is returned when a token verifies but the account it
// references no longer exists.
var ErrStaleSession = errors.New("session references a deleted account")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Credentials ports.CredentialStore
	Tokens      ports.TokenCodec
	Logger      *slog.Logger
	Now         func() time.Time
}

// AuthService orchestrates credential verification and session token issuance.
type AuthService struct {
	credentials ports.CredentialStore
	tokens      ports.TokenCodec
	logger      *slog.Logger
	now         func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		credentials: opts.Credentials,
		tokens:      opts.Tokens,
		logger:      logger.With("component", "auth_service"),
		now:         now,
	}
}

// LoginResult contains the authenticated identity and its session token.
type LoginResult struct {
	User  model.User
	Token string
}

// Login verifies the submitted credentials and issues a signed session token.
// Requests that fail shape validation return a validation error. Once the
// request is well formed, every credential failure returns
// ErrInvalidCredentials; callers must not distinguish unknown accounts from
// wrong passwords.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	user, err := s.credentials.FindByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, data.ErrAdminUserNotFound) {
			s.logger.ErrorContext(ctx, "credential lookup failed", "err", err)
		}
		return nil, ErrInvalidCredentials
	}

	if !s.credentials.VerifyPassword(user, req.Password) {
		return nil, ErrInvalidCredentials
	}

	sanitized := user.Sanitized()
	token, err := s.tokens.Issue(sanitized, s.now())
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	s.logger.InfoContext(ctx, "login succeeded", "user_id", user.ID)
	return &LoginResult{User: sanitized, Token: token}, nil
}

// Authenticate verifies a session token and resolves it to a live identity.
// The claims only locate the account; every field served to callers comes
// from the store, so a token outlives neither the account nor its role.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*model.User, error) {
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := s.credentials.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, data.ErrAdminUserNotFound) {
			return nil, ErrStaleSession
		}
		return nil, fmt.Errorf("resolve session subject: %w", err)
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// SessionTTL reports how long issued tokens remain valid.
func (s *AuthService) SessionTTL() time.Duration {
	return s.tokens.TTL()
}

// EnsureAdmin creates the configured administrator account if it does not
// exist yet. Repeated calls with the same email are no-ops, including the
// race where a concurrent instance wins the insert.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		s.logger.WarnContext(ctx, "admin bootstrap skipped, credentials not configured")
		return nil
	}

	_, err := s.credentials.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, data.ErrAdminUserNotFound) {
		return fmt.Errorf("check admin account: %w", err)
	}

	created, err := s.credentials.Create(ctx, email, password)
	if err != nil {
		if errors.Is(err, data.ErrAdminEmailExists) {
			return nil
		}
		return fmt.Errorf("create admin account: %w", err)
	}

	s.logger.InfoContext(ctx, "admin account created",
		"user_id", created.ID, "role", string(domainauth.RoleAdmin))
	return nil
}
