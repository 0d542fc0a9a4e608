// Package token implements the session token codec on HS256-signed JWTs.
// Tokens are stateless: validity is determined purely by signature and
// expiry at verification time, so there is no server-side session table.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/sevahub/volunteer-api/internal/domain/auth"
	"github.com/sevahub/volunteer-api/internal/domain/model"
)

// Verification failure kinds. Callers map all three to the same external
// outcome but log them differently.
var (
	// ErrMalformed is returned when the token cannot be parsed or is
	// structurally invalid.
	ErrMalformed = errors.New("malformed token")
	// ErrBadSignature is returned when the signature does not match the
	// server's secret.
	ErrBadSignature = errors.New("token signature mismatch")
	// ErrExpired is returned when a well-signed token is past its expiry.
	ErrExpired = errors.New("token expired")
)

// Config groups parameters for NewCodec.
type Config struct {
	// Secret is the symmetric signing secret known solely to the server.
	Secret []byte
	// TTL is the token lifetime. The system issues 24h tokens.
	TTL time.Duration
}

// Codec issues and verifies signed session tokens.
// Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// sessionClaims is the wire shape of a session token's claim set.
type sessionClaims struct {
	Email string          `json:"email"`
	Role  domainauth.Role `json:"role"`
	jwt.RegisteredClaims
}

// NewCodec constructs a Codec. The secret must be non-empty and the TTL
// positive; both come from configuration, not request input.
func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("signing secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("invalid TTL configuration")
	}
	return &Codec{secret: cfg.Secret, ttl: cfg.TTL}, nil
}

// TTL returns the configured token lifetime. The session cookie's Max-Age
// mirrors it.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue mints a signed token for the given user, expiring TTL after now.
func (c *Codec) Issue(user model.User, now time.Time) (string, error) {
	claims := sessionClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify parses and validates a token, returning its claims.
// Failure kinds are distinct sentinels: ErrMalformed, ErrBadSignature,
// ErrExpired. An expired token with a valid signature always yields
// ErrExpired, never ErrBadSignature.
func (c *Codec) Verify(raw string) (*domainauth.Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &sessionClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, classify(err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformed
	}

	out := &domainauth.Claims{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// classify maps golang-jwt's error chain onto the codec's sentinels.
// The parser reports signature failures before claim validation, so
// ErrTokenExpired only appears for tokens that verified against our secret.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	default:
		return ErrMalformed
	}
}
