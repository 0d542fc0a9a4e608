// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sevahub/volunteer-api/internal/data"
	domainauth "github.com/sevahub/volunteer-api/internal/domain/auth"
	"github.com/sevahub/volunteer-api/internal/domain/model"
	"github.com/sevahub/volunteer-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialStore = (*MemoryCredentialStore)(nil)
	_ ports.TokenCodec      = (*FakeTokenCodec)(nil)
	_ ports.RequestLimiter  = (*StaticLimiter)(nil)
)

// MemoryCredentialStore is an in-memory credential store for tests.
// Passwords are stored as plain strings; hashing behavior is covered by the
// real store's own tests.
type MemoryCredentialStore struct {
	mu        sync.RWMutex
	byID      map[string]*model.AdminUser
	passwords map[string]string

	// Optional hooks to force failures.
	FindByEmailErr error
	FindByIDErr    error
	CreateErr      error
}

// NewMemoryCredentialStore creates an empty MemoryCredentialStore.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{
		byID:      make(map[string]*model.AdminUser),
		passwords: make(map[string]string),
	}
}

func (s *MemoryCredentialStore) FindByEmail(_ context.Context, email string) (*model.AdminUser, error) {
	if s.FindByEmailErr != nil {
		return nil, s.FindByEmailErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	normalized := model.NormalizeEmail(email)
	for _, u := range s.byID {
		if u.Email == normalized {
			copied := *u
			return &copied, nil
		}
	}
	return nil, data.ErrAdminUserNotFound
}

func (s *MemoryCredentialStore) FindByID(_ context.Context, id string) (*model.AdminUser, error) {
	if s.FindByIDErr != nil {
		return nil, s.FindByIDErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, data.ErrAdminUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *MemoryCredentialStore) Create(_ context.Context, email, password string) (*model.AdminUser, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	normalized := model.NormalizeEmail(email)
	for _, u := range s.byID {
		if u.Email == normalized {
			return nil, data.ErrAdminEmailExists
		}
	}
	now := time.Now().UTC()
	u := &model.AdminUser{
		ID:           uuid.NewString(),
		Email:        normalized,
		PasswordHash: "fake-hash:" + password,
		Role:         domainauth.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.byID[u.ID] = u
	s.passwords[u.ID] = password
	copied := *u
	return &copied, nil
}

func (s *MemoryCredentialStore) VerifyPassword(u *model.AdminUser, candidate string) bool {
	if u == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.passwords[u.ID]
	return ok && stored == candidate
}

// Delete removes an account, simulating out-of-band account removal.
func (s *MemoryCredentialStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	delete(s.passwords, id)
}

// FakeTokenCodec issues transparent tokens of the form "fake:<userID>:<email>:<role>"
// and verifies them without cryptography. Expiry and signature failures are
// simulated through the error hooks.
type FakeTokenCodec struct {
	IssueErr  error
	VerifyErr error
	Ttl       time.Duration
}

// NewFakeTokenCodec creates a FakeTokenCodec with a 24h validity window.
func NewFakeTokenCodec() *FakeTokenCodec {
	return &FakeTokenCodec{Ttl: 24 * time.Hour}
}

func (c *FakeTokenCodec) Issue(user model.User, now time.Time) (string, error) {
	if c.IssueErr != nil {
		return "", c.IssueErr
	}
	return strings.Join([]string{"fake", user.ID, user.Email, string(user.Role)}, ":"), nil
}

func (c *FakeTokenCodec) Verify(raw string) (*domainauth.Claims, error) {
	if c.VerifyErr != nil {
		return nil, c.VerifyErr
	}
	parts := strings.Split(raw, ":")
	if len(parts) != 4 || parts[0] != "fake" {
		return nil, ErrFakeTokenMalformed
	}
	now := time.Now()
	return &domainauth.Claims{
		SubjectID: parts[1],
		Email:     parts[2],
		Role:      domainauth.Role(parts[3]),
		IssuedAt:  now,
		ExpiresAt: now.Add(c.Ttl),
	}, nil
}

func (c *FakeTokenCodec) TTL() time.Duration {
	return c.Ttl
}

// ErrFakeTokenMalformed is returned by FakeTokenCodec for unparseable input.
var ErrFakeTokenMalformed = errors.New("fake token malformed")

// StaticLimiter is a RequestLimiter that always answers the same way.
type StaticLimiter struct {
	Allowed bool
	Err     error
}

func (l *StaticLimiter) Allow(context.Context, string) (bool, error) {
	return l.Allowed, l.Err
}
