package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/sevahub/volunteer-api/internal/data/pgxutil"
	domainauth "github.com/sevahub/volunteer-api/internal/domain/auth"
	"github.com/sevahub/volunteer-api/internal/domain/model"
)

// bcryptCost is the adaptive work factor for password hashing. 12 rounds
// keeps verification around the hundred-millisecond mark on current
// hardware, slow enough to resist offline brute force.
const bcryptCost = 12

// AdminUserRepo provides database operations for administrative accounts.
// It owns password hashing and verification; plaintext passwords never
// leave this package's Create/VerifyPassword boundary.
type AdminUserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewAdminUserRepo creates a new AdminUserRepo with real time provider.
func NewAdminUserRepo(db *sql.DB) *AdminUserRepo {
	return &AdminUserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewAdminUserRepoWithTimeProvider creates a new AdminUserRepo with a custom time provider (useful for tests).
func NewAdminUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *AdminUserRepo {
	return &AdminUserRepo{DB: db, timeProvider: tp}
}

// Create inserts a new admin account. The plaintext password is transformed
// through bcrypt before persisting; the salt is embedded in the stored hash.
// Uniqueness over the normalized email is enforced by the database unique
// index, so a concurrent duplicate create fails with ErrAdminEmailExists
// rather than silently overwriting.
func (r *AdminUserRepo) Create(ctx context.Context, email, password string) (*model.AdminUser, error) {
	normalized := model.NormalizeEmail(email)
	if err := model.ValidateEmail(normalized); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := r.timeProvider.Now().UTC()
	var out model.AdminUser
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO admin_users (id, email, password_hash, role, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING id, email, password_hash, role, created_at, updated_at
		`, uuid.NewString(), normalized, string(hash), domainauth.RoleAdmin, now)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.AdminUser])
		return qerr
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// FindByEmail retrieves an account by email, case-insensitively.
func (r *AdminUserRepo) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	return r.getByQuery(ctx, adminUserByEmailQuery, "failed to get admin user by email", model.NormalizeEmail(email))
}

// FindByID retrieves an account by ID.
func (r *AdminUserRepo) FindByID(ctx context.Context, id string) (*model.AdminUser, error) {
	return r.getByQuery(ctx, adminUserByIDQuery, "failed to get admin user by ID", id)
}

// VerifyPassword reports whether the candidate matches the stored hash.
// Comparison is delegated to bcrypt, which compares against its own salted
// digest rather than raw bytes.
func (r *AdminUserRepo) VerifyPassword(u *model.AdminUser, candidate string) bool {
	if u == nil || u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(candidate)) == nil
}

// --- helpers ---

// SQL query constants for static queries.
const (
	adminUserByEmailQuery = `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM admin_users
		WHERE email = $1`

	adminUserByIDQuery = `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM admin_users
		WHERE id = $1`
)

// getByQuery executes a query and returns a single account.
func (r *AdminUserRepo) getByQuery(
	ctx context.Context,
	q string,
	errMsg string,
	args ...any,
) (*model.AdminUser, error) {
	var out model.AdminUser
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, q, args...)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.AdminUser])
		return qerr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &out, nil
}

func (r *AdminUserRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrAdminEmailExists
	}
	return err
}
