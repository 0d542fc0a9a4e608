package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sevahub/volunteer-api/internal/data/pgxutil"
	"github.com/sevahub/volunteer-api/internal/domain/model"
)

// ApplicantRepo provides database operations for volunteer applications.
type ApplicantRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewApplicantRepo creates a new ApplicantRepo with real time provider.
func NewApplicantRepo(db *sql.DB) *ApplicantRepo {
	return &ApplicantRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewApplicantRepoWithTimeProvider creates a new ApplicantRepo with a custom time provider (useful for tests).
func NewApplicantRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ApplicantRepo {
	return &ApplicantRepo{DB: db, timeProvider: tp}
}

const applicantColumns = `id, name, email, phone, interest, availability, created_at, updated_at`

// Create inserts a new application. The request must already be validated;
// its email arrives normalized from Validate. A duplicate email fails with
// ErrApplicantEmailExists via the unique index, never check-then-insert.
func (r *ApplicantRepo) Create(ctx context.Context, req *model.CreateApplicantRequest) (*model.Applicant, error) {
	now := r.timeProvider.Now().UTC()
	var out model.Applicant
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO applicants (id, name, email, phone, interest, availability, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING `+applicantColumns+`
		`, uuid.NewString(), req.Name, req.Email, req.Phone, req.Interest, req.Availability, now)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Applicant])
		return qerr
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByID retrieves an application by ID.
func (r *ApplicantRepo) GetByID(ctx context.Context, id string) (*model.Applicant, error) {
	var out model.Applicant
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			SELECT `+applicantColumns+`
			FROM applicants
			WHERE id = $1
		`, id)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Applicant])
		return qerr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicantNotFound
		}
		return nil, fmt.Errorf("failed to get applicant by ID: %w", err)
	}
	return &out, nil
}

// List returns applications newest-first, optionally filtered by interest
// area and a case-insensitive substring match over name, email, and phone.
func (r *ApplicantRepo) List(ctx context.Context, opts model.ApplicantsListOptions) ([]*model.Applicant, error) {
	where, args := buildApplicantFilters(opts)
	limitPos := len(args) + 1
	args = append(args, opts.Limit, opts.Offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM applicants
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, applicantColumns, where, limitPos, limitPos+1)

	var out []*model.Applicant
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, args...)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.Applicant])
		return qerr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	return out, nil
}

// Count returns the number of applications matching the same filters List applies.
func (r *ApplicantRepo) Count(ctx context.Context, opts model.ApplicantsListOptions) (int, error) {
	where, args := buildApplicantFilters(opts)

	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, "SELECT COUNT(*) FROM applicants "+where, args...).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count applicants: %w", err)
	}
	return count, nil
}

// buildApplicantFilters assembles the WHERE clause shared by List and Count.
func buildApplicantFilters(opts model.ApplicantsListOptions) (string, []any) {
	var clauses []string
	var args []any

	if opts.Interest != nil {
		args = append(args, *opts.Interest)
		clauses = append(clauses, fmt.Sprintf("interest = $%d", len(args)))
	}
	if opts.Search != nil && *opts.Search != "" {
		args = append(args, "%"+*opts.Search+"%")
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", len(args), len(args), len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (r *ApplicantRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrApplicantEmailExists
	}
	return err
}
