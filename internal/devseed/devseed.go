// Package devseed populates a development database with a working admin
// account and a spread of sample applications so the API is usable
// immediately after a reset.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevahub/volunteer-api/internal/data"
	"github.com/sevahub/volunteer-api/internal/domain/model"
)

// DevAdminEmail and DevAdminPassword are the credentials seeded for local
// development. Never use them outside a throwaway database.
const (
	DevAdminEmail    = "admin@sevahub.local"
	DevAdminPassword = "dev-admin-password"
)

// Services bundles the repositories needed for development seeding.
type Services struct {
	DB         *sql.DB
	admins     *data.AdminUserRepo
	applicants *data.ApplicantRepo
}

// NewServices constructs the repositories for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:         db,
		admins:     data.NewAdminUserRepo(db),
		applicants: data.NewApplicantRepo(db),
	}
}

// Run executes the full development seeding workflow against the provided DB.
// Seeding is idempotent: records that already exist are skipped.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0
	failures += seedAdmin(ctx, svcs.admins, logger)
	failures += seedApplicants(ctx, svcs.applicants, logger)
	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedAdmin(ctx context.Context, repo *data.AdminUserRepo, logger *slog.Logger) int {
	_, err := repo.Create(ctx, DevAdminEmail, DevAdminPassword)
	switch {
	case err == nil:
		if logger != nil {
			logger.InfoContext(ctx, "created development admin", "email", DevAdminEmail)
		}
	case errors.Is(err, data.ErrAdminEmailExists):
		if logger != nil {
			logger.InfoContext(ctx, "development admin already exists", "email", DevAdminEmail)
		}
	default:
		if logger != nil {
			logger.ErrorContext(ctx, "failed to create development admin", "email", DevAdminEmail, "error", err)
		}
		return 1
	}
	return 0
}

// sampleApplicants is the fixed set of development applications. Every entry
// must satisfy CreateApplicantRequest.Validate so seeding never trips the
// same checks the public form enforces.
var sampleApplicants = []model.CreateApplicantRequest{
	{
		Name:         "Asha Patil",
		Email:        "asha.patil@example.com",
		Phone:        "+91 98200 11001",
		Interest:     model.InterestEducationLiteracy,
		Availability: "Weekends, full day",
	},
	{
		Name:         "Rohan Deshmukh",
		Email:        "rohan.deshmukh@example.com",
		Phone:        "+91 98200 11002",
		Interest:     model.InterestRuralDevelopment,
		Availability: "Weekday evenings",
	},
	{
		Name:         "Meera Iyer",
		Email:        "meera.iyer@example.com",
		Phone:        "+91 98200 11003",
		Interest:     model.InterestWomenEmpowerment,
		Availability: "Flexible schedule",
	},
	{
		Name:         "Kabir Shaikh",
		Email:        "kabir.shaikh@example.com",
		Phone:        "+91 98200 11004",
		Interest:     model.InterestHealthcare,
		Availability: "Saturday mornings",
	},
	{
		Name:         "Divya Nair",
		Email:        "divya.nair@example.com",
		Phone:        "+91 98200 11005",
		Interest:     model.InterestDigitalLiteracy,
		Availability: "Remote, any time",
	},
	{
		Name:         "Arjun Kulkarni",
		Email:        "arjun.kulkarni@example.com",
		Phone:        "+91 98200 11006",
		Interest:     model.InterestEnvironment,
		Availability: "One weekend a month",
	},
}

func seedApplicants(ctx context.Context, repo *data.ApplicantRepo, logger *slog.Logger) int {
	failures := 0
	for i := range sampleApplicants {
		req := sampleApplicants[i]
		_, err := repo.Create(ctx, &req)
		switch {
		case err == nil:
			if logger != nil {
				logger.InfoContext(ctx, "created sample applicant", "email", req.Email)
			}
		case errors.Is(err, data.ErrApplicantEmailExists):
			if logger != nil {
				logger.InfoContext(ctx, "sample applicant already exists", "email", req.Email)
			}
		default:
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create sample applicant", "email", req.Email, "error", err)
			}
			failures++
		}
	}
	return failures
}
