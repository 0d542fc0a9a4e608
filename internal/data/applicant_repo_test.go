package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevahub/volunteer-api/internal/domain/model"
	"github.com/sevahub/volunteer-api/internal/testutil"
)

func createTestApplicant(t *testing.T, repo *ApplicantRepo, interest model.Interest) *model.Applicant {
	t.Helper()
	req := testutil.NewApplicantRequest().
		WithEmail(fmt.Sprintf("applicant-%d@example.com", time.Now().UnixNano())).
		WithInterest(interest).
		Build()
	require.NoError(t, req.Validate())
	a, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	return a
}

func TestApplicantRepo_Create_Get(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewApplicantRepo(db)

		a := createTestApplicant(t, repo, model.InterestFoodSecurity)
		require.NotEmpty(t, a.ID)
		assert.Equal(t, model.InterestFoodSecurity, a.Interest)
		assert.NotZero(t, a.CreatedAt)

		got, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.Email, got.Email)

		_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, ErrApplicantNotFound)
	})
}

func TestApplicantRepo_Create_DuplicateEmail(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewApplicantRepo(db)

		email := fmt.Sprintf("dup-applicant-%d@example.com", time.Now().UnixNano())
		req := testutil.NewApplicantRequest().WithEmail(email).Build()
		require.NoError(t, req.Validate())
		_, err := repo.Create(ctx, req)
		require.NoError(t, err)

		again := testutil.NewApplicantRequest().WithEmail(email).Build()
		require.NoError(t, again.Validate())
		_, err = repo.Create(ctx, again)
		require.ErrorIs(t, err, ErrApplicantEmailExists)
	})
}

func TestApplicantRepo_List_Filters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewApplicantRepo(db)

		first := createTestApplicant(t, repo, model.InterestChildWelfare)
		createTestApplicant(t, repo, model.InterestChildWelfare)
		createTestApplicant(t, repo, model.InterestDisasterRelief)

		// newest-first, unfiltered
		all, err := repo.List(ctx, model.ApplicantsListOptions{Limit: 10, Offset: 0})
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(all), 3)
		assert.False(t, all[0].CreatedAt.Before(all[len(all)-1].CreatedAt))

		// interest filter
		interest := model.InterestChildWelfare
		filtered, err := repo.List(ctx, model.ApplicantsListOptions{
			Limit:    10,
			Interest: &interest,
		})
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		for _, a := range filtered {
			assert.Equal(t, model.InterestChildWelfare, a.Interest)
		}

		count, err := repo.Count(ctx, model.ApplicantsListOptions{Interest: &interest})
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		// search over email, case-insensitive
		search := first.Email
		found, err := repo.List(ctx, model.ApplicantsListOptions{
			Limit:  10,
			Search: &search,
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, first.ID, found[0].ID)

		// pagination
		page, err := repo.List(ctx, model.ApplicantsListOptions{Limit: 1, Offset: 0})
		require.NoError(t, err)
		require.Len(t, page, 1)
	})
}
