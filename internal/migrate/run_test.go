package migrate_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevahub/volunteer-api/internal/migrate"
	"github.com/sevahub/volunteer-api/internal/testutil"
)

func TestRun_AppliesAndIsIdempotent(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	db := testutil.SetupEphemeralSchemaDB(t)
	ctx := context.Background()

	// Setup already ran the migrations once; every version must be recorded
	// and each applied transaction committed its schema changes.
	var recorded int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM schema_migrations`).Scan(&recorded))
	require.Positive(t, recorded)

	for _, table := range []string{"admin_users", "applicants"} {
		var one int
		err := db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" LIMIT 1").Scan(&one)
		if err != nil {
			assert.ErrorIs(t, err, sql.ErrNoRows, "table %s should exist and be queryable", table)
		}
	}

	// A second run sees every version as applied and changes nothing.
	require.NoError(t, migrate.Run(ctx, db))

	var after int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM schema_migrations`).Scan(&after))
	assert.Equal(t, recorded, after)
}
