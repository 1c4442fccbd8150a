package postgres_test

import (
	"database/sql"
	"popdash/internal/population"
	"popdash/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

const archivedURL = "https://example.com/population"

func countJobs(t *testing.T, pg *postgres.PgSQL) int {
	t.Helper()

	var n int
	require.NoError(t, pg.DB.QueryRowContext(t.Context(),
		`SELECT COUNT(*) FROM river_job WHERE kind = $1`, population.ArchiveArgs{}.Kind()).Scan(&n))

	return n
}

func TestPgSQL_AddJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	added, err := pg.AddJob(t.Context(), population.NewArchiveArgs(archivedURL, 3, time.Hour), nil)
	require.NoError(t, err)
	require.True(t, added)

	job := rivertest.RequireInserted[*riverdatabasesql.Driver](
		t.Context(),
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&population.ArchiveArgs{},
		&rivertest.RequireInsertedOpts{MaxAttempts: 3},
	)
	require.Equal(t, archivedURL, job.Args.URL)
}

func TestPgSQL_AddJob_VisibleOnCommit(t *testing.T) {
	for _, commit := range []bool{true, false} {
		pg, cleanup := setupTestDB(t)

		tx, err := pg.Begin(t.Context())
		require.NoError(t, err)

		added, err := tx.AddJob(t.Context(), population.NewArchiveArgs(archivedURL, 3, time.Hour), nil)
		require.NoError(t, err)
		require.True(t, added)
		rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
			t.Context(),
			t,
			tx.(*postgres.PgSQL).DB.(*sql.Tx),
			&population.ArchiveArgs{},
			nil,
		)
		require.Equal(t, 0, countJobs(t, pg))

		if commit {
			require.NoError(t, tx.Commit())
			require.Equal(t, 1, countJobs(t, pg))
		} else {
			require.NoError(t, tx.Rollback())
			require.Equal(t, 0, countJobs(t, pg))
		}
		cleanup()
	}
}

func TestPgSQL_AddJob_UniqueWithinPeriod(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	args := population.NewArchiveArgs(archivedURL, 3, time.Hour)

	added, err := pg.AddJob(t.Context(), args, nil)
	require.NoError(t, err)
	require.True(t, added)

	added, err = pg.AddJob(t.Context(), args, &river.InsertOpts{})
	require.NoError(t, err)
	require.False(t, added)

	other, err := pg.AddJob(t.Context(), population.NewArchiveArgs(archivedURL+"?page=2", 3, time.Hour), nil)
	require.NoError(t, err)
	require.True(t, other)
	require.Equal(t, 2, countJobs(t, pg))
}

func TestPgSQL_AddJob_SkipsRecentlyCompleted(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	args := population.NewArchiveArgs(archivedURL, 3, time.Hour)

	added, err := pg.AddJob(t.Context(), args, nil)
	require.NoError(t, err)
	require.True(t, added)

	_, err = pg.DB.ExecContext(t.Context(),
		`UPDATE river_job SET state = 'completed', finalized_at = now() WHERE kind = $1`, args.Kind())
	require.NoError(t, err)

	added, err = pg.AddJob(t.Context(), args, nil)
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, 1, countJobs(t, pg))

	// a discarded job does not hold the key
	_, err = pg.DB.ExecContext(t.Context(),
		`UPDATE river_job SET state = 'discarded' WHERE kind = $1`, args.Kind())
	require.NoError(t, err)

	added, err = pg.AddJob(t.Context(), args, nil)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 2, countJobs(t, pg))
}
