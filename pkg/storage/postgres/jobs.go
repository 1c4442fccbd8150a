package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob inserts a river job. On a transactional handle the job becomes
// visible when the transaction commits. The result is false when river
// skipped the job as a duplicate of a unique one.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	// InsertTx never uses the driver's pool, so db stays nil on the tx path.
	tx, inTx := p.tx()
	var db *sql.DB
	if !inTx {
		db = p.DB.(*sql.DB) //nolint: forcetypeassert
	}

	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}

	var res *rivertype.JobInsertResult
	if inTx {
		res, err = client.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = client.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
