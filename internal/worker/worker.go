package worker

import (
	"context"
	"fmt"
	"log/slog"
	"popdash/internal/population"
	"popdash/pkg/logger"
	"popdash/pkg/storage"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the archive queue.
type Options struct {
	// URL is the page archived by the periodic job.
	URL string
	// Interval is the period of the archive job. Zero disables scheduling.
	Interval time.Duration
	// MaxAttempts bounds the retries of a single archive job.
	MaxAttempts int
	// Workers is the number of archive jobs processed concurrently.
	Workers int
}

// Start runs a river client processing archive jobs and, when an interval is
// set, schedules one archive job per interval starting right away.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	builder population.SnapshotBuilder,
	snapshots storage.SnapshotStorage,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewArchiveWorker(builder, snapshots))

	maxWorkers := options.Workers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	var periodicJobs []*river.PeriodicJob
	if options.Interval > 0 {
		periodicJobs = append(periodicJobs, river.NewPeriodicJob(
			river.PeriodicInterval(options.Interval),
			func() (river.JobArgs, *river.InsertOpts) {
				return population.NewArchiveArgs(options.URL, options.MaxAttempts, options.Interval), nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
