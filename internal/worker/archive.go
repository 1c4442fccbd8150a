package worker

import (
	"context"
	"errors"
	"fmt"
	"popdash/internal/population"
	"popdash/pkg/logger"
	"popdash/pkg/serrors"
	"popdash/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RateLimitBackoff is how long a job waits after the source answered 429.
const RateLimitBackoff = 5 * time.Minute

// ArchiveWorker is a river worker that builds a fresh snapshot and stores it
// in the archive.
//
// A page whose layout no longer matches (serrors.ErrParse) cancels the job.
// A rate-limited fetch snoozes the job for
// RateLimitBackoff. Every other error is returned so river retries it with
// its default backoff until the job's attempts are used up.
type ArchiveWorker struct {
	river.WorkerDefaults[population.ArchiveArgs]

	builder   population.SnapshotBuilder
	snapshots storage.SnapshotStorage
}

// NewArchiveWorker constructs an ArchiveWorker.
func NewArchiveWorker(builder population.SnapshotBuilder, snapshots storage.SnapshotStorage) *ArchiveWorker {
	return &ArchiveWorker{
		builder:   builder,
		snapshots: snapshots,
	}
}

// Timeout bounds one archive run.
func (a *ArchiveWorker) Timeout(*river.Job[population.ArchiveArgs]) time.Duration {
	return 2 * time.Minute
}

// Work executes a single archive job.
func (a *ArchiveWorker) Work(ctx context.Context, job *river.Job[population.ArchiveArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("URL", job.Args.URL))

	snap, err := a.builder.Snapshot(ctx)
	if err != nil {
		logger.Error(ctx, "could not build snapshot", zap.Error(err))

		switch {
		case errors.Is(err, serrors.ErrParse):
			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrRateLimited):
			return river.JobSnooze(RateLimitBackoff) //nolint: wrapcheck
		}

		return fmt.Errorf("could not build snapshot: %w", err)
	}

	info, err := a.snapshots.StoreSnapshot(ctx, *snap)
	if err != nil {
		logger.Error(ctx, "could not store snapshot", zap.Error(err))

		return fmt.Errorf("could not store snapshot: %w", err)
	}

	logger.Info(ctx, "snapshot archived",
		zap.Stringer("snapshotID", info.ID),
		zap.Int("rows", info.RowCount))

	return nil
}
