package population

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ArchiveArgs are the arguments of the job that scrapes the population page
// and stores the resulting snapshot in the archive.
type ArchiveArgs struct {
	// URL is the page to scrape. It is part of the uniqueness key so only one
	// archive job per page is queued at a time.
	URL string `json:"url" river:"unique"`

	maxAttempts  int
	uniquePeriod time.Duration
}

// NewArchiveArgs returns job arguments for url. maxAttempts bounds river's
// retries and uniquePeriod is the window in which a duplicate job for the
// same url is skipped.
func NewArchiveArgs(url string, maxAttempts int, uniquePeriod time.Duration) ArchiveArgs {
	return ArchiveArgs{URL: url, maxAttempts: maxAttempts, uniquePeriod: uniquePeriod}
}

// Kind returns the river job kind used to register and dispatch the worker.
func (args ArchiveArgs) Kind() string { return "ArchiveSnapshotJob" }

// InsertOpts keeps a single queued or running archive job per URL, and skips
// a new one while a job for the URL completed within the unique period.
func (args ArchiveArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
