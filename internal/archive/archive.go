// Package archive stores population snapshots over time. Snapshots are
// produced by a background job; this package enqueues that job and reads the
// stored history back.
package archive

import (
	"context"
	"encoding/base64"
	"fmt"
	"popdash/internal/config"
	"popdash/internal/population"
	"popdash/pkg/domain"
	"popdash/pkg/serrors"
	"popdash/pkg/storage"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultLimit is the page size used when the caller does not pick one.
	DefaultLimit uint = 20
	// MaxLimit bounds the page size of Snapshots.
	MaxLimit uint = 100

	cursorSep = "|"
)

// Options configure how archive jobs are enqueued.
type Options struct {
	// URL is the page archived by each job.
	URL string
	// MaxAttempts is the maximum number of attempts of a single archive job.
	MaxAttempts int
	// UniquePeriod is the window in which a second archive request for the
	// same URL is skipped.
	UniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		URL:          cfg.Source.URL,
		MaxAttempts:  cfg.Archive.MaxAttempts,
		UniquePeriod: cfg.Archive.Interval,
	}
}

type archive struct {
	options Options
	storage storage.Storage
}

// Enqueue queues an archive job for the configured URL. It returns false when
// a job for the URL is already queued or running, or completed within
// UniquePeriod.
func (a archive) Enqueue(ctx context.Context) (bool, error) {
	added, err := a.storage.AddJob(ctx,
		population.NewArchiveArgs(a.options.URL, a.options.MaxAttempts, a.options.UniquePeriod), nil)
	if err != nil {
		return false, fmt.Errorf("could not add archive job: %w", err)
	}

	return added, nil
}

// Snapshots returns a page of archived snapshots, newest first. The cursor is
// the opaque token returned by a previous call; the returned cursor is empty
// on the last page.
func (a archive) Snapshots(ctx context.Context, cursor string, limit uint) ([]domain.SnapshotInfo, string, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		return nil, "", serrors.With(serrors.ErrBadRequest, "limit must be at most %d", MaxLimit)
	}

	var after *storage.SnapshotCursor
	if cursor != "" {
		var err error
		if after, err = DecodeCursor(cursor); err != nil {
			return nil, "", err
		}
	}

	page, err := a.storage.Snapshots(ctx, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get snapshots: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = EncodeCursor(*page.NextCursor)
	}

	return page.Snapshots, next, nil
}

// EncodeCursor renders c as a URL-safe token.
func EncodeCursor(c storage.SnapshotCursor) string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSep + c.ID.String()

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (*storage.SnapshotCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	ts, id, ok := strings.Cut(string(raw), cursorSep)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid cursor")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return &storage.SnapshotCursor{CreatedAt: createdAt, ID: domain.SnapshotID(uid)}, nil
}

// Snapshot returns an archived snapshot with its records.
func (a archive) Snapshot(ctx context.Context, id domain.SnapshotID) (*domain.Snapshot, error) {
	snap, err := a.storage.SnapshotByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get snapshot: %w", err)
	}
	if snap == nil {
		return nil, serrors.With(serrors.ErrNotFound, "snapshot not found")
	}

	return snap, nil
}

// Latest returns the most recently fetched archived snapshot.
func (a archive) Latest(ctx context.Context) (*domain.Snapshot, error) {
	snap, err := a.storage.LatestSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get latest snapshot: %w", err)
	}
	if snap == nil {
		return nil, serrors.With(serrors.ErrNotFound, "archive is empty")
	}

	return snap, nil
}

// New creates an Archive backed by the provided storage.
func New(storage storage.Storage, options Options) Archive {
	return &archive{
		options: options,
		storage: storage,
	}
}
