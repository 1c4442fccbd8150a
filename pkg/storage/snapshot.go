package storage

import (
	"context"
	"popdash/pkg/domain"
	"time"
)

// SnapshotCursor is the position of a snapshot in the archive listing. The
// listing is ordered by CreatedAt and then ID, both descending, so snapshots
// created in the same instant are still paged without gaps or repeats.
type SnapshotCursor struct {
	CreatedAt time.Time
	ID        domain.SnapshotID
}

// SnapshotPage is one page of archived snapshots, newest first.
type SnapshotPage struct {
	// Snapshots contains the current page of snapshot summaries.
	Snapshots []domain.SnapshotInfo
	// NextCursor points at the last entry when another page exists.
	NextCursor *SnapshotCursor
}

// SnapshotStorage persists snapshots with their country records.
type SnapshotStorage interface {
	// StoreSnapshot writes snap and all of its records atomically and returns
	// the stored summary including the generated ID.
	StoreSnapshot(ctx context.Context, snap domain.Snapshot) (*domain.SnapshotInfo, error)
	// Snapshots lists snapshots positioned after cursor (from the newest when
	// nil), newest first, at most limit entries.
	Snapshots(ctx context.Context, cursor *SnapshotCursor, limit uint) (SnapshotPage, error)
	// SnapshotByID returns the snapshot with its records in page order, or nil
	// when it does not exist.
	SnapshotByID(ctx context.Context, id domain.SnapshotID) (*domain.Snapshot, error)
	// LatestSnapshot returns the most recently fetched snapshot, or nil when
	// the archive is empty.
	LatestSnapshot(ctx context.Context) (*domain.Snapshot, error)
}
