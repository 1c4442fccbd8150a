package domain

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotID identifies an archived snapshot.
type SnapshotID uuid.UUID

// String returns the canonical textual form of the ID.
func (id SnapshotID) String() string { return uuid.UUID(id).String() }

// Snapshot is the complete, ordered result of one fetch-and-normalize run.
// Records keep the page order. A snapshot is never modified after it has
// been built; every view is computed on copies.
type Snapshot struct {
	// ID is set once the snapshot has been archived; zero otherwise.
	ID SnapshotID `json:"id"`
	// SourceURL is the page the records were scraped from.
	SourceURL string `json:"sourceUrl"`
	// FetchedAt is when the page was fetched.
	FetchedAt time.Time `json:"fetchedAt"`
	// Records holds one entry per data row of the source table.
	Records []CountryRecord `json:"records"`
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int { return len(s.Records) }

// SnapshotInfo is the archive listing entry for a snapshot, without records.
type SnapshotInfo struct {
	ID        SnapshotID `json:"id"`
	SourceURL string     `json:"sourceUrl"`
	FetchedAt time.Time  `json:"fetchedAt"`
	RowCount  int        `json:"rowCount"`
	CreatedAt time.Time  `json:"createdAt"`
}
