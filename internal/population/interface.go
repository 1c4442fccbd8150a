// Package population turns the population-by-country page into a snapshot of
// country records and derives the views shown on the dashboard.
//
// The pipeline is fetch, extract, normalize, aggregate. Extract locates the
// statistics table and exposes its rows lazily, Normalize converts cell text
// into typed records and BuildViews projects a snapshot into rankings.
package population

import (
	"context"
	"popdash/pkg/domain"
)

// SnapshotBuilder produces a fresh snapshot of the population table.
//
//go:generate mockgen -package mockpopulation -source=interface.go -destination=mock/mockpopulation.go *
type SnapshotBuilder interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}
