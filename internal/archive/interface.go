package archive

import (
	"context"
	"popdash/pkg/domain"
)

//go:generate mockgen -package mockarchive -source=interface.go -destination=mock/mockarchive.go *
type Archive interface {
	Enqueue(ctx context.Context) (bool, error)
	Snapshots(ctx context.Context, cursor string, limit uint) ([]domain.SnapshotInfo, string, error)
	Snapshot(ctx context.Context, id domain.SnapshotID) (*domain.Snapshot, error)
	Latest(ctx context.Context) (*domain.Snapshot, error)
}
