package v1handler

import (
	"context"
	"popdash/internal/api/specs/v1specs"
	"popdash/internal/archive"
	"popdash/pkg/domain"
	"popdash/pkg/logger"
	"popdash/pkg/serrors"

	"go.uber.org/zap"
)

func (h *Handler) archiveService() (archive.Archive, error) {
	if h.deps.Archive == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "snapshot archive is disabled")
	}

	return h.deps.Archive, nil
}

// EnqueueArchive queues an archive job. It answers 202 when a job was added
// and 200 when an equivalent job is already queued or completed recently.
func (h *Handler) EnqueueArchive(ctx context.Context) (v1specs.EnqueueArchiveRes, error) {
	a, err := h.archiveService()
	if err != nil {
		return nil, err
	}

	added, err := a.Enqueue(ctx)
	if err != nil {
		return nil, err
	}

	subject, _ := ctx.Value(SubjectKey).(string)
	logger.Info(ctx, "archive requested", zap.String("subject", subject), zap.Bool("added", added))

	if !added {
		return &v1specs.EnqueueArchiveOK{Enqueued: false}, nil
	}

	return &v1specs.EnqueueArchiveAccepted{Enqueued: true}, nil
}

func (h *Handler) ListArchivedSnapshots(
	ctx context.Context,
	params v1specs.ListArchivedSnapshotsParams,
) (*v1specs.SnapshotList, error) {
	a, err := h.archiveService()
	if err != nil {
		return nil, err
	}

	infos, next, err := a.Snapshots(ctx, params.Cursor.Or(""), uint(params.Limit.Or(0)))
	if err != nil {
		return nil, err
	}

	out := &v1specs.SnapshotList{Snapshots: make([]v1specs.SnapshotInfo, 0, len(infos))}
	for _, info := range infos {
		out.Snapshots = append(out.Snapshots, DomainSnapshotInfoToV1Specs(info))
	}
	if next != "" {
		out.NextCursor = v1specs.NewOptString(next)
	}

	return out, nil
}

func (h *Handler) GetArchivedSnapshot(
	ctx context.Context,
	params v1specs.GetArchivedSnapshotParams,
) (*v1specs.Snapshot, error) {
	a, err := h.archiveService()
	if err != nil {
		return nil, err
	}

	snap, err := a.Snapshot(ctx, domain.SnapshotID(params.ID))
	if err != nil {
		return nil, err
	}

	return DomainSnapshotToV1Specs(snap), nil
}

// GetLatestArchivedSnapshot serves the most recently fetched archived snapshot.
func (h *Handler) GetLatestArchivedSnapshot(ctx context.Context) (*v1specs.Snapshot, error) {
	a, err := h.archiveService()
	if err != nil {
		return nil, err
	}

	snap, err := a.Latest(ctx)
	if err != nil {
		return nil, err
	}

	return DomainSnapshotToV1Specs(snap), nil
}
