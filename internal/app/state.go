// Package app assembles the state served by the HTTP API: the startup
// snapshot, its views, the summary table and the pre-rendered dashboard.
// The state is built once and never modified afterwards.
package app

import (
	"context"
	"errors"
	"fmt"
	"popdash/internal/dashboard"
	"popdash/internal/population"
	"popdash/pkg/domain"
	"popdash/pkg/logger"
	"popdash/pkg/stats"
	"time"

	"go.uber.org/zap"
)

// State is the read-only data every request handler works from.
type State struct {
	Snapshot  *domain.Snapshot
	Views     population.Views
	Summary   []domain.Metric
	Dashboard *dashboard.Dashboard
}

// Options control how the state is derived from a snapshot.
type Options struct {
	Views        population.ViewOptions
	Title        string
	DefaultTheme dashboard.Theme
}

// Build derives the views, summary and dashboard from snap. When provider is
// nil or fails, the summary is computed from the snapshot itself.
func Build(ctx context.Context, snap *domain.Snapshot, provider stats.Provider, opts Options) (*State, error) {
	views := population.BuildViews(snap, opts.Views)
	summary := summarize(ctx, snap, provider)

	d, err := dashboard.New(dashboard.Data{
		Title:     opts.Title,
		Views:     views,
		Summary:   summary,
		FetchedAt: snap.FetchedAt.UTC().Format(time.RFC1123),
	}, opts.DefaultTheme)
	if err != nil {
		return nil, fmt.Errorf("could not build dashboard: %w", err)
	}

	return &State{
		Snapshot:  snap,
		Views:     views,
		Summary:   summary,
		Dashboard: d,
	}, nil
}

func summarize(ctx context.Context, snap *domain.Snapshot, provider stats.Provider) []domain.Metric {
	if provider == nil {
		return population.Summarize(snap)
	}

	metrics, err := provider.Metrics(ctx)
	if err != nil || len(metrics) == 0 {
		logger.Warn(ctx, "statistics provider unavailable, summarizing snapshot", zap.Error(err))

		return population.Summarize(snap)
	}

	return metrics
}

// LatestSnapshotter returns the most recently archived snapshot, or nil when
// the archive is empty.
type LatestSnapshotter interface {
	LatestSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

// ErrNoSnapshot is returned by FetchSnapshot when neither the source nor the
// archive produced a snapshot.
var ErrNoSnapshot = errors.New("no snapshot available")

// FetchSnapshot builds a fresh snapshot. If that fails and archive is not nil,
// the latest archived snapshot is used instead.
func FetchSnapshot(ctx context.Context, builder population.SnapshotBuilder, archive LatestSnapshotter) (*domain.Snapshot, error) {
	snap, err := builder.Snapshot(ctx)
	if err == nil {
		return snap, nil
	}
	if archive == nil {
		return nil, err
	}

	logger.Warn(ctx, "could not build snapshot, falling back to archive", zap.Error(err))
	archived, archiveErr := archive.LatestSnapshot(ctx)
	if archiveErr != nil {
		return nil, errors.Join(err, fmt.Errorf("could not read archive: %w", archiveErr))
	}
	if archived == nil {
		return nil, errors.Join(err, ErrNoSnapshot)
	}
	logger.Info(ctx, "serving archived snapshot",
		zap.Stringer("id", archived.ID), zap.Time("fetchedAt", archived.FetchedAt))

	return archived, nil
}
