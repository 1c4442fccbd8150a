package main

import (
	"context"
	"net/http"
	"popdash/internal/app"
	"popdash/internal/config"
	"popdash/internal/dashboard"
	"popdash/internal/population"
	"popdash/pkg/domain"
	"popdash/pkg/logger"
	"popdash/pkg/source/httpsource"
	"popdash/pkg/stats"
	"popdash/pkg/stats/worldbank"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func newBuilder(ctx context.Context, cfg *config.Config, meter metric.Meter) *population.Builder {
	fetcher := httpsource.New(&http.Client{Timeout: cfg.Source.Timeout}, cfg.Source.UserAgent)
	builder, err := population.NewBuilder(fetcher, population.Options{
		URL:     cfg.Source.URL,
		TableID: cfg.Source.TableID,
		Columns: population.Columns{
			Country:    cfg.Source.Columns.Country,
			Population: cfg.Source.Columns.Population,
			Migrants:   cfg.Source.Columns.Migrants,
			WorldShare: cfg.Source.Columns.WorldShare,
			UrbanPct:   cfg.Source.Columns.UrbanPct,
		},
	}, meter)
	if err != nil {
		logger.Fatal(ctx, "could not create snapshot builder", zap.Error(err))
	}

	return builder
}

// newStatsProvider returns nil when the summary is computed from the snapshot.
func newStatsProvider(cfg *config.Config) stats.Provider {
	if cfg.Stats.Provider == "snapshot" {
		return nil
	}

	return worldbank.New(http.DefaultClient, cfg.Stats.URL, worldbank.Indicators(cfg.Stats.Indicators))
}

func appOptions(cfg *config.Config) app.Options {
	return app.Options{
		Views: population.ViewOptions{
			TopPopulation:         cfg.Views.TopPopulation,
			TopWorldShare:         cfg.Views.TopWorldShare,
			TopUrban:              cfg.Views.TopUrban,
			UrbanOverFullSnapshot: cfg.Views.UrbanOverFullSnapshot,
		},
		Title:        cfg.Dashboard.Title,
		DefaultTheme: dashboard.Theme(cfg.Dashboard.DefaultTheme),
	}
}

// buildState fetches a snapshot, falling back to latest when it is not nil,
// and derives everything the server needs from it.
func buildState(ctx context.Context,
	cfg *config.Config,
	builder population.SnapshotBuilder,
	latest app.LatestSnapshotter) *app.State {
	snap, err := app.FetchSnapshot(ctx, builder, latest)
	if err != nil {
		logger.Fatal(ctx, "could not obtain a population snapshot", zap.Error(err))
	}
	logSnapshot(ctx, snap)

	statsCtx := ctx
	if cfg.Stats.Timeout > 0 {
		var cancel context.CancelFunc
		statsCtx, cancel = context.WithTimeout(ctx, cfg.Stats.Timeout)
		defer cancel()
	}
	state, err := app.Build(statsCtx, snap, newStatsProvider(cfg), appOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not build dashboard state", zap.Error(err))
	}

	return state
}

func logSnapshot(ctx context.Context, snap *domain.Snapshot) {
	logger.Info(ctx, "population snapshot ready",
		zap.Int("countries", len(snap.Records)),
		zap.Time("fetchedAt", snap.FetchedAt),
		zap.String("source", snap.SourceURL))
}
