package app_test

import (
	"context"
	"errors"
	"popdash/internal/app"
	"popdash/internal/dashboard"
	"popdash/internal/population"
	mockpopulation "popdash/internal/population/mock"
	"popdash/pkg/domain"
	"popdash/pkg/serrors"
	mockstats "popdash/pkg/stats/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func snapshot() *domain.Snapshot {
	return &domain.Snapshot{
		SourceURL: population.DefaultURL,
		FetchedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Records: []domain.CountryRecord{
			{Country: "A", Population: 30, MigrantsNet: -5, WorldShare: 0.5, UrbanPopPct: 0.1},
			{Country: "B", Population: 20, MigrantsNet: 3, WorldShare: 0.3, UrbanPopPct: 0.9},
		},
	}
}

func options() app.Options {
	return app.Options{
		Views:        population.DefaultViewOptions(),
		Title:        "test",
		DefaultTheme: dashboard.ThemeLight,
	}
}

func TestBuild_UsesProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mockstats.NewMockProvider(ctrl)
	metrics := []domain.Metric{{Label: "World population (2023)", Value: "8,061,876,001"}}
	provider.EXPECT().Metrics(gomock.Any()).Return(metrics, nil)

	state, err := app.Build(context.Background(), snapshot(), provider, options())
	require.NoError(t, err)
	require.Equal(t, metrics, state.Summary)
	require.Len(t, state.Views.TopByPopulation, 2)
	require.NotNil(t, state.Dashboard)
}

func TestBuild_ProviderFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mockstats.NewMockProvider(ctrl)
	provider.EXPECT().Metrics(gomock.Any()).Return(nil, serrors.With(serrors.ErrFetch, "down"))

	snap := snapshot()
	state, err := app.Build(context.Background(), snap, provider, options())
	require.NoError(t, err)
	require.Equal(t, population.Summarize(snap), state.Summary)
}

func TestBuild_WithoutProvider(t *testing.T) {
	snap := snapshot()
	state, err := app.Build(context.Background(), snap, nil, options())
	require.NoError(t, err)
	require.Len(t, state.Summary, population.SummaryRows)
}

func TestBuild_BadTheme(t *testing.T) {
	opts := options()
	opts.DefaultTheme = "sepia"

	_, err := app.Build(context.Background(), snapshot(), nil, opts)
	require.Error(t, err)
}

type archiveFunc func(ctx context.Context) (*domain.Snapshot, error)

func (f archiveFunc) LatestSnapshot(ctx context.Context) (*domain.Snapshot, error) { return f(ctx) }

func TestFetchSnapshot(t *testing.T) {
	fetchErr := serrors.With(serrors.ErrFetch, "offline")
	archived := snapshot()

	cases := []struct {
		name    string
		built   *domain.Snapshot
		err     error
		archive app.LatestSnapshotter
		want    *domain.Snapshot
		wantErr error
	}{
		{name: "fresh snapshot", built: snapshot(), want: snapshot()},
		{name: "no archive", err: fetchErr, wantErr: serrors.ErrFetch},
		{
			name: "archive fallback", err: fetchErr, want: archived,
			archive: archiveFunc(func(context.Context) (*domain.Snapshot, error) { return archived, nil }),
		},
		{
			name: "empty archive", err: fetchErr, wantErr: app.ErrNoSnapshot,
			archive: archiveFunc(func(context.Context) (*domain.Snapshot, error) { return nil, nil }),
		},
		{
			name: "archive error", err: fetchErr, wantErr: serrors.ErrFetch,
			archive: archiveFunc(func(context.Context) (*domain.Snapshot, error) { return nil, errors.New("db down") }),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			builder := mockpopulation.NewMockSnapshotBuilder(ctrl)
			builder.EXPECT().Snapshot(gomock.Any()).Return(tc.built, tc.err)

			got, err := app.FetchSnapshot(context.Background(), builder, tc.archive)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
