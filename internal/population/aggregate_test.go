package population_test

import (
	"fmt"
	"popdash/internal/population"
	"popdash/pkg/domain"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func records(n int) []domain.CountryRecord {
	out := make([]domain.CountryRecord, n)
	for i := range out {
		migrants := int64(1000)
		if i%3 == 0 {
			migrants = -1000
		}
		out[i] = domain.CountryRecord{
			Country:     fmt.Sprintf("country-%02d", i),
			Population:  int64((n - i) * 1_000_000),
			MigrantsNet: migrants,
			WorldShare:  float64(n-i) / 1000,
			UrbanPopPct: float64(i%10) / 10,
		}
	}

	return out
}

func countries(rs []domain.CountryRecord) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Country
	}

	return out
}

func TestTopByPopulation(t *testing.T) {
	rs := records(30)

	top := population.TopByPopulation(rs, 20)
	require.Len(t, top, 20)
	require.Equal(t, countries(rs[:20]), countries(top))

	short := population.TopByPopulation(rs[:5], 20)
	require.Len(t, short, 5)

	require.Empty(t, population.TopByPopulation(rs, 0))
	require.Empty(t, population.TopByPopulation(rs, -1))
	require.Empty(t, population.TopByPopulation(nil, 20))
}

func TestTopByPopulation_KeepsSnapshotOrder(t *testing.T) {
	// not sorted by population on purpose
	rs := []domain.CountryRecord{
		{Country: "small", Population: 1},
		{Country: "big", Population: 100},
		{Country: "mid", Population: 10},
	}

	require.Equal(t, []string{"small", "big"}, countries(population.TopByPopulation(rs, 2)))
}

func TestMigrationView_SortedPermutationWithFlow(t *testing.T) {
	rs := records(25)
	slices.Reverse(rs)
	before := slices.Clone(rs)

	view := population.MigrationView(rs)
	require.Len(t, view, len(rs))

	for i := 1; i < len(view); i++ {
		require.GreaterOrEqual(t, view[i-1].Population, view[i].Population)
	}

	got := make([]string, len(view))
	for i, p := range view {
		got[i] = p.Country
		if p.MigrantsNet < 0 {
			require.Equal(t, domain.FlowOutflow, p.Flow, p.Country)
		} else {
			require.Equal(t, domain.FlowInflow, p.Flow, p.Country)
		}
	}
	want := countries(rs)
	slices.Sort(got)
	slices.Sort(want)
	require.Equal(t, want, got)

	// input untouched
	require.Equal(t, before, rs)
}

func TestMigrationView_StableOnTies(t *testing.T) {
	rs := []domain.CountryRecord{
		{Country: "a", Population: 5},
		{Country: "b", Population: 7},
		{Country: "c", Population: 5},
		{Country: "d", Population: 0, MigrantsNet: 0},
	}

	view := population.MigrationView(rs)
	got := make([]string, len(view))
	for i, p := range view {
		got[i] = p.Country
	}
	require.Equal(t, []string{"b", "a", "c", "d"}, got)
	require.Equal(t, domain.FlowInflow, view[3].Flow)
}

func TestTopByWorldShareAndUrban(t *testing.T) {
	rs := []domain.CountryRecord{
		{Country: "a", WorldShare: 0.1, UrbanPopPct: 0.9},
		{Country: "b", WorldShare: 0.3, UrbanPopPct: 0.2},
		{Country: "c", WorldShare: 0.2, UrbanPopPct: 0.9},
		{Country: "d", WorldShare: 0.3, UrbanPopPct: 0.5},
	}

	require.Equal(t, []string{"b", "d", "c"}, countries(population.TopByWorldShare(rs, 3)))
	require.Equal(t, []string{"a", "c"}, countries(population.TopByUrbanPct(rs, 2)))
	require.Len(t, population.TopByUrbanPct(rs, 10), 4)
	require.Equal(t, "a", rs[0].Country)
}

func TestBuildViews_NestedRanking(t *testing.T) {
	snap := &domain.Snapshot{Records: []domain.CountryRecord{
		{Country: "A", Population: 30, MigrantsNet: -5, WorldShare: 0.5, UrbanPopPct: 0.1},
		{Country: "B", Population: 20, MigrantsNet: 3, WorldShare: 0.3, UrbanPopPct: 0.9},
		{Country: "C", Population: 10, MigrantsNet: 0, WorldShare: 0.2, UrbanPopPct: 0.5},
	}}

	views := population.BuildViews(snap, population.ViewOptions{
		TopPopulation: 20,
		TopWorldShare: 2,
		TopUrban:      10,
	})

	require.Equal(t, []string{"A", "B", "C"}, countries(views.TopByPopulation))
	require.Equal(t, []string{"A", "B"}, countries(views.TopByWorldShare))
	// C has a higher urban fraction than A but is outside the world share subset
	require.Equal(t, []string{"B", "A"}, countries(views.TopByUrbanPct))

	require.Len(t, views.Migration, 3)
	require.Equal(t, domain.FlowOutflow, views.Migration[0].Flow)
	require.Equal(t, domain.FlowInflow, views.Migration[1].Flow)
	require.Equal(t, domain.FlowInflow, views.Migration[2].Flow)
}

func TestBuildViews_UrbanOverFullSnapshot(t *testing.T) {
	snap := &domain.Snapshot{Records: []domain.CountryRecord{
		{Country: "A", Population: 30, WorldShare: 0.5, UrbanPopPct: 0.1},
		{Country: "B", Population: 20, WorldShare: 0.3, UrbanPopPct: 0.9},
		{Country: "C", Population: 10, WorldShare: 0.2, UrbanPopPct: 0.5},
	}}

	opts := population.DefaultViewOptions()
	opts.TopWorldShare = 2
	opts.UrbanOverFullSnapshot = true

	views := population.BuildViews(snap, opts)
	require.Equal(t, []string{"B", "C", "A"}, countries(views.TopByUrbanPct))
}
