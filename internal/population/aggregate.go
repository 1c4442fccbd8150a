package population

import (
	"cmp"
	"popdash/pkg/domain"
	"slices"
)

// ViewOptions sizes the derived views.
type ViewOptions struct {
	// TopPopulation is the number of countries in the population bar chart.
	TopPopulation int
	// TopWorldShare is the number of countries in the world share pie.
	TopWorldShare int
	// TopUrban is the number of countries in the urban population pie.
	TopUrban int
	// UrbanOverFullSnapshot ranks urban population over every record instead
	// of over the world share subset.
	UrbanOverFullSnapshot bool
}

// DefaultViewOptions returns the sizes used by the dashboard.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		TopPopulation: 20,
		TopWorldShare: 10,
		TopUrban:      10,
	}
}

// Views holds every projection of a snapshot the dashboard shows.
type Views struct {
	TopByPopulation []domain.CountryRecord  `json:"topByPopulation"`
	Migration       []domain.MigrationPoint `json:"migration"`
	TopByWorldShare []domain.CountryRecord  `json:"topByWorldShare"`
	TopByUrbanPct   []domain.CountryRecord  `json:"topByUrbanPct"`
}

// BuildViews computes all views of snap. Unless UrbanOverFullSnapshot is set,
// the urban ranking only considers the countries already selected by
// TopByWorldShare.
func BuildViews(snap *domain.Snapshot, opts ViewOptions) Views {
	byShare := TopByWorldShare(snap.Records, opts.TopWorldShare)

	urbanBase := byShare
	if opts.UrbanOverFullSnapshot {
		urbanBase = snap.Records
	}

	return Views{
		TopByPopulation: TopByPopulation(snap.Records, opts.TopPopulation),
		Migration:       MigrationView(snap.Records),
		TopByWorldShare: byShare,
		TopByUrbanPct:   TopByUrbanPct(urbanBase, opts.TopUrban),
	}
}

// TopByPopulation returns the first n records in their existing order. The
// page already lists countries by descending population, so no sort happens.
func TopByPopulation(records []domain.CountryRecord, n int) []domain.CountryRecord {
	return slices.Clone(records[:bound(n, len(records))])
}

// MigrationView returns every record sorted by population, largest first,
// tagged with its migration flow. Ties keep their relative order.
func MigrationView(records []domain.CountryRecord) []domain.MigrationPoint {
	sorted := sortedDesc(records, func(r domain.CountryRecord) int64 { return r.Population })

	out := make([]domain.MigrationPoint, len(sorted))
	for i, r := range sorted {
		out[i] = domain.MigrationPoint{CountryRecord: r, Flow: domain.FlowOf(r.MigrantsNet)}
	}

	return out
}

// TopByWorldShare returns the n records with the largest world share.
func TopByWorldShare(records []domain.CountryRecord, n int) []domain.CountryRecord {
	sorted := sortedDesc(records, func(r domain.CountryRecord) float64 { return r.WorldShare })

	return sorted[:bound(n, len(sorted))]
}

// TopByUrbanPct returns the n records with the largest urban population
// fraction.
func TopByUrbanPct(records []domain.CountryRecord, n int) []domain.CountryRecord {
	sorted := sortedDesc(records, func(r domain.CountryRecord) float64 { return r.UrbanPopPct })

	return sorted[:bound(n, len(sorted))]
}

// sortedDesc returns a copy of records stable-sorted by key, descending.
func sortedDesc[K cmp.Ordered](records []domain.CountryRecord, key func(domain.CountryRecord) K) []domain.CountryRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b domain.CountryRecord) int {
		return cmp.Compare(key(b), key(a))
	})

	return out
}

func bound(n, length int) int {
	return max(0, min(n, length))
}
