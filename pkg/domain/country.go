package domain

// CountryRecord is one normalized row of the population table.
type CountryRecord struct {
	// Country is the country or dependency name as shown on the page. It is
	// never empty and unique within one snapshot.
	Country string `json:"country"`
	// Population is the total population, always >= 0.
	Population int64 `json:"population"`
	// MigrantsNet is the yearly net number of migrants; negative values mean
	// more people left the country than arrived.
	MigrantsNet int64 `json:"migrantsNet"`
	// WorldShare is the country's fraction of the world population in [0,1].
	WorldShare float64 `json:"worldShare"`
	// UrbanPopPct is the fraction of the population living in urban areas in
	// [0,1]. Missing values are recorded as 0.
	UrbanPopPct float64 `json:"urbanPopPct"`
}

// RawRow is the ordered sequence of raw text cells of one table row, as
// scraped. It only lives until the row is normalized.
type RawRow struct {
	// Index is the zero-based position of the row among the data rows.
	Index int
	// Cells holds the trimmed text of every cell in the row.
	Cells []string
}

// Flow classifies the direction of net migration for a country.
type Flow string

const (
	// FlowInflow means net migration is zero or positive.
	FlowInflow Flow = "inflow"
	// FlowOutflow means net migration is negative.
	FlowOutflow Flow = "outflow"
)

// FlowOf returns the migration flow for a net migrants figure.
func FlowOf(migrantsNet int64) Flow {
	if migrantsNet < 0 {
		return FlowOutflow
	}

	return FlowInflow
}

// MigrationPoint pairs a record with its derived migration flow.
type MigrationPoint struct {
	CountryRecord

	Flow Flow `json:"flow"`
}

// Metric is one label/value row of the dashboard summary table.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
