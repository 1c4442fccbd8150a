package population

import (
	"popdash/pkg/domain"
	"strconv"
	"strings"
)

// Report summarizes what normalization did with the raw rows.
type Report struct {
	// Rows is the number of raw data rows seen.
	Rows int
	// Dropped counts rows rejected for an empty or duplicate country name or an
	// unusable population figure.
	Dropped int
	// Defaulted counts numeric cells (migrants, world share, urban pct) that
	// could not be parsed and were recorded as 0.
	Defaulted int
}

var numberCleaner = strings.NewReplacer( //nolint: gochecknoglobals
	",", "",
	" ", "",
	"\u00a0", "",
	"\u202f", "",
	"\u2212", "-",
)

// ParseCount parses a locale-formatted integer such as "1,234,567" or
// "-40,000". Grouping separators and a leading "+" are ignored. The second
// result is false when the text is not an integer.
func ParseCount(s string) (int64, bool) {
	s = numberCleaner.Replace(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, false
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// ParsePercent parses a percentage such as "12.5%" or "17.7 %" into a
// fraction (0.125, 0.177). Text that is not a number, like "N.A.", yields
// 0 and false: callers record such cells as 0 instead of failing.
func ParsePercent(s string) (float64, bool) {
	s = numberCleaner.Replace(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f / 100, true
}

// Normalize converts every raw row of t into a CountryRecord, preserving page
// order.
//
// Rules:
//   - country is the trimmed name cell; empty or repeated names drop the row
//   - population must parse as a non-negative integer or the row is dropped
//   - migrants, world share and urban pct default to 0 when unparseable
//   - world share and urban pct are clamped to [0,1]
func Normalize(t *Table) ([]domain.CountryRecord, Report) {
	var report Report
	records := make([]domain.CountryRecord, 0, t.Len())
	seen := make(map[string]struct{}, t.Len())

	for row := range t.Rows() {
		report.Rows++

		rec, defaulted, ok := normalizeRow(t, row)
		if !ok {
			report.Dropped++

			continue
		}
		if _, dup := seen[rec.Country]; dup {
			report.Dropped++

			continue
		}
		seen[rec.Country] = struct{}{}
		report.Defaulted += defaulted
		records = append(records, rec)
	}

	return records, report
}

func normalizeRow(t *Table, row domain.RawRow) (domain.CountryRecord, int, bool) {
	country := strings.TrimSpace(t.Cell(row, ColumnCountry))
	if country == "" {
		return domain.CountryRecord{}, 0, false
	}

	population, ok := ParseCount(t.Cell(row, ColumnPopulation))
	if !ok || population < 0 {
		return domain.CountryRecord{}, 0, false
	}

	defaulted := 0
	migrants, ok := ParseCount(t.Cell(row, ColumnMigrants))
	if !ok {
		defaulted++
	}
	share, ok := ParsePercent(t.Cell(row, ColumnWorldShare))
	if !ok {
		defaulted++
	}
	urban, ok := ParsePercent(t.Cell(row, ColumnUrbanPct))
	if !ok {
		defaulted++
	}

	return domain.CountryRecord{
		Country:     country,
		Population:  population,
		MigrantsNet: migrants,
		WorldShare:  clampFraction(share),
		UrbanPopPct: clampFraction(urban),
	}, defaulted, true
}

func clampFraction(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
