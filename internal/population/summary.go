package population

import (
	"popdash/pkg/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SummaryRows is the number of rows of the dashboard summary table.
const SummaryRows = 5

// Summarize derives the summary table from the snapshot itself. It is used
// when the secondary statistics provider is disabled or unavailable.
func Summarize(snap *domain.Snapshot) []domain.Metric {
	p := message.NewPrinter(language.English)

	var (
		total     int64
		outflow   int
		urbanSum  float64
		populous  domain.CountryRecord
		urbanRows int
	)
	for _, r := range snap.Records {
		total += r.Population
		if r.MigrantsNet < 0 {
			outflow++
		}
		if r.UrbanPopPct > 0 {
			urbanSum += r.UrbanPopPct
			urbanRows++
		}
		if r.Population > populous.Population {
			populous = r
		}
	}

	avgUrban := "N/A"
	if urbanRows > 0 {
		avgUrban = p.Sprintf("%.1f%%", urbanSum/float64(urbanRows)*100)
	}
	mostPopulous := "N/A"
	if populous.Country != "" {
		mostPopulous = p.Sprintf("%s (%d)", populous.Country, populous.Population)
	}

	return []domain.Metric{
		{Label: "World population", Value: p.Sprintf("%d", total)},
		{Label: "Countries and dependencies", Value: p.Sprintf("%d", snap.Len())},
		{Label: "Most populous", Value: mostPopulous},
		{Label: "Countries with net emigration", Value: p.Sprintf("%d", outflow)},
		{Label: "Average urban population", Value: avgUrban},
	}
}
