package population_test

import (
	"popdash/internal/population"
	"popdash/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	snap := &domain.Snapshot{Records: []domain.CountryRecord{
		{Country: "A", Population: 1_000_000, MigrantsNet: -5, UrbanPopPct: 0.5},
		{Country: "B", Population: 2_500_000, MigrantsNet: 3, UrbanPopPct: 0.7},
		{Country: "C", Population: 10, MigrantsNet: -1},
	}}

	metrics := population.Summarize(snap)
	require.Len(t, metrics, population.SummaryRows)
	require.Equal(t, []domain.Metric{
		{Label: "World population", Value: "3,500,010"},
		{Label: "Countries and dependencies", Value: "3"},
		{Label: "Most populous", Value: "B (2,500,000)"},
		{Label: "Countries with net emigration", Value: "2"},
		{Label: "Average urban population", Value: "60.0%"},
	}, metrics)
}

func TestSummarize_Empty(t *testing.T) {
	metrics := population.Summarize(&domain.Snapshot{})
	require.Len(t, metrics, population.SummaryRows)
	require.Equal(t, "0", metrics[0].Value)
	require.Equal(t, "N/A", metrics[2].Value)
	require.Equal(t, "N/A", metrics[4].Value)
}
