// Package stats defines the secondary statistics provider feeding the summary
// table of the dashboard.
package stats

import (
	"context"
	"popdash/pkg/domain"
)

// Provider returns world-level headline figures as summary metrics.
//
//go:generate mockgen -package mockstats -source=interface.go -destination=mock/mockstats.go *
type Provider interface {
	// Metrics returns one metric per configured indicator, in configuration
	// order.
	Metrics(ctx context.Context) ([]domain.Metric, error)
}
