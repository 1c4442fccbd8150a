// Package dashboard renders the single page that shows the population views.
//
// Rendering is split in two: Render is a pure function from a theme and the
// snapshot-derived data to a Model holding serialized chart options, and
// Dashboard pre-renders every theme once so serving a page never builds charts.
package dashboard

import (
	"encoding/json"
	"fmt"
	"popdash/internal/population"
	"popdash/pkg/domain"
)

// DefaultTitle is the page heading used when none is configured.
const DefaultTitle = "Population Data visualization"

// Data is everything the page shows, derived from one snapshot.
type Data struct {
	Title   string
	Views   population.Views
	Summary []domain.Metric
	// FetchedAt is shown in the page footer.
	FetchedAt string
}

// Model is the render model of the page for one theme.
type Model struct {
	Theme      Theme
	Style      Style
	ChartTheme string
	Title      string
	FetchedAt  string
	Summary    []domain.Metric

	// Bar, Scatter and Pie are ECharts option objects.
	Bar     json.RawMessage
	Scatter json.RawMessage
	Pie     json.RawMessage
}

// Render builds the model of data for theme t. It performs no I/O and returns
// the same model for the same inputs.
func Render(t Theme, data Data) (Model, error) {
	if _, err := ParseTheme(string(t)); err != nil {
		return Model{}, err
	}

	title := data.Title
	if title == "" {
		title = DefaultTitle
	}

	m := Model{
		Theme:      t,
		Style:      t.Style(),
		ChartTheme: t.ChartTheme(),
		Title:      title,
		FetchedAt:  data.FetchedAt,
		Summary:    data.Summary[:min(len(data.Summary), population.SummaryRows)],
	}

	var err error
	if m.Bar, err = marshalOption(populationBar(t, data.Views.TopByPopulation)); err != nil {
		return Model{}, fmt.Errorf("could not render bar chart: %w", err)
	}
	if m.Scatter, err = marshalOption(migrationScatter(t, data.Views.Migration)); err != nil {
		return Model{}, fmt.Errorf("could not render scatter chart: %w", err)
	}
	if m.Pie, err = marshalOption(sharePies(t, data.Views.TopByWorldShare, data.Views.TopByUrbanPct)); err != nil {
		return Model{}, fmt.Errorf("could not render pie chart: %w", err)
	}

	return m, nil
}
