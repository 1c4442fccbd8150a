package dashboard_test

import (
	"encoding/json"
	"popdash/internal/dashboard"
	"popdash/internal/population"
	"popdash/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func testData() dashboard.Data {
	snap := &domain.Snapshot{Records: []domain.CountryRecord{
		{Country: "A", Population: 300, MigrantsNet: -5, WorldShare: 0.5, UrbanPopPct: 0.1},
		{Country: "B", Population: 200, MigrantsNet: 3, WorldShare: 0.3, UrbanPopPct: 0.9},
		{Country: "C", Population: 100, MigrantsNet: 0, WorldShare: 0.2, UrbanPopPct: 0.5},
	}}

	return dashboard.Data{
		Title:     "Test dashboard",
		Views:     population.BuildViews(snap, population.DefaultViewOptions()),
		Summary:   population.Summarize(snap),
		FetchedAt: "2026-01-02T03:04:05Z",
	}
}

type series struct {
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Center    []string        `json:"center"`
	ItemStyle *struct {
		Color string `json:"color"`
	} `json:"itemStyle"`
}

func decodeSeries(t *testing.T, raw json.RawMessage) []series {
	t.Helper()

	var option struct {
		Series []series `json:"series"`
	}
	require.NoError(t, json.Unmarshal(raw, &option))

	return option.Series
}

func TestRender_IsPure(t *testing.T) {
	data := testData()

	first, err := dashboard.Render(dashboard.ThemeDark, data)
	require.NoError(t, err)
	second, err := dashboard.Render(dashboard.ThemeDark, data)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRender_ThemeSelectsStyle(t *testing.T) {
	data := testData()

	light, err := dashboard.Render(dashboard.ThemeLight, data)
	require.NoError(t, err)
	dark, err := dashboard.Render(dashboard.ThemeDark, data)
	require.NoError(t, err)

	require.Equal(t, "light", light.ChartTheme)
	require.Equal(t, "black", light.Style.Color)
	require.Equal(t, "dark", dark.ChartTheme)
	require.Equal(t, "white", dark.Style.Color)
	require.Len(t, light.Summary, population.SummaryRows)

	var option map[string]any
	require.NoError(t, json.Unmarshal(dark.Bar, &option))
	require.Equal(t, "black", option["backgroundColor"])
}

func TestRender_Charts(t *testing.T) {
	m, err := dashboard.Render(dashboard.ThemeLight, testData())
	require.NoError(t, err)

	bar := decodeSeries(t, m.Bar)
	require.Len(t, bar, 1)
	require.Equal(t, "bar", bar[0].Type)
	var bars []struct {
		Name  string `json:"name"`
		Value int64  `json:"value"`
	}
	require.NoError(t, json.Unmarshal(bar[0].Data, &bars))
	require.Len(t, bars, 3)
	require.Equal(t, "A", bars[0].Name)
	require.Equal(t, int64(300), bars[0].Value)

	scatter := decodeSeries(t, m.Scatter)
	require.Len(t, scatter, 2)
	require.Equal(t, "Inflow", scatter[0].Name)
	require.Equal(t, "green", scatter[0].ItemStyle.Color)
	require.Equal(t, "Outflow", scatter[1].Name)
	require.Equal(t, "red", scatter[1].ItemStyle.Color)
	var outflow []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(scatter[1].Data, &outflow))
	require.Len(t, outflow, 1)
	require.Equal(t, "A", outflow[0].Name)

	pie := decodeSeries(t, m.Pie)
	require.Len(t, pie, 2)
	require.Equal(t, []string{"25%", "50%"}, pie[0].Center)
	require.Equal(t, []string{"75%", "50%"}, pie[1].Center)
	var slices []struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal(pie[1].Data, &slices))
	require.Equal(t, "B", slices[0].Name)
	require.InDelta(t, 90.0, slices[0].Value, 1e-9)
}

func TestRender_UnknownTheme(t *testing.T) {
	_, err := dashboard.Render(dashboard.Theme("sepia"), testData())
	require.Error(t, err)
}
