package dashboard

import (
	"encoding/json"
	"fmt"
	"math"
	"popdash/pkg/domain"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	inflowColor  = "green"
	outflowColor = "red"
)

// option is a chart whose ECharts option object can be serialized.
type option interface {
	Validate()
	JSON() map[string]interface{}
}

func marshalOption(c option) (json.RawMessage, error) {
	c.Validate()

	b, err := json.Marshal(c.JSON())
	if err != nil {
		return nil, fmt.Errorf("could not marshal chart option: %w", err)
	}

	return b, nil
}

func initOpts(t Theme) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		Theme:           t.ChartTheme(),
		BackgroundColor: t.Style().Background,
	})
}

// populationBar plots the records in the order given, one bar per country.
func populationBar(t Theme, records []domain.CountryRecord) *charts.Bar {
	names := make([]string, len(records))
	data := make([]opts.BarData, len(records))
	for i, r := range records {
		names[i] = r.Country
		data[i] = opts.BarData{Name: r.Country, Value: r.Population}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(t),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Country",
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45, Interval: "0"},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Population",
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true)},
		}),
	)
	bar.SetXAxis(names).AddSeries("Population", data)

	return bar
}

// migrationScatter plots net migration per country. Countries keep the order
// of points; inflow and outflow are separate series so each gets its color.
func migrationScatter(t Theme, points []domain.MigrationPoint) *charts.Scatter {
	names := make([]string, len(points))
	var inflow, outflow []opts.ScatterData
	for i, p := range points {
		names[i] = p.Country
		d := opts.ScatterData{Name: p.Country, Value: []any{p.Country, p.MigrantsNet}, SymbolSize: 10}
		if p.Flow == domain.FlowOutflow {
			outflow = append(outflow, d)
		} else {
			inflow = append(inflow, d)
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		initOpts(t),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", AxisLabel: &opts.AxisLabel{Show: opts.Bool(false)}}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Net Migration",
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true)},
		}),
	)
	scatter.SetXAxis(names).
		AddSeries("Inflow", inflow, charts.WithItemStyleOpts(opts.ItemStyle{Color: inflowColor})).
		AddSeries("Outflow", outflow, charts.WithItemStyleOpts(opts.ItemStyle{Color: outflowColor}))

	return scatter
}

// sharePies draws two pies side by side: world share on the left, urban
// population percentage on the right. Values are percentages.
func sharePies(t Theme, byShare, byUrban []domain.CountryRecord) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		initOpts(t),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: types.FuncStr("<b>{b}</b><br/>{a}: {c}%"),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	pie.AddSeries("World Share", pieData(byShare, func(r domain.CountryRecord) float64 { return r.WorldShare }),
		charts.WithPieChartOpts(opts.PieChart{Center: []string{"25%", "50%"}, Radius: "55%"}),
	)
	pie.AddSeries("Urban Pop %", pieData(byUrban, func(r domain.CountryRecord) float64 { return r.UrbanPopPct }),
		charts.WithPieChartOpts(opts.PieChart{Center: []string{"75%", "50%"}, Radius: "55%"}),
	)

	return pie
}

func pieData(records []domain.CountryRecord, fraction func(domain.CountryRecord) float64) []opts.PieData {
	out := make([]opts.PieData, len(records))
	for i, r := range records {
		out[i] = opts.PieData{Name: r.Country, Value: percent(fraction(r))}
	}

	return out
}

// percent converts a fraction to a percentage rounded to two decimals.
func percent(f float64) float64 {
	return math.Round(f*10000) / 100
}
