// Package report renders profile analyses as PNG charts and CSV tables.
package report

import (
	"errors"
	"fmt"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/theirongolddev/wealthtwin/internal/model"
)

// ErrNothingToPlot is returned when a chart would have no positive data.
var ErrNothingToPlot = errors.New("nothing to plot")

// Chart dimensions in pixels.
const (
	chartWidth  = 900
	chartHeight = 600
)

// Series names used in projection charts and CSV headers.
const (
	SeriesYou  = "Your Net Worth"
	SeriesTwin = "AI Twin's Net Worth"
)

// ExpensePie renders the expense breakdown as a pie chart PNG.
// Non-positive components are left out.
func ExpensePie(m model.DerivedMetrics, title string) ([]byte, error) {
	var values []float64
	var labels []string
	for _, c := range m.Breakdown {
		if c.Amount <= 0 {
			continue
		}
		values = append(values, c.Amount)
		labels = append(labels, c.Label)
	}
	if len(values) == 0 {
		return nil, ErrNothingToPlot
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: title,
			Left: charts.PositionCenter,
		}),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
		charts.LegendOptionFunc(charts.LegendOption{
			Orient: charts.OrientVertical,
			Data:   labels,
			Left:   charts.PositionLeft,
		}),
		charts.PieSeriesShowLabel(),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering expense pie: %w", err)
	}
	return p.Bytes()
}

// ProjectionLines renders the actual and twin projections as a line chart PNG.
// An empty twin series draws the actual line alone.
func ProjectionLines(actual, twin model.ProjectionSeries, title string) ([]byte, error) {
	if len(actual) == 0 && len(twin) == 0 {
		return nil, ErrNothingToPlot
	}

	n := max(len(actual), len(twin))
	xLabels := make([]string, n)
	for i := range xLabels {
		xLabels[i] = fmt.Sprintf("Y%d", i)
	}

	values := [][]float64{pad(actual.Values(), n)}
	legend := []string{SeriesYou}
	if len(twin) > 0 {
		values = append(values, pad(twin.Values(), n))
		legend = append(legend, SeriesTwin)
	}

	p, err := charts.LineRender(
		values,
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: legend,
			Top:  charts.PositionBottom,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering projection chart: %w", err)
	}
	return p.Bytes()
}

// pad extends v to length n by repeating its last value.
func pad(v []float64, n int) []float64 {
	if len(v) >= n {
		return v
	}
	out := make([]float64, n)
	copy(out, v)
	var last float64
	if len(v) > 0 {
		last = v[len(v)-1]
	}
	for i := len(v); i < n; i++ {
		out[i] = last
	}
	return out
}
