package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/finance"
	"github.com/theirongolddev/wealthtwin/internal/model"
	"github.com/theirongolddev/wealthtwin/internal/tui/components"
	"github.com/theirongolddev/wealthtwin/internal/tui/theme"
)

func (a App) renderProjectionTab(cw int) string {
	t := theme.Active
	series := a.result.Projection
	var b strings.Builder

	var today model.ProjectionPoint
	if len(series) > 0 {
		today = series[0]
	}
	final := series.Final()
	realRate := a.profile.GrowthRate - a.profile.InflationRate
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Today", Value: cli.FormatMoney(today.NetWorth, a.currency), Note: "year 0"},
		{Label: "In " + cli.FormatYears(final.Year), Value: cli.FormatMoney(final.NetWorth, a.currency), Tone: t.You},
		{Label: "Real growth", Value: cli.FormatPercent(realRate), Note: "growth minus inflation", Tone: t.Signed(realRate)},
		{Label: "Mode", Value: string(a.opts.Mode), Note: modeNote(a.opts.Mode)},
	}, cw))
	b.WriteString("\n")

	chartH := 12
	if a.isCompactLayout() {
		chartH = 8
	}
	chart := components.BarChart([]components.Series{
		{Values: series.Values(), Color: t.You},
	}, yearLabels(series), components.CardInnerWidth(cw), chartH)
	b.WriteString(components.ContentCard("Projected net worth ("+cli.FormatYears(a.opts.Horizon)+")", chart, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Year by year", a.yearTable(components.CardInnerWidth(cw)), cw))
	return b.String()
}

func modeNote(m finance.Mode) string {
	if m == finance.ModeContribution {
		return "start + yearly contributions"
	}
	return "compounded base, no contributions"
}

// yearTable lays the series out in columns of "Y3  ₹1.2M" cells.
func (a App) yearTable(innerW int) string {
	t := theme.Active
	series := a.result.Projection

	yearStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	const cellW = 16
	cols := max(innerW/cellW, 1)
	rows := (len(series) + cols - 1) / cols

	var b strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString("\n")
		}
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(series) {
				break
			}
			pt := series[i]
			b.WriteString(yearStyle.Render(fmt.Sprintf("Y%-3d", pt.Year)))
			b.WriteString(valStyle.Render(fmt.Sprintf("%-*s", cellW-4, truncStr(cli.FormatMoneyShort(pt.NetWorth, a.currency), cellW-5))))
		}
	}
	return b.String()
}

func yearLabels(s model.ProjectionSeries) []string {
	labels := make([]string, len(s))
	for i, pt := range s {
		labels[i] = fmt.Sprintf("Y%d", pt.Year)
	}
	return labels
}
