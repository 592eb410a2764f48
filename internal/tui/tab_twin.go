package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/model"
	"github.com/theirongolddev/wealthtwin/internal/tui/components"
	"github.com/theirongolddev/wealthtwin/internal/tui/theme"
)

func (a App) renderTwinTab(cw int) string {
	t := theme.Active
	if a.result.TwinErr != nil {
		return components.ContentCard("Twin unavailable", a.result.TwinErr.Error(), cw)
	}
	cmp := a.result.Twin
	var b strings.Builder

	gap := cmp.Gap()
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "You", Value: cli.FormatMoney(cmp.ActualSeries.Final().NetWorth, a.currency), Note: "grows at " + cli.FormatPercent(cmp.Actual.GrowthRate), Tone: t.You},
		{Label: "Your Twin", Value: cli.FormatMoney(cmp.TwinSeries.Final().NetWorth, a.currency), Note: "grows at " + cli.FormatPercent(cmp.TwinGrowth), Tone: t.Twin},
		{Label: "Gap", Value: cli.FormatDelta(cmp.TwinSeries.Final().NetWorth, cmp.ActualSeries.Final().NetWorth, a.currency), Note: "after " + cli.FormatYears(a.opts.Horizon), Tone: t.Signed(gap)},
		{Label: "Reallocated", Value: cli.FormatPercent(a.opts.Fraction), Note: "of entertainment + fun"},
	}, cw))
	b.WriteString("\n")

	chartH := 12
	if a.isCompactLayout() {
		chartH = 8
	}
	chart := components.BarChart([]components.Series{
		{Values: cmp.ActualSeries.Values(), Color: t.You},
		{Values: cmp.TwinSeries.Values(), Color: t.Twin},
	}, yearLabels(cmp.ActualSeries), components.CardInnerWidth(cw), chartH)

	legend := lipgloss.NewStyle().Foreground(t.You).Background(t.Surface).Render("█ you") +
		lipgloss.NewStyle().Background(t.Surface).Render("  ") +
		lipgloss.NewStyle().Foreground(t.Twin).Background(t.Surface).Render("█ twin")
	b.WriteString(components.ContentCard("You vs your twin", chart+"\n"+legend, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("What the twin does differently", a.twinDiff(), cw))
	return b.String()
}

// twinDiff lists the categories the reallocation touches.
func (a App) twinDiff() string {
	t := theme.Active
	cmp := a.result.Twin

	head := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	val := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	const labelW, colW = 16, 14
	var b strings.Builder
	b.WriteString(head.Render(fmt.Sprintf("%-*s%*s%*s%*s", labelW, "", colW, "You", colW, "Twin", colW, "Change")))

	for _, c := range []model.Category{model.CategoryEntertainment, model.CategoryFun, model.CategoryInvestments} {
		you, twin := cmp.Actual.Amount(c), cmp.Twin.Amount(c)
		b.WriteString("\n")
		b.WriteString(label.Render(fmt.Sprintf("%-*s", labelW, c.Label())))
		b.WriteString(val.Render(fmt.Sprintf("%*s%*s", colW, cli.FormatMoneyShort(you, a.currency), colW, cli.FormatMoneyShort(twin, a.currency))))
		delta := fmt.Sprintf("%*s", colW, cli.FormatDelta(twin, you, a.currency))
		b.WriteString(lipgloss.NewStyle().Foreground(t.Signed(twin-you)).Background(t.Surface).Render(delta))
	}
	return b.String()
}
