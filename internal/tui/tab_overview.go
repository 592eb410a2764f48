package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/finance"
	"github.com/theirongolddev/wealthtwin/internal/tui/components"
	"github.com/theirongolddev/wealthtwin/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	m := a.result.Metrics
	p := a.profile
	var b strings.Builder

	// Row 1: headline cards
	savingsNote := cli.FormatPercent(m.SavingsRate) + " of income"
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: cli.FormatMoney(p.Income, a.currency), Note: "monthly"},
		{Label: "Expenses", Value: cli.FormatMoney(m.TotalExpenses, a.currency), Note: fmt.Sprintf("%d categories", len(m.Breakdown))},
		{Label: "Net Savings", Value: cli.FormatMoney(m.NetSavings, a.currency), Note: savingsNote, Tone: t.Signed(m.NetSavings)},
		{Label: "Net Worth Now", Value: cli.FormatMoney(m.NetWorthNow, a.currency), Note: "annualized " + string(a.opts.Layout.Base)},
	}, cw))
	b.WriteString("\n")

	// Row 2: expense breakdown + health ratios
	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		halves = []int{cw, cw}
	}

	breakdown := components.ContentCard("Where the money goes", a.breakdownBody(components.CardInnerWidth(halves[0])), halves[0])
	health := components.ContentCard("Health", a.healthBody(components.CardInnerWidth(halves[1])), halves[1])

	if a.isCompactLayout() {
		b.WriteString(breakdown)
		b.WriteString("\n")
		b.WriteString(health)
	} else {
		b.WriteString(components.CardRow([]string{breakdown, health}))
	}
	return b.String()
}

func (a App) breakdownBody(innerW int) string {
	t := theme.Active
	m := a.result.Metrics
	if len(m.Breakdown) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("No expense categories in this calculator")
	}

	labelW := 0
	maxAmt := 0.0
	for _, c := range m.Breakdown {
		labelW = max(labelW, len(c.Label))
		maxAmt = max(maxAmt, c.Amount)
	}
	amtStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amtW := 10
	barW := max(innerW-labelW-amtW-3, 4)

	var body strings.Builder
	for i, c := range m.Breakdown {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(components.HBar(c.Label, c.Amount, maxAmt, labelW, barW, t.Accent))
		body.WriteString(amtStyle.Render(fmt.Sprintf(" %*s", amtW+1, cli.FormatMoneyShort(c.Amount, a.currency))))
	}
	return body.String()
}

func (a App) healthBody(innerW int) string {
	t := theme.Active
	m := a.result.Metrics
	p := a.profile

	const labelW = 16
	barW := max(innerW-labelW-8, 6)

	rows := []string{
		components.RatioBar("Savings rate", m.SavingsRate, components.ColorAbove(m.SavingsRate, finance.MinSavingsRate), labelW, barW),
		components.RatioBar("Debt to income", m.DebtToIncomeRatio, components.ColorBelow(m.DebtToIncomeRatio, finance.MaxDebtToIncome), labelW, barW),
	}
	if p.Income > 0 {
		share := p.EmergencyFund / p.Income
		rows = append(rows, components.RatioBar("Emergency fund", share, components.ColorAbove(share, finance.MinEmergencyFundShare), labelW, barW))
	}
	if p.SavingsGoal > 0 {
		progress := m.NetSavings / p.SavingsGoal
		rows = append(rows, components.RatioBar("Savings goal", progress, components.ColorAbove(progress, 1), labelW, barW))
	}

	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	rows = append(rows, "", dim.Render(fmt.Sprintf("%d advice item(s), see [a]dvice", len(a.result.Advice))))
	return strings.Join(rows, "\n")
}
