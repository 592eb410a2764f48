package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealthtwin/internal/tui/theme"
)

// RatioBar renders a labeled bar for a ratio such as the savings rate.
// color is the fill; values outside [0,1] are clamped for the bar only.
func RatioBar(label string, ratio float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	fill := min(max(ratio, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", ratio*100))
}

// ColorAbove returns Positive when v is at least threshold, Warning otherwise.
func ColorAbove(v, threshold float64) lipgloss.Color {
	if v >= threshold {
		return theme.Active.Positive
	}
	return theme.Active.Warning
}

// ColorBelow returns Positive when v is at most threshold, Negative otherwise.
func ColorBelow(v, threshold float64) lipgloss.Color {
	if v <= threshold {
		return theme.Active.Positive
	}
	return theme.Active.Negative
}
