package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealthtwin/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// context (scenario, variant, rates) and the last message on the right.
func RenderStatusBar(width int, context, message string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)
	msgStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	left := " [?]help  [e]dit  [s]ave  [q]uit"
	right := context + " "
	if message != "" {
		right = msgStyle.Render(message) + style.UnsetWidth().Render("  "+right)
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
