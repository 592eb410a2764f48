package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealthtwin/internal/tui/components"
	"github.com/theirongolddev/wealthtwin/internal/tui/theme"
)

func (a App) renderAdviceTab(cw int) string {
	t := theme.Active
	advice := a.result.Advice
	innerW := components.CardInnerWidth(cw)

	if len(advice) == 0 {
		ok := lipgloss.NewStyle().Foreground(t.Positive).Background(t.Surface).Bold(true)
		return components.ContentCard("Advice", ok.Render("✓ Nothing to flag. Your budget passes every check."), cw)
	}

	msgStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(innerW - 12)
	idStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var items []string
	for i, adv := range advice {
		sev := lipgloss.NewStyle().Foreground(t.ForSeverity(adv.Severity)).Background(t.Surface).Bold(true)
		marker := "  "
		if i == a.adviceScroll {
			marker = "▸ "
		}
		head := space.Render(marker) + sev.Render(fmt.Sprintf("%-9s", strings.ToUpper(adv.Severity.String()))) + space.Render(" ")
		body := msgStyle.Render(adv.Message)
		lines := strings.Split(body, "\n")
		item := head + lines[0]
		indent := space.Render(strings.Repeat(" ", lipgloss.Width(head)))
		for _, l := range lines[1:] {
			item += "\n" + indent + l
		}
		item += "\n" + indent + idStyle.Render(adv.ID)
		items = append(items, item)
	}

	// Scroll so the selected item starts the list.
	body := strings.Join(items[a.adviceScroll:], "\n\n")
	title := fmt.Sprintf("Advice (%d)", len(advice))
	if a.adviceScroll > 0 {
		title += fmt.Sprintf("  ↑ %d more", a.adviceScroll)
	}
	return components.ContentCard(title, body, cw)
}
