package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/config"
	"github.com/theirongolddev/wealthtwin/internal/pipeline"
	"github.com/theirongolddev/wealthtwin/internal/tui"
	"github.com/theirongolddev/wealthtwin/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}
	theme.SetActive(rc.cfg.Appearance.Theme)

	// Force TrueColor so all background styling produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	name := ""
	if rc.resolved.Origin != pipeline.OriginEmpty {
		name = rc.resolved.Name
	}
	app := tui.NewApp(tui.Options{
		Config:    rc.cfg,
		Variant:   rc.variant,
		Profile:   rc.resolved.Profile,
		Name:      name,
		Currency:  rc.currency,
		Analysis:  rc.opts,
		StorePath: config.StorePath(rc.cfg),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
