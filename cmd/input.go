package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/config"
	"github.com/theirongolddev/wealthtwin/internal/pipeline"
	"github.com/theirongolddev/wealthtwin/internal/store"
	"github.com/theirongolddev/wealthtwin/internal/tui"
)

var flagSaveAs string

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Enter a budget interactively and see the results",
	RunE:  runInput,
}

func init() {
	inputCmd.Flags().StringVar(&flagSaveAs, "save", "", "Save the entered profile under this scenario name")
	rootCmd.AddCommand(inputCmd)
}

func runInput(cmd *cobra.Command, _ []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}

	name := flagSaveAs
	if name == "" && rc.resolved.Origin == pipeline.OriginScenario {
		name = rc.resolved.Name
	}
	vals := tui.NewProfileValues(name, rc.resolved.Profile)
	if err := tui.NewProfileForm(vals, true).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Cancelled.")
			return nil
		}
		return fmt.Errorf("profile form: %w", err)
	}

	p, err := vals.Profile()
	if err != nil {
		return err
	}
	rc.resolved.Profile = p

	if n := strings.TrimSpace(vals.Name); n != "" {
		st, err := store.Open(config.StorePath(rc.cfg))
		if err != nil {
			return fmt.Errorf("opening scenario store: %w", err)
		}
		defer func() { _ = st.Close() }()

		sc, err := st.Save(n, p, rc.currency)
		if err != nil {
			return fmt.Errorf("saving scenario: %w", err)
		}
		log.WithFields(logrus.Fields{"name": sc.Name, "id": sc.ID}).Debug("scenario saved")
		fmt.Printf("\n  Saved scenario %s\n", cli.RenderSigned(sc.Name, 1))
	}

	return runSummaryFor(rc)
}
