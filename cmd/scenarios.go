package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/config"
	"github.com/theirongolddev/wealthtwin/internal/model"
	"github.com/theirongolddev/wealthtwin/internal/pipeline"
	"github.com/theirongolddev/wealthtwin/internal/store"
)

var scenariosCmd = &cobra.Command{
	Use:     "scenarios",
	Aliases: []string{"scenario"},
	Short:   "Manage saved scenarios",
}

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	Args:  cobra.NoArgs,
	RunE:  runScenariosList,
}

var scenariosShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosShow,
}

var scenariosSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the current profile (file, scenario and flags) under NAME",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosSave,
}

var scenariosDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosDelete,
}

var scenariosImportCmd = &cobra.Command{
	Use:   "import DIR",
	Short: "Import every profile file in DIR as a scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosImport,
}

var scenariosCompareCmd = &cobra.Command{
	Use:   "compare [NAME...]",
	Short: "Compare saved scenarios side by side (all when no names are given)",
	RunE:  runScenariosCompare,
}

func init() {
	scenariosCmd.AddCommand(
		scenariosListCmd,
		scenariosShowCmd,
		scenariosSaveCmd,
		scenariosDeleteCmd,
		scenariosImportCmd,
		scenariosCompareCmd,
	)
	rootCmd.AddCommand(scenariosCmd)
}

func openStore(cfg config.Config) (*store.Store, error) {
	path := config.StorePath(cfg)
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario store: %w", err)
	}
	log.WithField("path", path).Debug("scenario store opened")
	return st, nil
}

func runScenariosList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	list, err := st.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("\n  No saved scenarios. Save one with `wealthtwin scenarios save NAME`.")
		return nil
	}

	cur := config.Currency(cfg)
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{s.Name, cli.FormatMoney(s.Income, cur), s.UpdatedAt.Local().Format("2006-01-02 15:04"), s.ID[:8]})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%d scenario(s)", len(list)),
		Headers: []string{"Name", "Income", "Updated", "ID"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runScenariosShow(cmd *cobra.Command, args []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(rc.cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	sc, err := st.Load(args[0])
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no scenario named %q", args[0])
	}
	if err != nil {
		return err
	}
	if sc.Currency != "" && flagCurrency == "" {
		rc.currency = sc.Currency
	}

	rows := [][]string{{"Income", cli.FormatMoney(sc.Profile.Income, rc.currency)}}
	for _, c := range model.Categories {
		if v := sc.Profile.Amount(c); v != 0 {
			rows = append(rows, []string{c.Label(), cli.FormatMoney(v, rc.currency)})
		}
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Savings Goal", cli.FormatMoney(sc.Profile.SavingsGoal, rc.currency)},
		[]string{"Growth Rate", cli.FormatPercent(sc.Profile.GrowthRate)},
		[]string{"Inflation Rate", cli.FormatPercent(sc.Profile.InflationRate)},
	)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s  (created %s)", sc.Name, sc.CreatedAt.Local().Format("2006-01-02")),
		Headers: []string{"Field", "Monthly"},
		Rows:    rows,
	}))

	rc.resolved = pipeline.Resolved{Profile: sc.Profile, Origin: pipeline.OriginScenario, Name: sc.Name, Currency: sc.Currency}
	return runSummaryFor(rc)
}

func runScenariosSave(cmd *cobra.Command, args []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(rc.cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	sc, err := st.Save(args[0], rc.resolved.Profile, rc.currency)
	if err != nil {
		return fmt.Errorf("saving scenario: %w", err)
	}
	fmt.Printf("  Saved %s (%s)\n", sc.Name, sc.ID)
	return nil
}

func runScenariosDelete(_ *cobra.Command, args []string) error {
	st, err := openStore(loadConfig())
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.Delete(args[0]); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no scenario named %q", args[0])
		}
		return err
	}
	fmt.Printf("  Deleted %s\n", args[0])
	return nil
}

func runScenariosImport(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	dir := args[0]

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		fmt.Fprintf(os.Stderr, "\r  Parsing [%d/%d]", current, total)
	}

	result, err := pipeline.LoadDir(dir, progressFn)
	if err != nil {
		return err
	}
	if result.TotalFiles == 0 {
		fmt.Printf("  No .yaml, .yml or .toml files in %s\n", dir)
		return nil
	}
	if !flagQuiet {
		fmt.Fprintln(os.Stderr)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	saved := 0
	for _, pf := range result.Profiles {
		p := pf.Profile
		if !pf.GrowthSet {
			p.GrowthRate = cfg.Assumptions.GrowthRate
		}
		if !pf.InflationSet {
			p.InflationRate = cfg.Assumptions.InflationRate
		}
		currency := pf.Currency
		if currency == "" {
			currency = config.Currency(cfg)
		}
		if _, err := st.Save(pf.Name, p, currency); err != nil {
			log.WithError(err).WithField("file", pf.Path).Warn("import failed")
			result.Failures = append(result.Failures, pipeline.FileFailure{Path: pf.Path, Err: err})
			continue
		}
		saved++
	}

	fmt.Printf("  Imported %d of %d profile file(s) from %s\n", saved, result.TotalFiles, dir)
	for _, f := range result.Failures {
		fmt.Fprintf(os.Stderr, "  %s: %v\n", filepath.Base(f.Path), f.Err)
	}
	return nil
}

func runScenariosCompare(cmd *cobra.Command, args []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(rc.cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	names := args
	if len(names) == 0 {
		list, err := st.List()
		if err != nil {
			return err
		}
		for _, s := range list {
			names = append(names, s.Name)
		}
	}
	if len(names) == 0 {
		fmt.Println("\n  No saved scenarios to compare.")
		return nil
	}

	profiles := make([]pipeline.NamedProfile, 0, len(names))
	for _, n := range names {
		sc, err := st.Load(n)
		if err != nil {
			return fmt.Errorf("loading %q: %w", n, err)
		}
		profiles = append(profiles, pipeline.NamedProfile{Name: sc.Name, Profile: sc.Profile})
	}

	cur := rc.currency
	rows := make([][]string, 0, len(profiles))
	for _, s := range pipeline.Summarize(profiles, rc.opts) {
		if s.Err != nil {
			rows = append(rows, []string{s.Name, "error: " + s.Err.Error(), "", "", "", ""})
			continue
		}
		twin := cli.FormatMoney(s.TwinNetWorth, cur)
		if s.TwinErr != nil {
			twin = "n/a"
		}
		rows = append(rows, []string{
			s.Name,
			cli.RenderSigned(cli.FormatMoney(s.Metrics.NetSavings, cur), s.Metrics.NetSavings),
			cli.FormatPercent(s.Metrics.SavingsRate),
			cli.FormatMoney(s.FinalNetWorth, cur),
			twin,
			fmt.Sprintf("%d", s.AdviceCount),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Scenarios over %s (%s)", cli.FormatYears(rc.opts.Horizon), rc.variant.Name),
		Headers: []string{"Scenario", "Net Savings", "Rate", "Net Worth", "Twin", "Advice"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
