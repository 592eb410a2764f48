package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	currency := config.Currency(cfg)
	if cfg.General.Currency == "" {
		currency += " (from locale)"
	}
	fmt.Printf("    Currency:        %s\n", currency)
	fmt.Printf("    Variant:         %s\n", cfg.General.Variant)
	if cfg.General.HorizonYears > 0 {
		fmt.Printf("    Horizon:         %s\n", cli.FormatYears(cfg.General.HorizonYears))
	}
	fmt.Printf("    Scenario store:  %s\n", config.StorePath(cfg))
	fmt.Println()

	fmt.Println("  [Assumptions]")
	fmt.Printf("    Growth rate:     %s\n", cli.FormatPercent(cfg.Assumptions.GrowthRate))
	fmt.Printf("    Inflation rate:  %s\n", cli.FormatPercent(cfg.Assumptions.InflationRate))
	fmt.Printf("    Projection mode: %s\n", cfg.Assumptions.ProjectionMode)
	if cfg.Assumptions.StartingNetWorth != 0 {
		fmt.Printf("    Starting net worth: %s\n", cli.FormatMoney(cfg.Assumptions.StartingNetWorth, config.Currency(cfg)))
	}
	fmt.Println()

	fmt.Println("  [Twin]")
	fmt.Printf("    Fraction:        %s\n", cli.FormatPercent(cfg.Twin.Fraction))
	fmt.Printf("    Growth bonus:    %s\n", cli.FormatPercent(cfg.Twin.GrowthBonus))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Variants]")
	for _, name := range config.VariantNames(cfg) {
		v, _ := config.LookupVariant(cfg, name)
		cats := make([]string, 0, len(v.Layout.Expenses))
		for _, c := range v.Layout.Expenses {
			cats = append(cats, string(c))
		}
		fmt.Printf("    %-10s base %-11s %2dy  %s\n", v.Name, v.Layout.Base, v.HorizonYears, strings.Join(cats, ", "))
	}
	fmt.Println()

	fmt.Println("  Run `wealthtwin setup` to reconfigure.")
	return nil
}
