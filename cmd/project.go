package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/finance"
)

var (
	flagMode  string
	flagStart float64
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Year-by-year net worth projection",
	Long: "Project net worth over the horizon.\n\n" +
		"closed:        base * (1 + growth - inflation)^year, no contributions\n" +
		"contribution:  start, then each year grows at growth - inflation and adds 12 months of the base metric",
	RunE: runProject,
}

func init() {
	projectCmd.Flags().StringVar(&flagMode, "mode", "", "Projection mode: closed or contribution (default from config)")
	projectCmd.Flags().Float64Var(&flagStart, "start", 0, "Starting net worth for contribution mode")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("mode") {
		if rc.opts.Mode, err = finance.ParseMode(flagMode); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("start") {
		rc.opts.Start = flagStart
	}

	res, err := rc.analyze()
	if err != nil {
		return err
	}
	series := res.Projection
	cur := rc.currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROJECTION  %s · %s", cli.FormatYears(rc.opts.Horizon), rc.opts.Mode)))
	fmt.Println()

	rows := make([][]string, 0, len(series))
	for i, pt := range series {
		change := ""
		if i > 0 {
			change = cli.FormatDelta(pt.NetWorth, series[i-1].NetWorth, cur)
		}
		rows = append(rows, []string{fmt.Sprintf("Year %d", pt.Year), cli.FormatMoney(pt.NetWorth, cur), change})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Net Worth", "Change"},
		Rows:    rows,
	}))
	fmt.Printf("\n  %s  growth %s, inflation %s\n\n",
		cli.RenderSparkline(series.Values()),
		cli.FormatPercent(res.Profile.GrowthRate),
		cli.FormatPercent(res.Profile.InflationRate))
	return nil
}
