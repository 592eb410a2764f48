package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Budget summary with projection and twin at a glance",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}
	return runSummaryFor(rc)
}

// runSummaryFor prints the summary for an already prepared context.
func runSummaryFor(rc *runContext) error {
	res, err := rc.analyze()
	if err != nil {
		return err
	}
	printSummary(rc, res)
	return nil
}

func printSummary(rc *runContext, res pipeline.Result) {
	p := res.Profile
	m := res.Metrics
	cur := rc.currency

	if p.Income == 0 && m.TotalExpenses == 0 {
		fmt.Println("\n  No profile data. Pass --profile FILE, --scenario NAME or amount flags,")
		fmt.Println("  or run `wealthtwin input` to enter your budget.")
		return
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WEALTHTWIN  %s · %s", rc.profileLabel(), rc.variant.Name)))
	fmt.Println()

	final := res.Projection.Final()
	rows := [][]string{
		{"Monthly Income", cli.FormatMoney(p.Income, cur)},
		{"Total Expenses", cli.FormatMoney(m.TotalExpenses, cur)},
		{"Net Savings", cli.RenderSigned(cli.FormatMoney(m.NetSavings, cur), m.NetSavings)},
		{"---"},
		{"Savings Rate", cli.FormatPercent(m.SavingsRate)},
		{"Debt to Income", cli.FormatRatio(m.DebtToIncomeRatio)},
		{"Net Worth Now", cli.FormatMoney(m.NetWorthNow, cur)},
		{"---"},
		{"Growth / Inflation", cli.FormatPercent(p.GrowthRate) + " / " + cli.FormatPercent(p.InflationRate)},
		{"Net Worth in " + cli.FormatYears(final.Year), cli.FormatMoney(final.NetWorth, cur)},
	}
	if res.TwinErr != nil {
		log.WithError(res.TwinErr).Warn("twin comparison skipped")
		rows = append(rows, []string{"Twin", "unavailable (check [twin] in config)"})
	} else {
		twinFinal := res.Twin.TwinSeries.Final().NetWorth
		rows = append(rows,
			[]string{"Twin in " + cli.FormatYears(final.Year), cli.FormatMoney(twinFinal, cur)},
			[]string{"Twin Lead", cli.FormatDelta(twinFinal, final.NetWorth, cur)},
		)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Printf("\n  %s\n", cli.RenderSparkline(res.Projection.Values()))

	if n := len(res.Advice); n > 0 {
		fmt.Printf("\n  %d advice item(s). Run `wealthtwin advice` for details.\n", n)
	}
	fmt.Println()
}
