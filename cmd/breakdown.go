package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/cli"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Expense breakdown by category",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}
	res, err := rc.analyze()
	if err != nil {
		return err
	}
	m := res.Metrics

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSES  " + rc.variant.Name))
	fmt.Println()

	maxAmt := 0.0
	for _, c := range m.Breakdown {
		maxAmt = max(maxAmt, c.Amount)
	}

	rows := make([][]string, 0, len(m.Breakdown)+2)
	for _, c := range m.Breakdown {
		share := 0.0
		if m.TotalExpenses > 0 {
			share = c.Amount / m.TotalExpenses
		}
		rows = append(rows, []string{c.Label, cli.FormatMoney(c.Amount, rc.currency), cli.FormatPercent(share)})
	}
	rows = append(rows, []string{"---"}, []string{"Total", cli.FormatMoney(m.TotalExpenses, rc.currency), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Monthly", "Share"},
		Rows:    rows,
	}))
	fmt.Println()

	for _, c := range m.Breakdown {
		fmt.Println(cli.RenderHorizontalBar(c.Label, c.Amount, maxAmt, 40))
	}

	fmt.Println()
	fmt.Printf("  Savings rate  %s\n", cli.RenderRatioBar(m.SavingsRate, 30))
	if res.Profile.Income > 0 {
		fmt.Printf("  Spent         %s\n", cli.RenderRatioBar(m.TotalExpenses/res.Profile.Income, 30))
	}
	fmt.Println()
	return nil
}
