package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/model"
)

var (
	flagFraction float64
	flagBonus    float64 // percent
)

var twinCmd = &cobra.Command{
	Use:   "twin",
	Short: "Compare your projection with a twin who invests part of the fun money",
	RunE:  runTwin,
}

func init() {
	twinCmd.Flags().Float64Var(&flagFraction, "fraction", 0, "Share of entertainment and fun the twin invests, 0 to 1 (default from config)")
	twinCmd.Flags().Float64Var(&flagBonus, "bonus", 0, "Extra yearly growth for the twin in percent (default from config)")
	rootCmd.AddCommand(twinCmd)
}

func runTwin(cmd *cobra.Command, _ []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fraction") {
		rc.opts.Fraction = flagFraction
	}
	if cmd.Flags().Changed("bonus") {
		rc.opts.GrowthBonus = flagBonus / 100
	}

	res, err := rc.analyze()
	if err != nil {
		return err
	}
	if res.TwinErr != nil {
		return res.TwinErr
	}
	cmp := res.Twin
	cur := rc.currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("YOU vs TWIN  %s", cli.FormatYears(rc.opts.Horizon))))
	fmt.Println()

	var changes [][]string
	for _, c := range []model.Category{model.CategoryEntertainment, model.CategoryFun, model.CategoryInvestments} {
		you, twin := cmp.Actual.Amount(c), cmp.Twin.Amount(c)
		changes = append(changes, []string{c.Label(), cli.FormatMoney(you, cur), cli.FormatMoney(twin, cur), cli.FormatDelta(twin, you, cur)})
	}
	changes = append(changes, []string{"---"},
		[]string{"Growth Rate", cli.FormatPercent(cmp.Actual.GrowthRate), cli.FormatPercent(cmp.TwinGrowth), ""},
		[]string{"Net Worth Now", cli.FormatMoney(cmp.ActualMetrics.NetWorthNow, cur), cli.FormatMoney(cmp.TwinMetrics.NetWorthNow, cur), ""},
	)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Twin reallocates %s of entertainment and fun", cli.FormatPercent(rc.opts.Fraction)),
		Headers: []string{"", "You", "Twin", "Change"},
		Rows:    changes,
	}))
	fmt.Println()

	rows := make([][]string, 0, len(cmp.ActualSeries))
	for i, pt := range cmp.ActualSeries {
		twin := cmp.TwinSeries[i].NetWorth
		rows = append(rows, []string{
			fmt.Sprintf("Year %d", pt.Year),
			cli.FormatMoney(pt.NetWorth, cur),
			cli.FormatMoney(twin, cur),
			cli.RenderSigned(cli.FormatDelta(twin, pt.NetWorth, cur), twin-pt.NetWorth),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "You", "Twin", "Gap"},
		Rows:    rows,
	}))

	fmt.Printf("\n  After %s your twin is %s ahead.\n\n",
		cli.FormatYears(rc.opts.Horizon), cli.FormatMoney(cmp.Gap(), cur))
	return nil
}
