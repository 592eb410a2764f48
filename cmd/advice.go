package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/finance"
	"github.com/theirongolddev/wealthtwin/internal/model"
)

var flagPlain bool

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Rule-based advice for the current budget",
	RunE:  runAdvice,
}

func init() {
	adviceCmd.Flags().BoolVar(&flagPlain, "plain", false, "One message per line, no styling (for scripts)")
	rootCmd.AddCommand(adviceCmd)
}

func runAdvice(cmd *cobra.Command, _ []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}
	res, err := rc.analyze()
	if err != nil {
		return err
	}
	if flagPlain {
		return writePlainAdvice(os.Stdout, res.Profile, res.Metrics)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ADVICE"))
	fmt.Println()

	if len(res.Advice) == 0 {
		fmt.Println("  Nothing to flag. Your budget passes every check.")
		fmt.Println()
		return nil
	}
	for _, a := range res.Advice {
		fmt.Printf("  %s %s\n", cli.RenderSeverity(a.Severity.String()), a.Message)
	}
	fmt.Println()
	return nil
}

// writePlainAdvice prints each firing default rule's message on its own line.
// Nothing is printed when no rule fires.
func writePlainAdvice(w io.Writer, p model.FinancialProfile, m model.DerivedMetrics) error {
	for _, msg := range finance.EvaluateAdvice(p, m) {
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return err
		}
	}
	return nil
}
