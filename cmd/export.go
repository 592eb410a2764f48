package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/pipeline"
	"github.com/theirongolddev/wealthtwin/internal/report"
)

var (
	flagOutDir   string
	flagCSV      bool
	flagNoCharts bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write expense and projection charts (PNG) and CSV tables",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutDir, "out", "o", ".", "Output directory")
	exportCmd.Flags().BoolVar(&flagCSV, "csv", false, "Also write projection.csv and breakdown.csv")
	exportCmd.Flags().BoolVar(&flagNoCharts, "no-charts", false, "Skip the PNG charts")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	rc, err := prepare(cmd)
	if err != nil {
		return err
	}
	res, err := rc.analyze()
	if err != nil {
		return err
	}
	if flagNoCharts && !flagCSV {
		return fmt.Errorf("nothing to export: --no-charts without --csv")
	}

	title := ""
	if rc.resolved.Origin != pipeline.OriginEmpty {
		title = rc.profileLabel()
	}

	paths, err := report.Export(res, report.ExportOptions{
		Dir:      flagOutDir,
		Charts:   !flagNoCharts,
		CSV:      flagCSV,
		Title:    title,
		Currency: rc.currency,
	})
	for _, p := range paths {
		log.WithField("path", p).Info("exported")
		fmt.Printf("  wrote %s\n", p)
	}
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	return nil
}
