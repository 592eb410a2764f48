package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/wealthtwin/internal/pipeline"
)

// Export file names.
const (
	PieFile        = "expenses.png"
	ProjectionFile = "projection.png"
	ProjectionCSV  = "projection.csv"
	BreakdownCSV   = "breakdown.csv"
)

// ExportOptions controls which artifacts Export writes.
type ExportOptions struct {
	Dir      string
	Charts   bool
	CSV      bool
	Title    string // chart title prefix, e.g. the scenario name
	Currency string
}

// Export writes the requested charts and tables for res into opts.Dir and
// returns the paths written. An all-zero breakdown skips the pie chart
// rather than failing.
func Export(res pipeline.Result, opts ExportOptions) ([]string, error) {
	if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	var written []string
	write := func(name string, data []byte) error {
		path := filepath.Join(opts.Dir, name)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		written = append(written, path)
		return nil
	}

	if opts.Charts {
		pie, err := ExpensePie(res.Metrics, titled(opts.Title, "Monthly Expenses"))
		switch {
		case errors.Is(err, ErrNothingToPlot):
			// all-zero breakdown
		case err != nil:
			return written, err
		default:
			if err := write(PieFile, pie); err != nil {
				return written, err
			}
		}

		title := titled(opts.Title, fmt.Sprintf("Net Worth over %d years", res.Options.Horizon))
		if opts.Currency != "" {
			title += " (" + opts.Currency + ")"
		}
		lines, err := ProjectionLines(res.Projection, res.Twin.TwinSeries, title)
		if err != nil {
			return written, err
		}
		if err := write(ProjectionFile, lines); err != nil {
			return written, err
		}
	}

	if opts.CSV {
		var buf bytes.Buffer
		if err := WriteCSV(&buf, res.Projection, res.Twin.TwinSeries); err != nil {
			return written, err
		}
		if err := write(ProjectionCSV, buf.Bytes()); err != nil {
			return written, err
		}

		buf.Reset()
		if err := WriteBreakdownCSV(&buf, res.Metrics); err != nil {
			return written, err
		}
		if err := write(BreakdownCSV, buf.Bytes()); err != nil {
			return written, err
		}
	}

	return written, nil
}

func titled(prefix, title string) string {
	if prefix == "" {
		return title
	}
	return prefix + ": " + title
}
