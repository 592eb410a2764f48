package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/wealthtwin/internal/model"
)

// WriteCSV writes one row per projection year: year, you, twin, gap.
// Amounts are fixed to two decimal places. An empty twin series writes the
// year and you columns only.
func WriteCSV(w io.Writer, actual, twin model.ProjectionSeries) error {
	cw := csv.NewWriter(w)
	withTwin := len(twin) > 0
	header := []string{"year", SeriesYou}
	if withTwin {
		header = append(header, SeriesTwin, "gap")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	n := max(len(actual), len(twin))
	you := pad(actual.Values(), n)
	ai := pad(twin.Values(), n)
	for i := 0; i < n; i++ {
		y := decimal.NewFromFloat(you[i]).Round(2)
		t := decimal.NewFromFloat(ai[i]).Round(2)
		row := []string{strconv.Itoa(i), y.StringFixed(2)}
		if withTwin {
			row = append(row, t.StringFixed(2), t.Sub(y).StringFixed(2))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteBreakdownCSV writes the expense breakdown: category, label, amount, share.
func WriteBreakdownCSV(w io.Writer, m model.DerivedMetrics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "label", "amount", "share"}); err != nil {
		return err
	}

	total := decimal.NewFromFloat(m.TotalExpenses)
	for _, c := range m.Breakdown {
		amount := decimal.NewFromFloat(c.Amount)
		share := decimal.Zero
		if !total.IsZero() {
			share = amount.Div(total)
		}
		row := []string{string(c.Category), c.Label, amount.StringFixed(2), share.StringFixed(4)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
