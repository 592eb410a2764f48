package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/wealthtwin/internal/finance"
	"github.com/theirongolddev/wealthtwin/internal/model"
	"github.com/theirongolddev/wealthtwin/internal/pipeline"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

var testLayout = finance.Layout{
	Expenses: []model.Category{model.CategoryRent, model.CategoryFood, model.CategoryFun},
	Base:     finance.BaseSavings,
}

func testResult(t *testing.T, p model.FinancialProfile) pipeline.Result {
	t.Helper()
	res, err := pipeline.Analyze(p, pipeline.DefaultOptions(testLayout, 3))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestExpensePie(t *testing.T) {
	m := finance.ComputeMetrics(model.FinancialProfile{Income: 5000, Rent: 2000, Food: 500}, testLayout)
	png, err := ExpensePie(m, "Expenses")
	if err != nil {
		t.Fatalf("ExpensePie: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatal("ExpensePie did not return a PNG")
	}

	empty := finance.ComputeMetrics(model.FinancialProfile{Income: 5000}, testLayout)
	if _, err := ExpensePie(empty, "Expenses"); !errors.Is(err, ErrNothingToPlot) {
		t.Fatalf("err = %v, want ErrNothingToPlot", err)
	}
}

func TestProjectionLines(t *testing.T) {
	actual := model.ProjectionSeries{{Year: 0, NetWorth: 100}, {Year: 1, NetWorth: 110}}
	twin := model.ProjectionSeries{{Year: 0, NetWorth: 100}, {Year: 1, NetWorth: 120}}

	png, err := ProjectionLines(actual, twin, "Net Worth")
	if err != nil {
		t.Fatalf("ProjectionLines: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatal("ProjectionLines did not return a PNG")
	}

	if _, err := ProjectionLines(nil, nil, "x"); !errors.Is(err, ErrNothingToPlot) {
		t.Fatalf("err = %v, want ErrNothingToPlot", err)
	}
}

func TestWriteCSV(t *testing.T) {
	actual := model.ProjectionSeries{{Year: 0, NetWorth: 1000}, {Year: 1, NetWorth: 1050.125}}
	twin := model.ProjectionSeries{{Year: 0, NetWorth: 1200}, {Year: 1, NetWorth: 1284}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, actual, twin); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][1] != SeriesYou || rows[0][2] != SeriesTwin {
		t.Errorf("header = %v", rows[0])
	}
	want := []string{"1", "1050.13", "1284.00", "233.87"}
	if strings.Join(rows[2], ",") != strings.Join(want, ",") {
		t.Errorf("row = %v, want %v", rows[2], want)
	}
}

func TestWriteBreakdownCSV(t *testing.T) {
	m := finance.ComputeMetrics(model.FinancialProfile{Income: 5000, Rent: 750, Food: 250}, testLayout)

	var buf bytes.Buffer
	if err := WriteBreakdownCSV(&buf, m); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}
	if rows[1][0] != "rent" || rows[1][2] != "750.00" || rows[1][3] != "0.7500" {
		t.Errorf("rent row = %v", rows[1])
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	res := testResult(t, model.FinancialProfile{Income: 5000, Rent: 2000, Food: 500, Fun: 200, GrowthRate: 0.08, InflationRate: 0.03})

	written, err := Export(res, ExportOptions{Dir: dir, Charts: true, CSV: true, Title: "Test", Currency: "USD"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(written) != 4 {
		t.Fatalf("written = %v, want 4 files", written)
	}
	for _, name := range []string{PieFile, ProjectionFile, ProjectionCSV, BreakdownCSV} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestExport_SkipsEmptyPie(t *testing.T) {
	dir := t.TempDir()
	res := testResult(t, model.FinancialProfile{Income: 5000, GrowthRate: 0.08})

	written, err := Export(res, ExportOptions{Dir: dir, Charts: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(written) != 1 || filepath.Base(written[0]) != ProjectionFile {
		t.Fatalf("written = %v, want only %s", written, ProjectionFile)
	}
}

func TestExport_WithoutTwin(t *testing.T) {
	dir := t.TempDir()
	opts := pipeline.DefaultOptions(testLayout, 3)
	opts.Fraction = 1.5
	res, err := pipeline.Analyze(model.FinancialProfile{Income: 5000, Rent: 2000, GrowthRate: 0.08}, opts)
	if err != nil || res.TwinErr == nil {
		t.Fatalf("Analyze: err %v, TwinErr %v; want only a twin error", err, res.TwinErr)
	}

	if _, err := Export(res, ExportOptions{Dir: dir, Charts: true, CSV: true}); err != nil {
		t.Fatalf("Export: %v", err)
	}
	f, err := os.Open(filepath.Join(dir, ProjectionCSV))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 || len(rows[0]) != 2 {
		t.Fatalf("rows = %v, want header + 4 years with year and you columns", rows)
	}
	// 36000 * 1.05^3
	if rows[4][1] != "41674.50" {
		t.Errorf("final row = %v, want 41674.50", rows[4])
	}
}
