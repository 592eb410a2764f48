package cli

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{1234.56, "$1,234.56"},
		{0, "$0.00"},
		{0.005, "$0.01"},
		{1_000_000, "$1,000,000.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.v, "usd"); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatMoneyCurrencyFractions(t *testing.T) {
	tests := []struct {
		v        float64
		currency string
		want     string
	}{
		{1234, "JPY", "¥1,234"},
		{1234.4, "jpy", "¥1,234"},
		{1234.5, "KWD", "1,234.500 .د.ك"},
		{1234, "XYZ", "$1,234.00"},
		{1234, "", "$1,234.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.v, tt.currency); got != tt.want {
			t.Errorf("FormatMoney(%v, %q) = %q, want %q", tt.v, tt.currency, got, tt.want)
		}
	}
}

func TestKnownCurrency(t *testing.T) {
	for _, code := range []string{"USD", "inr", " JPY ", "KWD"} {
		if !KnownCurrency(code) {
			t.Errorf("KnownCurrency(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"", "XYZ", "dollars"} {
		if KnownCurrency(code) {
			t.Errorf("KnownCurrency(%q) = true, want false", code)
		}
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		v        float64
		fraction int
		want     int64
	}{
		{19.99, 2, 1999},
		{2.675, 2, 268},
		{-5.5, 2, -550},
		{1234.4, 0, 1234},
		{1234.5, 3, 1234500},
	}
	for _, tt := range tests {
		if got := MinorUnits(tt.v, tt.fraction); got != tt.want {
			t.Errorf("MinorUnits(%v, %d) = %d, want %d", tt.v, tt.fraction, got, tt.want)
		}
	}
	if MinorUnits(math.NaN(), 2) != 0 || MinorUnits(math.Inf(1), 2) != 0 {
		t.Error("MinorUnits should map non-finite input to 0")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-98765:  "-98,765",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercentAndRatio(t *testing.T) {
	if got := FormatPercent(0.425); got != "42.5%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatRatio(0.4); got != "0.40" {
		t.Errorf("FormatRatio = %q", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(150, 100, "USD"); got != "+$50.00" {
		t.Errorf("FormatDelta up = %q", got)
	}
	if got := FormatDelta(100, 150, "USD"); got != "-$50.00" {
		t.Errorf("FormatDelta down = %q", got)
	}
}

func TestFormatMoneyShort(t *testing.T) {
	tests := map[float64]string{
		2_500_000: "$2.5M",
		12_000:    "$12.0K",
		-12_000:   "-$12.0K",
	}
	for in, want := range tests {
		if got := FormatMoneyShort(in, "USD"); got != want {
			t.Errorf("FormatMoneyShort(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderSparkline(t *testing.T) {
	got := RenderSparkline([]float64{1, 2, 3, 4})
	if utf8.RuneCountInString(got) != 4 {
		t.Fatalf("sparkline %q has %d runes, want 4", got, utf8.RuneCountInString(got))
	}
	runes := []rune(got)
	if runes[0] != '▁' || runes[3] != '█' {
		t.Errorf("sparkline = %q, want min-to-max scaling", got)
	}
	if RenderSparkline(nil) != "" {
		t.Error("empty sparkline should be empty")
	}
}

func TestRenderTableAlignsMultiByteSymbols(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Rent", "₹20,000.00"},
			{"---"},
			{"Food", "$800.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d: %q", i, w, want, line)
		}
	}
}
