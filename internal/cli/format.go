// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MinorUnits converts a major-unit amount to rounded minor units, shifting
// by the currency's fraction digits (2 for cents, 0 for yen, 3 for fils).
func MinorUnits(v float64, fraction int) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Shift(int32(fraction)).Round(0).IntPart()
}

// KnownCurrency reports whether code is an ISO currency go-money can format.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}

// lookupCurrency resolves code, falling back to USD for empty or unknown codes.
func lookupCurrency(code string) *money.Currency {
	if c := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))); c != nil {
		return c
	}
	return money.GetCurrency(money.USD)
}

// FormatMoney formats an amount in the given ISO currency.
// e.g., (1234.56, "USD") -> "$1,234.56", (1234, "JPY") -> "¥1,234"
func FormatMoney(v float64, currency string) string {
	c := lookupCurrency(currency)
	return money.New(MinorUnits(v, c.Fraction), c.Code).Display()
}

// FormatMoneyShort formats large amounts with K/M/B suffixes, for chart axes and cards.
func FormatMoneyShort(v float64, currency string) string {
	abs := math.Abs(v)
	if abs < 10_000 {
		return FormatMoney(math.Round(v), currency)
	}

	grapheme := currencySymbol(currency)
	sign := ""
	if v < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%s%s%.1fB", sign, grapheme, abs/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%s%s%.1fM", sign, grapheme, abs/1_000_000)
	default:
		return fmt.Sprintf("%s%s%.1fK", sign, grapheme, abs/1_000)
	}
}

func currencySymbol(code string) string {
	return lookupCurrency(code).Grapheme
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRatio formats a ratio as "0.42".
func FormatRatio(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(2)
}

// FormatDelta formats the signed difference between two amounts.
func FormatDelta(current, previous float64, currency string) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta, currency)
	}
	return "-" + FormatMoney(-delta, currency)
}

// FormatYears formats a horizon, e.g. 1 -> "1 year", 10 -> "10 years".
func FormatYears(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}
