package config

import (
	"os"
	"strings"
)

// SupportedCurrencies are the currencies offered in forms, in menu order.
var SupportedCurrencies = []string{"INR", "USD", "EUR", "GBP"}

var euroRegions = map[string]struct{}{
	"AT": {}, "BE": {}, "DE": {}, "EE": {}, "ES": {}, "FI": {}, "FR": {}, "GR": {},
	"HR": {}, "IE": {}, "IT": {}, "LT": {}, "LU": {}, "LV": {}, "MT": {}, "NL": {},
	"PT": {}, "SI": {}, "SK": {}, "CY": {},
}

// DetectCurrency guesses a currency from LC_ALL, LC_MONETARY or LANG.
func DetectCurrency() string {
	for _, key := range []string{"LC_ALL", "LC_MONETARY", "LANG"} {
		if v := os.Getenv(key); v != "" && v != "C" && v != "POSIX" {
			return CurrencyForLocale(v)
		}
	}
	return "USD"
}

// CurrencyForLocale maps a POSIX locale such as "en_IN.UTF-8" to a currency code.
func CurrencyForLocale(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	parts := strings.Split(locale, "_")
	if len(parts) < 2 {
		return "USD"
	}
	region := strings.ToUpper(parts[1])

	switch region {
	case "IN":
		return "INR"
	case "GB":
		return "GBP"
	}
	if _, ok := euroRegions[region]; ok {
		return "EUR"
	}
	return "USD"
}
