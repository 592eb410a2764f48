// Package source reads financial profiles from YAML and TOML files.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/wealthtwin/internal/model"
)

var (
	// ErrUnsupportedFormat is returned for files that are not YAML or TOML.
	ErrUnsupportedFormat = errors.New("unsupported profile format")
	// ErrInvalidRate is returned when a rate is neither a number nor a percent string.
	ErrInvalidRate = errors.New("invalid rate")
	// ErrNegativeAmount is returned when a monthly amount is below zero.
	ErrNegativeAmount = errors.New("negative amount")
)

// FormatOf returns "yaml" or "toml" for a path, or "" if unsupported.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return ""
}

// ParseFile reads and decodes a profile file. Unknown keys are rejected.
func ParseFile(path string) (ProfileFile, error) {
	format := FormatOf(path)
	if format == "" {
		return ProfileFile{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-chosen profile path
	if err != nil {
		return ProfileFile{}, fmt.Errorf("reading profile: %w", err)
	}

	pf, err := Parse(data, format)
	if err != nil {
		return ProfileFile{}, fmt.Errorf("%s: %w", path, err)
	}
	pf.Path = path
	if pf.Name == "" {
		pf.Name = stem(path)
	}
	return pf, nil
}

// Parse decodes profile bytes in the given format ("yaml" or "toml").
func Parse(data []byte, format string) (ProfileFile, error) {
	var raw RawProfile

	switch format {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return ProfileFile{}, fmt.Errorf("parsing yaml: %w", err)
		}
	case "toml":
		md, err := toml.Decode(string(data), &raw)
		if err != nil {
			return ProfileFile{}, fmt.Errorf("parsing toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return ProfileFile{}, fmt.Errorf("parsing toml: unknown key %q", undecoded[0].String())
		}
	default:
		return ProfileFile{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return raw.toProfileFile()
}

func (r RawProfile) toProfileFile() (ProfileFile, error) {
	growth, growthSet, err := parseRate(r.GrowthRate)
	if err != nil {
		return ProfileFile{}, fmt.Errorf("growth_rate: %w", err)
	}
	inflation, inflationSet, err := parseRate(r.InflationRate)
	if err != nil {
		return ProfileFile{}, fmt.Errorf("inflation_rate: %w", err)
	}

	pf := ProfileFile{
		Name:     strings.TrimSpace(r.Name),
		Currency: strings.ToUpper(strings.TrimSpace(r.Currency)),
		Profile: model.FinancialProfile{
			Income:        r.Income,
			Rent:          r.Rent,
			EMI:           r.EMI,
			Food:          r.Food,
			Entertainment: r.Entertainment,
			Fun:           r.Fun,
			ExtraExpenses: r.ExtraExpenses,
			EmergencyFund: r.EmergencyFund,
			CustomExpense: r.CustomExpense,
			Investments:   r.Investments,
			Crypto:        r.Crypto,
			SavingsGoal:   r.SavingsGoal,
			LifeEventCost: r.LifeEventCost,
			GrowthRate:    growth,
			InflationRate: inflation,
		},
		GrowthSet:    growthSet,
		InflationSet: inflationSet,
	}
	if pf.Profile.Income < 0 || pf.Profile.SavingsGoal < 0 {
		return ProfileFile{}, fmt.Errorf("income or savings_goal: %w", ErrNegativeAmount)
	}
	for _, c := range model.Categories {
		if pf.Profile.Amount(c) < 0 {
			return ProfileFile{}, fmt.Errorf("%s: %w", c, ErrNegativeAmount)
		}
	}
	return pf, nil
}

// ParseRate parses "8%", "8.5 %" or "0.08" into a fraction. A bare number
// outside [-1,1] fails with ErrInvalidRate.
func ParseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	if pct {
		return v / 100, nil
	}
	return checkFraction(v)
}

// checkFraction rejects bare numbers outside [-1,1]: growth_rate: 8 almost
// always means 8%, not 800%.
func checkFraction(v float64) (float64, error) {
	if v > 1 || v < -1 {
		return 0, fmt.Errorf("%w: %v is not a fraction, write \"%v%%\" or %v", ErrInvalidRate, v, v, v/100)
	}
	return v, nil
}

func parseRate(v any) (float64, bool, error) {
	switch x := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		f, err := checkFraction(x)
		return f, err == nil, err
	case int:
		f, err := checkFraction(float64(x))
		return f, err == nil, err
	case int64:
		f, err := checkFraction(float64(x))
		return f, err == nil, err
	case string:
		f, err := ParseRate(x)
		if err != nil {
			return 0, false, err
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %v", ErrInvalidRate, v)
	}
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
