// Package pipeline orchestrates profile loading, projection and advice.
package pipeline

import (
	"fmt"

	"github.com/theirongolddev/wealthtwin/internal/finance"
	"github.com/theirongolddev/wealthtwin/internal/model"
)

// Options configures a single analysis run.
type Options struct {
	Layout      finance.Layout
	Mode        finance.Mode
	Horizon     int
	Start       float64 // starting balance for contribution mode
	Fraction    float64 // twin reallocation fraction
	GrowthBonus float64 // twin growth bonus
	Rules       []finance.AdviceRule
}

// DefaultOptions returns the stock options for a layout and horizon.
func DefaultOptions(l finance.Layout, horizon int) Options {
	return Options{
		Layout:      l,
		Mode:        finance.ModeClosedForm,
		Horizon:     horizon,
		Fraction:    finance.DefaultTwinFraction,
		GrowthBonus: finance.DefaultTwinGrowthBonus,
		Rules:       finance.DefaultAdviceRules,
	}
}

// Result holds everything derived from one profile snapshot.
type Result struct {
	Profile    model.FinancialProfile
	Metrics    model.DerivedMetrics
	Projection model.ProjectionSeries
	Twin       finance.TwinComparison
	Advice     []model.Advice
	Options    Options

	// TwinErr is set when the twin comparison could not run, e.g. for a
	// reallocation fraction outside [0,1]. Twin is zero then; every other
	// field is still valid.
	TwinErr error
}

// Analyze computes metrics, the projection, advice and the twin comparison
// for p. The twin is derived from a copy; p is never modified. A failing
// twin only sets Result.TwinErr; errors that affect the primary projection
// are returned.
func Analyze(p model.FinancialProfile, opts Options) (Result, error) {
	if opts.Rules == nil {
		opts.Rules = finance.DefaultAdviceRules
	}

	m := finance.ComputeMetrics(p, opts.Layout)
	series, err := finance.ProjectMode(finance.Scenario{
		Mode:           opts.Mode,
		GrowthRate:     p.GrowthRate,
		InflationRate:  p.InflationRate,
		Horizon:        opts.Horizon,
		Base:           m.NetWorthNow,
		Start:          opts.Start,
		MonthlySavings: finance.MonthlyBase(p, m, opts.Layout.Base),
	})
	if err != nil {
		return Result{}, fmt.Errorf("analyzing profile: %w", err)
	}

	res := Result{
		Profile:    p,
		Metrics:    m,
		Projection: series,
		Advice:     finance.MatchAdvice(opts.Rules, p, m),
		Options:    opts,
	}

	res.Twin, err = finance.CompareTwin(p, opts.Layout, finance.TwinOptions{
		Fraction:    opts.Fraction,
		GrowthBonus: opts.GrowthBonus,
		Mode:        opts.Mode,
		Horizon:     opts.Horizon,
		Start:       opts.Start,
	})
	if err != nil {
		res.TwinErr = fmt.Errorf("twin comparison: %w", err)
	}
	return res, nil
}
