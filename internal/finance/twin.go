package finance

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/wealthtwin/internal/model"
)

// ErrInvalidFraction is returned when a reallocation fraction is outside [0,1].
var ErrInvalidFraction = errors.New("invalid fraction")

const (
	// DefaultTwinFraction is the share of entertainment and fun the twin invests instead.
	DefaultTwinFraction = 0.5
	// DefaultTwinGrowthBonus is added to the twin's growth rate (2 percentage points).
	DefaultTwinGrowthBonus = 0.02
)

// Reallocate moves fraction of Entertainment and Fun into Investments.
// p is a value, so the caller's profile is never touched.
func Reallocate(p model.FinancialProfile, fraction float64) (model.FinancialProfile, error) {
	if !(fraction >= 0 && fraction <= 1) {
		return model.FinancialProfile{}, fmt.Errorf("%w: %v not in [0,1]", ErrInvalidFraction, fraction)
	}

	moved := fraction * (p.Entertainment + p.Fun)
	p.Investments += moved
	p.Entertainment *= 1 - fraction
	p.Fun *= 1 - fraction
	return p, nil
}

// TwinOptions configures a you-vs-twin comparison.
type TwinOptions struct {
	Fraction    float64
	GrowthBonus float64
	Mode        Mode
	Horizon     int
	Start       float64 // starting balance for ModeContribution
}

// DefaultTwinOptions returns the stock 50% / +2pp comparison over horizon years.
func DefaultTwinOptions(horizon int) TwinOptions {
	return TwinOptions{
		Fraction:    DefaultTwinFraction,
		GrowthBonus: DefaultTwinGrowthBonus,
		Mode:        ModeClosedForm,
		Horizon:     horizon,
	}
}

// TwinComparison holds both sides of a twin run.
type TwinComparison struct {
	Actual        model.FinancialProfile
	Twin          model.FinancialProfile
	ActualMetrics model.DerivedMetrics
	TwinMetrics   model.DerivedMetrics
	ActualSeries  model.ProjectionSeries
	TwinSeries    model.ProjectionSeries
	TwinGrowth    float64
}

// Gap is the twin's final-year lead over the actual projection.
func (c TwinComparison) Gap() float64 {
	return c.TwinSeries.Final().NetWorth - c.ActualSeries.Final().NetWorth
}

// CompareTwin projects p and its reallocated twin from the same snapshot.
func CompareTwin(p model.FinancialProfile, l Layout, opts TwinOptions) (TwinComparison, error) {
	twin, err := Reallocate(p, opts.Fraction)
	if err != nil {
		return TwinComparison{}, err
	}

	cmp := TwinComparison{
		Actual:        p,
		Twin:          twin,
		ActualMetrics: ComputeMetrics(p, l),
		TwinMetrics:   ComputeMetrics(twin, l),
		TwinGrowth:    p.GrowthRate + opts.GrowthBonus,
	}

	cmp.ActualSeries, err = ProjectMode(scenarioFor(p, cmp.ActualMetrics, l.Base, p.GrowthRate, opts))
	if err != nil {
		return TwinComparison{}, err
	}
	cmp.TwinSeries, err = ProjectMode(scenarioFor(twin, cmp.TwinMetrics, l.Base, cmp.TwinGrowth, opts))
	if err != nil {
		return TwinComparison{}, err
	}
	return cmp, nil
}

// MonthlyBase is the monthly amount the base metric annualizes.
func MonthlyBase(p model.FinancialProfile, m model.DerivedMetrics, base BaseMetric) float64 {
	if base == BaseInvestments {
		return p.Investments
	}
	return m.NetSavings
}

func scenarioFor(p model.FinancialProfile, m model.DerivedMetrics, base BaseMetric, growth float64, opts TwinOptions) Scenario {
	return Scenario{
		Mode:           opts.Mode,
		GrowthRate:     growth,
		InflationRate:  p.InflationRate,
		Horizon:        opts.Horizon,
		Base:           m.NetWorthNow,
		Start:          opts.Start,
		MonthlySavings: MonthlyBase(p, m, base),
	}
}
