package finance

import (
	"errors"
	"fmt"
	"math"

	"github.com/theirongolddev/wealthtwin/internal/model"
)

// ErrInvalidHorizon is returned for negative projection horizons.
var ErrInvalidHorizon = errors.New("invalid horizon")

// Mode selects a projection formula. The two modes are not interchangeable.
type Mode string

const (
	// ModeClosedForm grows a base at (growth - inflation) with no contributions.
	ModeClosedForm Mode = "closed"
	// ModeContribution compounds a starting balance and adds a fixed yearly contribution.
	ModeContribution Mode = "contribution"
)

// ParseMode maps a config or flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeClosedForm, "":
		return ModeClosedForm, nil
	case ModeContribution:
		return ModeContribution, nil
	}
	return "", fmt.Errorf("unknown projection mode %q (want %q or %q)", s, ModeClosedForm, ModeContribution)
}

// Project evaluates base * (1 + growthRate - inflationRate)^year for year 0..horizonYears.
func Project(base, growthRate, inflationRate float64, horizonYears int) (model.ProjectionSeries, error) {
	if horizonYears < 0 {
		return nil, fmt.Errorf("%w: %d years", ErrInvalidHorizon, horizonYears)
	}

	factor := 1 + (growthRate - inflationRate)
	series := make(model.ProjectionSeries, horizonYears+1)
	for year := range series {
		series[year] = model.ProjectionPoint{
			Year:     year,
			NetWorth: base * math.Pow(factor, float64(year)),
		}
	}
	return series, nil
}

// ProjectWithContribution runs nw[i] = nw[i-1]*(1+annualGrowthRate) + annualContribution
// from nw[0] = start. Inflation is the caller's concern, folded into the rate.
func ProjectWithContribution(start, annualGrowthRate, annualContribution float64, horizonYears int) (model.ProjectionSeries, error) {
	if horizonYears < 0 {
		return nil, fmt.Errorf("%w: %d years", ErrInvalidHorizon, horizonYears)
	}

	series := make(model.ProjectionSeries, horizonYears+1)
	series[0] = model.ProjectionPoint{Year: 0, NetWorth: start}
	for year := 1; year <= horizonYears; year++ {
		prev := series[year-1].NetWorth
		series[year] = model.ProjectionPoint{
			Year:     year,
			NetWorth: prev*(1+annualGrowthRate) + annualContribution,
		}
	}
	return series, nil
}

// AnnualContribution converts a monthly saving into a yearly contribution.
func AnnualContribution(monthlySavings float64) float64 {
	return monthlySavings * 12
}

// Scenario is everything ProjectMode needs to run either formula.
type Scenario struct {
	Mode          Mode
	GrowthRate    float64
	InflationRate float64
	Horizon       int

	// closed-form base
	Base float64

	// contribution mode
	Start          float64
	MonthlySavings float64
}

// ProjectMode dispatches to the formula selected by s.Mode.
// Contribution mode compounds at the real rate (growth - inflation).
func ProjectMode(s Scenario) (model.ProjectionSeries, error) {
	switch s.Mode {
	case ModeContribution:
		return ProjectWithContribution(s.Start, s.GrowthRate-s.InflationRate,
			AnnualContribution(s.MonthlySavings), s.Horizon)
	case ModeClosedForm, "":
		return Project(s.Base, s.GrowthRate, s.InflationRate, s.Horizon)
	default:
		return nil, fmt.Errorf("unknown projection mode %q", s.Mode)
	}
}
