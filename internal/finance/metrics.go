// Package finance implements the pure calculator core: metrics, projections,
// twin reallocation and advice. Nothing in this package performs I/O.
package finance

import "github.com/theirongolddev/wealthtwin/internal/model"

// BaseMetric selects which monthly amount is annualized into NetWorthNow.
type BaseMetric string

const (
	BaseSavings     BaseMetric = "savings"
	BaseInvestments BaseMetric = "investments"
)

// Layout is a calculator configuration: which categories count as expenses
// and which base metric seeds the projection.
type Layout struct {
	Expenses []model.Category
	Base     BaseMetric
}

// Components returns the expense components for p, in layout order.
func (l Layout) Components(p model.FinancialProfile) []model.ExpenseComponent {
	out := make([]model.ExpenseComponent, 0, len(l.Expenses))
	for _, c := range l.Expenses {
		out = append(out, model.ExpenseComponent{
			Category: c,
			Label:    c.Label(),
			Amount:   p.Amount(c),
		})
	}
	return out
}

// TotalExpenses sums an explicit component list.
func TotalExpenses(components []model.ExpenseComponent) float64 {
	var total float64
	for _, c := range components {
		total += c.Amount
	}
	return total
}

// ComputeMetrics derives metrics for p under layout l.
func ComputeMetrics(p model.FinancialProfile, l Layout) model.DerivedMetrics {
	return MetricsFrom(p, l.Components(p), l.Base)
}

// MetricsFrom derives metrics from an explicit component list.
// It never fails: ratios are 0 when income is 0 and negative inputs propagate.
func MetricsFrom(p model.FinancialProfile, components []model.ExpenseComponent, base BaseMetric) model.DerivedMetrics {
	m := model.DerivedMetrics{
		TotalExpenses: TotalExpenses(components),
		Breakdown:     components,
	}
	m.NetSavings = p.Income - m.TotalExpenses

	switch base {
	case BaseInvestments:
		m.NetWorthNow = p.Investments * 12
	default:
		m.NetWorthNow = m.NetSavings * 12
	}

	m.DebtToIncomeRatio = ratio(p.EMI, p.Income)
	m.SavingsRate = ratio(m.NetSavings, p.Income)
	return m
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
