package model

// DerivedMetrics holds values computed from a FinancialProfile.
type DerivedMetrics struct {
	TotalExpenses     float64
	NetSavings        float64
	NetWorthNow       float64 // annualized base for projections
	DebtToIncomeRatio float64 // 0 when income is 0
	SavingsRate       float64 // 0 when income is 0

	Breakdown []ExpenseComponent
}

// ProjectionPoint is the projected net worth at the end of one year.
type ProjectionPoint struct {
	Year     int
	NetWorth float64
}

// ProjectionSeries is an ordered year 0..N projection.
type ProjectionSeries []ProjectionPoint

// Values returns the net worth column of the series.
func (s ProjectionSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.NetWorth
	}
	return out
}

// Final returns the last point, or a zero point for an empty series.
func (s ProjectionSeries) Final() ProjectionPoint {
	if len(s) == 0 {
		return ProjectionPoint{}
	}
	return s[len(s)-1]
}

// Severity grades an advice message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Advice is one fired advice rule.
type Advice struct {
	ID       string
	Severity Severity
	Message  string
}
