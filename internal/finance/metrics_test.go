package finance

import (
	"math"
	"testing"

	"github.com/theirongolddev/wealthtwin/internal/model"
)

const tolerance = 0.01

func assertClose(t *testing.T, got, want float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %.4f, want %.4f (diff %.4f)", what, got, want, got-want)
	}
}

var testLayout = Layout{
	Expenses: []model.Category{
		model.CategoryRent,
		model.CategoryEMI,
		model.CategoryFood,
		model.CategoryEntertainment,
		model.CategoryFun,
	},
	Base: BaseSavings,
}

func TestComputeMetrics_Basic(t *testing.T) {
	p := model.FinancialProfile{
		Income:        10000,
		Rent:          3000,
		EMI:           500,
		Food:          1500,
		Entertainment: 500,
		Fun:           500,
		Crypto:        9999, // not in layout
	}

	m := ComputeMetrics(p, testLayout)

	assertClose(t, m.TotalExpenses, 6000, "TotalExpenses")
	assertClose(t, m.NetSavings, 4000, "NetSavings")
	assertClose(t, m.NetWorthNow, 48000, "NetWorthNow")
	assertClose(t, m.DebtToIncomeRatio, 0.05, "DebtToIncomeRatio")
	assertClose(t, m.SavingsRate, 0.4, "SavingsRate")

	if len(m.Breakdown) != len(testLayout.Expenses) {
		t.Fatalf("Breakdown len = %d, want %d", len(m.Breakdown), len(testLayout.Expenses))
	}
	for i, c := range m.Breakdown {
		if c.Category != testLayout.Expenses[i] {
			t.Errorf("Breakdown[%d] = %s, want %s (layout order)", i, c.Category, testLayout.Expenses[i])
		}
	}
}

func TestComputeMetrics_InvestmentsBase(t *testing.T) {
	p := model.FinancialProfile{Income: 50000, Investments: 3000, Rent: 10000}
	l := Layout{
		Expenses: []model.Category{model.CategoryRent, model.CategoryInvestments},
		Base:     BaseInvestments,
	}

	m := ComputeMetrics(p, l)
	assertClose(t, m.TotalExpenses, 13000, "TotalExpenses")
	assertClose(t, m.NetWorthNow, 36000, "NetWorthNow")
}

func TestComputeMetrics_ZeroIncome(t *testing.T) {
	profiles := []model.FinancialProfile{
		{},
		{Rent: 1000, EMI: 400},
		{EMI: 1e9, Food: 1},
		{Rent: -50},
	}

	for i, p := range profiles {
		m := ComputeMetrics(p, testLayout)
		if m.DebtToIncomeRatio != 0 {
			t.Errorf("profile %d: DebtToIncomeRatio = %v, want 0", i, m.DebtToIncomeRatio)
		}
		if m.SavingsRate != 0 {
			t.Errorf("profile %d: SavingsRate = %v, want 0", i, m.SavingsRate)
		}
		if math.IsNaN(m.NetSavings) || math.IsInf(m.NetSavings, 0) {
			t.Errorf("profile %d: NetSavings = %v, want finite", i, m.NetSavings)
		}
	}
}

func TestComputeMetrics_NegativeAmountsPropagate(t *testing.T) {
	p := model.FinancialProfile{Income: 1000, Rent: -200}
	m := ComputeMetrics(p, Layout{Expenses: []model.Category{model.CategoryRent}})

	assertClose(t, m.TotalExpenses, -200, "TotalExpenses")
	assertClose(t, m.NetSavings, 1200, "NetSavings")
	assertClose(t, m.SavingsRate, 1.2, "SavingsRate")
}

func TestTotalExpenses_ExplicitComponents(t *testing.T) {
	components := []model.ExpenseComponent{
		{Category: "school-fees", Label: "School fees", Amount: 700},
		{Category: model.CategoryFood, Amount: 300},
	}
	assertClose(t, TotalExpenses(components), 1000, "TotalExpenses")
	assertClose(t, TotalExpenses(nil), 0, "TotalExpenses(nil)")
}

func TestMetricsFrom_IsIdempotent(t *testing.T) {
	p := model.FinancialProfile{Income: 7300.25, Rent: 1234.5, Food: 99.99, EMI: 17}
	a := ComputeMetrics(p, testLayout)
	b := ComputeMetrics(p, testLayout)

	if a.TotalExpenses != b.TotalExpenses || a.NetWorthNow != b.NetWorthNow ||
		a.SavingsRate != b.SavingsRate || a.DebtToIncomeRatio != b.DebtToIncomeRatio {
		t.Fatalf("repeated ComputeMetrics differ: %+v vs %+v", a, b)
	}
}
