package finance

import (
	"errors"
	"math"
	"testing"
)

func TestProject_PointCountAndBase(t *testing.T) {
	for _, h := range []int{0, 1, 5, 10, 40} {
		s, err := Project(12000, 0.08, 0.03, h)
		if err != nil {
			t.Fatalf("horizon %d: unexpected error: %v", h, err)
		}
		if len(s) != h+1 {
			t.Fatalf("horizon %d: len = %d, want %d", h, len(s), h+1)
		}
		if s[0].NetWorth != 12000 {
			t.Errorf("horizon %d: year 0 = %v, want 12000", h, s[0].NetWorth)
		}
		for i, p := range s {
			if p.Year != i {
				t.Errorf("horizon %d: point %d has Year %d", h, i, p.Year)
			}
		}
	}
}

func TestProject_TenYearReference(t *testing.T) {
	s, err := Project(12000, 0.08, 0.03, 10)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, s[10].NetWorth, 19546.74, "year 10")
	assertClose(t, s.Final().NetWorth, 12000*math.Pow(1.05, 10), "Final")
}

func TestProject_FlatWhenGrowthEqualsInflation(t *testing.T) {
	for _, rate := range []float64{0, 0.03, 0.07, 0.15} {
		s, err := Project(5000, rate, rate, 10)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range s {
			if p.NetWorth != 5000 {
				t.Fatalf("rate %.2f year %d = %v, want 5000", rate, p.Year, p.NetWorth)
			}
		}
	}
}

func TestProject_Monotonicity(t *testing.T) {
	tests := []struct {
		name       string
		growth     float64
		inflation  float64
		increasing bool
	}{
		{"positive real growth", 0.10, 0.03, true},
		{"negative real growth", 0.02, 0.09, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Project(10000, tc.growth, tc.inflation, 15)
			if err != nil {
				t.Fatal(err)
			}
			for i := 1; i < len(s); i++ {
				if s[i].NetWorth < 0 {
					t.Fatalf("year %d = %v, want >= 0", i, s[i].NetWorth)
				}
				if tc.increasing && !(s[i].NetWorth > s[i-1].NetWorth) {
					t.Fatalf("year %d = %v not above year %d = %v", i, s[i].NetWorth, i-1, s[i-1].NetWorth)
				}
				if !tc.increasing && !(s[i].NetWorth < s[i-1].NetWorth) {
					t.Fatalf("year %d = %v not below year %d = %v", i, s[i].NetWorth, i-1, s[i-1].NetWorth)
				}
			}
		})
	}
}

func TestProject_TotalLossNeverFlipsSign(t *testing.T) {
	s, err := Project(800, 0, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range s[1:] {
		if p.NetWorth != 0 {
			t.Fatalf("year %d = %v, want 0", i+1, p.NetWorth)
		}
	}
}

func TestProject_NegativeHorizon(t *testing.T) {
	_, err := Project(12000, 0.08, 0.03, -1)
	if !errors.Is(err, ErrInvalidHorizon) {
		t.Fatalf("err = %v, want ErrInvalidHorizon", err)
	}
}

func TestProjectWithContribution(t *testing.T) {
	s, err := ProjectWithContribution(1000, 0.10, 1200, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 3 {
		t.Fatalf("len = %d, want 3", len(s))
	}
	assertClose(t, s[0].NetWorth, 1000, "year 0")
	assertClose(t, s[1].NetWorth, 2300, "year 1")
	assertClose(t, s[2].NetWorth, 3730, "year 2")
}

func TestProjectWithContribution_ZeroHorizonAndErrors(t *testing.T) {
	s, err := ProjectWithContribution(250, 0.05, AnnualContribution(100), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 1 || s[0].NetWorth != 250 {
		t.Fatalf("horizon 0 = %+v, want single point 250", s)
	}

	if _, err := ProjectWithContribution(0, 0.05, 1200, -3); !errors.Is(err, ErrInvalidHorizon) {
		t.Fatalf("err = %v, want ErrInvalidHorizon", err)
	}
}

func TestProjectMode_DispatchesExplicitly(t *testing.T) {
	closed, err := ProjectMode(Scenario{Mode: ModeClosedForm, Base: 12000, GrowthRate: 0.08, InflationRate: 0.03, Horizon: 10})
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, closed.Final().NetWorth, 19546.74, "closed-form year 10")

	contrib, err := ProjectMode(Scenario{
		Mode:           ModeContribution,
		GrowthRate:     0.10,
		InflationRate:  0,
		Horizon:        2,
		Start:          1000,
		MonthlySavings: 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, contrib.Final().NetWorth, 3730, "contribution year 2")

	if _, err := ProjectMode(Scenario{Mode: "regression"}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != ModeClosedForm {
		t.Fatalf("ParseMode(\"\") = %q, %v; want closed", m, err)
	}
	if m, err := ParseMode("contribution"); err != nil || m != ModeContribution {
		t.Fatalf("ParseMode(contribution) = %q, %v", m, err)
	}
	if _, err := ParseMode("linear"); err == nil {
		t.Fatal("ParseMode(linear) succeeded, want error")
	}
}
