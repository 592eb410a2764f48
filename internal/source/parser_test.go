package source

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeProfile creates a temp profile file and returns its path.
func writeProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFile_YAML(t *testing.T) {
	path := writeProfile(t, "june.yaml", `
income: 10000
rent: 3000
emi: 500
food: 1500.50
emergency_fund: 1000
growth_rate: "8%"
`)

	pf, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pf.Name != "june" {
		t.Errorf("Name = %q, want june (file stem)", pf.Name)
	}
	if pf.Profile.Income != 10000 || pf.Profile.Food != 1500.50 {
		t.Errorf("amounts = %+v", pf.Profile)
	}
	if math.Abs(pf.Profile.GrowthRate-0.08) > 1e-12 || !pf.GrowthSet {
		t.Errorf("GrowthRate = %v (set=%v), want 0.08", pf.Profile.GrowthRate, pf.GrowthSet)
	}
	if pf.InflationSet {
		t.Error("InflationSet = true for a file without inflation_rate")
	}
}

func TestParseFile_TOML(t *testing.T) {
	path := writeProfile(t, "base.toml", `
name = "Baseline"
currency = "inr"
income = 85000.0
investments = 12000.0
crypto = 2000.0
growth_rate = 0.1
inflation_rate = "6 %"
`)

	pf, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pf.Name != "Baseline" || pf.Currency != "INR" {
		t.Errorf("Name/Currency = %q/%q", pf.Name, pf.Currency)
	}
	if pf.Profile.Investments != 12000 || pf.Profile.Crypto != 2000 {
		t.Errorf("amounts = %+v", pf.Profile)
	}
	if pf.Profile.GrowthRate != 0.1 || math.Abs(pf.Profile.InflationRate-0.06) > 1e-12 {
		t.Errorf("rates = %v/%v", pf.Profile.GrowthRate, pf.Profile.InflationRate)
	}
	if !pf.GrowthSet || !pf.InflationSet {
		t.Error("rates should be marked as set")
	}
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		path := writeProfile(t, "p.json", `{}`)
		_, err := ParseFile(path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("unknown yaml key", func(t *testing.T) {
		path := writeProfile(t, "p.yaml", "income: 100\nsalary: 5\n")
		if _, err := ParseFile(path); err == nil {
			t.Fatal("expected error for unknown key")
		}
	})

	t.Run("unknown toml key", func(t *testing.T) {
		path := writeProfile(t, "p.toml", "income = 100.0\nsalary = 5.0\n")
		if _, err := ParseFile(path); err == nil {
			t.Fatal("expected error for unknown key")
		}
	})

	t.Run("bad rate", func(t *testing.T) {
		path := writeProfile(t, "p.yaml", "growth_rate: lots\n")
		_, err := ParseFile(path)
		if !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("err = %v, want ErrInvalidRate", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		path := writeProfile(t, "p.yaml", "income: 100\nrent: -5\n")
		_, err := ParseFile(path)
		if !errors.Is(err, ErrNegativeAmount) {
			t.Fatalf("err = %v, want ErrNegativeAmount", err)
		}
	})

	t.Run("bare rate above one", func(t *testing.T) {
		for name, body := range map[string]string{
			"p.yaml": "growth_rate: 8\n",
			"q.yaml": "inflation_rate: 3.5\n",
			"r.toml": "growth_rate = 8\n",
		} {
			_, err := ParseFile(writeProfile(t, name, body))
			if !errors.Is(err, ErrInvalidRate) {
				t.Errorf("%s: err = %v, want ErrInvalidRate", name, err)
			}
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func TestParseFile_EmptyYAML(t *testing.T) {
	path := writeProfile(t, "empty.yml", "")
	pf, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pf.Profile.Income != 0 || pf.GrowthSet {
		t.Errorf("empty file should give a zero profile, got %+v", pf)
	}
}

func TestParseRate(t *testing.T) {
	tests := map[string]float64{
		"8%":    0.08,
		" 2.5%": 0.025,
		"0.07":  0.07,
		"-1%":   -0.01,
	}
	for in, want := range tests {
		got, err := ParseRate(in)
		if err != nil {
			t.Fatalf("ParseRate(%q): %v", in, err)
		}
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("ParseRate(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"8", "-2", "150"} {
		if _, err := ParseRate(in); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("ParseRate(%q) err = %v, want ErrInvalidRate", in, err)
		}
	}
	if got, err := ParseRate("150%"); err != nil || math.Abs(got-1.5) > 1e-12 {
		t.Errorf("ParseRate(150%%) = %v, %v; want 1.5", got, err)
	}
	if _, err := ParseRate("%"); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("ParseRate(%%) err = %v, want ErrInvalidRate", err)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.toml", "c.yml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %+v", len(files), files)
	}
	wantNames := []string{"a", "b", "c"}
	for i, f := range files {
		if f.Name != wantNames[i] {
			t.Errorf("files[%d].Name = %q, want %q", i, f.Name, wantNames[i])
		}
	}
	counts := CountFormats(files)
	if counts["yaml"] != 2 || counts["toml"] != 1 {
		t.Errorf("CountFormats = %v", counts)
	}

	missing, err := ScanDir(filepath.Join(dir, "absent"))
	if err != nil || missing != nil {
		t.Errorf("missing dir = %v, %v; want nil, nil", missing, err)
	}
}
