package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/wealthtwin/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "scenarios.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleProfile() model.FinancialProfile {
	return model.FinancialProfile{
		Income:        10000,
		Rent:          3000,
		Food:          1500,
		Investments:   2000,
		Crypto:        250,
		SavingsGoal:   4000,
		GrowthRate:    0.08,
		InflationRate: 0.03,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	p := sampleProfile()

	saved, err := s.Save("Baseline", p, "inr")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("Save returned empty ID")
	}

	got, err := s.Load("baseline")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Profile != p {
		t.Errorf("Profile = %+v, want %+v", got.Profile, p)
	}
	if got.Currency != "INR" {
		t.Errorf("Currency = %q, want INR", got.Currency)
	}
	if got.Name != "Baseline" {
		t.Errorf("Name = %q, want Baseline", got.Name)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestSaveUpsertKeepsID(t *testing.T) {
	s := openTestStore(t)

	first, err := s.Save("plan", sampleProfile(), "USD")
	if err != nil {
		t.Fatal(err)
	}

	p := sampleProfile()
	p.Rent = 0
	p.Food = 1800
	second, err := s.Save("PLAN", p, "EUR")
	if err != nil {
		t.Fatal(err)
	}

	if second.ID != first.ID {
		t.Errorf("ID changed on upsert: %s -> %s", first.ID, second.ID)
	}
	if second.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR after upsert", second.Currency)
	}
	if second.Profile.Rent != 0 || second.Profile.Food != 1800 {
		t.Errorf("amounts not replaced: %+v", second.Profile)
	}
	if n, _ := s.Count(); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{"zeta", "alpha"} {
		if _, err := s.Save(name, sampleProfile(), ""); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Name != "alpha" || list[1].Name != "zeta" {
		t.Fatalf("List = %+v, want alpha, zeta", list)
	}
	if list[0].Income != 10000 {
		t.Errorf("Income = %v, want 10000", list[0].Income)
	}

	if err := s.Delete("alpha"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load("alpha"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after delete err = %v, want ErrNotFound", err)
	}
	if err := s.Delete("alpha"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
	if n, _ := s.Count(); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestSaveEmptyName(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Save("  ", sampleProfile(), ""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
}

func TestOpenMigratesStoreWithoutCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scenarios (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE COLLATE NOCASE,
		income REAL NOT NULL DEFAULT 0,
		savings_goal REAL NOT NULL DEFAULT 0,
		growth_rate REAL NOT NULL DEFAULT 0,
		inflation_rate REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	INSERT INTO scenarios VALUES ('id-1', 'old', 5000, 0, 0.08, 0.03, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z');`)
	_ = db.Close()
	if err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open on an old database: %v", err)
	}
	defer func() { _ = s.Close() }()

	old, err := s.Load("old")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if old.Currency != "" || old.Profile.Income != 5000 {
		t.Errorf("old scenario = %+v, want income 5000 and no currency", old)
	}

	if _, err := s.Save("new", sampleProfile(), "GBP"); err != nil {
		t.Fatalf("Save after migration: %v", err)
	}
	if sc, _ := s.Load("new"); sc.Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP", sc.Currency)
	}
}
