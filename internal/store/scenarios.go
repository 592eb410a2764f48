// Package store provides a SQLite-backed store for named financial scenarios.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/wealthtwin/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

var (
	// ErrNotFound is returned when no scenario has the requested name.
	ErrNotFound = errors.New("scenario not found")
	// ErrEmptyName is returned when saving a scenario without a name.
	ErrEmptyName = errors.New("scenario name is empty")
)

// Scenario is a named, persisted profile.
type Scenario struct {
	ID        string
	Name      string
	Profile   model.FinancialProfile
	Currency  string // ISO code the amounts are in; "" when unknown
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is a scenario listing row.
type Summary struct {
	ID        string
	Name      string
	Income    float64
	UpdatedAt time.Time
}

// Store provides SQLite-backed scenario persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil && !strings.Contains(err.Error(), "duplicate column") {
			_ = db.Close()
			return nil, fmt.Errorf("migrating schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a scenario by name with the currency its amounts are in.
// An existing scenario keeps its ID and creation time; its amounts are replaced.
func (s *Store) Save(name string, p model.FinancialProfile, currency string) (Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Scenario{}, ErrEmptyName
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Scenario{}, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = tx.Exec(`INSERT INTO scenarios
		(id, name, income, savings_goal, growth_rate, inflation_rate, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			income = excluded.income,
			savings_goal = excluded.savings_goal,
			growth_rate = excluded.growth_rate,
			inflation_rate = excluded.inflation_rate,
			currency = excluded.currency,
			updated_at = excluded.updated_at`,
		uuid.NewString(), name, p.Income, p.SavingsGoal, p.GrowthRate, p.InflationRate,
		strings.ToUpper(strings.TrimSpace(currency)), now, now,
	)
	if err != nil {
		return Scenario{}, fmt.Errorf("saving scenario: %w", err)
	}

	var id string
	if err := tx.QueryRow("SELECT id FROM scenarios WHERE name = ?", name).Scan(&id); err != nil {
		return Scenario{}, err
	}

	if _, err := tx.Exec("DELETE FROM scenario_amounts WHERE scenario_id = ?", id); err != nil {
		return Scenario{}, err
	}
	for _, c := range model.Categories {
		v := p.Amount(c)
		if v == 0 {
			continue
		}
		_, err = tx.Exec(`INSERT INTO scenario_amounts (scenario_id, category, amount)
			VALUES (?, ?, ?)`, id, string(c), v)
		if err != nil {
			return Scenario{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Scenario{}, err
	}
	return s.Load(name)
}

// Load reads a scenario by name (case-insensitive).
func (s *Store) Load(name string) (Scenario, error) {
	var sc Scenario
	var created, updated string

	err := s.db.QueryRow(`SELECT
		id, name, income, savings_goal, growth_rate, inflation_rate, currency, created_at, updated_at
		FROM scenarios WHERE name = ?`, strings.TrimSpace(name)).Scan(
		&sc.ID, &sc.Name, &sc.Profile.Income, &sc.Profile.SavingsGoal,
		&sc.Profile.GrowthRate, &sc.Profile.InflationRate, &sc.Currency, &created, &updated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Scenario{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Scenario{}, err
	}
	sc.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	sc.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)

	rows, err := s.db.Query("SELECT category, amount FROM scenario_amounts WHERE scenario_id = ?", sc.ID)
	if err != nil {
		return Scenario{}, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var cat string
		var amount float64
		if err := rows.Scan(&cat, &amount); err != nil {
			return Scenario{}, err
		}
		sc.Profile = sc.Profile.WithAmount(model.Category(cat), amount)
	}
	return sc, rows.Err()
}

// List returns all scenarios ordered by name.
func (s *Store) List() ([]Summary, error) {
	rows, err := s.db.Query("SELECT id, name, income, updated_at FROM scenarios ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Summary
	for rows.Next() {
		var sm Summary
		var updated string
		if err := rows.Scan(&sm.ID, &sm.Name, &sm.Income, &updated); err != nil {
			return nil, err
		}
		sm.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
		out = append(out, sm)
	}
	return out, rows.Err()
}

// Delete removes a scenario and its amounts.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// Count returns the number of stored scenarios.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM scenarios").Scan(&count)
	return count, err
}
