package source

import "github.com/theirongolddev/wealthtwin/internal/model"

// RawProfile is the on-disk shape of a profile file. Rates are left untyped
// so that both 0.08 and "8%" are accepted.
type RawProfile struct {
	Name     string `yaml:"name" toml:"name"`
	Currency string `yaml:"currency" toml:"currency"`

	Income        float64 `yaml:"income" toml:"income"`
	Rent          float64 `yaml:"rent" toml:"rent"`
	EMI           float64 `yaml:"emi" toml:"emi"`
	Food          float64 `yaml:"food" toml:"food"`
	Entertainment float64 `yaml:"entertainment" toml:"entertainment"`
	Fun           float64 `yaml:"fun" toml:"fun"`
	ExtraExpenses float64 `yaml:"extra_expenses" toml:"extra_expenses"`
	EmergencyFund float64 `yaml:"emergency_fund" toml:"emergency_fund"`
	CustomExpense float64 `yaml:"custom_expense" toml:"custom_expense"`
	Investments   float64 `yaml:"investments" toml:"investments"`
	Crypto        float64 `yaml:"crypto" toml:"crypto"`
	SavingsGoal   float64 `yaml:"savings_goal" toml:"savings_goal"`
	LifeEventCost float64 `yaml:"life_event_cost" toml:"life_event_cost"`

	GrowthRate    any `yaml:"growth_rate" toml:"growth_rate"`
	InflationRate any `yaml:"inflation_rate" toml:"inflation_rate"`
}

// ProfileFile is a parsed profile file.
type ProfileFile struct {
	Path     string
	Name     string // from the "name" key, or the file stem
	Currency string // optional ISO code
	Profile  model.FinancialProfile

	// Whether the file set each rate explicitly. Unset rates take the
	// configured defaults.
	GrowthSet    bool
	InflationSet bool
}

// DiscoveredFile is a profile file found during directory scanning.
type DiscoveredFile struct {
	Path   string
	Name   string // file stem
	Format string // "yaml" or "toml"
}
