// Package config loads and saves wealthtwin settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all wealthtwin configuration.
type Config struct {
	General     GeneralConfig             `toml:"general"`
	Assumptions AssumptionsConfig         `toml:"assumptions"`
	Twin        TwinConfig                `toml:"twin"`
	Appearance  AppearanceConfig          `toml:"appearance"`
	Variants    map[string]VariantOverride `toml:"variants,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency     string `toml:"currency,omitempty"` // ISO code; detected from locale when empty
	Variant      string `toml:"variant"`
	HorizonYears int    `toml:"horizon_years,omitempty"` // 0 uses the variant's horizon
	StorePath    string `toml:"store_path,omitempty"`
}

// AssumptionsConfig holds the default market assumptions, as fractions.
type AssumptionsConfig struct {
	GrowthRate       float64 `toml:"growth_rate"`
	InflationRate    float64 `toml:"inflation_rate"`
	ProjectionMode   string  `toml:"projection_mode"`
	StartingNetWorth float64 `toml:"starting_net_worth,omitempty"`
}

// TwinConfig holds the twin reallocation policy.
type TwinConfig struct {
	Fraction    float64 `toml:"fraction"`
	GrowthBonus float64 `toml:"growth_bonus"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Variant: DefaultVariant,
		},
		Assumptions: AssumptionsConfig{
			GrowthRate:     0.08,
			InflationRate:  0.03,
			ProjectionMode: "closed",
		},
		Twin: TwinConfig{
			Fraction:    0.5,
			GrowthBonus: 0.02,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wealthtwin")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wealthtwin")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory for the scenario store.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "wealthtwin")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "wealthtwin")
}

// StorePath returns the scenario database path for cfg.
func StorePath(cfg Config) string {
	if cfg.General.StorePath != "" {
		return cfg.General.StorePath
	}
	return filepath.Join(DataDir(), "scenarios.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads a config file at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return applyEnv(cfg), nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-chosen config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Currency returns the configured currency code, falling back to the locale.
func Currency(cfg Config) string {
	if cfg.General.Currency != "" {
		return strings.ToUpper(cfg.General.Currency)
	}
	return DetectCurrency()
}

func applyEnv(cfg Config) Config {
	if c := os.Getenv("WEALTHTWIN_CURRENCY"); c != "" {
		cfg.General.Currency = strings.ToUpper(c)
	}
	if th := os.Getenv("WEALTHTWIN_THEME"); th != "" {
		cfg.Appearance.Theme = th
	}
	return cfg
}
