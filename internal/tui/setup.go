package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/wealthtwin/internal/config"
	"github.com/theirongolddev/wealthtwin/internal/tui/theme"
)

// setupValues holds the first-run wizard answers.
type setupValues struct {
	currency  string
	variant   string
	theme     string
	growth    string
	inflation string
}

func newSetupValues(cfg config.Config, currency string) *setupValues {
	if currency == "" {
		currency = config.Currency(cfg)
	}
	return &setupValues{
		currency:  currency,
		variant:   cfg.General.Variant,
		theme:     cfg.Appearance.Theme,
		growth:    formatAmount(cfg.Assumptions.GrowthRate * 100),
		inflation: formatAmount(cfg.Assumptions.InflationRate * 100),
	}
}

// newSetupForm builds the first-run wizard, shared by the dashboard and
// the setup command.
func newSetupForm(cfg config.Config, v *setupValues) *huh.Form {
	var variantOpts []huh.Option[string]
	for _, name := range config.VariantNames(cfg) {
		vr, _ := config.LookupVariant(cfg, name)
		variantOpts = append(variantOpts, huh.NewOption(name+"  "+vr.Description, name))
	}

	var themeOpts []huh.Option[string]
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to wealthtwin").
				Description("See where your money goes and what a more disciplined twin would be worth.\n\nLet's set a few defaults."),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency").
				Options(huh.NewOptions(config.SupportedCurrencies...)...).
				Value(&v.currency),
			huh.NewSelect[string]().
				Title("Calculator").
				Options(variantOpts...).
				Value(&v.variant),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Expected growth rate (%)").
				Value(&v.growth).
				Validate(validatePercent),
			huh.NewInput().
				Title("Expected inflation rate (%)").
				Value(&v.inflation).
				Validate(validatePercent),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.theme),
		),
	).WithShowHelp(true)
}

// RunSetup runs the first-run wizard outside the dashboard and saves the result.
func RunSetup() (config.Config, error) {
	cfg, _ := config.Load()
	v := newSetupValues(cfg, "")
	if err := newSetupForm(cfg, v).Run(); err != nil {
		return cfg, err
	}
	cfg = v.apply(cfg)
	return cfg, config.Save(cfg)
}

// apply copies the answers into cfg. Unparseable rates keep the old values.
func (v *setupValues) apply(cfg config.Config) config.Config {
	cfg.General.Currency = v.currency
	cfg.General.Variant = v.variant
	cfg.Appearance.Theme = v.theme
	if g, err := parsePercent(v.growth); err == nil {
		cfg.Assumptions.GrowthRate = g
	}
	if i, err := parsePercent(v.inflation); err == nil {
		cfg.Assumptions.InflationRate = i
	}
	return cfg
}

func (a *App) saveSetupConfig() error {
	a.cfg = a.setupVals.apply(a.cfg)
	a.currency = a.cfg.General.Currency
	theme.SetActive(a.cfg.Appearance.Theme)

	if vr, ok := config.LookupVariant(a.cfg, a.cfg.General.Variant); ok {
		a.variant = vr
		a.opts.Layout = vr.Layout
	}
	return config.Save(a.cfg)
}
