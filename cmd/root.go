// Package cmd implements the wealthtwin CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/config"
	"github.com/theirongolddev/wealthtwin/internal/finance"
	"github.com/theirongolddev/wealthtwin/internal/model"
	"github.com/theirongolddev/wealthtwin/internal/pipeline"
	"github.com/theirongolddev/wealthtwin/internal/store"
)

var (
	flagProfile   string
	flagScenario  string
	flagVariant   string
	flagYears     int
	flagGrowth    float64 // percent
	flagInflation float64 // percent
	flagCurrency  string
	flagVerbose   bool
	flagQuiet     bool
)

// log is the command-layer logger. Diagnostics go to stderr; reports go to stdout.
var log = logrus.New()

// amountFlag binds one --<name> override to a profile field.
type amountFlag struct {
	name  string
	usage string
	set   func(p *model.FinancialProfile, v float64)
	value float64
}

var amountFlags = []*amountFlag{
	{name: "income", usage: "Monthly income", set: func(p *model.FinancialProfile, v float64) { p.Income = v }},
	{name: "savings-goal", usage: "Monthly savings goal", set: func(p *model.FinancialProfile, v float64) { p.SavingsGoal = v }},
	categoryFlag("rent", model.CategoryRent),
	categoryFlag("emi", model.CategoryEMI),
	categoryFlag("food", model.CategoryFood),
	categoryFlag("entertainment", model.CategoryEntertainment),
	categoryFlag("fun", model.CategoryFun),
	categoryFlag("extra", model.CategoryExtra),
	categoryFlag("emergency-fund", model.CategoryEmergencyFund),
	categoryFlag("custom", model.CategoryCustom),
	categoryFlag("investments", model.CategoryInvestments),
	categoryFlag("crypto", model.CategoryCrypto),
	categoryFlag("life-event", model.CategoryLifeEvent),
}

func categoryFlag(name string, c model.Category) *amountFlag {
	return &amountFlag{
		name:  name,
		usage: "Monthly " + strings.ToLower(c.Label()),
		set: func(p *model.FinancialProfile, v float64) {
			*p = p.WithAmount(c, v)
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "wealthtwin",
	Short: "Personal finance calculator with an AI twin",
	Long: "Compute expenses, savings and net-worth projections from a monthly budget,\n" +
		"and compare them against a twin who invests half of the fun money.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagProfile, "profile", "f", "", "Profile file (.yaml, .yml or .toml)")
	pf.StringVarP(&flagScenario, "scenario", "s", "", "Saved scenario name")
	pf.StringVar(&flagVariant, "variant", "", "Calculator variant (twin, lifestyle, complete, or a configured one)")
	pf.IntVarP(&flagYears, "years", "n", 0, "Projection horizon in years (default from variant)")
	pf.Float64Var(&flagGrowth, "growth", 0, "Expected yearly growth rate in percent, e.g. 8")
	pf.Float64Var(&flagInflation, "inflation", 0, "Expected yearly inflation rate in percent, e.g. 3")
	pf.StringVar(&flagCurrency, "currency", "", "Currency code for display (INR, USD, EUR, GBP)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")

	for _, af := range amountFlags {
		pf.Float64Var(&af.value, af.name, 0, af.usage)
	}
}

func setupLogging(_ *cobra.Command, _ []string) error {
	log.SetOutput(os.Stderr)
	if os.Getenv("WEALTHTWIN_LOG_FORMAT") == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	switch {
	case flagVerbose:
		log.SetLevel(logrus.DebugLevel)
	case flagQuiet:
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	// The TUI and form libraries log through the standard logger.
	logrus.SetOutput(log.Out)
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(log.GetLevel())
	return nil
}

// loadConfig loads config.toml, falling back to defaults on error so every
// command can run with a broken config.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).WithField("path", config.Path()).Warn("config unreadable, using defaults")
		return config.DefaultConfig()
	}
	log.WithField("path", config.Path()).WithField("exists", config.Exists()).Debug("config loaded")
	return cfg
}

// runContext is everything a report command needs.
type runContext struct {
	cfg      config.Config
	variant  config.Variant
	resolved pipeline.Resolved
	opts     pipeline.Options
	currency string
}

// prepare loads config, resolves the variant and profile, and applies flag
// overrides. Commands call it once and then analyze.
func prepare(cmd *cobra.Command) (*runContext, error) {
	cfg := loadConfig()

	name := cfg.General.Variant
	if flagVariant != "" {
		name = flagVariant
	}
	v, ok := config.LookupVariant(cfg, name)
	if !ok && name != "" {
		log.WithField("variant", name).Warn("unknown variant, using " + v.Name)
	}

	resolved, err := resolve(cfg)
	if err != nil {
		return nil, err
	}
	resolved.Profile = applyOverrides(cmd, resolved.Profile)

	opts, err := analysisOptions(cmd, cfg, v)
	if err != nil {
		return nil, err
	}

	currency := config.Currency(cfg)
	switch {
	case flagCurrency != "":
		currency = strings.ToUpper(flagCurrency)
	case resolved.Currency != "":
		currency = strings.ToUpper(resolved.Currency)
	}
	if !cli.KnownCurrency(currency) {
		log.WithField("currency", currency).Warn("unknown currency code, amounts shown in USD")
	}

	return &runContext{cfg: cfg, variant: v, resolved: resolved, opts: opts, currency: currency}, nil
}

// resolve finds the base profile. The store is only opened when a scenario is named.
func resolve(cfg config.Config) (pipeline.Resolved, error) {
	src := pipeline.Sources{
		ProfilePath:      flagProfile,
		Scenario:         flagScenario,
		DefaultGrowth:    cfg.Assumptions.GrowthRate,
		DefaultInflation: cfg.Assumptions.InflationRate,
	}

	if flagScenario != "" {
		st, err := store.Open(config.StorePath(cfg))
		if err != nil {
			log.WithError(err).Warn("scenario store unavailable")
			src.StoreErr = err
		} else {
			defer func() { _ = st.Close() }()
			src.Store = st
		}
	}

	r, err := pipeline.ResolveProfile(src)
	if err != nil {
		return r, fmt.Errorf("loading profile: %w", err)
	}
	if r.Fallback {
		log.WithField("profile", flagProfile).Warn("scenario store unavailable, using profile file")
	}
	log.WithFields(logrus.Fields{"origin": r.Origin, "name": r.Name}).Debug("profile resolved")
	return r, nil
}

// applyOverrides applies only the flags the user actually set.
func applyOverrides(cmd *cobra.Command, p model.FinancialProfile) model.FinancialProfile {
	flags := cmd.Flags()
	for _, af := range amountFlags {
		if flags.Changed(af.name) {
			af.set(&p, af.value)
		}
	}
	if flags.Changed("growth") {
		p.GrowthRate = flagGrowth / 100
	}
	if flags.Changed("inflation") {
		p.InflationRate = flagInflation / 100
	}
	return p
}

func analysisOptions(cmd *cobra.Command, cfg config.Config, v config.Variant) (pipeline.Options, error) {
	horizon := v.HorizonYears
	if cfg.General.HorizonYears > 0 {
		horizon = cfg.General.HorizonYears
	}
	if cmd.Flags().Changed("years") {
		horizon = flagYears
	}

	mode, err := finance.ParseMode(cfg.Assumptions.ProjectionMode)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("config assumptions.projection_mode: %w", err)
	}

	opts := pipeline.DefaultOptions(v.Layout, horizon)
	opts.Mode = mode
	opts.Start = cfg.Assumptions.StartingNetWorth
	opts.Fraction = cfg.Twin.Fraction
	opts.GrowthBonus = cfg.Twin.GrowthBonus
	return opts, nil
}

// analyze runs the pipeline on the prepared profile.
func (rc *runContext) analyze() (pipeline.Result, error) {
	res, err := pipeline.Analyze(rc.resolved.Profile, rc.opts)
	if err != nil {
		return res, err
	}
	log.WithFields(logrus.Fields{
		"variant": rc.variant.Name,
		"mode":    rc.opts.Mode,
		"horizon": rc.opts.Horizon,
		"advice":  len(res.Advice),
	}).Debug("analysis done")
	return res, nil
}

// profileLabel describes where the profile came from, for report titles.
func (rc *runContext) profileLabel() string {
	switch rc.resolved.Origin {
	case pipeline.OriginScenario:
		return "scenario " + rc.resolved.Name
	case pipeline.OriginFile:
		return rc.resolved.Name
	}
	return "flags"
}
