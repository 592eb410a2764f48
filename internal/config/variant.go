package config

import (
	"sort"
	"strings"

	"github.com/theirongolddev/wealthtwin/internal/finance"
	"github.com/theirongolddev/wealthtwin/internal/model"
)

// DefaultVariant is used when no variant is configured or the name is unknown.
const DefaultVariant = "twin"

// Variant is a named calculator configuration: which categories count as
// expenses, which metric seeds the projection, and the default horizon.
type Variant struct {
	Name         string
	Description  string
	Layout       finance.Layout
	HorizonYears int
}

// VariantOverride replaces fields of a preset from config.toml.
type VariantOverride struct {
	Expenses     []string `toml:"expenses,omitempty"`
	Base         string   `toml:"base,omitempty"`
	HorizonYears *int     `toml:"horizon_years,omitempty"`
	Description  string   `toml:"description,omitempty"`
}

// DefaultVariants are the built-in calculator presets.
var DefaultVariants = map[string]Variant{
	"twin": {
		Description: "Investments count as spending; net worth grows from yearly investments",
		Layout: finance.Layout{
			Expenses: []model.Category{
				model.CategoryRent,
				model.CategoryInvestments,
				model.CategoryEntertainment,
				model.CategoryFun,
				model.CategoryFood,
			},
			Base: finance.BaseInvestments,
		},
		HorizonYears: 10,
	},
	"lifestyle": {
		Description: "Fixed and flexible costs; net worth grows from yearly savings",
		Layout: finance.Layout{
			Expenses: []model.Category{
				model.CategoryRent,
				model.CategoryEMI,
				model.CategoryFood,
				model.CategoryEntertainment,
				model.CategoryExtra,
			},
			Base: finance.BaseSavings,
		},
		HorizonYears: 5,
	},
	"complete": {
		Description: "Every category including emergency fund, custom and life-event costs",
		Layout: finance.Layout{
			Expenses: []model.Category{
				model.CategoryRent,
				model.CategoryEMI,
				model.CategoryFood,
				model.CategoryEntertainment,
				model.CategoryFun,
				model.CategoryExtra,
				model.CategoryEmergencyFund,
				model.CategoryCustom,
				model.CategoryLifeEvent,
			},
			Base: finance.BaseSavings,
		},
		HorizonYears: 10,
	},
}

// VariantNames returns preset and configured variant names, sorted.
func VariantNames(cfg Config) []string {
	seen := make(map[string]struct{})
	for name := range DefaultVariants {
		seen[name] = struct{}{}
	}
	for name := range cfg.Variants {
		seen[strings.ToLower(name)] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupVariant resolves name against the presets and cfg's overrides.
// Returns the default variant and false if the name is unknown.
func LookupVariant(cfg Config, name string) (Variant, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultVariant
	}

	v, known := DefaultVariants[key]
	override, overridden := findOverride(cfg, key)
	if !known && !overridden {
		v = DefaultVariants[DefaultVariant]
		v.Name = DefaultVariant
		return v, false
	}
	if !known {
		// A user-defined variant starts from the complete layout.
		v = DefaultVariants["complete"]
	}
	v.Name = key
	v.Layout.Expenses = append([]model.Category(nil), v.Layout.Expenses...)

	if overridden {
		v = applyOverride(v, override)
	}
	return v, true
}

func findOverride(cfg Config, key string) (VariantOverride, bool) {
	for name, o := range cfg.Variants {
		if strings.ToLower(name) == key {
			return o, true
		}
	}
	return VariantOverride{}, false
}

func applyOverride(v Variant, o VariantOverride) Variant {
	if len(o.Expenses) > 0 {
		cats := make([]model.Category, 0, len(o.Expenses))
		for _, e := range o.Expenses {
			c := model.Category(strings.ToLower(strings.TrimSpace(e)))
			if c.Known() {
				cats = append(cats, c)
			}
		}
		v.Layout.Expenses = cats
	}
	switch finance.BaseMetric(strings.ToLower(o.Base)) {
	case finance.BaseSavings:
		v.Layout.Base = finance.BaseSavings
	case finance.BaseInvestments:
		v.Layout.Base = finance.BaseInvestments
	}
	if o.HorizonYears != nil {
		v.HorizonYears = *o.HorizonYears
	}
	if o.Description != "" {
		v.Description = o.Description
	}
	return v
}
