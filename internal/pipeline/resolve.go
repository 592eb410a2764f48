package pipeline

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/wealthtwin/internal/model"
	"github.com/theirongolddev/wealthtwin/internal/source"
	"github.com/theirongolddev/wealthtwin/internal/store"
)

// Profile origins.
const (
	OriginFile     = "file"
	OriginScenario = "scenario"
	OriginEmpty    = "empty"
)

// ScenarioLoader is the part of the scenario store ResolveProfile needs.
type ScenarioLoader interface {
	Load(name string) (store.Scenario, error)
}

// Sources says where a profile may come from.
type Sources struct {
	ProfilePath string
	Scenario    string
	Store       ScenarioLoader // nil if the store could not be opened
	StoreErr    error          // why Store is nil, for error messages

	DefaultGrowth    float64
	DefaultInflation float64
}

// Resolved is a profile plus where it came from.
type Resolved struct {
	Profile  model.FinancialProfile
	Origin   string
	Name     string
	Currency string // from a profile file or stored scenario that names one
	Fallback bool   // scenario was requested but the file was used instead
}

// ResolveProfile picks the base profile: a named scenario, then a profile
// file, then an empty profile. When the store is unavailable and a file is
// given, the file is used. Unset file rates take the configured defaults.
func ResolveProfile(src Sources) (Resolved, error) {
	if src.Scenario != "" {
		r, err := resolveScenario(src)
		if err == nil {
			return r, nil
		}
		if errors.Is(err, store.ErrNotFound) || src.ProfilePath == "" {
			return Resolved{}, err
		}
		r, ferr := resolveFile(src)
		if ferr != nil {
			return Resolved{}, ferr
		}
		r.Fallback = true
		return r, nil
	}

	if src.ProfilePath != "" {
		return resolveFile(src)
	}

	return Resolved{
		Profile: model.FinancialProfile{
			GrowthRate:    src.DefaultGrowth,
			InflationRate: src.DefaultInflation,
		},
		Origin: OriginEmpty,
	}, nil
}

func resolveScenario(src Sources) (Resolved, error) {
	if src.Store == nil {
		if src.StoreErr != nil {
			return Resolved{}, fmt.Errorf("scenario store unavailable: %w", src.StoreErr)
		}
		return Resolved{}, errors.New("scenario store unavailable")
	}
	sc, err := src.Store.Load(src.Scenario)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{Profile: sc.Profile, Origin: OriginScenario, Name: sc.Name, Currency: sc.Currency}, nil
}

func resolveFile(src Sources) (Resolved, error) {
	pf, err := source.ParseFile(src.ProfilePath)
	if err != nil {
		return Resolved{}, err
	}
	p := pf.Profile
	if !pf.GrowthSet {
		p.GrowthRate = src.DefaultGrowth
	}
	if !pf.InflationSet {
		p.InflationRate = src.DefaultInflation
	}
	return Resolved{Profile: p, Origin: OriginFile, Name: pf.Name, Currency: pf.Currency}, nil
}
