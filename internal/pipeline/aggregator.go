package pipeline

import (
	"sort"

	"github.com/theirongolddev/wealthtwin/internal/model"
)

// NamedProfile is a profile with a display name, e.g. a stored scenario.
type NamedProfile struct {
	Name    string
	Profile model.FinancialProfile
}

// ScenarioSummary is one row of a multi-scenario comparison.
type ScenarioSummary struct {
	Name          string
	Metrics       model.DerivedMetrics
	FinalNetWorth float64
	TwinNetWorth  float64
	AdviceCount   int
	Err           error
	TwinErr       error // TwinNetWorth is zero when set
}

// Summarize analyzes each profile with the same options and returns rows
// sorted by final projected net worth, highest first. Profiles that fail to
// analyze sort last and carry their error.
func Summarize(profiles []NamedProfile, opts Options) []ScenarioSummary {
	out := make([]ScenarioSummary, 0, len(profiles))
	for _, np := range profiles {
		row := ScenarioSummary{Name: np.Name}
		res, err := Analyze(np.Profile, opts)
		if err != nil {
			row.Err = err
			out = append(out, row)
			continue
		}
		row.Metrics = res.Metrics
		row.FinalNetWorth = res.Projection.Final().NetWorth
		row.TwinNetWorth = res.Twin.TwinSeries.Final().NetWorth
		row.TwinErr = res.TwinErr
		row.AdviceCount = len(res.Advice)
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if (out[i].Err == nil) != (out[j].Err == nil) {
			return out[i].Err == nil
		}
		return out[i].FinalNetWorth > out[j].FinalNetWorth
	})
	return out
}
