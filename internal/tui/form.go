package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/wealthtwin/internal/model"
	"github.com/theirongolddev/wealthtwin/internal/source"
)

// ProfileValues holds the text fields of the profile form. Rates are
// entered as percentages ("8" or "8%").
type ProfileValues struct {
	Name    string
	Amounts map[model.Category]*string

	Income      string
	SavingsGoal string
	Growth      string
	Inflation   string
}

// formCategories are the amount fields shown in the form, in order.
var formCategories = []model.Category{
	model.CategoryRent,
	model.CategoryEMI,
	model.CategoryFood,
	model.CategoryEntertainment,
	model.CategoryFun,
	model.CategoryExtra,
	model.CategoryEmergencyFund,
	model.CategoryCustom,
	model.CategoryInvestments,
	model.CategoryCrypto,
	model.CategoryLifeEvent,
}

// NewProfileValues fills form values from p.
func NewProfileValues(name string, p model.FinancialProfile) *ProfileValues {
	v := &ProfileValues{
		Name:        name,
		Amounts:     make(map[model.Category]*string, len(formCategories)),
		Income:      formatAmount(p.Income),
		SavingsGoal: formatAmount(p.SavingsGoal),
		Growth:      formatAmount(p.GrowthRate * 100),
		Inflation:   formatAmount(p.InflationRate * 100),
	}
	for _, c := range formCategories {
		s := formatAmount(p.Amount(c))
		v.Amounts[c] = &s
	}
	return v
}

// Profile parses the form values into a profile.
func (v *ProfileValues) Profile() (model.FinancialProfile, error) {
	var p model.FinancialProfile
	var err error

	if p.Income, err = parseAmount(v.Income); err != nil {
		return p, fmt.Errorf("income: %w", err)
	}
	if p.SavingsGoal, err = parseAmount(v.SavingsGoal); err != nil {
		return p, fmt.Errorf("savings goal: %w", err)
	}
	for _, c := range formCategories {
		amount, err := parseAmount(*v.Amounts[c])
		if err != nil {
			return p, fmt.Errorf("%s: %w", c.Label(), err)
		}
		p = p.WithAmount(c, amount)
	}
	if p.GrowthRate, err = parsePercent(v.Growth); err != nil {
		return p, fmt.Errorf("growth rate: %w", err)
	}
	if p.InflationRate, err = parsePercent(v.Inflation); err != nil {
		return p, fmt.Errorf("inflation rate: %w", err)
	}
	return p, nil
}

// NewProfileForm builds the profile editor. withName adds a scenario name
// field for saving.
func NewProfileForm(v *ProfileValues, withName bool) *huh.Form {
	income := []huh.Field{
		huh.NewInput().Title("Monthly income").Value(&v.Income).Validate(validateAmount),
		huh.NewInput().Title("Monthly savings goal").Value(&v.SavingsGoal).Validate(validateAmount),
	}
	if withName {
		income = append([]huh.Field{
			huh.NewInput().Title("Scenario name").
				Description("Leave blank to skip saving").
				Value(&v.Name),
		}, income...)
	}

	var spending, holdings []huh.Field
	for _, c := range formCategories {
		field := huh.NewInput().Title(c.Label()).Value(v.Amounts[c]).Validate(validateAmount)
		switch c {
		case model.CategoryInvestments, model.CategoryCrypto, model.CategoryEmergencyFund, model.CategoryLifeEvent:
			holdings = append(holdings, field)
		default:
			spending = append(spending, field)
		}
	}

	rates := []huh.Field{
		huh.NewInput().Title("Expected growth rate (%)").Value(&v.Growth).Validate(validatePercent),
		huh.NewInput().Title("Expected inflation rate (%)").Value(&v.Inflation).Validate(validatePercent),
	}

	return huh.NewForm(
		huh.NewGroup(income...).Title("Income"),
		huh.NewGroup(spending...).Title("Monthly spending"),
		huh.NewGroup(holdings...).Title("Savings & investments"),
		huh.NewGroup(rates...).Title("Assumptions"),
	).WithShowHelp(true)
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseAmount accepts "", "1200", "1,200.50". Blank is 0.
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	return v, nil
}

// parsePercent reads "8", "8%" or "" as a fraction.
func parsePercent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if !strings.HasSuffix(s, "%") {
		s += "%"
	}
	return source.ParseRate(s)
}

func validateAmount(s string) error {
	v, err := parseAmount(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func validatePercent(s string) error {
	v, err := parsePercent(s)
	if err != nil {
		return errors.New("enter a percentage like 8 or 8.5")
	}
	if v <= -1 {
		return errors.New("must be above -100%")
	}
	return nil
}
