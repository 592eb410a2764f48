// Package model defines domain types for wealthtwin profiles, metrics and projections.
package model

// Category names one amount field of a FinancialProfile.
type Category string

// Profile amount categories.
const (
	CategoryRent          Category = "rent"
	CategoryEMI           Category = "emi"
	CategoryFood          Category = "food"
	CategoryEntertainment Category = "entertainment"
	CategoryFun           Category = "fun"
	CategoryExtra         Category = "extra"
	CategoryEmergencyFund Category = "emergency_fund"
	CategoryCustom        Category = "custom"
	CategoryInvestments   Category = "investments"
	CategoryCrypto        Category = "crypto"
	CategoryLifeEvent     Category = "life_event"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryRent,
	CategoryEMI,
	CategoryFood,
	CategoryEntertainment,
	CategoryFun,
	CategoryExtra,
	CategoryEmergencyFund,
	CategoryCustom,
	CategoryInvestments,
	CategoryCrypto,
	CategoryLifeEvent,
}

var categoryLabels = map[Category]string{
	CategoryRent:          "Rent",
	CategoryEMI:           "EMI",
	CategoryFood:          "Food & Groceries",
	CategoryEntertainment: "Entertainment",
	CategoryFun:           "Fun",
	CategoryExtra:         "Extra Expenses",
	CategoryEmergencyFund: "Emergency Fund",
	CategoryCustom:        "Custom Expense",
	CategoryInvestments:   "Investments",
	CategoryCrypto:        "Crypto",
	CategoryLifeEvent:     "Life Event",
}

// Label returns the display label for a category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Known reports whether c is one of the profile's amount fields.
func (c Category) Known() bool {
	_, ok := categoryLabels[c]
	return ok
}

// FinancialProfile is a monthly snapshot of a user's finances.
// Amounts are in the user's currency unit; rates are fractions (0.08 = 8%).
// Profiles are values: transforms return a new profile and never mutate.
type FinancialProfile struct {
	Income        float64
	Rent          float64
	EMI           float64
	Food          float64
	Entertainment float64
	Fun           float64
	ExtraExpenses float64
	EmergencyFund float64
	CustomExpense float64
	Investments   float64
	Crypto        float64
	SavingsGoal   float64
	LifeEventCost float64

	GrowthRate    float64
	InflationRate float64
}

// Amount returns the amount stored under category c. Unknown categories read as 0.
func (p FinancialProfile) Amount(c Category) float64 {
	switch c {
	case CategoryRent:
		return p.Rent
	case CategoryEMI:
		return p.EMI
	case CategoryFood:
		return p.Food
	case CategoryEntertainment:
		return p.Entertainment
	case CategoryFun:
		return p.Fun
	case CategoryExtra:
		return p.ExtraExpenses
	case CategoryEmergencyFund:
		return p.EmergencyFund
	case CategoryCustom:
		return p.CustomExpense
	case CategoryInvestments:
		return p.Investments
	case CategoryCrypto:
		return p.Crypto
	case CategoryLifeEvent:
		return p.LifeEventCost
	default:
		return 0
	}
}

// WithAmount returns a copy of p with category c set to v.
// Unknown categories return p unchanged.
func (p FinancialProfile) WithAmount(c Category, v float64) FinancialProfile {
	switch c {
	case CategoryRent:
		p.Rent = v
	case CategoryEMI:
		p.EMI = v
	case CategoryFood:
		p.Food = v
	case CategoryEntertainment:
		p.Entertainment = v
	case CategoryFun:
		p.Fun = v
	case CategoryExtra:
		p.ExtraExpenses = v
	case CategoryEmergencyFund:
		p.EmergencyFund = v
	case CategoryCustom:
		p.CustomExpense = v
	case CategoryInvestments:
		p.Investments = v
	case CategoryCrypto:
		p.Crypto = v
	case CategoryLifeEvent:
		p.LifeEventCost = v
	}
	return p
}

// ExpenseComponent is one line of the expense total.
type ExpenseComponent struct {
	Category Category
	Label    string
	Amount   float64
}
