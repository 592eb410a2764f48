package finance

import "github.com/theirongolddev/wealthtwin/internal/model"

// AdviceRule is one threshold check. Rules are independent of each other.
type AdviceRule struct {
	ID       string
	Severity model.Severity
	Message  string
	Applies  func(p model.FinancialProfile, m model.DerivedMetrics) bool
}

// Advice thresholds.
const (
	MinSavingsRate        = 0.20
	MaxDebtToIncome       = 0.40
	MinEmergencyFundShare = 0.10
	MaxEmergencyFundShare = 0.20
	MaxCryptoShare        = 0.50
)

// DefaultAdviceRules is evaluated in this order; output follows it.
var DefaultAdviceRules = []AdviceRule{
	{
		ID:       "overspending",
		Severity: model.SeverityCritical,
		Message:  "Your expenses exceed your income. Cut discretionary spending before anything else.",
		Applies: func(p model.FinancialProfile, m model.DerivedMetrics) bool {
			return m.TotalExpenses > p.Income
		},
	},
	{
		ID:       "low-savings-rate",
		Severity: model.SeverityWarning,
		Message:  "You are saving less than 20% of your income. Aim for at least 20%.",
		Applies: func(_ model.FinancialProfile, m model.DerivedMetrics) bool {
			return m.SavingsRate < MinSavingsRate
		},
	},
	{
		ID:       "high-debt",
		Severity: model.SeverityCritical,
		Message:  "Loan repayments (EMI) take more than 40% of your income. Avoid new debt and prepay where you can.",
		Applies: func(_ model.FinancialProfile, m model.DerivedMetrics) bool {
			return m.DebtToIncomeRatio > MaxDebtToIncome
		},
	},
	{
		ID:       "thin-emergency-fund",
		Severity: model.SeverityWarning,
		Message:  "Your emergency fund contribution is below 10% of income. Build a cushion first.",
		Applies: func(p model.FinancialProfile, _ model.DerivedMetrics) bool {
			return p.EmergencyFund < MinEmergencyFundShare*p.Income
		},
	},
	{
		ID:       "idle-emergency-fund",
		Severity: model.SeverityInfo,
		Message:  "More than 20% of income goes to the emergency fund. Consider investing the surplus.",
		Applies: func(p model.FinancialProfile, _ model.DerivedMetrics) bool {
			return p.EmergencyFund > MaxEmergencyFundShare*p.Income
		},
	},
	{
		ID:       "crypto-heavy",
		Severity: model.SeverityWarning,
		Message:  "Crypto is more than half of your savings. Diversify to reduce risk.",
		Applies: func(p model.FinancialProfile, m model.DerivedMetrics) bool {
			return p.Crypto > MaxCryptoShare*m.NetSavings
		},
	},
	{
		ID:       "savings-goal-gap",
		Severity: model.SeverityInfo,
		Message:  "You are short of your monthly savings goal.",
		Applies: func(p model.FinancialProfile, m model.DerivedMetrics) bool {
			return p.SavingsGoal > 0 && m.NetSavings < p.SavingsGoal
		},
	},
}

// MatchAdvice returns every rule in rules that applies, in rule order.
func MatchAdvice(rules []AdviceRule, p model.FinancialProfile, m model.DerivedMetrics) []model.Advice {
	var out []model.Advice
	for _, r := range rules {
		if r.Applies(p, m) {
			out = append(out, model.Advice{ID: r.ID, Severity: r.Severity, Message: r.Message})
		}
	}
	return out
}

// EvaluateAdvice returns the messages of every default rule that fires.
// An empty result means no rule fired.
func EvaluateAdvice(p model.FinancialProfile, m model.DerivedMetrics) []string {
	matched := MatchAdvice(DefaultAdviceRules, p, m)
	msgs := make([]string, 0, len(matched))
	for _, a := range matched {
		msgs = append(msgs, a.Message)
	}
	return msgs
}
