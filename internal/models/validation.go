package models

// WarningType distinguishes advisory severities in a validation result
type WarningType string

const (
	WarningTypeError   WarningType = "error"
	WarningTypeWarning WarningType = "warning"
	WarningTypeInfo    WarningType = "info"
)

// ImpactLevel grades how strongly an issue or suggestion affects the budget
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "high"
	ImpactMedium ImpactLevel = "medium"
	ImpactLow    ImpactLevel = "low"
)

// ValidationWarning is a single advisory finding from the scorer
type ValidationWarning struct {
	Type       WarningType `json:"type"`
	Message    string      `json:"message"`
	Impact     ImpactLevel `json:"impact"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// BudgetHealth is the composite 0-100 quality metric with its status band.
// Factors lists the deductions that produced the score.
type BudgetHealth struct {
	Score   int      `json:"score"`
	Status  string   `json:"status"`
	Factors []string `json:"factors"`
}

// ComplianceStatus summarizes whether the plan meets scoring thresholds
type ComplianceStatus struct {
	IndustryStandards bool     `json:"industry_standards"`
	BestPractices     bool     `json:"best_practices"`
	RiskFactors       []string `json:"risk_factors"`
}

// ValidationResult is the full advisory output for a plan.
// IsValid means no error-type warnings were found; the scorer itself
// never fails on a well-formed plan.
type ValidationResult struct {
	IsValid    bool                `json:"is_valid"`
	Warnings   []ValidationWarning `json:"warnings"`
	Health     BudgetHealth        `json:"health"`
	Compliance ComplianceStatus    `json:"compliance"`
}
