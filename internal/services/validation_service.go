package services

import (
	"fmt"
	"time"

	"github.com/planora/budget-api/internal/models"
	"github.com/shopspring/decimal"
)

// Scoring weights and thresholds. These are part of the advisory contract
// surfaced to clients, not market data, so they are compiled in rather than
// carried in the rules file.
const (
	lowBudgetFloor      = 1000
	largeBudgetCeiling  = 50000
	packageExpectedOver = 5000

	breakdownTolerance = 0.10
	savingsReviewRatio = 0.30
	errorDeduction     = 20
	warningDeduction   = 10
	infoDeduction      = 5
	noBreakdownPenalty = 30
	noTrackingPenalty  = 20
	noPackagesPenalty  = 10
	excellentThreshold = 90
	goodThreshold      = 70
	fairThreshold      = 50
	bestPracticeScore  = 80
	industryScore      = 70
)

// ValidationService scores a budget plan for structural completeness and
// plausibility. Purely advisory: it never mutates the plan and never fails
// on a well-formed one.
type ValidationService struct{}

// NewValidationService creates a new ValidationService
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// Validate runs every check against the plan and produces the warning list,
// the 0-100 health score with its deduction factors, and the compliance
// summary.
func (s *ValidationService) Validate(plan *models.BudgetPlan) *models.ValidationResult {
	defer TrackTime("ValidatePlan", time.Now())

	if plan == nil {
		plan = &models.BudgetPlan{}
	}

	warnings := s.collectWarnings(plan)
	health := s.scoreHealth(plan, warnings)

	result := &models.ValidationResult{
		IsValid:  true,
		Warnings: warnings,
		Health:   health,
		Compliance: models.ComplianceStatus{
			IndustryStandards: health.Score >= industryScore,
			BestPractices:     health.Score >= bestPracticeScore,
			RiskFactors:       []string{},
		},
	}

	for _, w := range warnings {
		if w.Type == models.WarningTypeError {
			result.IsValid = false
		}
		if w.Type == models.WarningTypeWarning && w.Impact == models.ImpactHigh {
			result.Compliance.RiskFactors = append(result.Compliance.RiskFactors, w.Message)
		}
	}

	return result
}

func (s *ValidationService) collectWarnings(plan *models.BudgetPlan) []models.ValidationWarning {
	warnings := []models.ValidationWarning{}
	total := plan.TotalBudget

	if total.LessThan(decimal.NewFromInt(lowBudgetFloor)) {
		warnings = append(warnings, models.ValidationWarning{
			Type:       models.WarningTypeWarning,
			Message:    fmt.Sprintf("total budget $%s is below the realistic floor for a full event", total.StringFixed(2)),
			Impact:     models.ImpactHigh,
			Suggestion: "Reduce scope or raise the budget before booking vendors",
		})
	}

	if total.GreaterThan(decimal.NewFromInt(largeBudgetCeiling)) {
		warnings = append(warnings, models.ValidationWarning{
			Type:       models.WarningTypeInfo,
			Message:    fmt.Sprintf("total budget $%s is in professional-planner territory", total.StringFixed(2)),
			Impact:     models.ImpactLow,
			Suggestion: "Consider a professional planner to manage vendor contracts at this scale",
		})
	}

	if len(plan.Recommendations) == 0 {
		warnings = append(warnings, models.ValidationWarning{
			Type:       models.WarningTypeError,
			Message:    "plan has no per-category recommendations",
			Impact:     models.ImpactHigh,
			Suggestion: "Recompute the recommendation before relying on this plan",
		})
	}

	// The breakdown should reconcile with the headline number within
	// tolerance; drift usually means stale persisted amounts.
	if len(plan.Recommendations) > 0 {
		diff := plan.BreakdownTotal().Sub(total).Abs()
		if diff.GreaterThan(total.Mul(decimal.NewFromFloat(breakdownTolerance)).Abs()) {
			warnings = append(warnings, models.ValidationWarning{
				Type:       models.WarningTypeWarning,
				Message:    fmt.Sprintf("category breakdown differs from the total budget by $%s", diff.StringFixed(2)),
				Impact:     models.ImpactMedium,
				Suggestion: "Regenerate the plan so the breakdown and total agree",
			})
		}
	}

	// Savings ratio is measured against the pre-package total.
	if plan.PackageSavings.IsPositive() {
		original := plan.TotalBudget.Add(plan.PackageSavings)
		if original.IsPositive() && plan.PackageSavings.Div(original).GreaterThan(decimal.NewFromFloat(savingsReviewRatio)) {
			warnings = append(warnings, models.ValidationWarning{
				Type:       models.WarningTypeInfo,
				Message:    fmt.Sprintf("package savings of $%s exceed %d%% of the original budget", plan.PackageSavings.StringFixed(2), int(savingsReviewRatio*100)),
				Impact:     models.ImpactLow,
				Suggestion: "Verify the package pricing covers the same service level",
			})
		}
	}

	if len(plan.Tracking) > 0 {
		over := 0
		for _, e := range plan.Tracking {
			if e.OverBudget() {
				over++
			}
		}
		if over*2 > len(plan.Tracking) {
			warnings = append(warnings, models.ValidationWarning{
				Type:       models.WarningTypeWarning,
				Message:    fmt.Sprintf("%d of %d tracked categories are over their estimates", over, len(plan.Tracking)),
				Impact:     models.ImpactHigh,
				Suggestion: "Rebalance the remaining categories before more spend lands",
			})
		}
	}

	return warnings
}

// scoreHealth starts from 100 and applies per-finding and structural
// deductions, clamped to [0, 100].
func (s *ValidationService) scoreHealth(plan *models.BudgetPlan, warnings []models.ValidationWarning) models.BudgetHealth {
	score := 100
	factors := []string{}

	var errCount, warnCount, infoCount int
	for _, w := range warnings {
		switch w.Type {
		case models.WarningTypeError:
			errCount++
		case models.WarningTypeWarning:
			warnCount++
		case models.WarningTypeInfo:
			infoCount++
		}
	}

	if errCount > 0 {
		score -= errCount * errorDeduction
		factors = append(factors, fmt.Sprintf("%d error finding(s) (-%d)", errCount, errCount*errorDeduction))
	}
	if warnCount > 0 {
		score -= warnCount * warningDeduction
		factors = append(factors, fmt.Sprintf("%d warning finding(s) (-%d)", warnCount, warnCount*warningDeduction))
	}
	if infoCount > 0 {
		score -= infoCount * infoDeduction
		factors = append(factors, fmt.Sprintf("%d info finding(s) (-%d)", infoCount, infoCount*infoDeduction))
	}

	if len(plan.Recommendations) == 0 {
		score -= noBreakdownPenalty
		factors = append(factors, fmt.Sprintf("no per-category breakdown (-%d)", noBreakdownPenalty))
	}
	if len(plan.Tracking) == 0 {
		score -= noTrackingPenalty
		factors = append(factors, fmt.Sprintf("no spend tracking recorded (-%d)", noTrackingPenalty))
	}
	if len(plan.Packages) == 0 && plan.TotalBudget.GreaterThan(decimal.NewFromInt(packageExpectedOver)) {
		score -= noPackagesPenalty
		factors = append(factors, fmt.Sprintf("no package deals on a budget this size (-%d)", noPackagesPenalty))
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return models.BudgetHealth{
		Score:   score,
		Status:  healthStatus(score),
		Factors: factors,
	}
}

func healthStatus(score int) string {
	switch {
	case score >= excellentThreshold:
		return "excellent"
	case score >= goodThreshold:
		return "good"
	case score >= fairThreshold:
		return "fair"
	default:
		return "poor"
	}
}
