package services

import (
	"context"
	"fmt"
	"time"

	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/rules"
	"github.com/shopspring/decimal"
)

// SuggestionService generates cost-saving suggestions from a budget plan.
// Rules are evaluated in a fixed order and do not depend on each other;
// the output preserves that order.
type SuggestionService struct {
	rules *rules.Rules
}

// NewSuggestionService creates a new SuggestionService
func NewSuggestionService(r *rules.Rules) *SuggestionService {
	return &SuggestionService{rules: r}
}

// Generate evaluates every suggestion rule against the plan and returns the
// ones that fire, plus the summed potential savings.
func (s *SuggestionService) Generate(ctx context.Context, plan *models.BudgetPlan) ([]models.CostSavingSuggestion, decimal.Decimal) {
	defer TrackTime("GenerateSuggestions", time.Now())

	suggestions := []models.CostSavingSuggestion{}
	if plan == nil || len(plan.Recommendations) == 0 {
		return suggestions, decimal.Zero
	}

	sr := s.rules.Suggestions
	total := plan.TotalBudget

	if sug, ok := s.packageDeals(plan, sr, total); ok {
		suggestions = append(suggestions, sug)
	}
	if sug, ok := s.offSeason(plan, sr, total); ok {
		suggestions = append(suggestions, sug)
	}
	if sug, ok := s.diyDecorations(plan, sr, total); ok {
		suggestions = append(suggestions, sug)
	}
	if sug, ok := s.vendorConsolidation(plan, sr, total); ok {
		suggestions = append(suggestions, sug)
	}
	if sug, ok := s.dateShift(plan, sr, total); ok {
		suggestions = append(suggestions, sug)
	}

	potential := decimal.Zero
	for _, sug := range suggestions {
		potential = potential.Add(sug.PotentialSavings)
	}
	return suggestions, potential
}

// packageDeals fires on large plans with no package applied yet
func (s *SuggestionService) packageDeals(plan *models.BudgetPlan, sr rules.SuggestionRules, total decimal.Decimal) (models.CostSavingSuggestion, bool) {
	if !total.GreaterThan(decimal.NewFromFloat(sr.PackageDealThreshold)) || len(plan.Packages) > 0 {
		return models.CostSavingSuggestion{}, false
	}
	return models.CostSavingSuggestion{
		ID:               "package-deals",
		Category:         "packages",
		Title:            "Bundle services through a package deal",
		Description:      fmt.Sprintf("Budgets above $%.0f usually qualify for bundled vendor packages. Applying one typically cuts the bundled categories by %.0f%%.", sr.PackageDealThreshold, sr.PackageDealRate*100),
		PotentialSavings: total.Mul(decimal.NewFromFloat(sr.PackageDealRate)).Round(2),
		Difficulty:       models.DifficultyEasy,
		Impact:           models.ImpactHigh,
		TimeToImplement:  "1-2 weeks",
		Requirements:     []string{"Flexibility on individual vendor choice"},
		Risks:            []string{"Less control over each bundled vendor"},
		Alternatives:     []string{"Negotiate multi-service discounts directly"},
	}, true
}

// offSeason fires on mid-size plans not already scheduled off-peak
func (s *SuggestionService) offSeason(plan *models.BudgetPlan, sr rules.SuggestionRules, total decimal.Decimal) (models.CostSavingSuggestion, bool) {
	if !total.GreaterThan(decimal.NewFromFloat(sr.OffSeasonThreshold)) {
		return models.CostSavingSuggestion{}, false
	}
	if plan.Seasonal != nil && plan.Seasonal.SeasonType == models.SeasonOffPeak {
		return models.CostSavingSuggestion{}, false
	}
	return models.CostSavingSuggestion{
		ID:               "off-season-timing",
		Category:         "timing",
		Title:            "Move the event to the off-peak season",
		Description:      fmt.Sprintf("Venue and vendor rates drop sharply outside the peak months. Rescheduling off-peak saves around %.0f%% across the budget.", sr.OffSeasonRate*100),
		PotentialSavings: total.Mul(decimal.NewFromFloat(sr.OffSeasonRate)).Round(2),
		Difficulty:       models.DifficultyHard,
		Impact:           models.ImpactHigh,
		TimeToImplement:  "Depends on date flexibility",
		Requirements:     []string{"Date flexibility", "Guest availability off-season"},
		Risks:            []string{"Weather constraints in off-peak months"},
		Alternatives:     []string{"Shoulder-season dates for a smaller discount"},
	}, true
}

// diyDecorations fires whenever the plan budgets for decorations
func (s *SuggestionService) diyDecorations(plan *models.BudgetPlan, sr rules.SuggestionRules, total decimal.Decimal) (models.CostSavingSuggestion, bool) {
	if _, ok := plan.Recommendation(models.CategoryDecorations); !ok {
		return models.CostSavingSuggestion{}, false
	}
	return models.CostSavingSuggestion{
		ID:               "diy-decorations",
		Category:         "decorations",
		Title:            "Handle decorations yourself",
		Description:      fmt.Sprintf("DIY centerpieces, signage and simple installs replace most of the decorator fee, worth about %.0f%% of the total budget.", sr.DIYDecorationsRate*100),
		PotentialSavings: total.Mul(decimal.NewFromFloat(sr.DIYDecorationsRate)).Round(2),
		Difficulty:       models.DifficultyMedium,
		Impact:           models.ImpactLow,
		TimeToImplement:  "2-4 weeks of lead time",
		Requirements:     []string{"Volunteer time for setup and teardown"},
		Risks:            []string{"Setup time on the event day"},
		Alternatives:     []string{"Rent decor instead of buying"},
	}, true
}

// vendorConsolidation fires on plans spread across many service categories
func (s *SuggestionService) vendorConsolidation(plan *models.BudgetPlan, sr rules.SuggestionRules, total decimal.Decimal) (models.CostSavingSuggestion, bool) {
	if len(plan.Recommendations) < sr.ConsolidationMinCategories {
		return models.CostSavingSuggestion{}, false
	}
	return models.CostSavingSuggestion{
		ID:               "vendor-consolidation",
		Category:         "vendors",
		Title:            "Consolidate vendors across categories",
		Description:      fmt.Sprintf("With %d service categories in play, a full-service vendor covering several of them usually prices %.0f%% under separate bookings.", len(plan.Recommendations), sr.ConsolidationRate*100),
		PotentialSavings: total.Mul(decimal.NewFromFloat(sr.ConsolidationRate)).Round(2),
		Difficulty:       models.DifficultyMedium,
		Impact:           models.ImpactMedium,
		TimeToImplement:  "2-3 weeks",
		Requirements:     []string{"Vendors offering multi-category coverage locally"},
		Risks:            []string{"Single point of failure on the event day"},
		Alternatives:     []string{"Consolidate only catering and staffing"},
	}, true
}

// dateShift fires when the chosen date carries a special-date premium
func (s *SuggestionService) dateShift(plan *models.BudgetPlan, sr rules.SuggestionRules, total decimal.Decimal) (models.CostSavingSuggestion, bool) {
	if !total.GreaterThan(decimal.NewFromFloat(sr.DateShiftThreshold)) {
		return models.CostSavingSuggestion{}, false
	}
	if plan.Seasonal == nil || plan.Seasonal.SpecialDateMultiplier <= 1.0 {
		return models.CostSavingSuggestion{}, false
	}
	return models.CostSavingSuggestion{
		ID:               "date-shift",
		Category:         "timing",
		Title:            fmt.Sprintf("Shift the date off %s", plan.Seasonal.SpecialDateReason),
		Description:      fmt.Sprintf("The chosen date carries a %.0f%% premium (%s). Moving a few days off it saves roughly %.0f%% overall.", (plan.Seasonal.SpecialDateMultiplier-1)*100, plan.Seasonal.SpecialDateReason, sr.DateShiftRate*100),
		PotentialSavings: total.Mul(decimal.NewFromFloat(sr.DateShiftRate)).Round(2),
		Difficulty:       models.DifficultyMedium,
		Impact:           models.ImpactMedium,
		TimeToImplement:  "Immediate once a new date clears",
		Requirements:     []string{"Date flexibility within the same season"},
		Risks:            []string{"Venue availability on nearby dates"},
		Alternatives:     []string{"Keep the date and trim premium categories"},
	}, true
}
