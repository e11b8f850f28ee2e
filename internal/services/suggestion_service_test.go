package services

import (
	"context"
	"strings"
	"testing"

	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/rules"
)

func suggestionPlan(total float64, cats ...models.ServiceCategory) *models.BudgetPlan {
	plan := &models.BudgetPlan{
		EventType:   models.EventTypeWedding,
		TotalBudget: money(total),
		Seasonal: &models.SeasonalAdjustment{
			SeasonType:            models.SeasonPeak,
			SeasonalMultiplier:    1.3,
			SpecialDateMultiplier: 1.0,
			SpecialDateReason:     StandardPricingReason,
			FinalMultiplier:       1.3,
		},
	}
	for _, c := range cats {
		plan.Recommendations = append(plan.Recommendations, models.BudgetRecommendation{
			Category:          c,
			RecommendedAmount: money(total / float64(len(cats))),
		})
	}
	return plan
}

func suggestionIDs(suggestions []models.CostSavingSuggestion) []string {
	ids := make([]string, len(suggestions))
	for i, s := range suggestions {
		ids[i] = s.ID
	}
	return ids
}

func TestGenerateSuggestions_LargePlan(t *testing.T) {
	svc := NewSuggestionService(rules.Default())
	plan := suggestionPlan(12000,
		models.CategoryVenue, models.CategoryCatering,
		models.CategoryPhotography, models.CategoryDecorations)

	suggestions, potential := svc.Generate(context.Background(), plan)

	want := []string{"package-deals", "off-season-timing", "diy-decorations"}
	got := suggestionIDs(suggestions)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rule order must be stable: expected %v, got %v", want, got)
		}
	}

	// 15% of 12000
	if !suggestions[0].PotentialSavings.Equal(money(1800)) {
		t.Errorf("expected package-deal savings 1800, got %s", suggestions[0].PotentialSavings)
	}
	// 20% of 12000
	if !suggestions[1].PotentialSavings.Equal(money(2400)) {
		t.Errorf("expected off-season savings 2400, got %s", suggestions[1].PotentialSavings)
	}
	// 5% of 12000
	if !suggestions[2].PotentialSavings.Equal(money(600)) {
		t.Errorf("expected DIY savings 600, got %s", suggestions[2].PotentialSavings)
	}

	if !potential.Equal(money(4800)) {
		t.Errorf("expected total potential 4800, got %s", potential)
	}
}

func TestGenerateSuggestions_SmallPlanQuiet(t *testing.T) {
	svc := NewSuggestionService(rules.Default())
	plan := suggestionPlan(4000, models.CategoryVenue, models.CategoryCatering)

	suggestions, potential := svc.Generate(context.Background(), plan)
	if len(suggestions) != 0 {
		t.Errorf("expected no suggestions for a small plan, got %v", suggestionIDs(suggestions))
	}
	if !potential.IsZero() {
		t.Errorf("expected zero potential, got %s", potential)
	}
}

func TestGenerateSuggestions_OffPeakPlanSkipsReschedule(t *testing.T) {
	svc := NewSuggestionService(rules.Default())
	plan := suggestionPlan(6000, models.CategoryVenue, models.CategoryCatering)
	plan.Seasonal.SeasonType = models.SeasonOffPeak

	suggestions, _ := svc.Generate(context.Background(), plan)
	for _, s := range suggestions {
		if s.ID == "off-season-timing" {
			t.Error("an off-peak plan should not be told to move off-peak")
		}
	}
}

func TestGenerateSuggestions_NoSeasonalStillSuggestsOffSeason(t *testing.T) {
	svc := NewSuggestionService(rules.Default())
	plan := suggestionPlan(6000, models.CategoryVenue, models.CategoryCatering)
	plan.Seasonal = nil

	suggestions, _ := svc.Generate(context.Background(), plan)
	found := false
	for _, s := range suggestions {
		if s.ID == "off-season-timing" {
			found = true
		}
	}
	if !found {
		t.Error("without season info the reschedule suggestion should still fire")
	}
}

func TestGenerateSuggestions_AppliedPackageSuppressesDeals(t *testing.T) {
	svc := NewSuggestionService(rules.Default())
	plan := suggestionPlan(12000, models.CategoryVenue, models.CategoryCatering)
	plan.Packages = []models.AppliedPackage{{Package: models.PackageDeal{ID: 1}}}

	suggestions, _ := svc.Generate(context.Background(), plan)
	for _, s := range suggestions {
		if s.ID == "package-deals" {
			t.Error("a plan with a package applied should not be offered package deals")
		}
	}
}

func TestGenerateSuggestions_DateShiftOnPremiumDate(t *testing.T) {
	svc := NewSuggestionService(rules.Default())
	plan := suggestionPlan(9000, models.CategoryVenue, models.CategoryCatering)
	plan.Seasonal.SpecialDateMultiplier = 1.5
	plan.Seasonal.SpecialDateReason = "New Year's Eve"

	suggestions, _ := svc.Generate(context.Background(), plan)

	var dateShift *models.CostSavingSuggestion
	for i := range suggestions {
		if suggestions[i].ID == "date-shift" {
			dateShift = &suggestions[i]
		}
	}
	if dateShift == nil {
		t.Fatal("expected a date-shift suggestion on a premium date")
	}
	if !strings.Contains(dateShift.Title, "New Year's Eve") {
		t.Errorf("the suggestion should name the premium date: %q", dateShift.Title)
	}
	if !dateShift.PotentialSavings.Equal(money(900)) {
		t.Errorf("expected 10%% of the total, got %s", dateShift.PotentialSavings)
	}
}

func TestGenerateSuggestions_ConsolidationOnManyCategories(t *testing.T) {
	svc := NewSuggestionService(rules.Default())
	plan := suggestionPlan(3000,
		models.CategoryVenue, models.CategoryCatering, models.CategoryPhotography,
		models.CategoryMusic, models.CategoryFlowers, models.CategoryTransportation)

	suggestions, _ := svc.Generate(context.Background(), plan)
	found := false
	for _, s := range suggestions {
		if s.ID == "vendor-consolidation" {
			found = true
			if !s.PotentialSavings.Equal(money(240)) {
				t.Errorf("expected 8%% of the total, got %s", s.PotentialSavings)
			}
		}
	}
	if !found {
		t.Error("expected the consolidation suggestion with six categories")
	}
}

func TestGenerateSuggestions_EmptyPlan(t *testing.T) {
	svc := NewSuggestionService(rules.Default())

	suggestions, potential := svc.Generate(context.Background(), nil)
	if suggestions == nil || len(suggestions) != 0 {
		t.Errorf("expected an empty non-nil slice, got %v", suggestions)
	}
	if !potential.IsZero() {
		t.Errorf("expected zero potential, got %s", potential)
	}

	suggestions, _ = svc.Generate(context.Background(), &models.BudgetPlan{TotalBudget: money(20000)})
	if len(suggestions) != 0 {
		t.Errorf("a plan without recommendations gets no suggestions, got %v", suggestionIDs(suggestions))
	}
}
