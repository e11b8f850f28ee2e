package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/planora/budget-api/internal/models"
)

const testRulesYAML = `
seasons:
  calendar:
    peak_months: [6, 7]
    shoulder_months: [5]
    off_peak_months: [1]
  multipliers:
    peak: 1.25
    shoulder: 1.05
    off_peak: 0.85
    standard: 1.0
special_dates:
  - month: 12
    day: 31
    name: "New Year's Eve"
    multiplier: 1.4
locations:
  city_tiers:
    testville: high_cost
  tier_multipliers:
    high_cost: 1.2
    moderate_cost: 1.0
  service_adjustments:
    venue: 1.15
scale:
  base_attendees: 100
  min_attendee_factor: 0.5
  included_hours: 4
  per_hour_uplift: 0.1
confidence:
  source_reliability:
    vendor_quote: 0.95
    market_survey: 0.8
  unknown_source_reliability: 0.5
  source_weight: 0.6
  freshness_weight: 0.4
  freshness_half_life_days: 180
  approximate_location_penalty: 0.9
categories:
  wedding: [venue, catering]
suggestions:
  package_deal_threshold: 9000
  package_deal_rate: 0.15
base_prices:
  - category: venue
    event_type: wedding
    min: 1000
    max: 3000
    average: 2000
    source: vendor_quote
    age_days: 10
  - category: catering
    event_type: wedding
    min: 1500
    max: 3500
    average: 2500
    source: market_survey
    age_days: 30
`

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write rules file: %v", err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	r, warnings, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings for defaults, got %v", warnings)
	}
	if _, ok := r.CategoriesFor(models.EventTypeWedding); !ok {
		t.Error("defaults should know the wedding event type")
	}
}

func TestLoad_ReadsYAMLFile(t *testing.T) {
	path := writeRulesFile(t, testRulesYAML)

	r, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if got := r.Seasons.Multipliers[models.SeasonPeak]; got != 1.25 {
		t.Errorf("expected peak multiplier 1.25 from file, got %v", got)
	}
	if tier, ok := r.Locations.CityTiers["testville"]; !ok || tier != models.CostHigh {
		t.Errorf("expected testville to map to high_cost, got %v ok=%v", tier, ok)
	}
	cats, ok := r.CategoriesFor(models.EventTypeWedding)
	if !ok || len(cats) != 2 {
		t.Fatalf("expected 2 wedding categories from file, got %v", cats)
	}

	// The file replaces the defaults wholesale
	if _, ok := r.CategoriesFor(models.EventTypeGala); ok {
		t.Error("gala is not in the file and should not survive from the defaults")
	}
	if len(r.Packages) != 0 {
		t.Errorf("no packages in the file, got %d", len(r.Packages))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, _, err := Load("/nonexistent/rules.yml"); err == nil {
		t.Error("expected an error for a missing rules file")
	}
}

func TestLoad_InvalidTablesRejected(t *testing.T) {
	path := writeRulesFile(t, `
seasons:
  multipliers:
    peak: -2
scale:
  min_attendee_factor: 0.5
`)

	if _, _, err := Load(path); err == nil {
		t.Error("expected validation to reject a negative multiplier")
	}
}
