package rules

import (
	"math"
	"testing"
	"time"

	"github.com/planora/budget-api/internal/models"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func assertClose(t *testing.T, label string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s: expected %v, got %v", label, want, got)
	}
}

func TestDefaults_ValidateClean(t *testing.T) {
	warnings, err := Default().Validate()
	if err != nil {
		t.Fatalf("default rules failed validation: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings from default rules, got %v", warnings)
	}
}

func TestSeasonRules_Classify(t *testing.T) {
	seasons := Default().Seasons

	cases := []struct {
		date time.Time
		want models.SeasonType
	}{
		{date(2026, 6, 20), models.SeasonPeak},
		{date(2026, 12, 31), models.SeasonPeak},
		{date(2026, 4, 10), models.SeasonShoulder},
		{date(2026, 10, 5), models.SeasonShoulder},
		{date(2026, 2, 14), models.SeasonOffPeak},
		{date(2026, 11, 3), models.SeasonStandard},
	}
	for _, c := range cases {
		if got := seasons.Classify(c.date, ""); got != c.want {
			t.Errorf("Classify(%s): expected %s, got %s", c.date.Format("2006-01-02"), c.want, got)
		}
	}
}

func TestSeasonRules_RegionOverride(t *testing.T) {
	seasons := SeasonRules{
		Calendar: SeasonCalendar{PeakMonths: []int{6}},
		RegionOverrides: map[string]SeasonCalendar{
			// Inverted calendar: summer is the slow season in this region
			"southwest": {PeakMonths: []int{1, 2}, OffPeakMonths: []int{6, 7, 8}},
		},
		Multipliers: Default().Seasons.Multipliers,
	}

	if got := seasons.Classify(date(2026, 6, 20), "Southwest"); got != models.SeasonOffPeak {
		t.Errorf("expected off_peak under the regional calendar, got %s", got)
	}
	if got := seasons.Classify(date(2026, 6, 20), "midwest"); got != models.SeasonPeak {
		t.Errorf("expected peak under the default calendar, got %s", got)
	}
}

func TestSeasonRules_Multiplier(t *testing.T) {
	seasons := Default().Seasons

	assertClose(t, "peak", seasons.Multiplier(models.SeasonPeak), 1.3, 1e-9)
	assertClose(t, "shoulder", seasons.Multiplier(models.SeasonShoulder), 1.1, 1e-9)
	assertClose(t, "off_peak", seasons.Multiplier(models.SeasonOffPeak), 0.8, 1e-9)
	assertClose(t, "standard", seasons.Multiplier(models.SeasonStandard), 1.0, 1e-9)
	assertClose(t, "unknown tier", seasons.Multiplier(models.SeasonType("monsoon")), 1.0, 1e-9)
}

func TestSpecialDateFor(t *testing.T) {
	r := Default()

	sd, ok := r.SpecialDateFor(date(2026, 12, 31))
	if !ok {
		t.Fatal("expected a special date on December 31")
	}
	if sd.Name != "New Year's Eve" {
		t.Errorf("expected New Year's Eve, got %q", sd.Name)
	}
	assertClose(t, "NYE multiplier", sd.Multiplier, 1.5, 1e-9)

	if _, ok := r.SpecialDateFor(date(2026, 6, 15)); ok {
		t.Error("expected no special date on June 15")
	}
}

func TestLocationRules_TierFor(t *testing.T) {
	locations := Default().Locations

	tier, matched := locations.TierFor(models.Location{City: "Seattle"})
	if !matched || tier != models.CostHigh {
		t.Errorf("Seattle: expected high_cost matched, got %s matched=%v", tier, matched)
	}

	// Region is the fallback when the city is unrecognized
	tier, matched = locations.TierFor(models.Location{City: "Spokane", Region: "rural"})
	if !matched || tier != models.CostLow {
		t.Errorf("rural fallback: expected low_cost matched, got %s matched=%v", tier, matched)
	}

	tier, matched = locations.TierFor(models.Location{City: "Atlantis"})
	if matched {
		t.Error("unknown city should not report a match")
	}
	if tier != models.CostModerate {
		t.Errorf("unknown city: expected the moderate_cost default, got %s", tier)
	}

	tier, matched = locations.TierFor(models.Location{})
	if matched || tier != models.CostModerate {
		t.Errorf("empty location: expected moderate_cost unmatched, got %s matched=%v", tier, matched)
	}
}

func TestLocationRules_Multipliers(t *testing.T) {
	locations := Default().Locations

	assertClose(t, "high tier", locations.TierMultiplier(models.CostHigh), 1.3, 1e-9)
	assertClose(t, "low tier", locations.TierMultiplier(models.CostLow), 0.8, 1e-9)
	assertClose(t, "unknown tier", locations.TierMultiplier(models.CostCategory("lunar")), 1.0, 1e-9)

	assertClose(t, "venue adjustment", locations.ServiceAdjustment(models.CategoryVenue), 1.2, 1e-9)
	assertClose(t, "catering default", locations.ServiceAdjustment(models.CategoryCatering), 1.0, 1e-9)
}

func TestScaleRules_Factor(t *testing.T) {
	scale := Default().Scale

	assertClose(t, "baseline", scale.Factor(100, 4), 1.0, 1e-9)
	assertClose(t, "extra hours", scale.Factor(100, 6), 1.2, 1e-9)
	assertClose(t, "double attendees", scale.Factor(200, 4), 2.0, 1e-9)
	assertClose(t, "attendee floor", scale.Factor(10, 4), 0.5, 1e-9)
	assertClose(t, "short event", scale.Factor(100, 2), 1.0, 1e-9)
}

func TestScaleRules_FactorMonotonic(t *testing.T) {
	scale := Default().Scale

	prev := 0.0
	for attendees := 0; attendees <= 400; attendees += 25 {
		f := scale.Factor(attendees, 4)
		if f < prev {
			t.Fatalf("factor decreased at %d attendees: %v < %v", attendees, f, prev)
		}
		prev = f
	}

	prev = 0.0
	for hours := 0.0; hours <= 14; hours += 0.5 {
		f := scale.Factor(150, hours)
		if f < prev {
			t.Fatalf("factor decreased at %.1f hours: %v < %v", hours, f, prev)
		}
		prev = f
	}
}

func TestConfidenceRules_Reliability(t *testing.T) {
	conf := Default().Confidence

	assertClose(t, "vendor quote", conf.Reliability(models.SourceVendorQuote), 0.95, 1e-9)
	assertClose(t, "industry default", conf.Reliability(models.SourceIndustryDefault), 0.60, 1e-9)
	assertClose(t, "unknown source", conf.Reliability(models.PriceSource("rumor")), 0.50, 1e-9)
}

func TestValidate_RejectsBrokenTables(t *testing.T) {
	r := Default()
	r.Seasons.Multipliers[models.SeasonPeak] = -1
	if _, err := r.Validate(); err == nil {
		t.Error("expected an error for a negative seasonal multiplier")
	}

	r = Default()
	r.SpecialDates = append(r.SpecialDates, SpecialDate{Month: 13, Day: 1, Name: "Undecember", Multiplier: 1.1})
	if _, err := r.Validate(); err == nil {
		t.Error("expected an error for month 13")
	}

	r = Default()
	r.Packages[0].DiscountPercent = 140
	if _, err := r.Validate(); err == nil {
		t.Error("expected an error for a discount above 100")
	}

	r = Default()
	r.Categories[models.EventTypeWedding] = nil
	if _, err := r.Validate(); err == nil {
		t.Error("expected an error for an empty category set")
	}
}

func TestValidate_WarnsOnSuspiciousTables(t *testing.T) {
	r := Default()
	r.Seasons.Multipliers[models.SeasonPeak] = 2.5

	warnings, err := r.Validate()
	if err != nil {
		t.Fatalf("a high multiplier should warn, not fail: %v", err)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning for an unusually high multiplier")
	}

	r = Default()
	r.BasePrices[0].Min = r.BasePrices[0].Max + 1
	warnings, err = r.Validate()
	if err != nil {
		t.Fatalf("min > max should warn, not fail: %v", err)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning for min > max")
	}
}
