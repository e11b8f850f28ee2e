// Package rules holds the fixed lookup tables the budget engine consumes:
// season calendars, special dates, location cost tiers, service adjustments,
// the attendee/duration scale curve, confidence weighting, suggestion
// thresholds, and the seed catalog used offline. Tables are immutable after
// load and injected into services at construction.
package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/planora/budget-api/internal/models"
)

// SeasonCalendar maps calendar months (1-12) to demand tiers.
// Months absent from all three lists classify as standard.
type SeasonCalendar struct {
	PeakMonths     []int `mapstructure:"peak_months"`
	ShoulderMonths []int `mapstructure:"shoulder_months"`
	OffPeakMonths  []int `mapstructure:"off_peak_months"`
}

// SeasonRules holds the season calendar, per-tier multipliers, and optional
// per-region calendar overrides (keyed by lowercase region name).
type SeasonRules struct {
	Calendar        SeasonCalendar                `mapstructure:"calendar"`
	Multipliers     map[models.SeasonType]float64 `mapstructure:"multipliers"`
	RegionOverrides map[string]SeasonCalendar     `mapstructure:"region_overrides"`
}

// SpecialDate is a fixed-date pricing override (holidays, major events)
type SpecialDate struct {
	Month      int     `mapstructure:"month"`
	Day        int     `mapstructure:"day"`
	Name       string  `mapstructure:"name"`
	Multiplier float64 `mapstructure:"multiplier"`
}

// LocationRules classifies cities/regions into cost tiers and carries the
// per-tier base multipliers plus per-category service adjustments.
type LocationRules struct {
	CityTiers          map[string]models.CostCategory     `mapstructure:"city_tiers"`
	RegionTiers        map[string]models.CostCategory     `mapstructure:"region_tiers"`
	TierMultipliers    map[models.CostCategory]float64    `mapstructure:"tier_multipliers"`
	ServiceAdjustments map[models.ServiceCategory]float64 `mapstructure:"service_adjustments"`
}

// ScaleRules parameterizes the attendee/duration scale curve:
// factor = max(minAttendeeFactor, attendees/baseAttendees) * (1 + perHourUplift*max(0, hours-includedHours))
type ScaleRules struct {
	BaseAttendees     int     `mapstructure:"base_attendees"`
	MinAttendeeFactor float64 `mapstructure:"min_attendee_factor"`
	IncludedHours     float64 `mapstructure:"included_hours"`
	PerHourUplift     float64 `mapstructure:"per_hour_uplift"`
}

// ConfidenceRules parameterizes the confidence score:
// clamp01(sourceWeight*reliability + freshnessWeight*2^(-ageDays/halfLife)),
// multiplied by ApproximateLocationPenalty when location was defaulted.
type ConfidenceRules struct {
	SourceReliability          map[models.PriceSource]float64 `mapstructure:"source_reliability"`
	UnknownSourceReliability   float64                        `mapstructure:"unknown_source_reliability"`
	SourceWeight               float64                        `mapstructure:"source_weight"`
	FreshnessWeight            float64                        `mapstructure:"freshness_weight"`
	FreshnessHalfLifeDays      float64                        `mapstructure:"freshness_half_life_days"`
	ApproximateLocationPenalty float64                        `mapstructure:"approximate_location_penalty"`
}

// SuggestionRules holds the thresholds and savings rates for the
// cost-saving rule set. Thresholds compare against the plan total;
// rates are fractions of the plan total (or of the category amount
// for category-scoped rules).
type SuggestionRules struct {
	PackageDealThreshold       float64 `mapstructure:"package_deal_threshold"`
	PackageDealRate            float64 `mapstructure:"package_deal_rate"`
	OffSeasonThreshold         float64 `mapstructure:"off_season_threshold"`
	OffSeasonRate              float64 `mapstructure:"off_season_rate"`
	DIYDecorationsRate         float64 `mapstructure:"diy_decorations_rate"`
	ConsolidationMinCategories int     `mapstructure:"consolidation_min_categories"`
	ConsolidationRate          float64 `mapstructure:"consolidation_rate"`
	DateShiftThreshold         float64 `mapstructure:"date_shift_threshold"`
	DateShiftRate              float64 `mapstructure:"date_shift_rate"`
}

// BasePriceSeed is one catalog row for the offline/in-memory catalog.
// AgeDays backdates ObservedAt relative to load time so freshness decay
// is exercised without a live catalog.
type BasePriceSeed struct {
	Category  models.ServiceCategory `mapstructure:"category"`
	EventType models.EventType       `mapstructure:"event_type"`
	Min       float64                `mapstructure:"min"`
	Max       float64                `mapstructure:"max"`
	Average   float64                `mapstructure:"average"`
	Source    models.PriceSource     `mapstructure:"source"`
	AgeDays   int                    `mapstructure:"age_days"`
}

// PackageSeed is one package deal row for the offline/in-memory catalog
type PackageSeed struct {
	ID              int64                    `mapstructure:"id"`
	EventType       models.EventType         `mapstructure:"event_type"`
	Name            string                   `mapstructure:"name"`
	Description     string                   `mapstructure:"description"`
	Categories      []models.ServiceCategory `mapstructure:"categories"`
	BasePrice       float64                  `mapstructure:"base_price"`
	DiscountPercent float64                  `mapstructure:"discount_percentage"`
	City            string                   `mapstructure:"city"`
}

// Rules is the complete immutable table set
type Rules struct {
	Seasons      SeasonRules                                   `mapstructure:"seasons"`
	SpecialDates []SpecialDate                                 `mapstructure:"special_dates"`
	Locations    LocationRules                                 `mapstructure:"locations"`
	Scale        ScaleRules                                    `mapstructure:"scale"`
	Confidence   ConfidenceRules                               `mapstructure:"confidence"`
	Categories   map[models.EventType][]models.ServiceCategory `mapstructure:"categories"`
	Suggestions  SuggestionRules                               `mapstructure:"suggestions"`
	BasePrices   []BasePriceSeed                               `mapstructure:"base_prices"`
	Packages     []PackageSeed                                 `mapstructure:"packages"`
}

// CategoriesFor returns the fixed category set for an event type
func (r *Rules) CategoriesFor(eventType models.EventType) ([]models.ServiceCategory, bool) {
	cats, ok := r.Categories[eventType]
	return cats, ok
}

// Classify maps a date to its season tier. A region override replaces the
// default calendar wholesale for that region.
func (s SeasonRules) Classify(date time.Time, region string) models.SeasonType {
	cal := s.Calendar
	if region != "" {
		if override, ok := s.RegionOverrides[strings.ToLower(region)]; ok {
			cal = override
		}
	}

	month := int(date.Month())
	if containsMonth(cal.PeakMonths, month) {
		return models.SeasonPeak
	}
	if containsMonth(cal.ShoulderMonths, month) {
		return models.SeasonShoulder
	}
	if containsMonth(cal.OffPeakMonths, month) {
		return models.SeasonOffPeak
	}
	return models.SeasonStandard
}

// Multiplier returns the demand multiplier for a season tier.
// Unknown tiers fall back to 1.0 so a table gap never zeroes a budget.
func (s SeasonRules) Multiplier(season models.SeasonType) float64 {
	if m, ok := s.Multipliers[season]; ok {
		return m
	}
	return 1.0
}

func containsMonth(months []int, month int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

// SpecialDateFor returns the special-date override matching a date, if any
func (r *Rules) SpecialDateFor(date time.Time) (SpecialDate, bool) {
	for _, sd := range r.SpecialDates {
		if sd.Month == int(date.Month()) && sd.Day == date.Day() {
			return sd, true
		}
	}
	return SpecialDate{}, false
}

// TierFor classifies a location into a cost tier. The second return is false
// when neither city nor region matched and the neutral moderate_cost default
// was assumed.
func (l LocationRules) TierFor(loc models.Location) (models.CostCategory, bool) {
	if loc.City != "" {
		if tier, ok := l.CityTiers[strings.ToLower(loc.City)]; ok {
			return tier, true
		}
	}
	if loc.Region != "" {
		if tier, ok := l.RegionTiers[strings.ToLower(loc.Region)]; ok {
			return tier, true
		}
	}
	return models.CostModerate, false
}

// TierMultiplier returns the base multiplier for a cost tier
func (l LocationRules) TierMultiplier(tier models.CostCategory) float64 {
	if m, ok := l.TierMultipliers[tier]; ok {
		return m
	}
	return 1.0
}

// ServiceAdjustment returns the per-category secondary multiplier, default 1.0
func (l LocationRules) ServiceAdjustment(category models.ServiceCategory) float64 {
	if adj, ok := l.ServiceAdjustments[category]; ok {
		return adj
	}
	return 1.0
}

// Factor computes the attendee/duration scale factor. Monotonic
// non-decreasing in both arguments; the attendee floor keeps small events
// from collapsing fixed costs like venues.
func (s ScaleRules) Factor(attendees int, durationHours float64) float64 {
	base := s.BaseAttendees
	if base <= 0 {
		base = 100
	}
	attendeeFactor := float64(attendees) / float64(base)
	if attendeeFactor < s.MinAttendeeFactor {
		attendeeFactor = s.MinAttendeeFactor
	}

	extraHours := durationHours - s.IncludedHours
	if extraHours < 0 {
		extraHours = 0
	}
	durationFactor := 1 + s.PerHourUplift*extraHours

	return attendeeFactor * durationFactor
}

// Reliability returns the reliability weight for a price source
func (c ConfidenceRules) Reliability(source models.PriceSource) float64 {
	if r, ok := c.SourceReliability[source]; ok {
		return r
	}
	return c.UnknownSourceReliability
}

// Validate checks table invariants. Hard violations (non-positive
// multipliers, discounts outside [0,100], empty category sets) return an
// error; suspicious-but-legal entries come back as warnings.
func (r *Rules) Validate() ([]string, error) {
	var warnings []string

	for season, m := range r.Seasons.Multipliers {
		if m <= 0 {
			return warnings, fmt.Errorf("seasonal multiplier for %q must be positive, got %v", season, m)
		}
		if m > 2.0 {
			warnings = append(warnings, fmt.Sprintf("seasonal multiplier for %q is unusually high (%v)", season, m))
		}
	}

	for _, sd := range r.SpecialDates {
		if sd.Month < 1 || sd.Month > 12 || sd.Day < 1 || sd.Day > 31 {
			return warnings, fmt.Errorf("special date %q has invalid month/day %d/%d", sd.Name, sd.Month, sd.Day)
		}
		if sd.Multiplier <= 0 {
			return warnings, fmt.Errorf("special date %q multiplier must be positive, got %v", sd.Name, sd.Multiplier)
		}
		if sd.Multiplier > 2.0 {
			warnings = append(warnings, fmt.Sprintf("special date %q multiplier is unusually high (%v)", sd.Name, sd.Multiplier))
		}
	}

	for tier, m := range r.Locations.TierMultipliers {
		if m <= 0 {
			return warnings, fmt.Errorf("tier multiplier for %q must be positive, got %v", tier, m)
		}
	}
	for cat, adj := range r.Locations.ServiceAdjustments {
		if adj <= 0 {
			return warnings, fmt.Errorf("service adjustment for %q must be positive, got %v", cat, adj)
		}
	}

	if r.Scale.MinAttendeeFactor <= 0 {
		return warnings, fmt.Errorf("scale min_attendee_factor must be positive, got %v", r.Scale.MinAttendeeFactor)
	}
	if r.Scale.PerHourUplift < 0 {
		return warnings, fmt.Errorf("scale per_hour_uplift must be non-negative, got %v", r.Scale.PerHourUplift)
	}

	for eventType, cats := range r.Categories {
		if len(cats) == 0 {
			return warnings, fmt.Errorf("event type %q has an empty category set", eventType)
		}
	}

	for _, seed := range r.BasePrices {
		if seed.Average < 0 || seed.Min < 0 || seed.Max < 0 {
			return warnings, fmt.Errorf("base price for %s/%s has a negative amount", seed.EventType, seed.Category)
		}
		if seed.Min > seed.Max {
			warnings = append(warnings, fmt.Sprintf("base price for %s/%s has min > max", seed.EventType, seed.Category))
		}
	}

	for _, pkg := range r.Packages {
		if pkg.DiscountPercent < 0 || pkg.DiscountPercent > 100 {
			return warnings, fmt.Errorf("package %q discount must be within [0,100], got %v", pkg.Name, pkg.DiscountPercent)
		}
		if len(pkg.Categories) == 0 {
			return warnings, fmt.Errorf("package %q bundles no categories", pkg.Name)
		}
	}

	weightSum := r.Confidence.SourceWeight + r.Confidence.FreshnessWeight
	if weightSum < 0.99 || weightSum > 1.01 {
		warnings = append(warnings, fmt.Sprintf("confidence weights sum to %v, expected 1.0", weightSum))
	}

	// Seed coverage: a known event type/category pair without a seed row is
	// legal (the live catalog may still carry it) but worth flagging.
	seeded := make(map[string]struct{}, len(r.BasePrices))
	for _, seed := range r.BasePrices {
		seeded[string(seed.EventType)+"/"+string(seed.Category)] = struct{}{}
	}
	for eventType, cats := range r.Categories {
		for _, cat := range cats {
			if _, ok := seeded[string(eventType)+"/"+string(cat)]; !ok {
				warnings = append(warnings, fmt.Sprintf("no seed price for %s/%s", eventType, cat))
			}
		}
	}

	return warnings, nil
}
