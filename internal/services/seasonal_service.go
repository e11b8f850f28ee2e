package services

import (
	"time"

	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/rules"
)

// StandardPricingReason is the special-date reason when no special date matched
const StandardPricingReason = "Standard pricing"

// SeasonalService computes the date-based demand multiplier. Pure function
// of the injected tables: identical inputs always yield identical output.
// Past dates are accepted; date validity is the caller's concern.
type SeasonalService struct {
	rules *rules.Rules
}

// NewSeasonalService creates a new SeasonalService
func NewSeasonalService(r *rules.Rules) *SeasonalService {
	return &SeasonalService{rules: r}
}

// Adjust classifies the event date into a season tier and checks the
// special-dates table. final_multiplier = seasonal * special, exactly.
func (s *SeasonalService) Adjust(eventDate time.Time, loc models.Location) models.SeasonalAdjustment {
	season := s.rules.Seasons.Classify(eventDate, loc.Region)
	seasonal := s.rules.Seasons.Multiplier(season)

	specialMultiplier := 1.0
	reason := StandardPricingReason
	if sd, ok := s.rules.SpecialDateFor(eventDate); ok {
		specialMultiplier = sd.Multiplier
		reason = sd.Name
	}

	return models.SeasonalAdjustment{
		SeasonType:            season,
		SeasonalMultiplier:    seasonal,
		SpecialDateMultiplier: specialMultiplier,
		SpecialDateReason:     reason,
		FinalMultiplier:       seasonal * specialMultiplier,
	}
}
