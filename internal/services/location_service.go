package services

import (
	"context"
	"fmt"

	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/rules"
)

// LocationService computes the location-based cost multiplier for a service
// category. Missing or unrecognized city/region degrades to the neutral
// moderate_cost tier with the Approximate flag set, never an error.
type LocationService struct {
	rules *rules.Rules
}

// NewLocationService creates a new LocationService
func NewLocationService(r *rules.Rules) *LocationService {
	return &LocationService{rules: r}
}

// Adjust classifies the location into a cost tier and applies the
// per-category service adjustment. combined = base * service_adjustment.
func (s *LocationService) Adjust(ctx context.Context, category models.ServiceCategory, loc models.Location) models.LocationAdjustment {
	tier, matched := s.rules.Locations.TierFor(loc)
	if !matched && !loc.IsZero() {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnApproximateLocation,
			Message: fmt.Sprintf("location %q/%q not recognized, assuming %s", loc.City, loc.Region, models.CostModerate),
		})
	}

	base := s.rules.Locations.TierMultiplier(tier)
	serviceAdj := s.rules.Locations.ServiceAdjustment(category)

	return models.LocationAdjustment{
		CostCategory:       tier,
		BaseMultiplier:     base,
		ServiceAdjustment:  serviceAdj,
		CombinedMultiplier: base * serviceAdj,
		Approximate:        !matched,
	}
}
