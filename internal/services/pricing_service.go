package services

import (
	"context"
	"strings"
	"time"

	"github.com/planora/budget-api/internal/cache"
	"github.com/planora/budget-api/internal/models"
)

// PricingCatalog is the read-only base price source. Implemented by the pg
// repository in the API and by the rules-seeded memory catalog offline.
// Unknown category/event type combinations return ErrPricingNotFound from
// the repository package.
type PricingCatalog interface {
	BasePrice(ctx context.Context, category models.ServiceCategory, eventType models.EventType, loc models.Location) (*models.PriceRange, error)
}

// PricingService fronts the catalog with a read-through memory cache and
// flags stale or low-reliability observations for the warning collector.
type PricingService struct {
	catalog    PricingCatalog
	memCache   *cache.MemoryCache
	staleAfter time.Duration
}

// NewPricingService creates a new PricingService
func NewPricingService(catalog PricingCatalog, memCache *cache.MemoryCache) *PricingService {
	return &PricingService{
		catalog:    catalog,
		memCache:   memCache,
		staleAfter: 365 * 24 * time.Hour,
	}
}

// BasePrice fetches the base price range for a category, caching by
// (event type, category, city)
func (s *PricingService) BasePrice(ctx context.Context, category models.ServiceCategory, eventType models.EventType, loc models.Location) (*models.PriceRange, error) {
	city := strings.ToLower(loc.City)

	if s.memCache != nil {
		if pr, ok := s.memCache.GetPrice(category, eventType, city); ok {
			return &pr, nil
		}
	}

	pr, err := s.catalog.BasePrice(ctx, category, eventType, loc)
	if err != nil {
		return nil, err
	}

	if time.Since(pr.ObservedAt) > s.staleAfter {
		Warnf(ctx, models.WarnStalePricing, "base price for %s/%s observed %s", eventType, category, pr.ObservedAt.Format("2006-01-02"))
	}
	if pr.Source == models.SourceIndustryDefault {
		Warnf(ctx, models.WarnDefaultPricing, "base price for %s/%s uses industry defaults", eventType, category)
	}

	if s.memCache != nil {
		s.memCache.SetPrice(category, eventType, city, *pr)
	}

	return pr, nil
}
