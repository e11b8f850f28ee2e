package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/rules"
	"github.com/shopspring/decimal"
)

// MemoryCatalog is an in-memory pricing and package source seeded from the
// rule tables. It serves the offline CLI and tests; the API wires the pg
// repositories instead. Satisfies the same catalog contracts, including the
// not-found sentinels.
type MemoryCatalog struct {
	mu       sync.RWMutex
	prices   map[string]models.PriceRange // eventType/category -> range
	packages []models.PackageDeal
}

// NewMemoryCatalog seeds a catalog from rule tables. Seed ages are anchored
// to the supplied clock so freshness-based confidence stays reproducible.
func NewMemoryCatalog(r *rules.Rules, now time.Time) *MemoryCatalog {
	c := &MemoryCatalog{
		prices: make(map[string]models.PriceRange, len(r.BasePrices)),
	}

	for _, seed := range r.BasePrices {
		c.prices[priceKey(seed.EventType, seed.Category)] = models.PriceRange{
			Category:   seed.Category,
			EventType:  seed.EventType,
			Min:        decimal.NewFromFloat(seed.Min),
			Max:        decimal.NewFromFloat(seed.Max),
			Average:    decimal.NewFromFloat(seed.Average),
			Source:     seed.Source,
			ObservedAt: now.AddDate(0, 0, -seed.AgeDays),
		}
	}

	for _, seed := range r.Packages {
		pkg := models.PackageDeal{
			ID:                seed.ID,
			EventType:         seed.EventType,
			Name:              seed.Name,
			Description:       seed.Description,
			ServiceCategories: seed.Categories,
			BasePrice:         decimal.NewFromFloat(seed.BasePrice),
			DiscountPercent:   decimal.NewFromFloat(seed.DiscountPercent),
		}
		if seed.City != "" {
			city := seed.City
			pkg.City = &city
		}
		pkg.DerivePricing()
		c.packages = append(c.packages, pkg)
	}

	return c
}

func priceKey(eventType models.EventType, category models.ServiceCategory) string {
	return string(eventType) + "/" + string(category)
}

// BasePrice retrieves the seeded price range for a category/event type.
// Seed rows carry no city scoping, so the location is ignored.
func (c *MemoryCatalog) BasePrice(ctx context.Context, category models.ServiceCategory, eventType models.EventType, loc models.Location) (*models.PriceRange, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pr, ok := c.prices[priceKey(eventType, category)]
	if !ok {
		return nil, ErrPricingNotFound
	}
	return &pr, nil
}

// ListPackages retrieves seeded deals for an event type. City-scoped deals
// only match their own city, mirroring the pg repository's filter.
func (c *MemoryCatalog) ListPackages(ctx context.Context, eventType models.EventType, loc models.Location) ([]models.PackageDeal, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.PackageDeal
	for _, p := range c.packages {
		if p.EventType != eventType {
			continue
		}
		if p.City != nil && !strings.EqualFold(*p.City, loc.City) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetPackage retrieves a seeded deal by ID
func (c *MemoryCatalog) GetPackage(ctx context.Context, id int64) (*models.PackageDeal, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.packages {
		if p.ID == id {
			pkg := p
			return &pkg, nil
		}
	}
	return nil, ErrPackageNotFound
}
