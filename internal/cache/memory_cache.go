package cache

import (
	"sync"
	"time"

	"github.com/planora/budget-api/internal/models"
)

// MemoryCache provides an in-memory L1 cache for catalog reads. Base prices
// and package lists change rarely, so a short TTL keeps recommendation
// fan-outs from hammering the catalog tables.
type MemoryCache struct {
	prices    map[string]priceEntry
	packages  map[string]packageEntry
	priceMu   sync.RWMutex
	packageMu sync.RWMutex
	ttl       time.Duration
}

type priceEntry struct {
	data      models.PriceRange
	fetchedAt time.Time
}

type packageEntry struct {
	data      []models.PackageDeal
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		prices:   make(map[string]priceEntry),
		packages: make(map[string]packageEntry),
		ttl:      ttl,
	}
}

// priceCacheKey generates a cache key for a base price lookup
func priceCacheKey(category models.ServiceCategory, eventType models.EventType, city string) string {
	return string(eventType) + "|" + string(category) + "|" + city
}

// packageCacheKey generates a cache key for a package list lookup
func packageCacheKey(eventType models.EventType, city string) string {
	return string(eventType) + "|" + city
}

// GetPrice retrieves a cached price range if fresh
func (c *MemoryCache) GetPrice(category models.ServiceCategory, eventType models.EventType, city string) (models.PriceRange, bool) {
	c.priceMu.RLock()
	defer c.priceMu.RUnlock()

	entry, exists := c.prices[priceCacheKey(category, eventType, city)]
	if !exists {
		return models.PriceRange{}, false
	}
	if time.Since(entry.fetchedAt) > c.ttl {
		return models.PriceRange{}, false
	}
	return entry.data, true
}

// SetPrice caches a price range
func (c *MemoryCache) SetPrice(category models.ServiceCategory, eventType models.EventType, city string, pr models.PriceRange) {
	c.priceMu.Lock()
	defer c.priceMu.Unlock()

	c.prices[priceCacheKey(category, eventType, city)] = priceEntry{
		data:      pr,
		fetchedAt: time.Now(),
	}
}

// GetPackages retrieves a cached package list if fresh
func (c *MemoryCache) GetPackages(eventType models.EventType, city string) ([]models.PackageDeal, bool) {
	c.packageMu.RLock()
	defer c.packageMu.RUnlock()

	entry, exists := c.packages[packageCacheKey(eventType, city)]
	if !exists {
		return nil, false
	}
	if time.Since(entry.fetchedAt) > c.ttl {
		return nil, false
	}
	return entry.data, true
}

// SetPackages caches a package list
func (c *MemoryCache) SetPackages(eventType models.EventType, city string, deals []models.PackageDeal) {
	c.packageMu.Lock()
	defer c.packageMu.Unlock()

	c.packages[packageCacheKey(eventType, city)] = packageEntry{
		data:      deals,
		fetchedAt: time.Now(),
	}
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.priceMu.Lock()
	c.prices = make(map[string]priceEntry)
	c.priceMu.Unlock()

	c.packageMu.Lock()
	c.packages = make(map[string]packageEntry)
	c.packageMu.Unlock()
}
