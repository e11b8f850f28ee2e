package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location identifies where an event takes place. City and Region are
// optional; classification degrades to a neutral default when both are empty.
type Location struct {
	City      string   `json:"city,omitempty"`
	Region    string   `json:"region,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// IsZero reports whether no location information was supplied
func (l Location) IsZero() bool {
	return l.City == "" && l.Region == ""
}

// PriceRange represents a base price observation for a category/event type.
// Immutable per query; Source and ObservedAt feed confidence weighting.
type PriceRange struct {
	Category   ServiceCategory `json:"category"`
	EventType  EventType       `json:"event_type"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
	Average    decimal.Decimal `json:"average"`
	Source     PriceSource     `json:"source"`
	ObservedAt time.Time       `json:"observed_at"`
}

// SeasonalAdjustment is the date-based demand multiplier for an event date
type SeasonalAdjustment struct {
	SeasonType            SeasonType `json:"season_type"`
	SeasonalMultiplier    float64    `json:"seasonal_multiplier"`
	SpecialDateMultiplier float64    `json:"special_date_multiplier"`
	SpecialDateReason     string     `json:"special_date_reason"`
	FinalMultiplier       float64    `json:"final_multiplier"`
}

// LocationAdjustment is the location-based cost multiplier for a category.
// Approximate is set when city/region were missing or unrecognized and the
// neutral moderate_cost default was used; it lowers confidence, not an error.
type LocationAdjustment struct {
	CostCategory       CostCategory `json:"cost_category"`
	BaseMultiplier     float64      `json:"base_multiplier"`
	ServiceAdjustment  float64      `json:"service_adjustment"`
	CombinedMultiplier float64      `json:"combined_multiplier"`
	Approximate        bool         `json:"approximate,omitempty"`
}
