package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetRecommendation represents the recommended spend for one service category
type BudgetRecommendation struct {
	Category          ServiceCategory `json:"category"`
	RecommendedAmount decimal.Decimal `json:"recommended_amount"`
	MinAmount         decimal.Decimal `json:"min_amount"`
	MaxAmount         decimal.Decimal `json:"max_amount"`
	ConfidenceScore   float64         `json:"confidence_score"`
	PricingSource     PriceSource     `json:"pricing_source"`
}

// AppliedPackage records a package deal applied to a plan.
// ReplacedAmount is what the member categories summed to before application.
type AppliedPackage struct {
	Package        PackageDeal     `json:"package"`
	ReplacedAmount decimal.Decimal `json:"replaced_amount"`
	AppliedAt      time.Time       `json:"applied_at"`
}

// BudgetPlan is the aggregate a caller assembles from a recommendation run:
// the per-category breakdown plus whatever tracking, package and adjustment
// state exists for the event. Transient unless explicitly persisted.
type BudgetPlan struct {
	EventID         *int64                 `json:"event_id,omitempty"`
	EventType       EventType              `json:"event_type"`
	EventDate       time.Time              `json:"event_date"`
	AttendeeCount   int                    `json:"attendee_count"`
	DurationHours   float64                `json:"duration_hours"`
	Location        Location               `json:"location"`
	TotalBudget     decimal.Decimal        `json:"total_budget"`
	Recommendations []BudgetRecommendation `json:"recommendations"`
	// OverallConfidence is the geometric mean of the per-category scores,
	// so one weakly sourced category drags the whole plan down.
	OverallConfidence float64             `json:"overall_confidence"`
	Tracking          []TrackingEntry     `json:"tracking,omitempty"`
	Packages          []AppliedPackage    `json:"packages,omitempty"`
	Adjustments       []BudgetAdjustment  `json:"adjustments,omitempty"`
	PackageSavings    decimal.Decimal     `json:"package_savings"`
	Seasonal          *SeasonalAdjustment `json:"seasonal,omitempty"`
	GeneratedAt       time.Time           `json:"generated_at"`
}

// HasPackage reports whether the given package ID is already applied
func (p *BudgetPlan) HasPackage(packageID int64) bool {
	for _, ap := range p.Packages {
		if ap.Package.ID == packageID {
			return true
		}
	}
	return false
}

// Recommendation returns the recommendation for a category, if present
func (p *BudgetPlan) Recommendation(category ServiceCategory) (*BudgetRecommendation, bool) {
	for i := range p.Recommendations {
		if p.Recommendations[i].Category == category {
			return &p.Recommendations[i], true
		}
	}
	return nil, false
}

// BreakdownTotal sums the per-category recommended amounts
func (p *BudgetPlan) BreakdownTotal() decimal.Decimal {
	total := decimal.Zero
	for _, r := range p.Recommendations {
		total = total.Add(r.RecommendedAmount)
	}
	return total
}

// ServiceBreakdown is one persisted per-category amount for an event
type ServiceBreakdown struct {
	EventID  int64           `json:"event_id"`
	Category ServiceCategory `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
