package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrackingEntry records actual-vs-estimated spend for one event category.
// Keyed by (event, category); positive variance = over budget.
type TrackingEntry struct {
	ID            uuid.UUID       `json:"id"`
	EventID       int64           `json:"event_id"`
	Category      ServiceCategory `json:"category"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	ActualCost    decimal.Decimal `json:"actual_cost"`
	Variance      decimal.Decimal `json:"variance"`
	TrackingDate  time.Time       `json:"tracking_date"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OverBudget reports whether actual spend exceeded the estimate
func (e TrackingEntry) OverBudget() bool {
	return e.Variance.IsPositive()
}

// Accuracy returns this entry's contribution to the ledger accuracy:
// max(0, 1 - |variance|/estimated), and 0 when the estimate is zero.
func (e TrackingEntry) Accuracy() float64 {
	if e.EstimatedCost.IsZero() {
		return 0
	}
	ratio, _ := e.Variance.Abs().Div(e.EstimatedCost).Float64()
	if ratio >= 1 {
		return 0
	}
	return 1 - ratio
}

// TrackingSummary aggregates the ledger for one event
type TrackingSummary struct {
	EventID        int64           `json:"event_id"`
	Entries        []TrackingEntry `json:"entries"`
	TotalEstimated decimal.Decimal `json:"total_estimated"`
	TotalActual    decimal.Decimal `json:"total_actual"`
	TotalVariance  decimal.Decimal `json:"total_variance"`
	Accuracy       float64         `json:"accuracy"`
	OverBudget     int             `json:"over_budget_count"`
}

// BudgetAdjustment represents a manual correction applied to a category,
// either a percentage of the recommended amount or a fixed delta.
type BudgetAdjustment struct {
	ID              uuid.UUID       `json:"id"`
	EventID         int64           `json:"event_id"`
	Category        ServiceCategory `json:"category"`
	AdjustmentType  AdjustmentType  `json:"adjustment_type"`
	AdjustmentValue decimal.Decimal `json:"adjustment_value"`
	Reason          string          `json:"reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
