package models

import (
	"github.com/shopspring/decimal"
)

// RecommendBudgetRequest represents the request body for computing a budget plan.
// EventID is optional; when set, the computed breakdown is persisted against
// the event and becomes the estimate source for spend tracking.
type RecommendBudgetRequest struct {
	EventID       *int64       `json:"event_id"`
	EventType     EventType    `json:"event_type" binding:"required"`
	AttendeeCount int          `json:"attendee_count" binding:"required"`
	DurationHours float64      `json:"duration_hours" binding:"required"`
	EventDate     FlexibleDate `json:"event_date" binding:"required"`
	Location      Location     `json:"location"`
}

// RecommendBudgetResponse wraps a computed plan with any processing warnings
type RecommendBudgetResponse struct {
	Plan     *BudgetPlan `json:"plan"`
	Warnings []Warning   `json:"warnings,omitempty"`
}

// ApplyPackageRequest represents the request body for applying a package deal to a plan
type ApplyPackageRequest struct {
	Plan      *BudgetPlan `json:"plan" binding:"required"`
	PackageID int64       `json:"package_id" binding:"required"`
}

// ListPackagesResponse represents the response for listing package deals
type ListPackagesResponse struct {
	EventType EventType     `json:"event_type"`
	Packages  []PackageDeal `json:"packages"`
}

// RecordActualRequest represents the request body for recording actual spend
type RecordActualRequest struct {
	Category          ServiceCategory `json:"category" binding:"required"`
	ActualCost        decimal.Decimal `json:"actual_cost" binding:"required"`
	TrackingDate      *DateOnly       `json:"tracking_date"`
	ExpectedUpdatedAt *FlexibleDate   `json:"expected_updated_at"`
}

// AdjustmentRequest represents one manual adjustment in a submit batch
type AdjustmentRequest struct {
	Category        ServiceCategory `json:"category" binding:"required"`
	AdjustmentType  AdjustmentType  `json:"adjustment_type" binding:"required"`
	AdjustmentValue decimal.Decimal `json:"adjustment_value" binding:"required"`
	Reason          string          `json:"reason"`
}

// SubmitAdjustmentsRequest represents the request body for persisting adjustments
type SubmitAdjustmentsRequest struct {
	Adjustments []AdjustmentRequest `json:"adjustments" binding:"required"`
}

// SuggestionsResponse represents the generated cost-saving suggestions for a plan
type SuggestionsResponse struct {
	Suggestions    []CostSavingSuggestion `json:"suggestions"`
	TotalPotential decimal.Decimal        `json:"total_potential_savings"`
}

// FeedbackRequest represents a thumbs-up/down on a recommendation.
// Feedback is an analytics side-channel; it never alters computation.
type FeedbackRequest struct {
	EventType EventType       `json:"event_type" binding:"required"`
	Category  ServiceCategory `json:"category" binding:"required"`
	Helpful   *bool           `json:"helpful" binding:"required"`
	Comment   string          `json:"comment"`
}

// EventBudgetResponse assembles the persisted budget state for an event
type EventBudgetResponse struct {
	EventID    int64             `json:"event_id"`
	Plan       *BudgetPlan       `json:"plan"`
	Tracking   *TrackingSummary  `json:"tracking,omitempty"`
	Validation *ValidationResult `json:"validation,omitempty"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
