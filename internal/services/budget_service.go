package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidAdjustment = errors.New("invalid adjustment")
)

// EventStore is the event-scoped persistence the budget aggregate needs:
// the event row itself, the saved breakdown, and manual adjustments.
type EventStore interface {
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetServiceBreakdown(ctx context.Context, eventID int64) ([]models.ServiceBreakdown, error)
	ReplaceServiceBreakdown(ctx context.Context, eventID int64, breakdown []models.ServiceBreakdown) error
	InsertAdjustments(ctx context.Context, eventID int64, adjustments []models.BudgetAdjustment) error
	GetAdjustments(ctx context.Context, eventID int64) ([]models.BudgetAdjustment, error)
}

// BudgetService assembles the full budget state for an event: a freshly
// recomputed plan overlaid with whatever breakdown, tracking and adjustments
// were persisted against the event.
type BudgetService struct {
	events      EventStore
	recommender *RecommendationService
	tracking    *TrackingService
	validation  *ValidationService
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(events EventStore, recommender *RecommendationService, tracking *TrackingService, validation *ValidationService) *BudgetService {
	return &BudgetService{
		events:      events,
		recommender: recommender,
		tracking:    tracking,
		validation:  validation,
	}
}

// GetEventBudget recomputes the plan from the event's current parameters,
// overlays the persisted breakdown amounts, and attaches tracking,
// adjustments and a validation result. Adjustments are attached as records
// only; they never rewrite the recommendations.
func (s *BudgetService) GetEventBudget(ctx context.Context, eventID int64) (*models.EventBudgetResponse, error) {
	defer TrackTime("GetEventBudget", time.Now())

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event %d: %w", eventID, err)
	}

	plan, err := s.recommender.Recommend(ctx, &models.RecommendBudgetRequest{
		EventID:       &event.ID,
		EventType:     event.EventType,
		AttendeeCount: event.AttendeeCount,
		DurationHours: event.DurationHours,
		EventDate:     models.FlexibleDate{Time: event.EventDate},
		Location:      event.Location(),
	})
	if err != nil {
		return nil, err
	}

	breakdown, err := s.events.GetServiceBreakdown(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load breakdown for event %d: %w", eventID, err)
	}
	s.overlayBreakdown(plan, breakdown)

	adjustments, err := s.events.GetAdjustments(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load adjustments for event %d: %w", eventID, err)
	}
	plan.Adjustments = adjustments

	summary, err := s.tracking.Summary(ctx, eventID)
	if err != nil {
		return nil, err
	}
	plan.Tracking = summary.Entries

	return &models.EventBudgetResponse{
		EventID:    eventID,
		Plan:       plan,
		Tracking:   summary,
		Validation: s.validation.Validate(plan),
	}, nil
}

// overlayBreakdown replaces live recommended amounts with the persisted ones.
// The saved breakdown is the agreed budget; the live recompute contributes
// ranges, sources and confidence. Saved categories the current rules no
// longer produce are appended so money never silently disappears.
func (s *BudgetService) overlayBreakdown(plan *models.BudgetPlan, breakdown []models.ServiceBreakdown) {
	if len(breakdown) == 0 {
		return
	}

	for _, b := range breakdown {
		if rec, ok := plan.Recommendation(b.Category); ok {
			rec.RecommendedAmount = b.Amount
			continue
		}
		plan.Recommendations = append(plan.Recommendations, models.BudgetRecommendation{
			Category:          b.Category,
			RecommendedAmount: b.Amount,
			MinAmount:         b.Amount,
			MaxAmount:         b.Amount,
		})
	}
	plan.TotalBudget = plan.BreakdownTotal()
}

// PersistBreakdown saves the plan's per-category amounts as the event's
// breakdown. These become the estimates spend tracking measures against.
func (s *BudgetService) PersistBreakdown(ctx context.Context, eventID int64, plan *models.BudgetPlan) error {
	if plan == nil || len(plan.Recommendations) == 0 {
		return fmt.Errorf("%w: plan has no recommendations to persist", ErrInvalidInput)
	}

	breakdown := make([]models.ServiceBreakdown, 0, len(plan.Recommendations))
	for _, rec := range plan.Recommendations {
		breakdown = append(breakdown, models.ServiceBreakdown{
			EventID:  eventID,
			Category: rec.Category,
			Amount:   rec.RecommendedAmount,
		})
	}

	if err := s.events.ReplaceServiceBreakdown(ctx, eventID, breakdown); err != nil {
		return fmt.Errorf("failed to persist breakdown for event %d: %w", eventID, err)
	}
	return nil
}

// SubmitAdjustments validates and persists a batch of manual adjustments.
// Percentage adjustments are bounded to (-100, 100]; a -100% line should be
// removed from the plan instead of zeroed through an adjustment.
func (s *BudgetService) SubmitAdjustments(ctx context.Context, eventID int64, reqs []models.AdjustmentRequest) ([]models.BudgetAdjustment, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: no adjustments submitted", ErrInvalidAdjustment)
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event %d: %w", eventID, err)
	}

	adjustments := make([]models.BudgetAdjustment, 0, len(reqs))
	for i, req := range reqs {
		if err := validateAdjustment(req); err != nil {
			return nil, fmt.Errorf("adjustment %d: %w", i, err)
		}
		adjustments = append(adjustments, models.BudgetAdjustment{
			ID:              uuid.New(),
			EventID:         eventID,
			Category:        req.Category,
			AdjustmentType:  req.AdjustmentType,
			AdjustmentValue: req.AdjustmentValue,
			Reason:          req.Reason,
		})
	}

	if err := s.events.InsertAdjustments(ctx, eventID, adjustments); err != nil {
		return nil, fmt.Errorf("failed to persist adjustments for event %d: %w", eventID, err)
	}
	return adjustments, nil
}

func validateAdjustment(req models.AdjustmentRequest) error {
	switch req.AdjustmentType {
	case models.AdjustmentPercentage:
		hundred := decimal.NewFromInt(100)
		if !req.AdjustmentValue.GreaterThan(hundred.Neg()) || req.AdjustmentValue.GreaterThan(hundred) {
			return fmt.Errorf("%w: percentage must be within (-100, 100]", ErrInvalidAdjustment)
		}
	case models.AdjustmentFixed:
		// Any fixed amount is allowed, including negative reductions.
	default:
		return fmt.Errorf("%w: unknown adjustment type %q", ErrInvalidAdjustment, req.AdjustmentType)
	}
	if req.AdjustmentValue.IsZero() {
		return fmt.Errorf("%w: adjustment value must not be zero", ErrInvalidAdjustment)
	}
	return nil
}
