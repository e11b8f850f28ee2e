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

var ErrTrackingConflict = errors.New("tracking entry was modified concurrently")

// TrackingStore persists actual-vs-estimated entries keyed by (event, category)
type TrackingStore interface {
	Upsert(ctx context.Context, e *models.TrackingEntry) error
	UpsertIfUnchanged(ctx context.Context, e *models.TrackingEntry, expected time.Time) error
	GetByEvent(ctx context.Context, eventID int64) ([]models.TrackingEntry, error)
}

// BreakdownReader resolves the persisted per-category estimates for an event
type BreakdownReader interface {
	GetServiceBreakdown(ctx context.Context, eventID int64) ([]models.ServiceBreakdown, error)
}

// TrackingService records actual spend against estimates and summarizes
// variance. Recording never touches recommendations; the two live in
// separate tables on purpose.
type TrackingService struct {
	store     TrackingStore
	breakdown BreakdownReader
	now       func() time.Time
}

// NewTrackingService creates a new TrackingService
func NewTrackingService(store TrackingStore, breakdown BreakdownReader) *TrackingService {
	return &TrackingService{
		store:     store,
		breakdown: breakdown,
		now:       time.Now,
	}
}

// RecordActual upserts the actual spend for one event category. The estimate
// comes from the persisted breakdown; a category with no stored estimate
// records against zero and flags the entry. When ExpectedUpdatedAt is set
// the write is conditional and a concurrent update returns
// ErrTrackingConflict; otherwise last write wins.
func (s *TrackingService) RecordActual(ctx context.Context, eventID int64, req *models.RecordActualRequest) (*models.TrackingEntry, error) {
	defer TrackTime("RecordActual", time.Now())

	if req.ActualCost.IsNegative() {
		return nil, fmt.Errorf("%w: actual cost must not be negative", ErrInvalidInput)
	}

	estimated, err := s.estimateFor(ctx, eventID, req.Category)
	if err != nil {
		return nil, err
	}
	if estimated.IsZero() {
		Warnf(ctx, models.WarnZeroEstimate, "no stored estimate for %s on event %d; accuracy will read as zero", req.Category, eventID)
	}

	trackingDate := s.now()
	if req.TrackingDate != nil {
		trackingDate = req.TrackingDate.Time
	}

	entry := &models.TrackingEntry{
		ID:            uuid.New(),
		EventID:       eventID,
		Category:      req.Category,
		EstimatedCost: estimated,
		ActualCost:    req.ActualCost,
		Variance:      req.ActualCost.Sub(estimated),
		TrackingDate:  trackingDate,
	}

	if req.ExpectedUpdatedAt != nil {
		err = s.store.UpsertIfUnchanged(ctx, entry, req.ExpectedUpdatedAt.Time)
		if errors.Is(err, repository.ErrTrackingConflict) {
			return nil, ErrTrackingConflict
		}
	} else {
		err = s.store.Upsert(ctx, entry)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record actual for %s: %w", req.Category, err)
	}

	return entry, nil
}

// Summary aggregates the tracked entries for an event. Accuracy is the mean
// of per-entry accuracy, where an entry scores max(0, 1 - |variance|/estimated)
// and a zero estimate scores zero.
func (s *TrackingService) Summary(ctx context.Context, eventID int64) (*models.TrackingSummary, error) {
	entries, err := s.store.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracking for event %d: %w", eventID, err)
	}

	summary := &models.TrackingSummary{
		EventID: eventID,
		Entries: entries,
	}

	var accuracySum float64
	for _, e := range entries {
		summary.TotalEstimated = summary.TotalEstimated.Add(e.EstimatedCost)
		summary.TotalActual = summary.TotalActual.Add(e.ActualCost)
		summary.TotalVariance = summary.TotalVariance.Add(e.Variance)
		accuracySum += e.Accuracy()
		if e.OverBudget() {
			summary.OverBudget++
		}
	}
	if len(entries) > 0 {
		summary.Accuracy = accuracySum / float64(len(entries))
	}

	return summary, nil
}

func (s *TrackingService) estimateFor(ctx context.Context, eventID int64, category models.ServiceCategory) (decimal.Decimal, error) {
	breakdown, err := s.breakdown.GetServiceBreakdown(ctx, eventID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load breakdown for event %d: %w", eventID, err)
	}
	for _, b := range breakdown {
		if b.Category == category {
			return b.Amount, nil
		}
	}
	return decimal.Zero, nil
}
