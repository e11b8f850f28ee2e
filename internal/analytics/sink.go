// Package analytics ships recommendation feedback to the platform's
// analytics plane. Delivery is best-effort; nothing in the budget
// computation path depends on it.
package analytics

import (
	"context"
	"time"

	"github.com/planora/budget-api/internal/models"
)

// FeedbackEvent is one thumbs-up/down on a recommendation
type FeedbackEvent struct {
	OccurredAt time.Time              `json:"occurred_at"`
	UserID     string                 `json:"user_id"`
	EventType  models.EventType       `json:"event_type"`
	Category   models.ServiceCategory `json:"category"`
	Helpful    bool                   `json:"helpful"`
	Comment    string                 `json:"comment,omitempty"`
}

// Sink receives feedback events
type Sink interface {
	RecordFeedback(ctx context.Context, fb FeedbackEvent) error
	Close() error
}

// NopSink discards everything. Used when no analytics backend is configured.
type NopSink struct{}

// NewNopSink creates a sink that drops all events
func NewNopSink() *NopSink {
	return &NopSink{}
}

// RecordFeedback discards the event
func (s *NopSink) RecordFeedback(ctx context.Context, fb FeedbackEvent) error {
	return nil
}

// Close is a no-op
func (s *NopSink) Close() error {
	return nil
}
