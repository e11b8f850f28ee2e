package services

import (
	"context"
	"time"

	"github.com/planora/budget-api/internal/analytics"
	"github.com/planora/budget-api/internal/models"
	log "github.com/sirupsen/logrus"
)

// FeedbackService forwards recommendation feedback to the analytics sink.
// Delivery is fire-and-forget: the caller gets an immediate accept and a
// failed delivery is logged, never surfaced.
type FeedbackService struct {
	sink    analytics.Sink
	timeout time.Duration
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(sink analytics.Sink) *FeedbackService {
	return &FeedbackService{
		sink:    sink,
		timeout: 10 * time.Second,
	}
}

// Submit queues one feedback event for delivery and returns immediately
func (s *FeedbackService) Submit(userID string, req *models.FeedbackRequest) {
	fb := analytics.FeedbackEvent{
		OccurredAt: time.Now().UTC(),
		UserID:     userID,
		EventType:  req.EventType,
		Category:   req.Category,
		Comment:    req.Comment,
	}
	if req.Helpful != nil {
		fb.Helpful = *req.Helpful
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.sink.RecordFeedback(ctx, fb); err != nil {
			log.Warnf("feedback delivery failed for %s/%s: %v", fb.EventType, fb.Category, err)
		}
	}()
}
