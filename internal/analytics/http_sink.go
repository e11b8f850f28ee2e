package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPSink posts feedback events to the analytics collector endpoint
type HTTPSink struct {
	baseURL string
	client  *resty.Client
}

// NewHTTPSink creates a sink posting to baseURL/feedback
func NewHTTPSink(baseURL string) *HTTPSink {
	client := resty.New()
	client.SetTimeout(10 * time.Second)
	client.SetRetryCount(2)

	return &HTTPSink{
		baseURL: baseURL,
		client:  client,
	}
}

// RecordFeedback posts one event as JSON
func (s *HTTPSink) RecordFeedback(ctx context.Context, fb FeedbackEvent) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fb).
		Post(s.baseURL + "/feedback")
	if err != nil {
		return fmt.Errorf("failed to post feedback: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("analytics collector returned status %d", resp.StatusCode())
	}
	return nil
}

// Close is a no-op; resty manages its own transport
func (s *HTTPSink) Close() error {
	return nil
}
