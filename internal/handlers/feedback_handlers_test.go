package handlers

import (
	"net/http"
	"testing"
)

func TestFeedbackEndpoint_AlwaysAccepts(t *testing.T) {
	env := newTestEnv()

	body := map[string]interface{}{
		"event_type": "wedding",
		"category":   "venue",
		"helpful":    true,
		"comment":    "venue estimate matched our quotes",
	}
	w := postJSON(t, env.router, "/api/v1/budget/feedback", body, "42")
	if w.Code != http.StatusAccepted {
		t.Errorf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFeedbackEndpoint_RequiresVerdict(t *testing.T) {
	env := newTestEnv()

	body := map[string]interface{}{"event_type": "wedding", "category": "venue"}
	if w := postJSON(t, env.router, "/api/v1/budget/feedback", body, ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without the helpful flag, got %d", w.Code)
	}
}
