package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/planora/budget-api/internal/analytics"
	"github.com/planora/budget-api/internal/middleware"
	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/repository"
	"github.com/planora/budget-api/internal/rules"
	"github.com/planora/budget-api/internal/services"
)

type fakeEventStore struct {
	event       *models.Event
	breakdown   []models.ServiceBreakdown
	adjustments []models.BudgetAdjustment
	replaced    []models.ServiceBreakdown
	inserted    []models.BudgetAdjustment
}

func (f *fakeEventStore) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	if f.event == nil || f.event.ID != id {
		return nil, repository.ErrEventNotFound
	}
	return f.event, nil
}

func (f *fakeEventStore) GetServiceBreakdown(ctx context.Context, eventID int64) ([]models.ServiceBreakdown, error) {
	return f.breakdown, nil
}

func (f *fakeEventStore) ReplaceServiceBreakdown(ctx context.Context, eventID int64, breakdown []models.ServiceBreakdown) error {
	f.replaced = breakdown
	return nil
}

func (f *fakeEventStore) InsertAdjustments(ctx context.Context, eventID int64, adjustments []models.BudgetAdjustment) error {
	f.inserted = adjustments
	return nil
}

func (f *fakeEventStore) GetAdjustments(ctx context.Context, eventID int64) ([]models.BudgetAdjustment, error) {
	return f.adjustments, nil
}

type fakeTrackingStore struct {
	entries  []models.TrackingEntry
	conflict bool
}

func (f *fakeTrackingStore) upsert(e *models.TrackingEntry) {
	for i := range f.entries {
		if f.entries[i].EventID == e.EventID && f.entries[i].Category == e.Category {
			f.entries[i] = *e
			return
		}
	}
	f.entries = append(f.entries, *e)
}

func (f *fakeTrackingStore) Upsert(ctx context.Context, e *models.TrackingEntry) error {
	f.upsert(e)
	return nil
}

func (f *fakeTrackingStore) UpsertIfUnchanged(ctx context.Context, e *models.TrackingEntry, expected time.Time) error {
	if f.conflict {
		return repository.ErrTrackingConflict
	}
	f.upsert(e)
	return nil
}

func (f *fakeTrackingStore) GetByEvent(ctx context.Context, eventID int64) ([]models.TrackingEntry, error) {
	var out []models.TrackingEntry
	for _, e := range f.entries {
		if e.EventID == eventID {
			out = append(out, e)
		}
	}
	return out, nil
}

type testEnv struct {
	router   *gin.Engine
	events   *fakeEventStore
	tracking *fakeTrackingStore
}

// newTestEnv wires the full route table the way main does, with the seeded
// memory catalog standing in for the pg repositories.
func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	ruleSet := rules.Default()
	catalog := repository.NewMemoryCatalog(ruleSet, time.Now())
	events := &fakeEventStore{
		event: &models.Event{
			ID:            7,
			OwnerID:       1,
			EventType:     models.EventTypeWedding,
			AttendeeCount: 100,
			DurationHours: 4,
			EventDate:     time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
			City:          "Seattle",
		},
	}
	tracking := &fakeTrackingStore{}

	pricingSvc := services.NewPricingService(catalog, nil)
	seasonalSvc := services.NewSeasonalService(ruleSet)
	locationSvc := services.NewLocationService(ruleSet)
	recommendationSvc := services.NewRecommendationService(pricingSvc, seasonalSvc, locationSvc, ruleSet)
	packageSvc := services.NewPackageService(catalog, nil)
	trackingSvc := services.NewTrackingService(tracking, events)
	validationSvc := services.NewValidationService()
	budgetSvc := services.NewBudgetService(events, recommendationSvc, trackingSvc, validationSvc)
	suggestionSvc := services.NewSuggestionService(ruleSet)
	feedbackSvc := services.NewFeedbackService(analytics.NewNopSink())

	budgetHandler := NewBudgetHandler(recommendationSvc, budgetSvc, suggestionSvc, validationSvc)
	packageHandler := NewPackageHandler(packageSvc, budgetSvc)
	trackingHandler := NewTrackingHandler(trackingSvc)
	feedbackHandler := NewFeedbackHandler(feedbackSvc)
	exportHandler := NewExportHandler(budgetSvc)

	router := gin.New()
	router.Use(middleware.ValidateUser())

	v1 := router.Group("/api/v1")
	v1.POST("/budget/recommendations", budgetHandler.Recommend)
	v1.POST("/budget/suggestions", budgetHandler.Suggestions)
	v1.POST("/budget/validate", budgetHandler.Validate)
	v1.POST("/budget/packages/apply", packageHandler.Apply)
	v1.POST("/budget/feedback", feedbackHandler.Submit)
	v1.GET("/packages", packageHandler.List)
	v1.GET("/events/:id/budget", budgetHandler.GetEventBudget)
	v1.POST("/events/:id/budget/adjustments", middleware.RequireAuth(), budgetHandler.SubmitAdjustments)
	v1.GET("/events/:id/budget/tracking", trackingHandler.Summary)
	v1.POST("/events/:id/budget/tracking", middleware.RequireAuth(), trackingHandler.RecordActual)
	v1.GET("/events/:id/budget/export", exportHandler.Export)

	return &testEnv{router: router, events: events, tracking: tracking}
}

// postJSON sends a JSON body; userID goes into X-User-ID when non-empty
func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}, userID string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
}

// savingsPlan is a 12000 plan with decorations budgeted and no package
// applied, so the generator has rules to fire on.
func savingsPlan() *models.BudgetPlan {
	return &models.BudgetPlan{
		EventType:   models.EventTypeWedding,
		TotalBudget: decimal.NewFromInt(12000),
		Recommendations: []models.BudgetRecommendation{
			{Category: models.CategoryVenue, RecommendedAmount: decimal.NewFromInt(6000)},
			{Category: models.CategoryCatering, RecommendedAmount: decimal.NewFromInt(4000)},
			{Category: models.CategoryDecorations, RecommendedAmount: decimal.NewFromInt(2000)},
		},
	}
}
