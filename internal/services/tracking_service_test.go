package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/repository"
)

type fakeTrackingStore struct {
	entries     []models.TrackingEntry
	conflict    bool
	conditional int
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
	f.conditional++
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

type fakeBreakdownReader struct {
	rows []models.ServiceBreakdown
	err  error
}

func (f *fakeBreakdownReader) GetServiceBreakdown(ctx context.Context, eventID int64) ([]models.ServiceBreakdown, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func newTestTrackingService(store *fakeTrackingStore, breakdown BreakdownReader, now time.Time) *TrackingService {
	svc := NewTrackingService(store, breakdown)
	svc.now = func() time.Time { return now }
	return svc
}

func venueBreakdown() *fakeBreakdownReader {
	return &fakeBreakdownReader{rows: []models.ServiceBreakdown{
		{EventID: 7, Category: models.CategoryVenue, Amount: money(10140)},
		{EventID: 7, Category: models.CategoryCatering, Amount: money(8450)},
	}}
}

func TestRecordActual_ComputesVariance(t *testing.T) {
	now := testDate(2026, 7, 1)
	store := &fakeTrackingStore{}
	svc := newTestTrackingService(store, venueBreakdown(), now)

	entry, err := svc.RecordActual(context.Background(), 7, &models.RecordActualRequest{
		Category:   models.CategoryVenue,
		ActualCost: money(11500),
	})
	if err != nil {
		t.Fatalf("RecordActual failed: %v", err)
	}

	if !entry.EstimatedCost.Equal(money(10140)) {
		t.Errorf("expected the stored estimate 10140, got %s", entry.EstimatedCost)
	}
	if !entry.Variance.Equal(money(1360)) {
		t.Errorf("expected variance 1360, got %s", entry.Variance)
	}
	if !entry.OverBudget() {
		t.Error("spending above the estimate is over budget")
	}
	if !entry.TrackingDate.Equal(now) {
		t.Errorf("expected the injected clock as tracking date, got %v", entry.TrackingDate)
	}
	if len(store.entries) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(store.entries))
	}
}

func TestRecordActual_ExplicitTrackingDate(t *testing.T) {
	now := testDate(2026, 7, 1)
	svc := newTestTrackingService(&fakeTrackingStore{}, venueBreakdown(), now)

	when := testDate(2026, 6, 21)
	entry, err := svc.RecordActual(context.Background(), 7, &models.RecordActualRequest{
		Category:     models.CategoryVenue,
		ActualCost:   money(9000),
		TrackingDate: &models.DateOnly{Time: when},
	})
	if err != nil {
		t.Fatalf("RecordActual failed: %v", err)
	}
	if !entry.TrackingDate.Equal(when) {
		t.Errorf("expected the supplied tracking date, got %v", entry.TrackingDate)
	}
	if entry.OverBudget() {
		t.Error("under-spend is not over budget")
	}
}

func TestRecordActual_NoEstimateWarns(t *testing.T) {
	now := testDate(2026, 7, 1)
	svc := newTestTrackingService(&fakeTrackingStore{}, venueBreakdown(), now)
	ctx, wc := NewWarningContext(context.Background())

	entry, err := svc.RecordActual(ctx, 7, &models.RecordActualRequest{
		Category:   models.CategoryMusic,
		ActualCost: money(1200),
	})
	if err != nil {
		t.Fatalf("RecordActual failed: %v", err)
	}

	if !entry.EstimatedCost.IsZero() {
		t.Errorf("expected a zero estimate, got %s", entry.EstimatedCost)
	}
	if !entry.Variance.Equal(money(1200)) {
		t.Errorf("variance against a zero estimate is the full actual, got %s", entry.Variance)
	}
	if entry.Accuracy() != 0 {
		t.Errorf("a zero estimate contributes zero accuracy, got %v", entry.Accuracy())
	}

	warnings := wc.GetWarnings()
	if len(warnings) != 1 || warnings[0].Code != models.WarnZeroEstimate {
		t.Errorf("expected a %s warning, got %v", models.WarnZeroEstimate, warnings)
	}
}

func TestRecordActual_NegativeActual(t *testing.T) {
	now := testDate(2026, 7, 1)
	svc := newTestTrackingService(&fakeTrackingStore{}, venueBreakdown(), now)

	_, err := svc.RecordActual(context.Background(), 7, &models.RecordActualRequest{
		Category:   models.CategoryVenue,
		ActualCost: money(-100),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecordActual_LastWriteWins(t *testing.T) {
	now := testDate(2026, 7, 1)
	store := &fakeTrackingStore{}
	svc := newTestTrackingService(store, venueBreakdown(), now)

	for _, actual := range []float64{11000, 11500} {
		if _, err := svc.RecordActual(context.Background(), 7, &models.RecordActualRequest{
			Category:   models.CategoryVenue,
			ActualCost: money(actual),
		}); err != nil {
			t.Fatalf("RecordActual failed: %v", err)
		}
	}

	if len(store.entries) != 1 {
		t.Fatalf("re-recording a category must upsert, got %d entries", len(store.entries))
	}
	if !store.entries[0].ActualCost.Equal(money(11500)) {
		t.Errorf("expected the later write to win, got %s", store.entries[0].ActualCost)
	}
}

func TestRecordActual_ConflictSurfaces(t *testing.T) {
	now := testDate(2026, 7, 1)
	store := &fakeTrackingStore{conflict: true}
	svc := newTestTrackingService(store, venueBreakdown(), now)

	stamp := models.FlexibleDate{Time: testDate(2026, 6, 30)}
	_, err := svc.RecordActual(context.Background(), 7, &models.RecordActualRequest{
		Category:          models.CategoryVenue,
		ActualCost:        money(11000),
		ExpectedUpdatedAt: &stamp,
	})
	if !errors.Is(err, ErrTrackingConflict) {
		t.Errorf("expected ErrTrackingConflict, got %v", err)
	}
}

func TestRecordActual_ConditionalWrite(t *testing.T) {
	now := testDate(2026, 7, 1)
	store := &fakeTrackingStore{}
	svc := newTestTrackingService(store, venueBreakdown(), now)

	stamp := models.FlexibleDate{Time: testDate(2026, 6, 30)}
	_, err := svc.RecordActual(context.Background(), 7, &models.RecordActualRequest{
		Category:          models.CategoryVenue,
		ActualCost:        money(11000),
		ExpectedUpdatedAt: &stamp,
	})
	if err != nil {
		t.Fatalf("RecordActual failed: %v", err)
	}
	if store.conditional != 1 {
		t.Errorf("expected the conditional write path, got %d conditional calls", store.conditional)
	}
}

func TestTrackingSummary_Aggregates(t *testing.T) {
	now := testDate(2026, 7, 1)
	store := &fakeTrackingStore{entries: []models.TrackingEntry{
		{EventID: 7, Category: models.CategoryVenue, EstimatedCost: money(1000), ActualCost: money(1000), Variance: money(0)},
		{EventID: 7, Category: models.CategoryCatering, EstimatedCost: money(1000), ActualCost: money(1100), Variance: money(100)},
		{EventID: 8, Category: models.CategoryVenue, EstimatedCost: money(500), ActualCost: money(900), Variance: money(400)},
	}}
	svc := newTestTrackingService(store, venueBreakdown(), now)

	summary, err := svc.Summary(context.Background(), 7)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if len(summary.Entries) != 2 {
		t.Fatalf("expected 2 entries for event 7, got %d", len(summary.Entries))
	}
	if !summary.TotalEstimated.Equal(money(2000)) || !summary.TotalActual.Equal(money(2100)) {
		t.Errorf("expected totals 2000/2100, got %s/%s", summary.TotalEstimated, summary.TotalActual)
	}
	if !summary.TotalVariance.Equal(money(100)) {
		t.Errorf("expected total variance 100, got %s", summary.TotalVariance)
	}
	// mean of 1.0 and 0.9
	assertClose(t, "accuracy", summary.Accuracy, 0.95, 1e-9)
	if summary.OverBudget != 1 {
		t.Errorf("expected 1 over-budget entry, got %d", summary.OverBudget)
	}
}

func TestTrackingSummary_Empty(t *testing.T) {
	now := testDate(2026, 7, 1)
	svc := newTestTrackingService(&fakeTrackingStore{}, venueBreakdown(), now)

	summary, err := svc.Summary(context.Background(), 99)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(summary.Entries) != 0 || summary.Accuracy != 0 || summary.OverBudget != 0 {
		t.Errorf("expected an empty summary, got %+v", summary)
	}
}
