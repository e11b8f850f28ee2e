package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/planora/budget-api/internal/models"
)

var ErrTrackingConflict = errors.New("tracking entry was modified concurrently")

// TrackingRepository persists actual-vs-estimated entries, one row per
// (event, category). Writes go through an atomic upsert so concurrent
// recorders for the same key serialize at the database.
type TrackingRepository struct {
	pool *pgxpool.Pool
}

// NewTrackingRepository creates a new TrackingRepository
func NewTrackingRepository(pool *pgxpool.Pool) *TrackingRepository {
	return &TrackingRepository{pool: pool}
}

// Upsert inserts or replaces the entry for (event_id, category).
// Last write wins; callers needing conflict detection use UpsertIfUnchanged.
func (r *TrackingRepository) Upsert(ctx context.Context, e *models.TrackingEntry) error {
	query := `
		INSERT INTO budget_tracking (id, event_id, category, estimated, actual, variance, tracking_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (event_id, category) DO UPDATE
		SET actual = EXCLUDED.actual,
		    estimated = EXCLUDED.estimated,
		    variance = EXCLUDED.variance,
		    tracking_date = EXCLUDED.tracking_date,
		    updated_at = NOW()
		RETURNING id, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		e.ID, e.EventID, e.Category, e.EstimatedCost, e.ActualCost, e.Variance, e.TrackingDate,
	).Scan(&e.ID, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

// UpsertIfUnchanged is the strict-conflict variant: the write only lands if
// the existing row's updated_at still equals expected. A mismatch means a
// concurrent writer got there first and returns ErrTrackingConflict.
func (r *TrackingRepository) UpsertIfUnchanged(ctx context.Context, e *models.TrackingEntry, expected time.Time) error {
	query := `
		UPDATE budget_tracking
		SET actual = $1, estimated = $2, variance = $3, tracking_date = $4, updated_at = NOW()
		WHERE event_id = $5 AND category = $6 AND updated_at = $7
		RETURNING id, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		e.ActualCost, e.EstimatedCost, e.Variance, e.TrackingDate, e.EventID, e.Category, expected,
	).Scan(&e.ID, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrTrackingConflict
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

// GetByEvent retrieves all tracking entries for an event
func (r *TrackingRepository) GetByEvent(ctx context.Context, eventID int64) ([]models.TrackingEntry, error) {
	query := `
		SELECT id, event_id, category, estimated, actual, variance, tracking_date, updated_at
		FROM budget_tracking
		WHERE event_id = $1
		ORDER BY category
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer rows.Close()

	var entries []models.TrackingEntry
	for rows.Next() {
		var e models.TrackingEntry
		if err := rows.Scan(&e.ID, &e.EventID, &e.Category, &e.EstimatedCost, &e.ActualCost, &e.Variance, &e.TrackingDate, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tracking entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
