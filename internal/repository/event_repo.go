package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/planora/budget-api/internal/models"
)

var ErrEventNotFound = errors.New("event not found")

// EventRepository reads event rows and owns the event-scoped budget state:
// the persisted service breakdown and manual adjustments.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT id, owner_id, event_type, attendee_count, duration_hours, event_date, city, region, created_at
		FROM event
		WHERE id = $1
	`
	e := &models.Event{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.OwnerID, &e.EventType, &e.AttendeeCount, &e.DurationHours, &e.EventDate, &e.City, &e.Region, &e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return e, nil
}

// GetServiceBreakdown retrieves the persisted per-category amounts for an event
func (r *EventRepository) GetServiceBreakdown(ctx context.Context, eventID int64) ([]models.ServiceBreakdown, error) {
	query := `
		SELECT event_id, category, amount
		FROM service_breakdown
		WHERE event_id = $1
		ORDER BY category
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer rows.Close()

	var breakdown []models.ServiceBreakdown
	for rows.Next() {
		var b models.ServiceBreakdown
		if err := rows.Scan(&b.EventID, &b.Category, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan breakdown row: %w", err)
		}
		breakdown = append(breakdown, b)
	}
	return breakdown, rows.Err()
}

// ReplaceServiceBreakdown replaces the persisted breakdown for an event in
// one transaction
func (r *EventRepository) ReplaceServiceBreakdown(ctx context.Context, eventID int64, breakdown []models.ServiceBreakdown) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM service_breakdown WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("failed to clear breakdown: %w", err)
	}

	query := `INSERT INTO service_breakdown (event_id, category, amount) VALUES ($1, $2, $3)`
	for _, b := range breakdown {
		if _, err := tx.Exec(ctx, query, eventID, b.Category, b.Amount); err != nil {
			return fmt.Errorf("failed to insert breakdown row: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// InsertAdjustments persists a batch of manual adjustments
func (r *EventRepository) InsertAdjustments(ctx context.Context, eventID int64, adjustments []models.BudgetAdjustment) error {
	if len(adjustments) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO budget_adjustment (id, event_id, category, adjustment_type, adjustment_value, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	for i := range adjustments {
		a := &adjustments[i]
		if err := tx.QueryRow(ctx, query, a.ID, eventID, a.Category, a.AdjustmentType, a.AdjustmentValue, a.Reason).Scan(&a.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert adjustment: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetAdjustments retrieves all adjustments for an event, oldest first
func (r *EventRepository) GetAdjustments(ctx context.Context, eventID int64) ([]models.BudgetAdjustment, error) {
	query := `
		SELECT id, event_id, category, adjustment_type, adjustment_value, reason, created_at
		FROM budget_adjustment
		WHERE event_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer rows.Close()

	var adjustments []models.BudgetAdjustment
	for rows.Next() {
		var a models.BudgetAdjustment
		if err := rows.Scan(&a.ID, &a.EventID, &a.Category, &a.AdjustmentType, &a.AdjustmentValue, &a.Reason, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}
	return adjustments, rows.Err()
}
