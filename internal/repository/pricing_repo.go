package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/planora/budget-api/internal/models"
)

var (
	ErrPricingNotFound = errors.New("base pricing not found")
	ErrUpstream        = errors.New("pricing store unavailable")
)

// PricingRepository reads base price ranges from the platform catalog.
// The catalog is externally owned; this repository never writes to it.
type PricingRepository struct {
	pool *pgxpool.Pool
}

// NewPricingRepository creates a new PricingRepository
func NewPricingRepository(pool *pgxpool.Pool) *PricingRepository {
	return &PricingRepository{pool: pool}
}

// BasePrice retrieves the base price range for a category/event type.
// A city-specific row wins over the generic row when the location matches.
func (r *PricingRepository) BasePrice(ctx context.Context, category models.ServiceCategory, eventType models.EventType, loc models.Location) (*models.PriceRange, error) {
	query := `
		SELECT category, event_type, min_price, max_price, avg_price, source, observed_at
		FROM base_price
		WHERE category = $1 AND event_type = $2
		  AND (city = NULLIF($3, '') OR city IS NULL)
		ORDER BY city NULLS LAST
		LIMIT 1
	`
	pr := &models.PriceRange{}
	err := r.pool.QueryRow(ctx, query, category, eventType, strings.ToLower(loc.City)).Scan(
		&pr.Category, &pr.EventType, &pr.Min, &pr.Max, &pr.Average, &pr.Source, &pr.ObservedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPricingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return pr, nil
}
