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

var ErrPackageNotFound = errors.New("package deal not found")

// PackageRepository reads package deals from the platform catalog
type PackageRepository struct {
	pool *pgxpool.Pool
}

// NewPackageRepository creates a new PackageRepository
func NewPackageRepository(pool *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{pool: pool}
}

// ListPackages retrieves the deals available for an event type. City-scoped
// deals are included only when the location matches.
func (r *PackageRepository) ListPackages(ctx context.Context, eventType models.EventType, loc models.Location) ([]models.PackageDeal, error) {
	query := `
		SELECT id, event_type, name, description, service_categories, base_price, discount_pct, city
		FROM package_deal
		WHERE event_type = $1
		  AND (city IS NULL OR city = NULLIF($2, ''))
		ORDER BY base_price
	`
	rows, err := r.pool.Query(ctx, query, eventType, strings.ToLower(loc.City))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer rows.Close()

	var packages []models.PackageDeal
	for rows.Next() {
		var p models.PackageDeal
		var categories []string
		if err := rows.Scan(&p.ID, &p.EventType, &p.Name, &p.Description, &categories, &p.BasePrice, &p.DiscountPercent, &p.City); err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		for _, c := range categories {
			p.ServiceCategories = append(p.ServiceCategories, models.ServiceCategory(c))
		}
		p.DerivePricing()
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

// GetPackage retrieves a single deal by ID
func (r *PackageRepository) GetPackage(ctx context.Context, id int64) (*models.PackageDeal, error) {
	query := `
		SELECT id, event_type, name, description, service_categories, base_price, discount_pct, city
		FROM package_deal
		WHERE id = $1
	`
	p := &models.PackageDeal{}
	var categories []string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EventType, &p.Name, &p.Description, &categories, &p.BasePrice, &p.DiscountPercent, &p.City,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	for _, c := range categories {
		p.ServiceCategories = append(p.ServiceCategories, models.ServiceCategory(c))
	}
	p.DerivePricing()
	return p, nil
}
