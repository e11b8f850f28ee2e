package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/planora/budget-api/internal/cache"
	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrPackageNotFound = errors.New("package deal not found")
	ErrInvalidPackage  = errors.New("package cannot be applied to this plan")
)

// PackageCatalog is the read-only package deal source. Implemented by the pg
// repository in the API and by the rules-seeded memory catalog offline.
type PackageCatalog interface {
	ListPackages(ctx context.Context, eventType models.EventType, loc models.Location) ([]models.PackageDeal, error)
	GetPackage(ctx context.Context, id int64) (*models.PackageDeal, error)
}

// PackageService lists package deals and applies them to budget plans
type PackageService struct {
	catalog  PackageCatalog
	memCache *cache.MemoryCache
	now      func() time.Time
}

// NewPackageService creates a new PackageService
func NewPackageService(catalog PackageCatalog, memCache *cache.MemoryCache) *PackageService {
	return &PackageService{
		catalog:  catalog,
		memCache: memCache,
		now:      time.Now,
	}
}

// List returns the deals available for an event type and location
func (s *PackageService) List(ctx context.Context, eventType models.EventType, loc models.Location) ([]models.PackageDeal, error) {
	city := strings.ToLower(loc.City)

	if s.memCache != nil {
		if deals, found := s.memCache.GetPackages(eventType, city); found {
			return deals, nil
		}
	}

	deals, err := s.catalog.ListPackages(ctx, eventType, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages for %s: %w", eventType, err)
	}

	if s.memCache != nil {
		s.memCache.SetPackages(eventType, city, deals)
	}
	return deals, nil
}

// Apply replaces the plan's member-category amounts with the package price
// and records the difference as savings. Applying the same package twice is
// a no-op; the applied marker on the plan makes replays safe.
func (s *PackageService) Apply(ctx context.Context, plan *models.BudgetPlan, packageID int64) (*models.BudgetPlan, error) {
	defer TrackTime("ApplyPackage", time.Now())

	if plan == nil || len(plan.Recommendations) == 0 {
		return nil, fmt.Errorf("%w: plan has no recommendations", ErrInvalidPackage)
	}
	if plan.HasPackage(packageID) {
		return plan, nil
	}

	pkg, err := s.catalog.GetPackage(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to fetch package %d: %w", packageID, err)
	}
	if pkg.EventType != plan.EventType {
		return nil, fmt.Errorf("%w: package %q targets %s events", ErrInvalidPackage, pkg.Name, pkg.EventType)
	}

	// Member categories are the overlap between the package contents and
	// the plan's breakdown. Package categories absent from the plan are
	// simply not replaced.
	var members []int
	replaced := decimal.Zero
	for i := range plan.Recommendations {
		if pkg.Includes(plan.Recommendations[i].Category) {
			members = append(members, i)
			replaced = replaced.Add(plan.Recommendations[i].RecommendedAmount)
		}
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: package %q covers none of the plan categories", ErrInvalidPackage, pkg.Name)
	}

	s.reallocate(plan, members, replaced, pkg.FinalPrice)

	plan.PackageSavings = plan.PackageSavings.Add(replaced.Sub(pkg.FinalPrice))
	plan.Packages = append(plan.Packages, models.AppliedPackage{
		Package:        *pkg,
		ReplacedAmount: replaced,
		AppliedAt:      s.now(),
	})
	plan.TotalBudget = plan.BreakdownTotal()

	return plan, nil
}

// reallocate spreads the package price across the member categories in
// proportion to their prior amounts. The last member absorbs the rounding
// remainder so the members sum exactly to the package price. A zero prior
// sum falls back to an equal split.
func (s *PackageService) reallocate(plan *models.BudgetPlan, members []int, replaced, finalPrice decimal.Decimal) {
	allocated := decimal.Zero
	for n, i := range members {
		rec := &plan.Recommendations[i]

		var share decimal.Decimal
		switch {
		case n == len(members)-1:
			share = finalPrice.Sub(allocated)
		case replaced.IsZero():
			share = finalPrice.Div(decimal.NewFromInt(int64(len(members)))).Round(2)
		default:
			share = finalPrice.Mul(rec.RecommendedAmount).Div(replaced).Round(2)
		}

		rec.RecommendedAmount = share
		allocated = allocated.Add(share)
	}
}
