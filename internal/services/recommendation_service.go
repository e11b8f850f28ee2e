package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/planora/budget-api/internal/confidence"
	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/repository"
	"github.com/planora/budget-api/internal/rules"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrPricingNotFound  = errors.New("no base pricing for category")
	ErrInvalidInput     = errors.New("invalid recommendation input")
)

// RecommendationService composes the pricing catalog with the seasonal and
// location adjusters into per-category recommended amounts and a total.
type RecommendationService struct {
	pricing  PricingCatalog
	seasonal *SeasonalService
	location *LocationService
	rules    *rules.Rules
	now      func() time.Time
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(pricing PricingCatalog, seasonal *SeasonalService, location *LocationService, r *rules.Rules) *RecommendationService {
	return &RecommendationService{
		pricing:  pricing,
		seasonal: seasonal,
		location: location,
		rules:    r,
		now:      time.Now,
	}
}

// Recommend computes a budget plan for the event parameters. The category
// set is fixed per event type; categories are priced concurrently since the
// catalogs are read-only.
func (s *RecommendationService) Recommend(ctx context.Context, req *models.RecommendBudgetRequest) (*models.BudgetPlan, error) {
	defer TrackTime("Recommend", time.Now())

	if req.AttendeeCount < 0 {
		return nil, fmt.Errorf("%w: attendee count must not be negative", ErrInvalidInput)
	}
	if req.DurationHours < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	if req.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event date is required", ErrInvalidInput)
	}

	categories, ok := s.rules.CategoriesFor(req.EventType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, req.EventType)
	}

	// One seasonal adjustment covers the whole event; location varies per
	// category through the service adjustment.
	seasonal := s.seasonal.Adjust(req.EventDate.Time, req.Location)
	scale := s.rules.Scale.Factor(req.AttendeeCount, req.DurationHours)
	now := s.now()

	recommendations := make([]models.BudgetRecommendation, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			rec, err := s.recommendCategory(gctx, category, req, seasonal, scale, now)
			if err != nil {
				return err
			}
			recommendations[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scores := make([]float64, len(recommendations))
	for i, rec := range recommendations {
		scores[i] = rec.ConfidenceScore
	}

	plan := &models.BudgetPlan{
		EventID:           req.EventID,
		EventType:         req.EventType,
		EventDate:         req.EventDate.Time,
		AttendeeCount:     req.AttendeeCount,
		DurationHours:     req.DurationHours,
		Location:          req.Location,
		Recommendations:   recommendations,
		OverallConfidence: confidence.Aggregate(scores),
		PackageSavings:    decimal.Zero,
		Seasonal:          &seasonal,
		GeneratedAt:       now,
	}
	plan.TotalBudget = plan.BreakdownTotal()

	return plan, nil
}

func (s *RecommendationService) recommendCategory(ctx context.Context, category models.ServiceCategory, req *models.RecommendBudgetRequest, seasonal models.SeasonalAdjustment, scale float64, now time.Time) (models.BudgetRecommendation, error) {
	pr, err := s.pricing.BasePrice(ctx, category, req.EventType, req.Location)
	if err != nil {
		if errors.Is(err, repository.ErrPricingNotFound) {
			return models.BudgetRecommendation{}, fmt.Errorf("%w: %s/%s", ErrPricingNotFound, req.EventType, category)
		}
		return models.BudgetRecommendation{}, fmt.Errorf("failed to fetch base price for %s: %w", category, err)
	}

	loc := s.location.Adjust(ctx, category, req.Location)

	multiplier := decimal.NewFromFloat(seasonal.FinalMultiplier).
		Mul(decimal.NewFromFloat(loc.CombinedMultiplier)).
		Mul(decimal.NewFromFloat(scale))

	score := s.confidenceScore(pr, loc, now)

	return models.BudgetRecommendation{
		Category:          category,
		RecommendedAmount: pr.Average.Mul(multiplier).Round(2),
		MinAmount:         pr.Min.Mul(multiplier).Round(2),
		MaxAmount:         pr.Max.Mul(multiplier).Round(2),
		ConfidenceScore:   score,
		PricingSource:     pr.Source,
	}, nil
}

// confidenceScore blends source reliability with freshness decay and
// applies the approximate-location penalty. Deterministic for a fixed clock.
func (s *RecommendationService) confidenceScore(pr *models.PriceRange, loc models.LocationAdjustment, now time.Time) float64 {
	cr := s.rules.Confidence
	score := confidence.Blend(
		cr.Reliability(pr.Source),
		confidence.Freshness(pr.ObservedAt, now, cr.FreshnessHalfLifeDays),
		cr.SourceWeight,
		cr.FreshnessWeight,
	)
	if loc.Approximate {
		score *= cr.ApproximateLocationPenalty
	}
	return confidence.Clamp(score)
}
