package models

import (
	"github.com/shopspring/decimal"
)

// PackageDeal represents a bundle of service categories sold together at a
// blended discount. FinalPrice and Savings are derived:
// final = base * (1 - discount/100), savings = base - final.
type PackageDeal struct {
	ID                int64             `json:"id"`
	EventType         EventType         `json:"event_type"`
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	ServiceCategories []ServiceCategory `json:"service_categories"`
	BasePrice         decimal.Decimal   `json:"base_price"`
	DiscountPercent   decimal.Decimal   `json:"discount_percentage"`
	FinalPrice        decimal.Decimal   `json:"final_price"`
	Savings           decimal.Decimal   `json:"savings"`
	City              *string           `json:"city,omitempty"`
}

// Includes reports whether the package bundles the given category
func (p PackageDeal) Includes(category ServiceCategory) bool {
	for _, c := range p.ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

// DerivePricing fills FinalPrice and Savings from BasePrice and
// DiscountPercent, rounding to cents. Savings is non-negative for any
// discount within [0,100].
func (p *PackageDeal) DerivePricing() {
	discount := p.DiscountPercent.Div(decimal.NewFromInt(100))
	p.FinalPrice = p.BasePrice.Mul(decimal.NewFromInt(1).Sub(discount)).Round(2)
	p.Savings = p.BasePrice.Sub(p.FinalPrice)
}
