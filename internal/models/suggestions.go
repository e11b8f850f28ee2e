package models

import (
	"github.com/shopspring/decimal"
)

// Difficulty grades how hard a cost-saving suggestion is to act on
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// CostSavingSuggestion is one actionable way to reduce a plan's budget.
// Suggestions preserve rule-evaluation order; callers may re-sort by
// PotentialSavings or Difficulty.
type CostSavingSuggestion struct {
	ID               string          `json:"id"`
	Category         string          `json:"category"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	PotentialSavings decimal.Decimal `json:"potential_savings"`
	Difficulty       Difficulty      `json:"difficulty"`
	Impact           ImpactLevel     `json:"impact"`
	TimeToImplement  string          `json:"time_to_implement"`
	Requirements     []string        `json:"requirements"`
	Risks            []string        `json:"risks"`
	Alternatives     []string        `json:"alternatives"`
}
