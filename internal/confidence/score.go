// Package confidence provides confidence score math for budget
// recommendations. The score blends source reliability with an exponential
// freshness decay on the price observation's age.
package confidence

import (
	"math"
	"time"
)

// Freshness maps an observation age to [0,1] with exponential half-life
// decay: an observation exactly halfLifeDays old scores 0.5.
func Freshness(observedAt, now time.Time, halfLifeDays float64) float64 {
	if halfLifeDays <= 0 {
		return 1
	}
	ageDays := now.Sub(observedAt).Hours() / 24
	if ageDays <= 0 {
		return 1
	}
	return math.Pow(2, -ageDays/halfLifeDays)
}

// Blend combines a source-reliability weight and a freshness weight into a
// single clamped score.
func Blend(reliability, freshness, sourceWeight, freshnessWeight float64) float64 {
	return Clamp(sourceWeight*reliability + freshnessWeight*freshness)
}

// Aggregate combines multiple confidence scores.
// Uses geometric mean to penalize low-confidence components.
func Aggregate(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	product := 1.0
	for _, s := range scores {
		if s <= 0 {
			return 0
		}
		product *= s
	}

	return math.Pow(product, 1.0/float64(len(scores)))
}

// Clamp ensures confidence is in valid range [0, 1].
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
