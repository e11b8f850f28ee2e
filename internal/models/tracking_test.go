package models

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func entry(estimated, actual float64) TrackingEntry {
	e := TrackingEntry{
		EstimatedCost: decimal.NewFromFloat(estimated),
		ActualCost:    decimal.NewFromFloat(actual),
	}
	e.Variance = e.ActualCost.Sub(e.EstimatedCost)
	return e
}

func TestTrackingEntry_Accuracy(t *testing.T) {
	cases := []struct {
		name      string
		estimated float64
		actual    float64
		want      float64
	}{
		{"exact match", 1000, 1000, 1.0},
		{"ten percent over", 1000, 1100, 0.9},
		{"ten percent under", 1000, 900, 0.9},
		{"double the estimate", 1000, 2000, 0},
		{"way over", 1000, 5000, 0},
		{"zero estimate", 0, 500, 0},
	}

	for _, c := range cases {
		got := entry(c.estimated, c.actual).Accuracy()
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s: expected accuracy %v, got %v", c.name, c.want, got)
		}
	}
}

func TestTrackingEntry_OverBudget(t *testing.T) {
	if !entry(1000, 1200).OverBudget() {
		t.Error("actual above estimate should be over budget")
	}
	if entry(1000, 1000).OverBudget() {
		t.Error("exact spend is not over budget")
	}
	if entry(1000, 800).OverBudget() {
		t.Error("under-spend is not over budget")
	}
}
