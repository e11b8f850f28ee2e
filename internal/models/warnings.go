package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = pricing, W2xxx = location, W3xxx = packages, W4xxx = tracking.
type WarningCode string

const (
	WarnStalePricing        WarningCode = "W1001" // base price observation older than the freshness horizon
	WarnDefaultPricing      WarningCode = "W1002" // industry-default source used (lowest reliability tier)
	WarnApproximateLocation WarningCode = "W2001" // city/region missing or unrecognized, neutral tier assumed
	WarnPackageMismatch     WarningCode = "W3001" // package bundles categories the plan does not carry
	WarnZeroEstimate        WarningCode = "W4001" // tracked category had no estimate, accuracy contribution is 0
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
