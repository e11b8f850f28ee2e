package models

// ServiceCategory represents a budgetable service line within an event
type ServiceCategory string

const (
	CategoryVenue          ServiceCategory = "venue"
	CategoryCatering       ServiceCategory = "catering"
	CategoryPhotography    ServiceCategory = "photography"
	CategoryMusic          ServiceCategory = "music"
	CategoryDecorations    ServiceCategory = "decorations"
	CategoryFlowers        ServiceCategory = "flowers"
	CategoryTransportation ServiceCategory = "transportation"
	CategoryEntertainment  ServiceCategory = "entertainment"
	CategoryAVEquipment    ServiceCategory = "av_equipment"
	CategoryStaffing       ServiceCategory = "staffing"
)

// EventType represents the kind of event a budget is computed for
type EventType string

const (
	EventTypeWedding    EventType = "wedding"
	EventTypeCorporate  EventType = "corporate"
	EventTypeBirthday   EventType = "birthday"
	EventTypeConference EventType = "conference"
	EventTypeGala       EventType = "gala"
)

// SeasonType classifies a date into a demand tier
type SeasonType string

const (
	SeasonPeak     SeasonType = "peak"
	SeasonShoulder SeasonType = "shoulder"
	SeasonOffPeak  SeasonType = "off_peak"
	SeasonStandard SeasonType = "standard"
)

// CostCategory classifies a geographic area by relative service pricing level
type CostCategory string

const (
	CostHigh         CostCategory = "high_cost"
	CostModerateHigh CostCategory = "moderate_high_cost"
	CostModerate     CostCategory = "moderate_cost"
	CostLow          CostCategory = "low_cost"
)

// PriceSource identifies where a base price observation came from.
// Source reliability feeds the confidence score.
type PriceSource string

const (
	SourceVendorQuote       PriceSource = "vendor_quote"
	SourceHistoricalBooking PriceSource = "historical_booking"
	SourceMarketSurvey      PriceSource = "market_survey"
	SourceIndustryDefault   PriceSource = "industry_default"
)

// AdjustmentType distinguishes percentage from fixed-amount manual adjustments
type AdjustmentType string

const (
	AdjustmentPercentage AdjustmentType = "percentage"
	AdjustmentFixed      AdjustmentType = "fixed"
)
