package rules

import (
	"github.com/planora/budget-api/internal/models"
)

// Default returns the compiled-in rule tables. These are the production
// defaults; a rules file loaded via Load overrides them wholesale.
func Default() *Rules {
	return &Rules{
		Seasons: SeasonRules{
			Calendar: SeasonCalendar{
				PeakMonths:     []int{6, 7, 8, 9, 12},
				ShoulderMonths: []int{4, 5, 10},
				OffPeakMonths:  []int{1, 2, 3},
			},
			Multipliers: map[models.SeasonType]float64{
				models.SeasonPeak:     1.3,
				models.SeasonShoulder: 1.1,
				models.SeasonOffPeak:  0.8,
				models.SeasonStandard: 1.0,
			},
		},
		SpecialDates: []SpecialDate{
			{Month: 12, Day: 31, Name: "New Year's Eve", Multiplier: 1.5},
			{Month: 2, Day: 14, Name: "Valentine's Day", Multiplier: 1.4},
			{Month: 12, Day: 24, Name: "Christmas Eve", Multiplier: 1.25},
			{Month: 12, Day: 25, Name: "Christmas Day", Multiplier: 1.25},
			{Month: 7, Day: 4, Name: "Independence Day", Multiplier: 1.2},
		},
		Locations: LocationRules{
			CityTiers: map[string]models.CostCategory{
				"new york":      models.CostHigh,
				"san francisco": models.CostHigh,
				"los angeles":   models.CostHigh,
				"chicago":       models.CostHigh,
				"boston":        models.CostHigh,
				"seattle":       models.CostHigh,
				"washington":    models.CostHigh,
				"austin":        models.CostModerateHigh,
				"denver":        models.CostModerateHigh,
				"miami":         models.CostModerateHigh,
				"san diego":     models.CostModerateHigh,
				"portland":      models.CostModerateHigh,
				"atlanta":       models.CostModerateHigh,
				"nashville":     models.CostModerateHigh,
			},
			RegionTiers: map[string]models.CostCategory{
				"northeast": models.CostModerateHigh,
				"west":      models.CostModerateHigh,
				"midwest":   models.CostModerate,
				"south":     models.CostModerate,
				"rural":     models.CostLow,
			},
			TierMultipliers: map[models.CostCategory]float64{
				models.CostHigh:         1.3,
				models.CostModerateHigh: 1.15,
				models.CostModerate:     1.0,
				models.CostLow:          0.8,
			},
			ServiceAdjustments: map[models.ServiceCategory]float64{
				models.CategoryVenue:          1.2,
				models.CategoryTransportation: 1.05,
				models.CategoryDecorations:    0.95,
				models.CategoryFlowers:        0.95,
			},
		},
		Scale: ScaleRules{
			BaseAttendees:     100,
			MinAttendeeFactor: 0.5,
			IncludedHours:     4,
			PerHourUplift:     0.1,
		},
		Confidence: ConfidenceRules{
			SourceReliability: map[models.PriceSource]float64{
				models.SourceVendorQuote:       0.95,
				models.SourceHistoricalBooking: 0.90,
				models.SourceMarketSurvey:      0.80,
				models.SourceIndustryDefault:   0.60,
			},
			UnknownSourceReliability:   0.50,
			SourceWeight:               0.6,
			FreshnessWeight:            0.4,
			FreshnessHalfLifeDays:      180,
			ApproximateLocationPenalty: 0.9,
		},
		Categories: map[models.EventType][]models.ServiceCategory{
			models.EventTypeWedding: {
				models.CategoryVenue,
				models.CategoryCatering,
				models.CategoryPhotography,
				models.CategoryMusic,
				models.CategoryFlowers,
				models.CategoryDecorations,
				models.CategoryTransportation,
			},
			models.EventTypeCorporate: {
				models.CategoryVenue,
				models.CategoryCatering,
				models.CategoryAVEquipment,
				models.CategoryEntertainment,
				models.CategoryTransportation,
				models.CategoryStaffing,
			},
			models.EventTypeBirthday: {
				models.CategoryVenue,
				models.CategoryCatering,
				models.CategoryDecorations,
				models.CategoryEntertainment,
			},
			models.EventTypeConference: {
				models.CategoryVenue,
				models.CategoryCatering,
				models.CategoryAVEquipment,
				models.CategoryStaffing,
				models.CategoryTransportation,
			},
			models.EventTypeGala: {
				models.CategoryVenue,
				models.CategoryCatering,
				models.CategoryEntertainment,
				models.CategoryDecorations,
				models.CategoryFlowers,
				models.CategoryStaffing,
				models.CategoryPhotography,
			},
		},
		Suggestions: SuggestionRules{
			PackageDealThreshold:       10000,
			PackageDealRate:            0.15,
			OffSeasonThreshold:         5000,
			OffSeasonRate:              0.20,
			DIYDecorationsRate:         0.05,
			ConsolidationMinCategories: 6,
			ConsolidationRate:          0.08,
			DateShiftThreshold:         8000,
			DateShiftRate:              0.10,
		},
		BasePrices: defaultBasePrices(),
		Packages:   defaultPackages(),
	}
}

func defaultBasePrices() []BasePriceSeed {
	return []BasePriceSeed{
		// Weddings
		{Category: models.CategoryVenue, EventType: models.EventTypeWedding, Min: 3000, Max: 6500, Average: 4500, Source: models.SourceHistoricalBooking, AgeDays: 45},
		{Category: models.CategoryCatering, EventType: models.EventTypeWedding, Min: 3500, Max: 7000, Average: 5000, Source: models.SourceHistoricalBooking, AgeDays: 30},
		{Category: models.CategoryPhotography, EventType: models.EventTypeWedding, Min: 1500, Max: 3800, Average: 2500, Source: models.SourceMarketSurvey, AgeDays: 90},
		{Category: models.CategoryMusic, EventType: models.EventTypeWedding, Min: 900, Max: 2400, Average: 1500, Source: models.SourceMarketSurvey, AgeDays: 90},
		{Category: models.CategoryFlowers, EventType: models.EventTypeWedding, Min: 1100, Max: 2600, Average: 1800, Source: models.SourceVendorQuote, AgeDays: 20},
		{Category: models.CategoryDecorations, EventType: models.EventTypeWedding, Min: 700, Max: 1900, Average: 1200, Source: models.SourceIndustryDefault, AgeDays: 180},
		{Category: models.CategoryTransportation, EventType: models.EventTypeWedding, Min: 450, Max: 1300, Average: 800, Source: models.SourceIndustryDefault, AgeDays: 180},

		// Corporate events
		{Category: models.CategoryVenue, EventType: models.EventTypeCorporate, Min: 1800, Max: 4500, Average: 3000, Source: models.SourceHistoricalBooking, AgeDays: 40},
		{Category: models.CategoryCatering, EventType: models.EventTypeCorporate, Min: 2200, Max: 5200, Average: 3500, Source: models.SourceHistoricalBooking, AgeDays: 35},
		{Category: models.CategoryAVEquipment, EventType: models.EventTypeCorporate, Min: 1200, Max: 3000, Average: 2000, Source: models.SourceVendorQuote, AgeDays: 25},
		{Category: models.CategoryEntertainment, EventType: models.EventTypeCorporate, Min: 800, Max: 2400, Average: 1500, Source: models.SourceMarketSurvey, AgeDays: 120},
		{Category: models.CategoryTransportation, EventType: models.EventTypeCorporate, Min: 600, Max: 1600, Average: 1000, Source: models.SourceIndustryDefault, AgeDays: 200},
		{Category: models.CategoryStaffing, EventType: models.EventTypeCorporate, Min: 1100, Max: 2700, Average: 1800, Source: models.SourceMarketSurvey, AgeDays: 75},

		// Birthdays
		{Category: models.CategoryVenue, EventType: models.EventTypeBirthday, Min: 400, Max: 1300, Average: 800, Source: models.SourceMarketSurvey, AgeDays: 110},
		{Category: models.CategoryCatering, EventType: models.EventTypeBirthday, Min: 700, Max: 1800, Average: 1200, Source: models.SourceHistoricalBooking, AgeDays: 60},
		{Category: models.CategoryDecorations, EventType: models.EventTypeBirthday, Min: 200, Max: 700, Average: 400, Source: models.SourceIndustryDefault, AgeDays: 220},
		{Category: models.CategoryEntertainment, EventType: models.EventTypeBirthday, Min: 300, Max: 1000, Average: 600, Source: models.SourceMarketSurvey, AgeDays: 110},

		// Conferences
		{Category: models.CategoryVenue, EventType: models.EventTypeConference, Min: 3200, Max: 7500, Average: 5000, Source: models.SourceHistoricalBooking, AgeDays: 50},
		{Category: models.CategoryCatering, EventType: models.EventTypeConference, Min: 2500, Max: 6000, Average: 4000, Source: models.SourceHistoricalBooking, AgeDays: 50},
		{Category: models.CategoryAVEquipment, EventType: models.EventTypeConference, Min: 1900, Max: 4400, Average: 3000, Source: models.SourceVendorQuote, AgeDays: 15},
		{Category: models.CategoryStaffing, EventType: models.EventTypeConference, Min: 1500, Max: 3800, Average: 2500, Source: models.SourceMarketSurvey, AgeDays: 85},
		{Category: models.CategoryTransportation, EventType: models.EventTypeConference, Min: 700, Max: 1900, Average: 1200, Source: models.SourceIndustryDefault, AgeDays: 200},

		// Galas
		{Category: models.CategoryVenue, EventType: models.EventTypeGala, Min: 3800, Max: 9000, Average: 6000, Source: models.SourceHistoricalBooking, AgeDays: 55},
		{Category: models.CategoryCatering, EventType: models.EventTypeGala, Min: 3500, Max: 8200, Average: 5500, Source: models.SourceHistoricalBooking, AgeDays: 55},
		{Category: models.CategoryEntertainment, EventType: models.EventTypeGala, Min: 1500, Max: 3900, Average: 2500, Source: models.SourceVendorQuote, AgeDays: 30},
		{Category: models.CategoryDecorations, EventType: models.EventTypeGala, Min: 1200, Max: 3100, Average: 2000, Source: models.SourceMarketSurvey, AgeDays: 95},
		{Category: models.CategoryFlowers, EventType: models.EventTypeGala, Min: 900, Max: 2300, Average: 1500, Source: models.SourceVendorQuote, AgeDays: 30},
		{Category: models.CategoryStaffing, EventType: models.EventTypeGala, Min: 1200, Max: 3100, Average: 2000, Source: models.SourceMarketSurvey, AgeDays: 95},
		{Category: models.CategoryPhotography, EventType: models.EventTypeGala, Min: 1100, Max: 2800, Average: 1800, Source: models.SourceMarketSurvey, AgeDays: 95},
	}
}

func defaultPackages() []PackageSeed {
	return []PackageSeed{
		{
			ID: 1, EventType: models.EventTypeWedding, Name: "Essential Wedding Bundle",
			Description: "Venue, catering and photography from partnered vendors",
			Categories: []models.ServiceCategory{
				models.CategoryVenue, models.CategoryCatering, models.CategoryPhotography,
			},
			BasePrice: 11000, DiscountPercent: 12,
		},
		{
			ID: 2, EventType: models.EventTypeWedding, Name: "Premium Wedding Bundle",
			Description: "Full-service wedding package including music and flowers",
			Categories: []models.ServiceCategory{
				models.CategoryVenue, models.CategoryCatering, models.CategoryPhotography,
				models.CategoryMusic, models.CategoryFlowers,
			},
			BasePrice: 14500, DiscountPercent: 18,
		},
		{
			ID: 3, EventType: models.EventTypeCorporate, Name: "Corporate Meeting Package",
			Description: "Venue, catering and A/V handled by a single coordinator",
			Categories: []models.ServiceCategory{
				models.CategoryVenue, models.CategoryCatering, models.CategoryAVEquipment,
			},
			BasePrice: 8000, DiscountPercent: 10,
		},
		{
			ID: 4, EventType: models.EventTypeConference, Name: "Conference Complete",
			Description: "Venue, catering, A/V and staffing for multi-day programs",
			Categories: []models.ServiceCategory{
				models.CategoryVenue, models.CategoryCatering, models.CategoryAVEquipment,
				models.CategoryStaffing,
			},
			BasePrice: 13000, DiscountPercent: 15,
		},
		{
			ID: 5, EventType: models.EventTypeBirthday, Name: "Party Starter",
			Description: "Venue, catering and decorations for private parties",
			Categories: []models.ServiceCategory{
				models.CategoryVenue, models.CategoryCatering, models.CategoryDecorations,
			},
			BasePrice: 2200, DiscountPercent: 8,
		},
		{
			ID: 6, EventType: models.EventTypeGala, Name: "Gala Signature",
			Description: "Venue, catering, entertainment and decor as one contract",
			Categories: []models.ServiceCategory{
				models.CategoryVenue, models.CategoryCatering, models.CategoryEntertainment,
				models.CategoryDecorations,
			},
			BasePrice: 15000, DiscountPercent: 15,
		},
	}
}
