package pricing

import "sparklean/models"

// FallbackPricing is the compiled-in rate card the synchronous calculator
// uses for instant previews. Values are cents and must track the live
// table's steady state; the async confirmation always wins for persistence.
func FallbackPricing() models.PricingData {
	return models.PricingData{
		Services: map[string]models.ServicePricing{
			ServiceStandard:  {Base: 25000, Bedroom: 2000, Bathroom: 3000},
			ServiceAirbnb:    {Base: 28000, Bedroom: 2000, Bathroom: 3000},
			ServiceDeep:      {Base: 55000, Bedroom: 4000, Bathroom: 5000},
			ServiceMoveInOut: {Base: 60000, Bedroom: 4000, Bathroom: 5000},
		},
		Extras: map[string]int64{
			"Inside Fridge":           5000,
			"Inside Oven":             6000,
			"Laundry & Ironing":       8000,
			"Interior Walls":          7000,
			"Interior Windows":        6000,
			"Inside Cabinets":         5000,
			"Carpet Cleaning":         15000,
			"Couch Cleaning":          12000,
			"Ceiling Cleaning":        9000,
			"Garage Cleaning":         10000,
			"Balcony Cleaning":        7000,
			"Outside Window Cleaning": 9000,
		},
		ServiceFee: 5000,
		FrequencyDiscounts: map[models.Frequency]int64{
			models.FrequencyWeekly:   15,
			models.FrequencyBiWeekly: 10,
			models.FrequencyMonthly:  5,
		},
	}
}
