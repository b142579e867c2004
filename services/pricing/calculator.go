package pricing

import (
	"context"

	"sparklean/models"
)

// Calculator computes price breakdowns. The synchronous variant prices
// against the compiled-in fallback table for instant feedback; the
// asynchronous variant prices against the live table. Both share the same
// arithmetic so a settled preview never differs from the confirmed total.
type Calculator struct {
	Provider *Provider
}

// CalcTotalSync prices a selection against the fallback table.
func CalcTotalSync(sel models.ServiceSelection, freq models.Frequency) models.PriceBreakdown {
	return calcTotal(FallbackPricing(), sel, freq)
}

// CalcTotalAsync prices a selection against the live pricing table.
func (c *Calculator) CalcTotalAsync(ctx context.Context, sel models.ServiceSelection, freq models.Frequency) (models.PriceBreakdown, error) {
	table, err := c.Provider.Get(ctx, false)
	if err != nil {
		return models.PriceBreakdown{}, err
	}
	return calcTotal(table, sel, freq), nil
}

// calcTotal is the single pricing algorithm. All amounts are cents.
func calcTotal(table models.PricingData, sel models.ServiceSelection, freq models.Frequency) models.PriceBreakdown {
	rates := table.Services[sel.Service]

	subtotal := rates.Base
	subtotal += int64(sel.Bedrooms) * rates.Bedroom
	subtotal += int64(sel.Bathrooms) * rates.Bathroom

	// Duplicate extra names collapse to one entry with its quantity.
	seen := make(map[string]bool, len(sel.Extras))
	for _, extra := range sel.Extras {
		if seen[extra] {
			continue
		}
		seen[extra] = true

		price, ok := table.Extras[extra]
		if !ok {
			continue
		}
		qty := 1
		if q, ok := sel.ExtrasQuantities[extra]; ok && q > 1 && QuantityBearing(extra) {
			qty = q
		}
		subtotal += price * int64(qty)
	}

	var percent int64
	if freq.IsRecurring() {
		percent = table.FrequencyDiscounts[freq.DiscountKey()]
	}
	discount := roundHalfUp(subtotal*percent, 100)

	var serviceFee int64
	if freq.ServiceFeeApplies() {
		serviceFee = table.ServiceFee
	}

	return models.PriceBreakdown{
		Subtotal:                 subtotal,
		ServiceFee:               serviceFee,
		FrequencyDiscount:        discount,
		FrequencyDiscountPercent: percent,
		Total:                    subtotal - discount + serviceFee,
	}
}

// roundHalfUp divides numerator by denominator, rounding half away from
// zero. Inputs are non-negative in practice.
func roundHalfUp(numerator, denominator int64) int64 {
	return (numerator + denominator/2) / denominator
}
