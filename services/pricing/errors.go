package pricing

import (
	"errors"
	"fmt"
)

// ErrNoActivePricing means the pricing table has no eligible rows at all.
// Billing must fail loudly rather than fall back to zero prices.
var ErrNoActivePricing = errors.New("no active pricing configuration found")

// DuplicatePricingError reports two eligible records for the same key with
// the same effective date, which the scheduling discipline should prevent.
type DuplicatePricingError struct {
	Key           string
	EffectiveDate string
}

func (e *DuplicatePricingError) Error() string {
	return fmt.Sprintf("duplicate active pricing for %s effective %s", e.Key, e.EffectiveDate)
}
