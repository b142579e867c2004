package earnings

import "time"

// Commission tiers by tenure. A cleaner reaches the experienced rate after
// ExperiencedTenureMonths of service; an unknown hire date always pays the
// starter rate.
const (
	ExperiencedTenureMonths = 24

	starterRatePercent     = 60
	experiencedRatePercent = 70
)

// TeamMemberFlatRate is the fixed per-member payout (cents) for
// team-required bookings, independent of the booking price.
const TeamMemberFlatRate int64 = 25000

// CommissionPercent returns the commission percentage for a cleaner given
// their hire date. A nil hire date means the cleaner is unknown or pending
// manual dispatch and defaults to the starter tier.
func CommissionPercent(hireDate *time.Time, now time.Time) int64 {
	if hireDate == nil {
		return starterRatePercent
	}
	if !hireDate.AddDate(0, ExperiencedTenureMonths, 0).After(now) {
		return experiencedRatePercent
	}
	return starterRatePercent
}

// CalculateCleanerEarnings computes the cleaner's payout in cents for an
// individual (non-team) booking. The commission applies to the post-fee
// subtotal; the tip passes through to the cleaner in full and is never
// commissioned. Team-required bookings bypass this entirely and are paid
// through the team ledger at a flat per-member rate.
func CalculateCleanerEarnings(totalAmount, serviceFee int64, hireDate *time.Time, tipAmount int64, now time.Time) int64 {
	percent := CommissionPercent(hireDate, now)
	base := totalAmount - serviceFee - tipAmount
	if base < 0 {
		base = 0
	}
	commission := (base*percent + 50) / 100
	return commission + tipAmount
}
