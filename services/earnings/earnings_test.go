package earnings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func hireDate(monthsAgo int) *time.Time {
	d := now.AddDate(0, -monthsAgo, 0)
	return &d
}

func TestCommissionPercentTiers(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(60), CommissionPercent(nil, now))
	require.Equal(t, int64(60), CommissionPercent(hireDate(6), now))
	require.Equal(t, int64(60), CommissionPercent(hireDate(23), now))
	require.Equal(t, int64(70), CommissionPercent(hireDate(24), now))
	require.Equal(t, int64(70), CommissionPercent(hireDate(60), now))
}

func TestCalculateCleanerEarningsStarter(t *testing.T) {
	t.Parallel()

	// (37000 - 5000) * 60% = 19200
	got := CalculateCleanerEarnings(37000, 5000, hireDate(6), 0, now)
	require.Equal(t, int64(19200), got)
}

func TestCalculateCleanerEarningsExperienced(t *testing.T) {
	t.Parallel()

	// (37000 - 5000) * 70% = 22400
	got := CalculateCleanerEarnings(37000, 5000, hireDate(36), 0, now)
	require.Equal(t, int64(22400), got)
}

func TestTipPassesThroughInFull(t *testing.T) {
	t.Parallel()

	withoutTip := CalculateCleanerEarnings(37000, 5000, hireDate(6), 0, now)

	// The tip is inside totalAmount; every tipped cent reaches the cleaner.
	for _, tip := range []int64{1, 500, 10000} {
		withTip := CalculateCleanerEarnings(37000+tip, 5000, hireDate(6), tip, now)
		require.Equal(t, withoutTip+tip, withTip, "tip %d", tip)
	}
}

func TestTipNeverCommissioned(t *testing.T) {
	t.Parallel()

	// Commission base excludes the tip entirely, so the starter and
	// experienced payouts differ only on the commissioned part.
	tip := int64(10000)
	starter := CalculateCleanerEarnings(42000, 5000, hireDate(6), tip, now)
	experienced := CalculateCleanerEarnings(42000, 5000, hireDate(36), tip, now)
	require.Equal(t, int64((42000-5000-10000)*60/100)+tip, starter)
	require.Equal(t, int64((42000-5000-10000)*70/100)+tip, experienced)
}

func TestCommissionRoundsHalfUp(t *testing.T) {
	t.Parallel()

	// Base 1001 at 60% = 600.6, which rounds to 601.
	got := CalculateCleanerEarnings(1001, 0, hireDate(6), 0, now)
	require.Equal(t, int64(601), got)
}

func TestNegativeBaseClampsToZero(t *testing.T) {
	t.Parallel()

	// Fee plus tip exceed the total; payout is just the tip.
	got := CalculateCleanerEarnings(4000, 5000, hireDate(6), 1000, now)
	require.Equal(t, int64(1000), got)
}

func TestEarningsMonotonicInTotal(t *testing.T) {
	t.Parallel()

	prev := int64(-1)
	for total := int64(0); total <= 100000; total += 1375 {
		got := CalculateCleanerEarnings(total, 5000, hireDate(6), 0, now)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
}
