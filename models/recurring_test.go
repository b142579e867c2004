package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthKeyRoundTrip(t *testing.T) {
	t.Parallel()

	key := MonthKey(2024, time.February)
	require.Equal(t, "2024-02", key)

	year, month, err := ParseMonthKey(key)
	require.NoError(t, err)
	require.Equal(t, 2024, year)
	require.Equal(t, time.February, month)

	_, _, err = ParseMonthKey("2024-13")
	require.Error(t, err)
}

func TestNextMonthKeyCrossesYear(t *testing.T) {
	t.Parallel()

	next, err := NextMonthKey("2024-12")
	require.NoError(t, err)
	require.Equal(t, "2025-01", next)
}

func TestNextGeneratingMonth(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	// Never generated: start with the current month.
	s := RecurringSchedule{}
	require.Equal(t, "2024-03", s.NextGeneratingMonth(now))

	// Behind: catch up from the current month.
	s.LastGeneratedMonth = "2023-11"
	require.Equal(t, "2024-03", s.NextGeneratingMonth(now))

	// Up to date: the month after the marker.
	s.LastGeneratedMonth = "2024-03"
	require.Equal(t, "2024-04", s.NextGeneratingMonth(now))

	s.LastGeneratedMonth = "2024-05"
	require.Equal(t, "2024-06", s.NextGeneratingMonth(now))
}

func TestGeneratedThrough(t *testing.T) {
	t.Parallel()

	s := RecurringSchedule{LastGeneratedMonth: "2024-03"}
	require.True(t, s.GeneratedThrough("2024-02"))
	require.True(t, s.GeneratedThrough("2024-03"))
	require.False(t, s.GeneratedThrough("2024-04"))
	require.False(t, RecurringSchedule{}.GeneratedThrough("2024-01"))
}
