package recurring

import (
	"testing"
	"time"

	"sparklean/models"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func dateStrings(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(dateLayout)
	}
	return out
}

func TestWeeklyEveryMondayInJanuary(t *testing.T) {
	t.Parallel()

	s := models.RecurringSchedule{
		Frequency: models.FrequencyWeekly,
		DayOfWeek: intPtr(1), // Monday
		StartDate: "2024-01-01",
	}

	got := CalculateBookingDatesForMonth(s, 2024, time.January)
	require.Equal(t, []string{
		"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29",
	}, dateStrings(got))
}

func TestBiWeeklyParityAnchoredToStartDate(t *testing.T) {
	t.Parallel()

	s := models.RecurringSchedule{
		Frequency: models.FrequencyBiWeekly,
		DayOfWeek: intPtr(1),
		StartDate: "2024-01-01", // a Monday
	}

	// January picks up the anchor and every second Monday after it.
	jan := CalculateBookingDatesForMonth(s, 2024, time.January)
	require.Equal(t, []string{"2024-01-01", "2024-01-15", "2024-01-29"}, dateStrings(jan))

	// February continues the 14-day cadence across the month boundary:
	// the 5th and 19th are Mondays but off-parity.
	feb := CalculateBookingDatesForMonth(s, 2024, time.February)
	require.Equal(t, []string{"2024-02-12", "2024-02-26"}, dateStrings(feb))
}

func TestBiWeeklyAnchorAdvancesToWeekday(t *testing.T) {
	t.Parallel()

	// Start on a Wednesday with Monday visits: the anchor is the first
	// Monday on or after the start date.
	s := models.RecurringSchedule{
		Frequency: models.FrequencyBiWeekly,
		DayOfWeek: intPtr(1),
		StartDate: "2024-01-03",
	}

	got := CalculateBookingDatesForMonth(s, 2024, time.January)
	require.Equal(t, []string{"2024-01-08", "2024-01-22"}, dateStrings(got))
}

func TestMonthlyClampsToShortMonth(t *testing.T) {
	t.Parallel()

	s := models.RecurringSchedule{
		Frequency:  models.FrequencyMonthly,
		DayOfMonth: intPtr(31),
		StartDate:  "2024-01-01",
	}

	feb := CalculateBookingDatesForMonth(s, 2024, time.February)
	require.Equal(t, []string{"2024-02-29"}, dateStrings(feb)) // leap year

	feb23 := CalculateBookingDatesForMonth(s, 2023, time.February)
	require.Equal(t, []string{"2023-02-28"}, dateStrings(feb23))

	apr := CalculateBookingDatesForMonth(s, 2024, time.April)
	require.Equal(t, []string{"2024-04-30"}, dateStrings(apr))
}

func TestCustomWeeklyUnionsDays(t *testing.T) {
	t.Parallel()

	s := models.RecurringSchedule{
		Frequency:  models.FrequencyCustomWeekly,
		DaysOfWeek: []int{1, 4}, // Monday and Thursday
		StartDate:  "2024-01-01",
	}

	got := CalculateBookingDatesForMonth(s, 2024, time.January)
	require.Equal(t, []string{
		"2024-01-01", "2024-01-04", "2024-01-08", "2024-01-11",
		"2024-01-15", "2024-01-18", "2024-01-22", "2024-01-25", "2024-01-29",
	}, dateStrings(got))
}

func TestCustomBiWeeklyKeepsPerDayParity(t *testing.T) {
	t.Parallel()

	s := models.RecurringSchedule{
		Frequency:  models.FrequencyCustomBiWeekly,
		DaysOfWeek: []int{1, 4},
		StartDate:  "2024-01-01",
	}

	got := CalculateBookingDatesForMonth(s, 2024, time.January)
	require.Equal(t, []string{
		"2024-01-01", "2024-01-04", "2024-01-15", "2024-01-18", "2024-01-29",
	}, dateStrings(got))
}

func TestDatesBoundedByStartAndEnd(t *testing.T) {
	t.Parallel()

	s := models.RecurringSchedule{
		Frequency: models.FrequencyWeekly,
		DayOfWeek: intPtr(1),
		StartDate: "2024-01-10",
		EndDate:   "2024-01-23",
	}

	got := CalculateBookingDatesForMonth(s, 2024, time.January)
	require.Equal(t, []string{"2024-01-15", "2024-01-22"}, dateStrings(got))
}

func TestMissingAnchorYieldsNoDates(t *testing.T) {
	t.Parallel()

	s := models.RecurringSchedule{
		Frequency: models.FrequencyWeekly,
		StartDate: "2024-01-01",
	}
	require.Empty(t, CalculateBookingDatesForMonth(s, 2024, time.January))
}

func TestNextBookingDateLooksAcrossMonths(t *testing.T) {
	t.Parallel()

	s := models.RecurringSchedule{
		Frequency:  models.FrequencyMonthly,
		DayOfMonth: intPtr(5),
		StartDate:  "2024-01-01",
	}

	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	next := NextBookingDate(s, now)
	require.NotNil(t, next)
	require.Equal(t, "2024-04-05", next.Format(dateLayout))
}

func TestNextBookingDateNilAfterEnd(t *testing.T) {
	t.Parallel()

	s := models.RecurringSchedule{
		Frequency: models.FrequencyWeekly,
		DayOfWeek: intPtr(1),
		StartDate: "2024-01-01",
		EndDate:   "2024-02-01",
	}

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.Nil(t, NextBookingDate(s, now))
}
