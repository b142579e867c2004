package recurring

import (
	"testing"

	"sparklean/models"

	"github.com/stretchr/testify/require"
)

func validWeeklySchedule() models.RecurringSchedule {
	return models.RecurringSchedule{
		CustomerID:    "cust-1",
		ServiceType:   "Standard",
		Frequency:     models.FrequencyWeekly,
		DayOfWeek:     intPtr(1),
		PreferredTime: "09:00",
		AddressLine1:  "12 Protea Rd",
		AddressSuburb: "Claremont",
		AddressCity:   "Cape Town",
		StartDate:     "2024-01-01",
	}
}

func TestValidateAcceptsWellFormedSchedule(t *testing.T) {
	t.Parallel()
	require.Empty(t, ValidateRecurringSchedule(validWeeklySchedule()))
}

func TestValidateRequiresWeekdayAnchor(t *testing.T) {
	t.Parallel()

	s := validWeeklySchedule()
	s.DayOfWeek = nil
	require.Contains(t, ValidateRecurringSchedule(s),
		"Day of week is required for weekly/bi-weekly schedules")
}

func TestValidateRejectsMixedAnchors(t *testing.T) {
	t.Parallel()

	s := validWeeklySchedule()
	s.DayOfMonth = intPtr(5)
	require.Contains(t, ValidateRecurringSchedule(s),
		"Weekly/bi-weekly schedules must only set day of week")
}

func TestValidateMonthlyAnchorRange(t *testing.T) {
	t.Parallel()

	s := validWeeklySchedule()
	s.Frequency = models.FrequencyMonthly
	s.DayOfWeek = nil
	s.DayOfMonth = intPtr(32)
	require.Contains(t, ValidateRecurringSchedule(s),
		"Day of month is required for monthly schedules")
}

func TestValidateCustomNeedsDaySet(t *testing.T) {
	t.Parallel()

	s := validWeeklySchedule()
	s.Frequency = models.FrequencyCustomWeekly
	s.DayOfWeek = nil
	require.Contains(t, ValidateRecurringSchedule(s),
		"At least one day must be selected for custom frequency")
}

func TestValidateRejectsOneTimeFrequency(t *testing.T) {
	t.Parallel()

	s := validWeeklySchedule()
	s.Frequency = models.FrequencyOneTime
	require.Contains(t, ValidateRecurringSchedule(s), "A recurring frequency is required")
}

func TestValidateEndDateOrdering(t *testing.T) {
	t.Parallel()

	s := validWeeklySchedule()
	s.EndDate = "2023-12-01"
	require.Contains(t, ValidateRecurringSchedule(s), "End date must be after start date")

	// The bound is strict: a window of a single day is not a schedule.
	s.EndDate = s.StartDate
	require.Contains(t, ValidateRecurringSchedule(s), "End date must be after start date")
}

func TestValidateDateFormats(t *testing.T) {
	t.Parallel()

	s := validWeeklySchedule()
	s.StartDate = "01/02/2024"
	require.Contains(t, ValidateRecurringSchedule(s), "Start date must be in YYYY-MM-DD format")
}
