package recurring

import (
	"time"

	"sparklean/models"
	"sparklean/services/pricing"
)

// ValidateRecurringSchedule checks a schedule definition and returns
// human-readable problems. An empty slice means the schedule is valid.
// Callers decide whether to block persistence.
func ValidateRecurringSchedule(s models.RecurringSchedule) []string {
	var errs []string

	if s.CustomerID == "" {
		errs = append(errs, "Customer is required")
	}
	if s.ServiceType == "" {
		errs = append(errs, "Service type is required")
	} else if !pricing.KnownService(s.ServiceType) {
		errs = append(errs, "Unknown service type")
	}
	if !s.Frequency.IsRecurring() {
		errs = append(errs, "A recurring frequency is required")
	}
	if s.PreferredTime == "" {
		errs = append(errs, "Preferred time is required")
	}
	if s.Bedrooms < 0 {
		errs = append(errs, "Number of bedrooms cannot be negative")
	}
	if s.Bathrooms < 0 {
		errs = append(errs, "Number of bathrooms cannot be negative")
	}
	if s.AddressLine1 == "" {
		errs = append(errs, "Address is required")
	}
	if s.AddressSuburb == "" {
		errs = append(errs, "Suburb is required")
	}
	if s.AddressCity == "" {
		errs = append(errs, "City is required")
	}

	var start time.Time
	if s.StartDate == "" {
		errs = append(errs, "Start date is required")
	} else {
		var err error
		if start, err = time.Parse(dateLayout, s.StartDate); err != nil {
			errs = append(errs, "Start date must be in YYYY-MM-DD format")
		}
	}
	if s.EndDate != "" {
		end, err := time.Parse(dateLayout, s.EndDate)
		if err != nil {
			errs = append(errs, "End date must be in YYYY-MM-DD format")
		} else if !start.IsZero() && !end.After(start) {
			errs = append(errs, "End date must be after start date")
		}
	}

	// Exactly one anchor representation per frequency family.
	switch s.Frequency.AnchorKind() {
	case models.AnchorWeekday:
		if s.DayOfWeek == nil || *s.DayOfWeek < 0 || *s.DayOfWeek > 6 {
			errs = append(errs, "Day of week is required for weekly/bi-weekly schedules")
		}
		if len(s.DaysOfWeek) > 0 || s.DayOfMonth != nil {
			errs = append(errs, "Weekly/bi-weekly schedules must only set day of week")
		}
	case models.AnchorWeekdaySet:
		if len(s.DaysOfWeek) == 0 {
			errs = append(errs, "At least one day must be selected for custom frequency")
		}
		for _, d := range s.DaysOfWeek {
			if d < 0 || d > 6 {
				errs = append(errs, "Invalid day of week selected")
				break
			}
		}
		if s.DayOfWeek != nil || s.DayOfMonth != nil {
			errs = append(errs, "Custom schedules must only set days of week")
		}
	case models.AnchorDayOfMonth:
		if s.DayOfMonth == nil || *s.DayOfMonth < 1 || *s.DayOfMonth > 31 {
			errs = append(errs, "Day of month is required for monthly schedules")
		}
		if s.DayOfWeek != nil || len(s.DaysOfWeek) > 0 {
			errs = append(errs, "Monthly schedules must only set day of month")
		}
	}

	return errs
}
