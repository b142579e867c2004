package recurring

import (
	"sort"
	"time"

	"sparklean/models"
)

const dateLayout = "2006-01-02"

// CalculateBookingDatesForMonth computes the concrete calendar dates a
// schedule produces in the target month, bounded by the schedule's start
// and (optional) end date. Dates are UTC midnights, sorted ascending.
// Schedules missing their anchor field yield no dates; the validator is
// responsible for rejecting them before persistence.
func CalculateBookingDatesForMonth(s models.RecurringSchedule, year int, month time.Month) []time.Time {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var dates []time.Time
	switch s.Frequency {
	case models.FrequencyWeekly:
		if s.DayOfWeek != nil {
			dates = weeklyDates(*s.DayOfWeek, monthStart, monthEnd)
		}
	case models.FrequencyBiWeekly:
		if s.DayOfWeek != nil {
			dates = biWeeklyDates(*s.DayOfWeek, s.StartDate, monthStart, monthEnd)
		}
	case models.FrequencyMonthly:
		if s.DayOfMonth != nil {
			dates = monthlyDates(*s.DayOfMonth, monthStart, monthEnd)
		}
	case models.FrequencyCustomWeekly:
		for _, day := range s.DaysOfWeek {
			dates = append(dates, weeklyDates(day, monthStart, monthEnd)...)
		}
	case models.FrequencyCustomBiWeekly:
		for _, day := range s.DaysOfWeek {
			dates = append(dates, biWeeklyDates(day, s.StartDate, monthStart, monthEnd)...)
		}
	}

	dates = boundBySchedule(dates, s)
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// weeklyDates returns every occurrence of the weekday inside the month.
func weeklyDates(dayOfWeek int, monthStart, monthEnd time.Time) []time.Time {
	var dates []time.Time
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		if int(d.Weekday()) == dayOfWeek {
			dates = append(dates, d)
		}
	}
	return dates
}

// biWeeklyDates returns occurrences spaced 14 days apart, anchored to the
// first occurrence of the weekday on or after the schedule's start date.
// Parity is relative to the start date, not the month boundary.
func biWeeklyDates(dayOfWeek int, startDate string, monthStart, monthEnd time.Time) []time.Time {
	anchor, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil
	}
	for int(anchor.Weekday()) != dayOfWeek {
		anchor = anchor.AddDate(0, 0, 1)
	}

	var dates []time.Time
	for d := anchor; !d.After(monthEnd); d = d.AddDate(0, 0, 14) {
		if !d.Before(monthStart) {
			dates = append(dates, d)
		}
	}
	return dates
}

// monthlyDates returns the single date matching dayOfMonth, clamped to the
// last day of the month when the month is shorter (Feb 31 -> Feb 28/29).
func monthlyDates(dayOfMonth int, monthStart, monthEnd time.Time) []time.Time {
	day := dayOfMonth
	if last := monthEnd.Day(); day > last {
		day = last
	}
	if day < 1 {
		return nil
	}
	return []time.Time{time.Date(monthStart.Year(), monthStart.Month(), day, 0, 0, 0, 0, time.UTC)}
}

// boundBySchedule drops dates before the schedule's start or after its end.
func boundBySchedule(dates []time.Time, s models.RecurringSchedule) []time.Time {
	start, err := time.Parse(dateLayout, s.StartDate)
	if err != nil {
		return nil
	}
	var end time.Time
	hasEnd := false
	if s.EndDate != "" {
		if end, err = time.Parse(dateLayout, s.EndDate); err == nil {
			hasEnd = true
		}
	}

	kept := dates[:0]
	for _, d := range dates {
		if d.Before(start) {
			continue
		}
		if hasEnd && d.After(end) {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

// NextBookingDate returns the next occurrence on or after now, looking at
// the current month and then the next. Nil when the schedule has run out.
func NextBookingDate(s models.RecurringSchedule, now time.Time) *time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		target := today.AddDate(0, i, 0)
		for _, d := range CalculateBookingDatesForMonth(s, target.Year(), target.Month()) {
			if !d.Before(today) {
				return &d
			}
		}
	}
	return nil
}
