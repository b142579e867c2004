package models

import (
	"fmt"
	"time"
)

// RecurringSchedule defines a repeating booking pattern for a customer.
// Exactly one anchor representation is populated per frequency family:
// DayOfWeek for weekly/bi-weekly, DaysOfWeek for the custom variants,
// DayOfMonth for monthly.
type RecurringSchedule struct {
	ID         string `bson:"id" json:"id"`
	CustomerID string `bson:"customerId" json:"customerId"`

	ServiceType string    `bson:"serviceType" json:"serviceType"`
	Frequency   Frequency `bson:"frequency" json:"frequency"`

	DayOfWeek  *int  `bson:"dayOfWeek,omitempty" json:"dayOfWeek,omitempty"`   // 0=Sunday .. 6=Saturday
	DayOfMonth *int  `bson:"dayOfMonth,omitempty" json:"dayOfMonth,omitempty"` // 1-31, clamped to month length
	DaysOfWeek []int `bson:"daysOfWeek,omitempty" json:"daysOfWeek,omitempty"`

	PreferredTime string `bson:"preferredTime" json:"preferredTime"` // HH:MM

	Bedrooms         int            `bson:"bedrooms" json:"bedrooms"`
	Bathrooms        int            `bson:"bathrooms" json:"bathrooms"`
	Extras           []string       `bson:"extras" json:"extras"`
	ExtrasQuantities map[string]int `bson:"extrasQuantities,omitempty" json:"extrasQuantities,omitempty"`
	Notes            string         `bson:"notes,omitempty" json:"notes,omitempty"`

	AddressLine1  string `bson:"addressLine1" json:"addressLine1"`
	AddressSuburb string `bson:"addressSuburb" json:"addressSuburb"`
	AddressCity   string `bson:"addressCity" json:"addressCity"`

	Cleaner  CleanerAssignment `bson:"cleaner" json:"cleaner"`
	IsActive bool              `bson:"isActive" json:"isActive"`

	StartDate string `bson:"startDate" json:"startDate"` // YYYY-MM-DD
	EndDate   string `bson:"endDate,omitempty" json:"endDate,omitempty"`

	// LastGeneratedMonth (YYYY-MM) marks the most recent month bookings
	// were generated for; empty when never generated.
	LastGeneratedMonth string `bson:"lastGeneratedMonth,omitempty" json:"lastGeneratedMonth,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MonthKey formats a (year, month) pair as YYYY-MM.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonthKey parses a YYYY-MM key.
func ParseMonthKey(key string) (year int, month time.Month, err error) {
	var m int
	if _, err = fmt.Sscanf(key, "%4d-%2d", &year, &m); err != nil {
		return 0, 0, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	if m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("invalid month key %q: month out of range", key)
	}
	return year, time.Month(m), nil
}

// NextMonthKey returns the key for the month after key.
func NextMonthKey(key string) (string, error) {
	year, month, err := ParseMonthKey(key)
	if err != nil {
		return "", err
	}
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return MonthKey(next.Year(), next.Month()), nil
}

// NextGeneratingMonth returns which month should be generated next for s:
// the current month when generation never ran or is behind, otherwise the
// month after LastGeneratedMonth.
func (s RecurringSchedule) NextGeneratingMonth(now time.Time) string {
	current := MonthKey(now.Year(), now.Month())
	if s.LastGeneratedMonth == "" || s.LastGeneratedMonth < current {
		return current
	}
	next, err := NextMonthKey(s.LastGeneratedMonth)
	if err != nil {
		return current
	}
	return next
}

// GeneratedThrough reports whether the given month key is already covered.
func (s RecurringSchedule) GeneratedThrough(monthKey string) bool {
	return s.LastGeneratedMonth != "" && s.LastGeneratedMonth >= monthKey
}
