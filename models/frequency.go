package models

// Frequency describes how often a service recurs. The custom variants book
// several weekdays per week instead of a single one, but share the base
// frequency's discount row.
type Frequency string

const (
	FrequencyOneTime        Frequency = "one-time"
	FrequencyWeekly         Frequency = "weekly"
	FrequencyBiWeekly       Frequency = "bi-weekly"
	FrequencyMonthly        Frequency = "monthly"
	FrequencyCustomWeekly   Frequency = "custom-weekly"
	FrequencyCustomBiWeekly Frequency = "custom-bi-weekly"
)

// AnchorKind identifies which anchor field a frequency family populates.
type AnchorKind int

const (
	AnchorNone AnchorKind = iota
	AnchorWeekday
	AnchorWeekdaySet
	AnchorDayOfMonth
)

// Valid reports whether f is a known frequency value.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOneTime, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly,
		FrequencyCustomWeekly, FrequencyCustomBiWeekly:
		return true
	}
	return false
}

// IsRecurring reports whether f describes a recurring schedule.
func (f Frequency) IsRecurring() bool {
	return f.Valid() && f != FrequencyOneTime
}

// ServiceFeeApplies reports whether the one-time service fee is charged.
// Recurring bookings never carry a service fee.
func (f Frequency) ServiceFeeApplies() bool {
	return f == FrequencyOneTime
}

// DiscountKey maps f onto the frequency-discount row it is priced with.
// Custom variants share their base frequency's discount.
func (f Frequency) DiscountKey() Frequency {
	switch f {
	case FrequencyCustomWeekly:
		return FrequencyWeekly
	case FrequencyCustomBiWeekly:
		return FrequencyBiWeekly
	default:
		return f
	}
}

// AnchorKind returns how a schedule with this frequency picks its dates.
func (f Frequency) AnchorKind() AnchorKind {
	switch f {
	case FrequencyWeekly, FrequencyBiWeekly:
		return AnchorWeekday
	case FrequencyCustomWeekly, FrequencyCustomBiWeekly:
		return AnchorWeekdaySet
	case FrequencyMonthly:
		return AnchorDayOfMonth
	default:
		return AnchorNone
	}
}

// BiWeekly reports whether occurrences are spaced 14 days apart.
func (f Frequency) BiWeekly() bool {
	return f == FrequencyBiWeekly || f == FrequencyCustomBiWeekly
}
