package recurring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrScheduleInactive means generation was requested for a deactivated
// schedule.
var ErrScheduleInactive = errors.New("cannot generate bookings for inactive schedule")

// ValidationError carries the messages a malformed schedule produced.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid recurring schedule: " + strings.Join(e.Messages, "; ")
}

// GenerationError reports a failed generation run. Generation is
// transactional, so InsertedIDs is only populated when the store managed a
// partial write despite the transaction; callers must not retry blindly
// while it is non-empty. The schedule's generation marker never advances
// on failure.
type GenerationError struct {
	ScheduleID  string
	MonthKey    string
	InsertedIDs []string
	Err         error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating bookings for schedule %s month %s: %v", e.ScheduleID, e.MonthKey, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
