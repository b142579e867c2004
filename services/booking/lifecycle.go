package booking

import (
	"fmt"
	"time"

	"sparklean/models"
)

// StatusTransitionError reports a disallowed lifecycle move.
type StatusTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}

// allowedTransitions is the full lifecycle: the forward chain plus
// cancellation/decline while the visit has not started. Terminal states
// have no outgoing edges.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:    {models.StatusAccepted, models.StatusCancelled, models.StatusDeclined},
	models.StatusAccepted:   {models.StatusOnMyWay, models.StatusCancelled, models.StatusDeclined},
	models.StatusOnMyWay:    {models.StatusInProgress},
	models.StatusInProgress: {models.StatusCompleted},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition applies a status change in place, stamping the matching
// timestamp field for forward moves. Once a terminal state is reached the
// booking is immutable.
func Transition(b *models.Booking, to models.BookingStatus, now time.Time) error {
	if !CanTransition(b.Status, to) {
		return &StatusTransitionError{From: b.Status, To: to}
	}

	b.Status = to
	switch to {
	case models.StatusAccepted:
		b.CleanerAcceptedAt = &now
	case models.StatusOnMyWay:
		b.CleanerOnMyWayAt = &now
	case models.StatusInProgress:
		b.CleanerStartedAt = &now
	case models.StatusCompleted:
		b.CleanerCompletedAt = &now
	}
	return nil
}
