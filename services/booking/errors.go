package booking

import "errors"

// ErrCleanerInactive is returned when a booking is assigned to a
// deactivated cleaner.
var ErrCleanerInactive = errors.New("cleaner is not active")
