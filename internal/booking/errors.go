package booking

import (
	"errors"
	"fmt"
)

// ErrNoSuchCoachClass is returned when a train has no coaches of the
// requested fare class at all. Distinct from running out of seats.
var ErrNoSuchCoachClass = errors.New("train does not offer the requested coach class")

// ErrBookingNotFound is returned when a booking id does not exist, or
// exists but belongs to a different user. The two cases are deliberately
// indistinguishable to callers.
var ErrBookingNotFound = errors.New("booking not found")

// InsufficientInventoryError reports that the requested number of seats
// in a class could not be granted. Available reflects the free seat
// count observed at decision time; under contention it may already be
// stale by the time the caller reads it.
type InsufficientInventoryError struct {
	Available int
	Requested int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient seats: requested %d, available %d", e.Requested, e.Available)
}
