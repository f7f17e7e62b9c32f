package booking

import (
	"github.com/google/uuid"
)

// Occupancy is the slice of a stored booking the availability check needs.
type Occupancy struct {
	BookingID uuid.UUID
	Status    Status
	Period    StayPeriod
}

// IsAvailable reports whether candidate is free given the room's existing bookings.
// Only confirmed and checked-in bookings block; exclude lets an update ignore itself.
func IsAvailable(candidate StayPeriod, existing []Occupancy, exclude *uuid.UUID) bool {
	for _, o := range existing {
		if exclude != nil && o.BookingID == *exclude {
			continue
		}
		if !o.Status.Blocks() {
			continue
		}
		if o.Period.Overlaps(candidate) {
			return false
		}
	}
	return true
}
