package housekeeping

import (
	"time"

	"hotel-core/internal/pkg/dateutil"
)

// CleaningPriority escalates by how soon the next guest arrives in the room.
// nextArrival is the earliest upcoming check-in, or nil when nobody is due.
func CleaningPriority(today time.Time, nextArrival *time.Time) Priority {
	if nextArrival == nil {
		return PriorityNormal
	}
	switch dateutil.DaysBetween(today, *nextArrival) {
	case 0:
		return PriorityUrgent
	case 1:
		return PriorityHigh
	default:
		return PriorityNormal
	}
}
