package booking

import (
	"time"

	"hotel-core/internal/pkg/dateutil"
	"hotel-core/internal/pkg/errs"
)

// StayPeriod is the half-open date range [CheckIn, CheckOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := dateutil.DateOf(checkIn)
	out := dateutil.DateOf(checkOut)
	if !out.After(in) {
		return StayPeriod{}, errs.ErrInvalidDateRange
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Nights() int {
	return dateutil.DaysBetween(p.checkIn, p.checkOut)
}

// Overlaps is true when the ranges share at least one night; back-to-back stays do not.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return other.checkOut.After(p.checkIn) && other.checkIn.Before(p.checkOut)
}

// EachNight yields the date of every night in the stay.
func (p StayPeriod) EachNight() []time.Time {
	nights := make([]time.Time, 0, p.Nights())
	for d := p.checkIn; d.Before(p.checkOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

func (p StayPeriod) Equal(other StayPeriod) bool {
	return p.checkIn.Equal(other.checkIn) && p.checkOut.Equal(other.checkOut)
}
