//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/pkg/dateutil"
	"hotel-core/internal/pkg/errs"
	"hotel-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

func TestNewBooking(t *testing.T) {
	t.Run("freezes price and totals nights", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().WithPrice("120.50").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, bk.Status())
		assert.Equal(t, 3, bk.Period().Nights())
		assert.Equal(t, "361.5", bk.TotalPrice().String())
		assert.Nil(t, bk.FinalBill())
		assert.NotEqual(t, uuid.Nil, bk.ID())
	})

	t.Run("check-out must follow check-in", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			WithStay(dateutil.Date(2025, 6, 10), dateutil.Date(2025, 6, 10)).
			BuildDomain()
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("needs at least one guest", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.NumberOfGuests = 0 }).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})
}

func TestTransitionClosure(t *testing.T) {
	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:   {booking.StatusConfirmed, booking.StatusCancelled},
		booking.StatusConfirmed: {booking.StatusCheckedIn, booking.StatusCancelled, booking.StatusNoShow},
		booking.StatusCheckedIn: {booking.StatusCheckedOut},
	}
	isAllowed := func(from, to booking.Status) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	apply := func(bk *booking.Booking, to booking.Status) error {
		switch to {
		case booking.StatusConfirmed:
			return bk.Confirm()
		case booking.StatusCheckedIn:
			return bk.CheckIn(now)
		case booking.StatusCheckedOut:
			return bk.CheckOut(now)
		case booking.StatusCancelled:
			return bk.Cancel(now)
		case booking.StatusNoShow:
			_, err := bk.MarkNoShow()
			return err
		}
		t.Fatalf("no operation leads to %s", to)
		return nil
	}

	for _, from := range booking.AllStatuses() {
		for _, to := range booking.AllStatuses() {
			if to == booking.StatusPending {
				continue
			}
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				bk, err := builder.NewBookingBuilder().BuildInStatus(from, now)
				require.NoError(t, err)
				require.Equal(t, from, bk.Status())

				err = apply(bk, to)
				if isAllowed(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, bk.Status())
					return
				}

				require.ErrorIs(t, err, booking.ErrInvalidTransition)
				var te *booking.TransitionError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, from, te.From)
				assert.Equal(t, to, te.To)
				assert.Equal(t, from, bk.Status())
			})
		}
	}
}

func TestCheckOut(t *testing.T) {
	t.Run("bills whole days actually stayed", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().BuildInStatus(booking.StatusCheckedIn, now)
		require.NoError(t, err)

		require.NoError(t, bk.CheckOut(now.Add(2*24*time.Hour+3*time.Hour)))

		require.NotNil(t, bk.FinalBill())
		assert.True(t, decimal.NewFromInt(200).Equal(*bk.FinalBill()), "got %s", bk.FinalBill())
		assert.NotNil(t, bk.ActualCheckOut())
	})

	t.Run("same instant checkout falls back to booked nights", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().BuildInStatus(booking.StatusCheckedOut, now)
		require.NoError(t, err)

		require.NotNil(t, bk.FinalBill())
		assert.True(t, decimal.NewFromInt(300).Equal(*bk.FinalBill()), "got %s", bk.FinalBill())
	})

	t.Run("clock skew never produces a negative bill", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().BuildInStatus(booking.StatusCheckedIn, now)
		require.NoError(t, err)

		require.NoError(t, bk.CheckOut(now.Add(-time.Hour)))
		assert.True(t, decimal.NewFromInt(300).Equal(*bk.FinalBill()))
	})
}

func TestMarkNoShow(t *testing.T) {
	t.Run("charges the total price", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().BuildInStatus(booking.StatusConfirmed, now)
		require.NoError(t, err)

		charge, err := bk.MarkNoShow()
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(300).Equal(charge))
	})

	t.Run("zero priced booking has nothing to charge", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().WithPrice("0").BuildInStatus(booking.StatusConfirmed, now)
		require.NoError(t, err)

		charge, err := bk.MarkNoShow()
		require.NoError(t, err)
		assert.True(t, charge.IsZero())
	})
}

func TestApplyUpdate(t *testing.T) {
	t.Run("date change reprices and asks for availability", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		checkOut := dateutil.Date(2025, 6, 15)

		moved, err := bk.ApplyUpdate(booking.Update{CheckOut: &checkOut})
		require.NoError(t, err)

		assert.True(t, moved)
		assert.Equal(t, 5, bk.Period().Nights())
		assert.True(t, decimal.NewFromInt(500).Equal(bk.TotalPrice()))
		assert.True(t, decimal.NewFromInt(100).Equal(bk.PricePerNight()))
	})

	t.Run("notes only does not move the stay", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		notes := "late arrival"
		sameRoom := bk.RoomID()

		moved, err := bk.ApplyUpdate(booking.Update{InternalNotes: &notes, RoomID: &sameRoom})
		require.NoError(t, err)
		assert.False(t, moved)
		assert.Equal(t, notes, bk.InternalNotes())
	})

	t.Run("inverted dates are rejected", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		checkOut := dateutil.Date(2025, 6, 9)

		_, err = bk.ApplyUpdate(booking.Update{CheckOut: &checkOut})
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
		assert.Equal(t, 3, bk.Period().Nights())
	})

	t.Run("terminal bookings are frozen", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().BuildInStatus(booking.StatusCancelled, now)
		require.NoError(t, err)
		notes := "x"

		_, err = bk.ApplyUpdate(booking.Update{SpecialRequests: &notes})
		assert.ErrorIs(t, err, booking.ErrBookingNotEditable)
	})

	t.Run("checked-in guest cannot change rooms", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().BuildInStatus(booking.StatusCheckedIn, now)
		require.NoError(t, err)
		other := uuid.New()

		_, err = bk.ApplyUpdate(booking.Update{RoomID: &other})
		assert.ErrorIs(t, err, booking.ErrBookingNotEditable)
	})
}
