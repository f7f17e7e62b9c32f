//go:build unit

package booking_test

import (
	"testing"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stay(t *testing.T, inDay, outDay int) booking.StayPeriod {
	t.Helper()
	p, err := booking.NewStayPeriod(dateutil.Date(2025, 7, inDay), dateutil.Date(2025, 7, outDay))
	require.NoError(t, err)
	return p
}

func TestOverlapSymmetry(t *testing.T) {
	for aIn := 1; aIn <= 6; aIn++ {
		for aOut := aIn + 1; aOut <= 7; aOut++ {
			for bIn := 1; bIn <= 6; bIn++ {
				for bOut := bIn + 1; bOut <= 7; bOut++ {
					a, b := stay(t, aIn, aOut), stay(t, bIn, bOut)
					want := aOut > bIn && aIn < bOut
					assert.Equal(t, want, a.Overlaps(b), "A=[%d,%d) B=[%d,%d)", aIn, aOut, bIn, bOut)
					assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
				}
			}
		}
	}
}

func TestIsAvailable(t *testing.T) {
	existingID := uuid.New()
	existing := func(status booking.Status) []booking.Occupancy {
		return []booking.Occupancy{{BookingID: existingID, Status: status, Period: stay(t, 10, 13)}}
	}

	t.Run("only confirmed and checked-in block", func(t *testing.T) {
		candidate := stay(t, 11, 12)
		for _, s := range booking.AllStatuses() {
			got := booking.IsAvailable(candidate, existing(s), nil)
			assert.Equal(t, !s.Blocks(), got, s.String())
		}
		assert.False(t, booking.IsAvailable(candidate, existing(booking.StatusConfirmed), nil))
		assert.False(t, booking.IsAvailable(candidate, existing(booking.StatusCheckedIn), nil))
	})

	t.Run("back-to-back stays never conflict", func(t *testing.T) {
		assert.True(t, booking.IsAvailable(stay(t, 13, 15), existing(booking.StatusConfirmed), nil))
		assert.True(t, booking.IsAvailable(stay(t, 8, 10), existing(booking.StatusConfirmed), nil))
	})

	t.Run("excluded booking does not block itself", func(t *testing.T) {
		assert.True(t, booking.IsAvailable(stay(t, 11, 14), existing(booking.StatusConfirmed), &existingID))
	})

	t.Run("EachNight lists every night", func(t *testing.T) {
		nights := stay(t, 10, 13).EachNight()
		require.Len(t, nights, 3)
		assert.Equal(t, dateutil.Date(2025, 7, 12), nights[2])
	})
}
