//go:build unit

package dateutil_test

import (
	"testing"
	"time"

	"hotel-core/internal/pkg/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{name: "same day", a: dateutil.Date(2025, 3, 1), b: dateutil.Date(2025, 3, 1), want: 0},
		{name: "forward", a: dateutil.Date(2025, 3, 1), b: dateutil.Date(2025, 3, 11), want: 10},
		{name: "backward", a: dateutil.Date(2025, 3, 11), b: dateutil.Date(2025, 3, 1), want: -10},
		{name: "across month", a: dateutil.Date(2025, 2, 27), b: dateutil.Date(2025, 3, 2), want: 3},
		{name: "local wall time ignored", a: time.Date(2025, 3, 1, 23, 59, 0, 0, tokyo), b: dateutil.Date(2025, 3, 2), want: 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, dateutil.DaysBetween(c.a, c.b))
		})
	}
}

func TestWeekdayIndex(t *testing.T) {
	// 2025-03-03 is a Monday
	monday := dateutil.Date(2025, 3, 3)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, dateutil.WeekdayIndex(monday.AddDate(0, 0, i)))
	}
}

func TestParse(t *testing.T) {
	d, err := dateutil.Parse("2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, dateutil.Date(2025, 12, 31), d)
	assert.Equal(t, "2025-12-31", dateutil.Format(d))

	_, err = dateutil.Parse("31/12/2025")
	assert.Error(t, err)
}
