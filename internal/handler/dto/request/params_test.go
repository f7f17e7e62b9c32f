//go:build unit

package request_test

import (
	"testing"

	"hotel-core/internal/handler/dto/request"
	"hotel-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPaymentsQuery_ToFilter(t *testing.T) {
	t.Run("不正なbooking_idは項目名付きのmalformed id", func(t *testing.T) {
		q := request.ListPaymentsQuery{BookingID: "xyz"}

		_, err := q.ToFilter()
		require.Error(t, err)
		assert.True(t, errs.Is(err, request.ErrInvalidUUID))
		assert.Equal(t, "booking_id: malformed id", err.Error())
	})

	t.Run("空のbooking_idは絞り込まない", func(t *testing.T) {
		q := request.ListPaymentsQuery{}

		f, err := q.ToFilter()
		require.NoError(t, err)
		assert.Nil(t, f.BookingID)
	})
}

func TestListBookingsQuery_ToFilter(t *testing.T) {
	t.Run("不正な日付は書式の案内を返す", func(t *testing.T) {
		q := request.ListBookingsQuery{CheckInFrom: "06/01/2025"}

		_, _, err := q.ToFilter()
		require.Error(t, err)
		assert.True(t, errs.Is(err, request.ErrInvalidDate))
		assert.Equal(t, "check_in_from: dates must use the YYYY-MM-DD format", err.Error())
	})
}

func TestParseID(t *testing.T) {
	_, err := request.ParseID("room-101")
	require.Error(t, err)
	assert.True(t, errs.Is(err, request.ErrInvalidUUID))
	assert.Equal(t, "malformed id", err.Error())
}
