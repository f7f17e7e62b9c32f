//go:build unit || e2e

package builder

import (
	"time"

	"hotel-core/internal/domain/booking"
	reqdto "hotel-core/internal/handler/dto/request"
	"hotel-core/internal/pkg/dateutil"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	BookingNumber   string
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	CreatedBy       uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	NumberOfGuests  int
	PricePerNight   decimal.Decimal
	SpecialRequests string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BookingNumber:  "BK-TEST0001",
		GuestID:        uuid.New(),
		RoomID:         uuid.New(),
		CreatedBy:      uuid.New(),
		CheckIn:        dateutil.Date(2025, 6, 10),
		CheckOut:       dateutil.Date(2025, 6, 13),
		NumberOfGuests: 2,
		PricePerNight:  decimal.RequireFromString("100.00"),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(booking.NewBookingParams{
		BookingNumber:   b.BookingNumber,
		GuestID:         b.GuestID,
		RoomID:          b.RoomID,
		CreatedBy:       b.CreatedBy,
		Period:          period,
		NumberOfGuests:  b.NumberOfGuests,
		PricePerNight:   b.PricePerNight,
		SpecialRequests: b.SpecialRequests,
	})
}

// BuildInStatus walks a fresh booking through the lifecycle up to status.
func (b *BookingBuilder) BuildInStatus(status booking.Status, now time.Time) (*booking.Booking, error) {
	bk, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	var path []func() error
	switch status {
	case booking.StatusPending:
	case booking.StatusConfirmed:
		path = []func() error{bk.Confirm}
	case booking.StatusCheckedIn:
		path = []func() error{bk.Confirm, func() error { return bk.CheckIn(now) }}
	case booking.StatusCheckedOut:
		path = []func() error{
			bk.Confirm,
			func() error { return bk.CheckIn(now) },
			func() error { return bk.CheckOut(now) },
		}
	case booking.StatusCancelled:
		path = []func() error{func() error { return bk.Cancel(now) }}
	case booking.StatusNoShow:
		path = []func() error{bk.Confirm, func() error { _, err := bk.MarkNoShow(); return err }}
	}
	for _, step := range path {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return bk, nil
}

func (b *BookingBuilder) BuildView(id uuid.UUID) *queries.BookingView {
	nights := dateutil.DaysBetween(b.CheckIn, b.CheckOut)
	now := time.Now()
	return &queries.BookingView{
		ID:              id,
		BookingNumber:   b.BookingNumber,
		GuestID:         b.GuestID,
		GuestName:       "Test Guest",
		RoomID:          b.RoomID,
		RoomNumber:      "101",
		CreatedBy:       b.CreatedBy,
		CheckInDate:     b.CheckIn,
		CheckOutDate:    b.CheckOut,
		NumberOfGuests:  int32(b.NumberOfGuests),
		Status:          booking.StatusPending.String(),
		PricePerNight:   b.PricePerNight,
		TotalPrice:      b.PricePerNight.Mul(decimal.NewFromInt(int64(nights))),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		GuestID:         b.GuestID,
		RoomID:          b.RoomID,
		CheckInDate:     dateutil.Format(b.CheckIn),
		CheckOutDate:    dateutil.Format(b.CheckOut),
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: b.SpecialRequests,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithRoom(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithPrice(price string) *BookingBuilder {
	b.PricePerNight = decimal.RequireFromString(price)
	return b
}

func (b *BookingBuilder) WithCreatedBy(userID uuid.UUID) *BookingBuilder {
	b.CreatedBy = userID
	return b
}
