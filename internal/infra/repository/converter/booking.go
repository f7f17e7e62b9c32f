package converter

import (
	"hotel-core/internal/domain/booking"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		BookingNumber:   b.BookingNumber(),
		GuestID:         b.GuestID(),
		RoomID:          b.RoomID(),
		CreatedBy:       b.CreatedBy(),
		CheckInDate:     pgconv.DateToPgtype(b.CheckInDate()),
		CheckOutDate:    pgconv.DateToPgtype(b.CheckOutDate()),
		NumberOfGuests:  int32(b.NumberOfGuests()),
		PricePerNight:   pgconv.NumericFromDecimal(b.PricePerNight()),
		TotalPrice:      pgconv.NumericFromDecimal(b.TotalPrice()),
		Status:          b.Status().String(),
		SpecialRequests: b.SpecialRequests(),
		InternalNotes:   b.InternalNotes(),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:              b.ID(),
		RoomID:          b.RoomID(),
		CheckInDate:     pgconv.DateToPgtype(b.CheckInDate()),
		CheckOutDate:    pgconv.DateToPgtype(b.CheckOutDate()),
		NumberOfGuests:  int32(b.NumberOfGuests()),
		TotalPrice:      pgconv.NumericFromDecimal(b.TotalPrice()),
		Status:          b.Status().String(),
		ActualCheckIn:   pgconv.TimePtrToPgtype(b.ActualCheckIn()),
		ActualCheckOut:  pgconv.TimePtrToPgtype(b.ActualCheckOut()),
		CancelledAt:     pgconv.TimePtrToPgtype(b.CancelledAt()),
		FinalBill:       pgconv.NumericFromDecimalPtr(b.FinalBill()),
		SpecialRequests: b.SpecialRequests(),
		InternalNotes:   b.InternalNotes(),
	}
}

// BookingToDomain rejects rows whose status or money columns cannot be represented.
func BookingToDomain(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	period, err := booking.NewStayPeriod(pgconv.DateFromPgtype(row.CheckInDate), pgconv.DateFromPgtype(row.CheckOutDate))
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	finalBill, err := pgconv.DecimalPtrFromNumeric(row.FinalBill)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		row.ID,
		row.BookingNumber,
		row.GuestID, row.RoomID, row.CreatedBy,
		period,
		int(row.NumberOfGuests),
		price, total,
		status,
		pgconv.TimePtrFromPgtype(row.ActualCheckIn),
		pgconv.TimePtrFromPgtype(row.ActualCheckOut),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		finalBill,
		row.SpecialRequests, row.InternalNotes,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func OccupancyToDomain(row sqlc.FindOverlappingBookingsRow) (booking.Occupancy, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return booking.Occupancy{}, err
	}
	period, err := booking.NewStayPeriod(pgconv.DateFromPgtype(row.CheckInDate), pgconv.DateFromPgtype(row.CheckOutDate))
	if err != nil {
		return booking.Occupancy{}, err
	}
	return booking.Occupancy{BookingID: row.ID, Status: status, Period: period}, nil
}
