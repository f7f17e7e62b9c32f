package request

import (
	"hotel-core/internal/domain/booking"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestID         uuid.UUID `json:"guest_id" binding:"required"`
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	CheckInDate     string    `json:"check_in_date" binding:"required"`
	CheckOutDate    string    `json:"check_out_date" binding:"required"`
	NumberOfGuests  int       `json:"number_of_guests" binding:"required,min=1"`
	SpecialRequests string    `json:"special_requests" binding:"max=2000"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := parseDate("check_in_date", r.CheckInDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := parseDate("check_out_date", r.CheckOutDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		GuestID:         r.GuestID,
		RoomID:          r.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// UpdateBookingRequest is a partial update; absent fields stay unchanged.
type UpdateBookingRequest struct {
	RoomID          *uuid.UUID `json:"room_id"`
	CheckInDate     *string    `json:"check_in_date"`
	CheckOutDate    *string    `json:"check_out_date"`
	NumberOfGuests  *int       `json:"number_of_guests" binding:"omitempty,min=1"`
	SpecialRequests *string    `json:"special_requests" binding:"omitempty,max=2000"`
	InternalNotes   *string    `json:"internal_notes" binding:"omitempty,max=2000"`
}

func (r *UpdateBookingRequest) ToDomain() (booking.Update, error) {
	checkIn, err := parseOptionalDate("check_in_date", r.CheckInDate)
	if err != nil {
		return booking.Update{}, err
	}
	checkOut, err := parseOptionalDate("check_out_date", r.CheckOutDate)
	if err != nil {
		return booking.Update{}, err
	}
	return booking.Update{
		RoomID:          r.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
		InternalNotes:   r.InternalNotes,
	}, nil
}

type CancelBookingRequest struct {
	PolicyID *uuid.UUID `json:"policy_id"`
}

type ListBookingsQuery struct {
	Status      string `form:"status"`
	RoomID      string `form:"room_id"`
	GuestID     string `form:"guest_id"`
	CheckInFrom string `form:"check_in_from"`
	CheckInTo   string `form:"check_in_to"`
	Cursor      string `form:"cursor"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListBookingsQuery) ToFilter() (queries.BookingFilter, *queries.Cursor, error) {
	var f queries.BookingFilter
	if q.Status != "" {
		st, err := booking.ParseStatus(q.Status)
		if err != nil {
			return f, nil, err
		}
		f.Status = &st
	}
	var err error
	if f.RoomID, err = parseOptionalUUID("room_id", q.RoomID); err != nil {
		return f, nil, err
	}
	if f.GuestID, err = parseOptionalUUID("guest_id", q.GuestID); err != nil {
		return f, nil, err
	}
	if f.CheckInFrom, err = parseOptionalDate("check_in_from", &q.CheckInFrom); err != nil {
		return f, nil, err
	}
	if f.CheckInTo, err = parseOptionalDate("check_in_to", &q.CheckInTo); err != nil {
		return f, nil, err
	}

	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	return f, cursor, nil
}
