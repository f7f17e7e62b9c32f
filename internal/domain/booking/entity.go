package booking

import (
	"time"

	"hotel-core/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	id              uuid.UUID
	bookingNumber   string
	guestID         uuid.UUID
	roomID          uuid.UUID
	createdBy       uuid.UUID
	period          StayPeriod
	numberOfGuests  int
	pricePerNight   decimal.Decimal
	totalPrice      decimal.Decimal
	status          Status
	actualCheckIn   *time.Time
	actualCheckOut  *time.Time
	cancelledAt     *time.Time
	finalBill       *decimal.Decimal
	specialRequests string
	internalNotes   string
	createdAt       time.Time
	updatedAt       time.Time
}

type NewBookingParams struct {
	BookingNumber   string
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	CreatedBy       uuid.UUID
	Period          StayPeriod
	NumberOfGuests  int
	PricePerNight   decimal.Decimal
	SpecialRequests string
}

// NewBooking freezes the room's current nightly price into a pending booking.
func NewBooking(p NewBookingParams) (*Booking, error) {
	if p.NumberOfGuests < 1 {
		return nil, ErrInvalidGuestCount
	}
	return &Booking{
		id:              uuid.New(),
		bookingNumber:   p.BookingNumber,
		guestID:         p.GuestID,
		roomID:          p.RoomID,
		createdBy:       p.CreatedBy,
		period:          p.Period,
		numberOfGuests:  p.NumberOfGuests,
		pricePerNight:   p.PricePerNight,
		totalPrice:      p.PricePerNight.Mul(decimal.NewFromInt(int64(p.Period.Nights()))),
		status:          StatusPending,
		specialRequests: p.SpecialRequests,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	bookingNumber string,
	guestID, roomID, createdBy uuid.UUID,
	period StayPeriod,
	numberOfGuests int,
	pricePerNight, totalPrice decimal.Decimal,
	status Status,
	actualCheckIn, actualCheckOut, cancelledAt *time.Time,
	finalBill *decimal.Decimal,
	specialRequests, internalNotes string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		bookingNumber:   bookingNumber,
		guestID:         guestID,
		roomID:          roomID,
		createdBy:       createdBy,
		period:          period,
		numberOfGuests:  numberOfGuests,
		pricePerNight:   pricePerNight,
		totalPrice:      totalPrice,
		status:          status,
		actualCheckIn:   actualCheckIn,
		actualCheckOut:  actualCheckOut,
		cancelledAt:     cancelledAt,
		finalBill:       finalBill,
		specialRequests: specialRequests,
		internalNotes:   internalNotes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) transition(to Status) error {
	if !b.status.CanTransitionTo(to) {
		return &TransitionError{From: b.status, To: to}
	}
	b.status = to
	return nil
}

func (b *Booking) Confirm() error {
	return b.transition(StatusConfirmed)
}

func (b *Booking) CheckIn(now time.Time) error {
	if err := b.transition(StatusCheckedIn); err != nil {
		return err
	}
	b.actualCheckIn = &now
	return nil
}

// CheckOut settles the final bill on whole 24h periods actually stayed.
// A stay shorter than one period is billed for the booked nights instead.
func (b *Booking) CheckOut(now time.Time) error {
	if err := b.transition(StatusCheckedOut); err != nil {
		return err
	}
	b.actualCheckOut = &now

	nights := 0
	if b.actualCheckIn != nil {
		nights = int(now.Sub(*b.actualCheckIn) / (24 * time.Hour))
	}
	if nights <= 0 {
		nights = b.period.Nights()
	}
	bill := b.pricePerNight.Mul(decimal.NewFromInt(int64(nights)))
	b.finalBill = &bill
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if err := b.transition(StatusCancelled); err != nil {
		return err
	}
	b.cancelledAt = &now
	return nil
}

// MarkNoShow returns the amount to charge: the final bill when settled, else the total price.
func (b *Booking) MarkNoShow() (decimal.Decimal, error) {
	if err := b.transition(StatusNoShow); err != nil {
		return decimal.Zero, err
	}
	if b.finalBill != nil {
		return *b.finalBill, nil
	}
	return b.totalPrice, nil
}

// Update lists the fields that may change after creation. Nil means unchanged.
type Update struct {
	RoomID          *uuid.UUID
	CheckIn         *time.Time
	CheckOut        *time.Time
	NumberOfGuests  *int
	SpecialRequests *string
	InternalNotes   *string
}

// ApplyUpdate mutates the booking and reports whether the room or dates moved,
// in which case the caller must re-check availability before persisting.
func (b *Booking) ApplyUpdate(u Update) (bool, error) {
	if b.status.IsTerminal() {
		return false, ErrBookingNotEditable
	}

	period := b.period
	if u.CheckIn != nil || u.CheckOut != nil {
		p, err := NewStayPeriod(
			patch.Coalesce(u.CheckIn, b.period.CheckIn()),
			patch.Coalesce(u.CheckOut, b.period.CheckOut()),
		)
		if err != nil {
			return false, err
		}
		period = p
	}
	moved := !period.Equal(b.period) || patch.Changed(u.RoomID, b.roomID)
	if moved && b.status == StatusCheckedIn {
		return false, ErrBookingNotEditable
	}

	if u.NumberOfGuests != nil && *u.NumberOfGuests < 1 {
		return false, ErrInvalidGuestCount
	}

	if !period.Equal(b.period) {
		b.period = period
		b.totalPrice = b.pricePerNight.Mul(decimal.NewFromInt(int64(period.Nights())))
	}
	b.roomID = patch.Coalesce(u.RoomID, b.roomID)
	b.numberOfGuests = patch.Coalesce(u.NumberOfGuests, b.numberOfGuests)
	b.specialRequests = patch.Coalesce(u.SpecialRequests, b.specialRequests)
	b.internalNotes = patch.Coalesce(u.InternalNotes, b.internalNotes)
	return moved, nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.createdBy == userID
}

func (b *Booking) Occupancy() Occupancy {
	return Occupancy{BookingID: b.id, Status: b.status, Period: b.period}
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) BookingNumber() string          { return b.bookingNumber }
func (b *Booking) GuestID() uuid.UUID             { return b.guestID }
func (b *Booking) RoomID() uuid.UUID              { return b.roomID }
func (b *Booking) CreatedBy() uuid.UUID           { return b.createdBy }
func (b *Booking) Period() StayPeriod             { return b.period }
func (b *Booking) CheckInDate() time.Time         { return b.period.CheckIn() }
func (b *Booking) CheckOutDate() time.Time        { return b.period.CheckOut() }
func (b *Booking) NumberOfGuests() int            { return b.numberOfGuests }
func (b *Booking) PricePerNight() decimal.Decimal { return b.pricePerNight }
func (b *Booking) TotalPrice() decimal.Decimal    { return b.totalPrice }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) ActualCheckIn() *time.Time      { return b.actualCheckIn }
func (b *Booking) ActualCheckOut() *time.Time     { return b.actualCheckOut }
func (b *Booking) CancelledAt() *time.Time        { return b.cancelledAt }
func (b *Booking) FinalBill() *decimal.Decimal    { return b.finalBill }
func (b *Booking) SpecialRequests() string        { return b.specialRequests }
func (b *Booking) InternalNotes() string          { return b.internalNotes }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }
