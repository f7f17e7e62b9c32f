package shared

import (
	"context"
	"time"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/domain/housekeeping"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/domain/pricing"
	"hotel-core/internal/domain/refund"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within runs fn in one READ COMMITTED transaction, retried on
	// serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Rooms() RoomRepository
	Guests() GuestRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Invoices() InvoiceRepository
	Policies() PolicyRepository
	PricingRules() PricingRuleRepository
	Housekeeping() HousekeepingRepository
	Users() UserRepository
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	// FindByIDForUpdate serializes bookings competing for the same room.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error)
	UpdateMaintenanceStatus(ctx context.Context, id uuid.UUID, status room.MaintenanceStatus) error
	FindRoomType(ctx context.Context, id uuid.UUID) (*room.RoomType, error)
}

type GuestRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	// FindOverlapping returns blocking bookings on the room that intersect period.
	FindOverlapping(ctx context.Context, roomID uuid.UUID, period booking.StayPeriod, exclude *uuid.UUID) ([]booking.Occupancy, error)
	// NextArrival is the earliest pending or confirmed check-in on or after from.
	NextArrival(ctx context.Context, roomID uuid.UUID, from time.Time) (*time.Time, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, p *payment.Payment) error
	SumPaid(ctx context.Context, bookingID uuid.UUID) (decimal.Decimal, error)
	ListPaidForUpdate(ctx context.Context, bookingID uuid.UUID) ([]*payment.Payment, error)
}

type InvoiceRepository interface {
	// CreateIfAbsent reports false when the booking already has an invoice.
	CreateIfAbsent(ctx context.Context, inv *payment.Invoice) (bool, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Invoice, error)
}

type PolicyRepository interface {
	Create(ctx context.Context, p *refund.Policy) error
	FindByID(ctx context.Context, id uuid.UUID) (*refund.Policy, error)
	// FindDefault returns the most recently created active policy.
	FindDefault(ctx context.Context) (*refund.Policy, error)
	// EnsureByName inserts p, or reactivates and returns the stored row with the same name.
	EnsureByName(ctx context.Context, p *refund.Policy) (*refund.Policy, error)
}

type PricingRuleRepository interface {
	Create(ctx context.Context, r *pricing.Rule) error
	FindByID(ctx context.Context, id uuid.UUID) (*pricing.Rule, error)
	Update(ctx context.Context, r *pricing.Rule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HousekeepingRepository interface {
	Create(ctx context.Context, t *housekeeping.Task) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*housekeeping.Task, error)
	Update(ctx context.Context, t *housekeeping.Task) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
