package queries

import (
	"context"
	"time"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingFilter struct {
	Status      *booking.Status
	RoomID      *uuid.UUID
	GuestID     *uuid.UUID
	CheckInFrom *time.Time
	CheckInTo   *time.Time
	// CreatedBy is forced to the caller for non-staff actors.
	CreatedBy *uuid.UUID
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List returns up to limit rows ordered by created_at desc, id desc, starting after the
	// given keyset position when afterID is non-nil.
	List(ctx context.Context, filter BookingFilter, afterCreatedAt time.Time, afterID *uuid.UUID, limit int32) ([]*BookingListItem, error)
	ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
	FindInvoice(ctx context.Context, bookingID uuid.UUID) (*InvoiceView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int, actor shared.Actor) ([]*BookingListItem, *Cursor, error)
	Payments(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) ([]*PaymentView, error)
	Invoice(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) (*InvoiceView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetByID hides other users' bookings from regular actors behind a not-found.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, readErr(err, errs.ErrBookingNotFound)
	}
	if !actor.SeesAll() && view.CreatedBy != actor.UserID {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int, actor shared.Actor) ([]*BookingListItem, *Cursor, error) {
	if !actor.SeesAll() {
		filter.CreatedBy = &actor.UserID
	}
	if filter.CheckInFrom != nil && filter.CheckInTo != nil && filter.CheckInTo.Before(*filter.CheckInFrom) {
		return nil, nil, errs.ErrInvalidDateRange
	}

	limit = ValidateLimit(limit)
	var afterAt time.Time
	var afterID *uuid.UUID
	if cursor != nil && cursor.After != "" {
		at, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		afterAt, afterID = at, &id
	}

	rows, err := q.store.List(ctx, filter, afterAt, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, readErr(err, errs.ErrBookingNotFound)
	}
	page, next := keysetPage(rows, limit, func(b *BookingListItem) (time.Time, uuid.UUID) {
		return b.CreatedAt, b.ID
	})
	return page, next, nil
}

func (q *bookingQueriesImpl) Payments(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) ([]*PaymentView, error) {
	if _, err := q.GetByID(ctx, bookingID, actor); err != nil {
		return nil, err
	}
	rows, err := q.store.ListPayments(ctx, bookingID)
	if err != nil {
		return nil, readErr(err, errs.ErrPaymentNotFound)
	}
	return rows, nil
}

func (q *bookingQueriesImpl) Invoice(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) (*InvoiceView, error) {
	if _, err := q.GetByID(ctx, bookingID, actor); err != nil {
		return nil, err
	}
	inv, err := q.store.FindInvoice(ctx, bookingID)
	if err != nil {
		return nil, readErr(err, errs.ErrInvoiceNotFound)
	}
	return inv, nil
}
