package queries

import (
	"context"

	"hotel-core/internal/domain/payment"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentFilter struct {
	Status    *payment.Status
	BookingID *uuid.UUID
	// BookingCreatedBy restricts results to payments on bookings created by this user.
	BookingCreatedBy *uuid.UUID
}

type PaymentReadStore interface {
	List(ctx context.Context, filter PaymentFilter, limit int32) ([]*PaymentView, error)
}

type PaymentQueries interface {
	List(ctx context.Context, filter PaymentFilter, limit int, actor shared.Actor) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

// List shows regular actors only the payments on bookings they created.
func (q *paymentQueriesImpl) List(ctx context.Context, filter PaymentFilter, limit int, actor shared.Actor) ([]*PaymentView, error) {
	if !actor.SeesAll() {
		filter.BookingCreatedBy = &actor.UserID
	}
	rows, err := q.store.List(ctx, filter, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, readErr(err, errs.ErrPaymentNotFound)
	}
	return rows, nil
}
