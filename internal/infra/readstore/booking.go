package readstore

import (
	"context"
	"time"

	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.ListBookingsRow, error)
	ListPaymentsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ListPaymentsByBookingRow, error)
	FindInvoiceByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Invoices, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		return nil, findErr("booking", err)
	}

	var d rowDecoder
	view := &queries.BookingView{
		ID:              row.ID,
		BookingNumber:   row.BookingNumber,
		GuestID:         row.GuestID,
		GuestName:       row.GuestName,
		RoomID:          row.RoomID,
		RoomNumber:      row.RoomNumber,
		CreatedBy:       row.CreatedBy,
		CheckInDate:     pgconv.DateFromPgtype(row.CheckInDate),
		CheckOutDate:    pgconv.DateFromPgtype(row.CheckOutDate),
		NumberOfGuests:  row.NumberOfGuests,
		Status:          row.Status,
		PricePerNight:   d.decimal(row.PricePerNight),
		TotalPrice:      d.decimal(row.TotalPrice),
		FinalBill:       d.decimalPtr(row.FinalBill),
		ActualCheckIn:   pgconv.TimePtrFromPgtype(row.ActualCheckIn),
		ActualCheckOut:  pgconv.TimePtrFromPgtype(row.ActualCheckOut),
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
		SpecialRequests: row.SpecialRequests,
		InternalNotes:   row.InternalNotes,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if err := d.wrap("failed to decode booking view"); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter, afterCreatedAt time.Time, afterID *uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsParams{
		RoomID:      pgconv.UUIDPtrToPgtype(filter.RoomID),
		GuestID:     pgconv.UUIDPtrToPgtype(filter.GuestID),
		CreatedBy:   pgconv.UUIDPtrToPgtype(filter.CreatedBy),
		CheckInFrom: pgconv.DatePtrToPgtype(filter.CheckInFrom),
		CheckInTo:   pgconv.DatePtrToPgtype(filter.CheckInTo),
		AfterID:     pgconv.UUIDPtrToPgtype(afterID),
		Limit:       limit,
	}
	if filter.Status != nil {
		params.Status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}
	if afterID != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(afterCreatedAt)
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	var d rowDecoder
	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:            row.ID,
			BookingNumber: row.BookingNumber,
			GuestName:     row.GuestName,
			RoomNumber:    row.RoomNumber,
			CheckInDate:   pgconv.DateFromPgtype(row.CheckInDate),
			CheckOutDate:  pgconv.DateFromPgtype(row.CheckOutDate),
			Status:        row.Status,
			TotalPrice:    d.decimal(row.TotalPrice),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	if err := d.wrap("failed to decode booking list"); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BookingReadStore) ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking payments", err)
	}

	var d rowDecoder
	views := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toPaymentView(&d, sqlc.ListPaymentsRow(row)))
	}
	if err := d.wrap("failed to decode booking payments"); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingReadStore) FindInvoice(ctx context.Context, bookingID uuid.UUID) (*queries.InvoiceView, error) {
	row, err := r.queries.FindInvoiceByBookingID(ctx, r.db, bookingID)
	if err != nil {
		return nil, findErr("invoice", err)
	}

	var d rowDecoder
	view := &queries.InvoiceView{
		ID:            row.ID,
		BookingID:     row.BookingID,
		InvoiceNumber: row.InvoiceNumber,
		Subtotal:      d.decimal(row.Subtotal),
		TaxAmount:     d.decimal(row.TaxAmount),
		TotalAmount:   d.decimal(row.TotalAmount),
		Currency:      row.Currency,
		IssuedAt:      pgconv.TimeFromPgtype(row.IssuedAt),
	}
	if err := d.wrap("failed to decode invoice"); err != nil {
		return nil, err
	}
	return view, nil
}
