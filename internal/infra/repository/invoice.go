package repository

import (
	"context"

	"hotel-core/internal/domain/payment"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InvoiceQueries interface {
	CreateInvoiceIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInvoiceIfAbsentParams) (int64, error)
	FindInvoiceByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Invoices, error)
}

type InvoiceRepository struct {
	queries InvoiceQueries
	db      sqlc.DBTX
}

func NewInvoiceRepository(queries *sqlc.Queries, db sqlc.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

// CreateIfAbsent relies on ON CONFLICT (booking_id) DO NOTHING.
func (r *InvoiceRepository) CreateIfAbsent(ctx context.Context, inv *payment.Invoice) (bool, error) {
	n, err := r.queries.CreateInvoiceIfAbsent(ctx, r.db, converter.InvoiceToParams(inv))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create invoice", err)
	}
	return n == 1, nil
}

func (r *InvoiceRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Invoice, error) {
	row, err := r.queries.FindInvoiceByBookingID(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice", err)
	}
	inv, err := converter.InvoiceToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode invoice row", err, infra.KindCorruptRow)
	}
	return inv, nil
}
