package readstore

import (
	"context"

	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentReadQueries interface {
	ListPayments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPaymentsParams) ([]sqlc.ListPaymentsRow, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) List(ctx context.Context, filter queries.PaymentFilter, limit int32) ([]*queries.PaymentView, error) {
	params := sqlc.ListPaymentsParams{
		BookingID: pgconv.UUIDPtrToPgtype(filter.BookingID),
		CreatedBy: pgconv.UUIDPtrToPgtype(filter.BookingCreatedBy),
		Limit:     limit,
	}
	if filter.Status != nil {
		params.Status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}

	rows, err := r.queries.ListPayments(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}

	var d rowDecoder
	views := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toPaymentView(&d, row))
	}
	if err := d.wrap("failed to decode payments"); err != nil {
		return nil, err
	}
	return views, nil
}

func toPaymentView(d *rowDecoder, row sqlc.ListPaymentsRow) *queries.PaymentView {
	return &queries.PaymentView{
		ID:            row.ID,
		BookingID:     row.BookingID,
		BookingNumber: row.BookingNumber,
		Amount:        d.decimal(row.Amount),
		Currency:      row.Currency,
		Method:        row.Method,
		Status:        row.Status,
		Reference:     row.Reference,
		ProcessedAt:   pgconv.TimePtrFromPgtype(row.ProcessedAt),
		RefundedAt:    pgconv.TimePtrFromPgtype(row.RefundedAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
