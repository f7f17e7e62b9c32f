package repository

import (
	"context"

	"hotel-core/internal/domain/payment"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PaymentQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	FindPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	FindPaymentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) (int64, error)
	SumPaidPayments(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (pgtype.Numeric, error)
	ListPaidPaymentsForUpdate(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Payments, error)
}

type PaymentRepository struct {
	queries PaymentQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries *sqlc.Queries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.FindPaymentByID(ctx, r.db, id)
	return toPayment(row, err)
}

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.FindPaymentByIDForUpdate(ctx, r.db, id)
	return toPayment(row, err)
}

func toPayment(row sqlc.Payments, err error) (*payment.Payment, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	p, err := converter.PaymentToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment row", err, infra.KindCorruptRow)
	}
	return p, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, p *payment.Payment) error {
	n, err := r.queries.UpdatePaymentStatus(ctx, r.db, converter.PaymentToStatusParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) SumPaid(ctx context.Context, bookingID uuid.UUID) (decimal.Decimal, error) {
	sum, err := r.queries.SumPaidPayments(ctx, r.db, bookingID)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum paid payments", err)
	}
	d, err := pgconv.DecimalFromNumeric(sum)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to decode paid sum", err, infra.KindCorruptRow)
	}
	return d, nil
}

func (r *PaymentRepository) ListPaidForUpdate(ctx context.Context, bookingID uuid.UUID) ([]*payment.Payment, error) {
	rows, err := r.queries.ListPaidPaymentsForUpdate(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list paid payments", err)
	}
	out := make([]*payment.Payment, 0, len(rows))
	for _, row := range rows {
		p, err := converter.PaymentToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode payment row", err, infra.KindCorruptRow)
		}
		out = append(out, p)
	}
	return out, nil
}
