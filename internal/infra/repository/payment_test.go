//go:build unit

package repository

import (
	"context"
	"testing"

	"hotel-core/internal/domain/payment"
	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentQueries struct {
	mock.Mock
}

func (m *MockPaymentQueries) CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockPaymentQueries) FindPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Payments), args.Error(1)
}

func (m *MockPaymentQueries) FindPaymentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Payments), args.Error(1)
}

func (m *MockPaymentQueries) UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentQueries) SumPaidPayments(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (pgtype.Numeric, error) {
	args := m.Called(ctx, db, bookingID)
	return args.Get(0).(pgtype.Numeric), args.Error(1)
}

func (m *MockPaymentQueries) ListPaidPaymentsForUpdate(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Payments, error) {
	args := m.Called(ctx, db, bookingID)
	return args.Get(0).([]sqlc.Payments), args.Error(1)
}

func TestPaymentRepository_SumPaid(t *testing.T) {
	bookingID := uuid.New()
	q := new(MockPaymentQueries)
	q.On("SumPaidPayments", mock.Anything, mock.Anything, bookingID).
		Return(pgconv.NumericFromDecimal(decimal.RequireFromString("150.50")), nil)
	repo := &PaymentRepository{queries: q, db: new(mockDBTX)}

	got, err := repo.SumPaid(context.Background(), bookingID)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("150.5")))
}

func TestPaymentRepository_ListPaidForUpdate(t *testing.T) {
	bookingID := uuid.New()
	rows := []sqlc.Payments{
		{ID: uuid.New(), BookingID: bookingID, Amount: pgconv.NumericFromDecimal(decimal.NewFromInt(80)), Currency: "USD", Method: "card", Status: "paid"},
		{ID: uuid.New(), BookingID: bookingID, Amount: pgconv.NumericFromDecimal(decimal.NewFromInt(20)), Currency: "USD", Method: "cash", Status: "paid"},
	}

	t.Run("decodes every row", func(t *testing.T) {
		q := new(MockPaymentQueries)
		q.On("ListPaidPaymentsForUpdate", mock.Anything, mock.Anything, bookingID).Return(rows, nil)
		repo := &PaymentRepository{queries: q, db: new(mockDBTX)}

		got, err := repo.ListPaidForUpdate(context.Background(), bookingID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, payment.StatusPaid, got[0].Status())
		assert.Equal(t, "cash", got[1].Method())
	})

	t.Run("未知のステータスを含む行はCORRUPT_ROW", func(t *testing.T) {
		bad := append([]sqlc.Payments{}, rows...)
		bad[1].Status = "settled"
		q := new(MockPaymentQueries)
		q.On("ListPaidPaymentsForUpdate", mock.Anything, mock.Anything, bookingID).Return(bad, nil)
		repo := &PaymentRepository{queries: q, db: new(mockDBTX)}

		_, err := repo.ListPaidForUpdate(context.Background(), bookingID)
		assert.True(t, infra.IsKind(err, infra.KindCorruptRow))
	})
}
