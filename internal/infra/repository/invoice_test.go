//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-core/internal/domain/payment"
	sqlc "hotel-core/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceQueries struct {
	mock.Mock
}

func (m *MockInvoiceQueries) CreateInvoiceIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInvoiceIfAbsentParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceQueries) FindInvoiceByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Invoices, error) {
	args := m.Called(ctx, db, bookingID)
	return args.Get(0).(sqlc.Invoices), args.Error(1)
}

func TestInvoiceRepository_CreateIfAbsent(t *testing.T) {
	inv, err := payment.NewInvoice(uuid.New(), "INV-20260112-0001", decimal.NewFromInt(200), decimal.RequireFromString("0.10"), "USD", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "inserted", affected: 1, want: true},
		{name: "既存の請求書がある場合はfalse", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockInvoiceQueries)
			q.On("CreateInvoiceIfAbsent", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateInvoiceIfAbsentParams) bool {
				return p.BookingID == inv.BookingID() && p.InvoiceNumber == inv.InvoiceNumber()
			})).Return(tt.affected, nil)
			repo := &InvoiceRepository{queries: q, db: new(mockDBTX)}

			created, err := repo.CreateIfAbsent(context.Background(), inv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, created)
		})
	}
}
