//go:build unit

package payment_test

import (
	"testing"
	"time"

	"hotel-core/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 14, 11, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newPending(t *testing.T, amount string) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(uuid.New(), dec(amount), "usd", "card", "")
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	p := newPending(t, "50")
	assert.Equal(t, payment.StatusPending, p.Status())
	assert.Equal(t, "USD", p.Currency())

	_, err := payment.NewPayment(uuid.New(), decimal.Zero, "USD", "card", "")
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)

	_, err = payment.NewPayment(uuid.New(), dec("-1"), "USD", "card", "")
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)

	_, err = payment.NewPayment(uuid.New(), dec("10.005"), "USD", "card", "")
	assert.ErrorIs(t, err, payment.ErrInvalidAmount, "sub-cent amounts")

	_, err = payment.NewPayment(uuid.New(), dec("1"), "US", "card", "")
	assert.ErrorIs(t, err, payment.ErrInvalidCurrency)
}

func TestPaymentTransitions(t *testing.T) {
	t.Run("pending to paid to refunded", func(t *testing.T) {
		p := newPending(t, "50")
		require.NoError(t, p.MarkPaid(now))
		require.NotNil(t, p.ProcessedAt())
		require.NoError(t, p.Refund(now))
		assert.Equal(t, payment.StatusRefunded, p.Status())
		assert.NotNil(t, p.RefundedAt())
	})

	t.Run("refund needs a paid record", func(t *testing.T) {
		p := newPending(t, "50")
		assert.ErrorIs(t, p.Refund(now), payment.ErrInvalidRefundState)
		assert.Equal(t, payment.StatusPending, p.Status())
	})

	t.Run("fail only from pending", func(t *testing.T) {
		p := newPending(t, "50")
		require.NoError(t, p.Fail())

		paid := newPending(t, "50")
		require.NoError(t, paid.MarkPaid(now))
		assert.ErrorIs(t, paid.Fail(), payment.ErrInvalidPaymentTransition)
		assert.Equal(t, payment.StatusPaid, paid.Status())

		assert.ErrorIs(t, p.MarkPaid(now), payment.ErrInvalidPaymentTransition)
	})
}

func TestCheckCapacity(t *testing.T) {
	bill := dec("300")

	assert.ErrorIs(t, payment.CheckCapacity(nil, decimal.Zero, dec("1")), payment.ErrFinalBillNotSet)
	assert.NoError(t, payment.CheckCapacity(&bill, dec("200"), dec("100")))
	assert.ErrorIs(t, payment.CheckCapacity(&bill, dec("200"), dec("100.01")), payment.ErrOverpaymentRejected)
}

func paidTotal(ledger []*payment.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range ledger {
		if p.IsPaid() {
			sum = sum.Add(p.Amount())
		}
	}
	return sum
}

func TestNoOverpaymentSequence(t *testing.T) {
	bill := dec("300")
	var ledger []*payment.Payment

	for _, amount := range []string{"120", "150", "40", "30"} {
		p := newPending(t, amount)
		ledger = append(ledger, p)
		if err := payment.CheckCapacity(&bill, paidTotal(ledger), p.Amount()); err != nil {
			assert.ErrorIs(t, err, payment.ErrOverpaymentRejected)
			continue
		}
		require.NoError(t, p.MarkPaid(now))
		assert.True(t, paidTotal(ledger).LessThanOrEqual(bill))
	}

	assert.True(t, dec("300").Equal(paidTotal(ledger)), "got %s", paidTotal(ledger))
	assert.Equal(t, payment.StatusPending, ledger[2].Status())
}

func TestNewRefundLine(t *testing.T) {
	src := newPending(t, "333.33")
	require.NoError(t, src.MarkPaid(now))

	line, err := payment.NewRefundLine(src, dec("50"), "Standard", now)
	require.NoError(t, err)

	assert.Equal(t, payment.StatusRefunded, line.Status())
	assert.Equal(t, "166.66", line.Amount().StringFixed(2))
	assert.Equal(t, src.Currency(), line.Currency())
	assert.Equal(t, src.Method(), line.Method())
	assert.Equal(t, src.BookingID(), line.BookingID())
	assert.Contains(t, line.Reference(), "Payment "+src.ID().String())
	assert.Contains(t, line.Reference(), "Policy: Standard")
	assert.Equal(t, payment.StatusPaid, src.Status())

	_, err = payment.NewRefundLine(newPending(t, "10"), dec("100"), "Standard", now)
	assert.ErrorIs(t, err, payment.ErrInvalidRefundState)
}

func TestNewNoShowCharge(t *testing.T) {
	p, err := payment.NewNoShowCharge(uuid.New(), "BK-42", dec("300"), "USD", now)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPaid, p.Status())
	assert.Equal(t, payment.MethodNoShowCharge, p.Method())
	assert.Contains(t, p.Reference(), "BK-42")

	_, err = payment.NewNoShowCharge(uuid.New(), "BK-42", decimal.Zero, "USD", now)
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)
}

func TestNewInvoice(t *testing.T) {
	inv, err := payment.NewInvoice(uuid.New(), "INV-20250614-ABCDEF", dec("427.45"), dec("0.10"), "USD", now)
	require.NoError(t, err)

	assert.Equal(t, "427.45", inv.Subtotal().StringFixed(2))
	assert.Equal(t, "42.74", inv.TaxAmount().StringFixed(2))
	assert.Equal(t, "470.19", inv.TotalAmount().StringFixed(2))
}
