//go:build unit

package refund_test

import (
	"testing"
	"time"

	"hotel-core/internal/domain/payment"
	"hotel-core/internal/domain/refund"
	"hotel-core/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standard(t *testing.T) *refund.Policy {
	t.Helper()
	p, err := refund.NewPolicy(refund.PolicyParams{
		Name:                    "Standard",
		FullRefundDays:          7,
		PartialRefundDays:       2,
		PartialRefundPercentage: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	return p
}

func paid(t *testing.T, bookingID uuid.UUID, amount string, now time.Time) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(bookingID, decimal.RequireFromString(amount), "USD", "card", "TXN-1")
	require.NoError(t, err)
	require.NoError(t, p.MarkPaid(now))
	return p
}

func TestPolicyTiers(t *testing.T) {
	policy := standard(t)
	today := dateutil.Date(2025, 3, 1)

	cases := []struct {
		name    string
		checkIn time.Time
		want    int64
	}{
		{"10 days out is a full refund", dateutil.AddDays(today, 10), 100},
		{"exactly 7 days is a full refund", dateutil.AddDays(today, 7), 100},
		{"5 days out is partial", dateutil.AddDays(today, 5), 50},
		{"exactly 2 days is partial", dateutil.AddDays(today, 2), 50},
		{"1 day out is nothing", dateutil.AddDays(today, 1), 0},
		{"after check-in is nothing", dateutil.AddDays(today, -1), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := policy.PercentageFor(c.checkIn, today)
			assert.True(t, decimal.NewFromInt(c.want).Equal(got), "got %s", got)
		})
	}
}

func TestNewPolicyValidation(t *testing.T) {
	_, err := refund.NewPolicy(refund.PolicyParams{Name: " "})
	assert.ErrorIs(t, err, refund.ErrInvalidPolicyName)

	_, err = refund.NewPolicy(refund.PolicyParams{Name: "x", FullRefundDays: 1, PartialRefundDays: 3})
	assert.ErrorIs(t, err, refund.ErrInvalidTiers)

	_, err = refund.NewPolicy(refund.PolicyParams{Name: "x", FullRefundDays: 3, PartialRefundPercentage: decimal.NewFromInt(101)})
	assert.ErrorIs(t, err, refund.ErrInvalidPercentage)
}

func TestPlan(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	today := dateutil.DateOf(now)
	bookingID := uuid.New()

	pending, err := payment.NewPayment(bookingID, decimal.NewFromInt(80), "USD", "card", "")
	require.NoError(t, err)
	payments := []*payment.Payment{
		paid(t, bookingID, "200", now),
		paid(t, bookingID, "100", now),
		pending,
	}

	t.Run("partial tier refunds every paid line", func(t *testing.T) {
		out, err := refund.Plan(standard(t), dateutil.AddDays(today, 5), today, payments, now)
		require.NoError(t, err)

		require.Len(t, out.Lines, 2)
		assert.Equal(t, "150.00", out.Total().StringFixed(2))
		for _, l := range out.Lines {
			assert.Equal(t, payment.StatusRefunded, l.Status())
			assert.Contains(t, l.Reference(), "Refund for TXN-1")
		}
		assert.Equal(t, payment.StatusPaid, payments[0].Status())
	})

	t.Run("zero tier is a no-op", func(t *testing.T) {
		out, err := refund.Plan(standard(t), dateutil.AddDays(today, 1), today, payments, now)
		require.NoError(t, err)
		assert.Empty(t, out.Lines)
		assert.True(t, out.Percentage.IsZero())
	})
}
