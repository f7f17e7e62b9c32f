package refund

import (
	"errors"
	"time"

	"hotel-core/internal/domain/payment"

	"github.com/shopspring/decimal"
)

// Outcome is the result of applying a policy to a cancelled booking.
type Outcome struct {
	Percentage decimal.Decimal
	Lines      []*payment.Payment
}

func (o Outcome) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.Lines {
		sum = sum.Add(l.Amount())
	}
	return sum
}

// Plan builds one REFUNDED line per PAID payment. cancelledOn and checkIn are
// calendar dates in the hotel's zone; now stamps refunded_at.
func Plan(policy *Policy, checkIn, cancelledOn time.Time, payments []*payment.Payment, now time.Time) (Outcome, error) {
	pct := policy.PercentageFor(checkIn, cancelledOn)
	out := Outcome{Percentage: pct}
	if pct.IsZero() {
		return out, nil
	}
	for _, p := range payments {
		if !p.IsPaid() {
			continue
		}
		line, err := payment.NewRefundLine(p, pct, policy.Name(), now)
		if errors.Is(err, payment.ErrInvalidAmount) {
			// rounds to zero
			continue
		}
		if err != nil {
			return Outcome{}, err
		}
		out.Lines = append(out.Lines, line)
	}
	return out, nil
}
