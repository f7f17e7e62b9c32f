package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	amount      decimal.Decimal
	currency    string
	method      string
	status      Status
	reference   string
	processedAt *time.Time
	refundedAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPayment(bookingID uuid.UUID, amount decimal.Decimal, currency, method, reference string) (*Payment, error) {
	// amounts are stored with cent precision
	if !amount.IsPositive() || !amount.Equal(amount.Truncate(2)) {
		return nil, ErrInvalidAmount
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	return &Payment{
		id:        uuid.New(),
		bookingID: bookingID,
		amount:    amount,
		currency:  cur,
		method:    strings.TrimSpace(method),
		status:    StatusPending,
		reference: reference,
	}, nil
}

// NewNoShowCharge records the penalty for a guest who never arrived. It is born PAID.
func NewNoShowCharge(bookingID uuid.UUID, bookingNumber string, amount decimal.Decimal, currency string, now time.Time) (*Payment, error) {
	p, err := NewPayment(bookingID, amount, currency, MethodNoShowCharge,
		fmt.Sprintf("No-show charge for booking %s", bookingNumber))
	if err != nil {
		return nil, err
	}
	p.status = StatusPaid
	p.processedAt = &now
	return p, nil
}

// NewRefundLine creates the REFUNDED ledger line that mirrors pct percent of a PAID
// payment. The source payment is left untouched.
func NewRefundLine(source *Payment, pct decimal.Decimal, policyName string, now time.Time) (*Payment, error) {
	if source.status != StatusPaid {
		return nil, ErrInvalidRefundState
	}
	amount := source.amount.Mul(pct).Div(decimal.NewFromInt(100)).RoundBank(2)
	origin := source.reference
	if origin == "" {
		origin = "Payment " + source.id.String()
	}
	p, err := NewPayment(source.bookingID, amount, source.currency, source.method,
		fmt.Sprintf("Refund for %s; Policy: %s", origin, policyName))
	if err != nil {
		return nil, err
	}
	p.status = StatusRefunded
	p.refundedAt = &now
	return p, nil
}

func ReconstructPayment(
	id, bookingID uuid.UUID,
	amount decimal.Decimal,
	currency, method string,
	status Status,
	reference string,
	processedAt, refundedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:          id,
		bookingID:   bookingID,
		amount:      amount,
		currency:    currency,
		method:      method,
		status:      status,
		reference:   reference,
		processedAt: processedAt,
		refundedAt:  refundedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// CheckPayable fails for anything but a pending payment.
func (p *Payment) CheckPayable() error {
	if !p.status.CanTransitionTo(StatusPaid) {
		return transitionError(p.status, StatusPaid)
	}
	return nil
}

// MarkPaid flips a pending payment to PAID. Callers check the ledger first.
func (p *Payment) MarkPaid(now time.Time) error {
	if err := p.CheckPayable(); err != nil {
		return err
	}
	p.status = StatusPaid
	p.processedAt = &now
	return nil
}

func (p *Payment) Fail() error {
	if !p.status.CanTransitionTo(StatusFailed) {
		return transitionError(p.status, StatusFailed)
	}
	p.status = StatusFailed
	return nil
}

// Refund flips this same record to REFUNDED.
func (p *Payment) Refund(now time.Time) error {
	if p.status != StatusPaid {
		return ErrInvalidRefundState
	}
	p.status = StatusRefunded
	p.refundedAt = &now
	return nil
}

func (p *Payment) IsPaid() bool { return p.status == StatusPaid }

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) BookingID() uuid.UUID    { return p.bookingID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Currency() string        { return p.currency }
func (p *Payment) Method() string          { return p.method }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) Reference() string       { return p.reference }
func (p *Payment) ProcessedAt() *time.Time { return p.processedAt }
func (p *Payment) RefundedAt() *time.Time  { return p.refundedAt }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time    { return p.updatedAt }

func normalizeCurrency(c string) (string, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if len(c) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return c, nil
}
