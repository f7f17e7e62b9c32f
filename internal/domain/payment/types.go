package payment

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus            = errors.New("invalid payment status")
	ErrInvalidAmount            = errors.New("payment amount must be greater than zero")
	ErrInvalidCurrency          = errors.New("currency must be a 3-letter ISO code")
	ErrInvalidPaymentTransition = errors.New("invalid payment status transition")
	ErrInvalidRefundState       = errors.New("only paid payments can be refunded")
	ErrOverpaymentRejected      = errors.New("payment would exceed the booking's final bill")
	ErrFinalBillNotSet          = errors.New("booking final bill is not set")
	ErrPaymentNotAllowed        = errors.New("payments can only be created for checked-out bookings")
)

const MethodNoShowCharge = "no_show_charge"

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

var allowedTransitions = map[Status][]Status{
	StatusPending:  {StatusPaid, StatusFailed},
	StatusPaid:     {StatusRefunded},
	StatusFailed:   nil,
	StatusRefunded: nil,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func transitionError(from, to Status) error {
	return fmt.Errorf("%w: cannot move payment from %s to %s", ErrInvalidPaymentTransition, from, to)
}
