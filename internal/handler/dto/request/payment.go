package request

import (
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	BookingID uuid.UUID       `json:"booking_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency" binding:"omitempty,len=3"`
	Method    string          `json:"payment_method" binding:"required,max=50"`
	Reference string          `json:"reference" binding:"max=255"`
}

// ToInput leaves amount validation to the payment entity.
func (r *CreatePaymentRequest) ToInput() commands.CreatePaymentInput {
	return commands.CreatePaymentInput{
		BookingID: r.BookingID,
		Amount:    r.Amount,
		Currency:  r.Currency,
		Method:    r.Method,
		Reference: r.Reference,
	}
}

type ListPaymentsQuery struct {
	Status    string `form:"status"`
	BookingID string `form:"booking_id"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListPaymentsQuery) ToFilter() (queries.PaymentFilter, error) {
	var f queries.PaymentFilter
	if q.Status != "" {
		st, err := payment.ParseStatus(q.Status)
		if err != nil {
			return f, err
		}
		f.Status = &st
	}
	id, err := parseOptionalUUID("booking_id", q.BookingID)
	if err != nil {
		return f, err
	}
	f.BookingID = id
	return f, nil
}
