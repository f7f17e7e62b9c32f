package response

import (
	"time"

	"hotel-core/internal/domain/payment"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID  `json:"id"`
	BookingID     uuid.UUID  `json:"booking_id"`
	BookingNumber string     `json:"booking_number"`
	Amount        string     `json:"amount"`
	Currency      string     `json:"currency"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	Reference     string     `json:"reference,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	RefundedAt    *time.Time `json:"refunded_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromPaymentList(items []*queries.PaymentView) []PaymentResponse {
	res := make([]PaymentResponse, len(items))
	for i, it := range items {
		mustCopy(&res[i], it)
	}
	return res
}

type ProcessPaymentResponse struct {
	AlreadyPaid    bool       `json:"already_paid"`
	InvoiceID      *uuid.UUID `json:"invoice_id,omitempty"`
	InvoiceCreated bool       `json:"invoice_created"`
}

func FromProcessResult(r *commands.ProcessResult) *ProcessPaymentResponse {
	return &ProcessPaymentResponse{
		AlreadyPaid:    r.AlreadyPaid,
		InvoiceID:      r.InvoiceID,
		InvoiceCreated: r.InvoiceCreated,
	}
}

type InvoiceResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"booking_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Subtotal      string    `json:"subtotal"`
	TaxAmount     string    `json:"tax_amount"`
	TotalAmount   string    `json:"total_amount"`
	Currency      string    `json:"currency"`
	IssuedAt      time.Time `json:"issued_at"`
}

func FromInvoice(inv *payment.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            inv.ID(),
		BookingID:     inv.BookingID(),
		InvoiceNumber: inv.InvoiceNumber(),
		Subtotal:      inv.Subtotal().StringFixed(2),
		TaxAmount:     inv.TaxAmount().StringFixed(2),
		TotalAmount:   inv.TotalAmount().StringFixed(2),
		Currency:      inv.Currency(),
		IssuedAt:      inv.IssuedAt(),
	}
}

func FromInvoiceView(v *queries.InvoiceView) *InvoiceResponse {
	var res InvoiceResponse
	mustCopy(&res, v)
	return &res
}
