package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is issued once per booking on its first successful payment.
type Invoice struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	invoiceNumber string
	subtotal      decimal.Decimal
	taxAmount     decimal.Decimal
	totalAmount   decimal.Decimal
	currency      string
	issuedAt      time.Time
}

// NewInvoice taxes the final bill at taxRate. Both amounts round half-to-even at 2 places.
func NewInvoice(bookingID uuid.UUID, number string, finalBill, taxRate decimal.Decimal, currency string, issuedAt time.Time) (*Invoice, error) {
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	subtotal := finalBill.RoundBank(2)
	tax := subtotal.Mul(taxRate).RoundBank(2)
	return &Invoice{
		id:            uuid.New(),
		bookingID:     bookingID,
		invoiceNumber: number,
		subtotal:      subtotal,
		taxAmount:     tax,
		totalAmount:   subtotal.Add(tax),
		currency:      cur,
		issuedAt:      issuedAt,
	}, nil
}

func ReconstructInvoice(
	id, bookingID uuid.UUID,
	number string,
	subtotal, tax, total decimal.Decimal,
	currency string,
	issuedAt time.Time,
) *Invoice {
	return &Invoice{
		id:            id,
		bookingID:     bookingID,
		invoiceNumber: number,
		subtotal:      subtotal,
		taxAmount:     tax,
		totalAmount:   total,
		currency:      currency,
		issuedAt:      issuedAt,
	}
}

func (i *Invoice) ID() uuid.UUID                { return i.id }
func (i *Invoice) BookingID() uuid.UUID         { return i.bookingID }
func (i *Invoice) InvoiceNumber() string        { return i.invoiceNumber }
func (i *Invoice) Subtotal() decimal.Decimal    { return i.subtotal }
func (i *Invoice) TaxAmount() decimal.Decimal   { return i.taxAmount }
func (i *Invoice) TotalAmount() decimal.Decimal { return i.totalAmount }
func (i *Invoice) Currency() string             { return i.currency }
func (i *Invoice) IssuedAt() time.Time          { return i.issuedAt }
