package converter

import (
	"hotel-core/internal/domain/payment"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:          p.ID(),
		BookingID:   p.BookingID(),
		Amount:      pgconv.NumericFromDecimal(p.Amount()),
		Currency:    p.Currency(),
		Method:      p.Method(),
		Status:      p.Status().String(),
		Reference:   p.Reference(),
		ProcessedAt: pgconv.TimePtrToPgtype(p.ProcessedAt()),
		RefundedAt:  pgconv.TimePtrToPgtype(p.RefundedAt()),
	}
}

func PaymentToStatusParams(p *payment.Payment) sqlc.UpdatePaymentStatusParams {
	return sqlc.UpdatePaymentStatusParams{
		ID:          p.ID(),
		Status:      p.Status().String(),
		ProcessedAt: pgconv.TimePtrToPgtype(p.ProcessedAt()),
		RefundedAt:  pgconv.TimePtrToPgtype(p.RefundedAt()),
	}
}

func PaymentToDomain(row sqlc.Payments) (*payment.Payment, error) {
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructPayment(
		row.ID, row.BookingID,
		amount,
		row.Currency, row.Method,
		status,
		row.Reference,
		pgconv.TimePtrFromPgtype(row.ProcessedAt),
		pgconv.TimePtrFromPgtype(row.RefundedAt),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func InvoiceToParams(inv *payment.Invoice) sqlc.CreateInvoiceIfAbsentParams {
	return sqlc.CreateInvoiceIfAbsentParams{
		ID:            inv.ID(),
		BookingID:     inv.BookingID(),
		InvoiceNumber: inv.InvoiceNumber(),
		Subtotal:      pgconv.NumericFromDecimal(inv.Subtotal()),
		TaxAmount:     pgconv.NumericFromDecimal(inv.TaxAmount()),
		TotalAmount:   pgconv.NumericFromDecimal(inv.TotalAmount()),
		Currency:      inv.Currency(),
		IssuedAt:      pgconv.TimeToPgtype(inv.IssuedAt()),
	}
}

func InvoiceToDomain(row sqlc.Invoices) (*payment.Invoice, error) {
	subtotal, err := pgconv.DecimalFromNumeric(row.Subtotal)
	if err != nil {
		return nil, err
	}
	tax, err := pgconv.DecimalFromNumeric(row.TaxAmount)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructInvoice(
		row.ID, row.BookingID,
		row.InvoiceNumber,
		subtotal, tax, total,
		row.Currency,
		pgconv.TimeFromPgtype(row.IssuedAt),
	), nil
}
