package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentInput struct {
	BookingID uuid.UUID
	Amount    decimal.Decimal
	Currency  string
	Method    string
	Reference string
}

type ProcessResult struct {
	AlreadyPaid    bool
	InvoiceID      *uuid.UUID
	InvoiceCreated bool
}

type PaymentCommands interface {
	Create(ctx context.Context, in CreatePaymentInput, actor shared.Actor) (uuid.UUID, error)
	Process(ctx context.Context, id uuid.UUID) (*ProcessResult, error)
	Fail(ctx context.Context, id uuid.UUID) error
	// Refund flips this one PAID record to REFUNDED.
	Refund(ctx context.Context, id uuid.UUID) error
	// GenerateInvoice returns the booking's invoice and whether this call issued it.
	GenerateInvoice(ctx context.Context, bookingID uuid.UUID) (*payment.Invoice, bool, error)
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	numbers NumberGenerator
	hotel   config.HotelConfig
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock, numbers NumberGenerator, hotel config.HotelConfig) PaymentCommands {
	return &paymentCommandsImpl{
		uow:     uow,
		clock:   clk,
		numbers: numbers,
		hotel:   hotel,
	}
}

func (uc *paymentCommandsImpl) Create(ctx context.Context, in CreatePaymentInput, actor shared.Actor) (uuid.UUID, error) {
	currency := in.Currency
	if currency == "" {
		currency = uc.hotel.Currency
	}

	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk, err := lockBooking(ctx, tx, in.BookingID)
		if err != nil {
			return err
		}
		if !actor.SeesAll() && !bk.IsOwnedBy(actor.UserID) {
			return errs.ErrForbidden
		}
		if bk.Status() != booking.StatusCheckedOut {
			return payment.ErrPaymentNotAllowed
		}

		p, err := payment.NewPayment(bk.ID(), in.Amount, currency, in.Method, in.Reference)
		if err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		id = p.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Process locks the booking before the payment so that concurrent calls on one
// booking serialize before the PAID sum is read.
func (uc *paymentCommandsImpl) Process(ctx context.Context, id uuid.UUID) (*ProcessResult, error) {
	result := &ProcessResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*result = ProcessResult{}

		peek, err := tx.Payments().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrPaymentNotFound)
		}
		bk, err := lockBooking(ctx, tx, peek.BookingID())
		if err != nil {
			return err
		}
		p, err := tx.Payments().FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrPaymentNotFound)
		}

		if p.IsPaid() {
			result.AlreadyPaid = true
			return nil
		}
		if err := p.CheckPayable(); err != nil {
			return err
		}

		paidSum, err := tx.Payments().SumPaid(ctx, bk.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := payment.CheckCapacity(bk.FinalBill(), paidSum, p.Amount()); err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := p.MarkPaid(now); err != nil {
			return err
		}
		if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
			return notFoundAs(err, errs.ErrPaymentNotFound)
		}

		inv, created, err := uc.issueInvoice(ctx, tx, bk, p.Currency(), now)
		if err != nil {
			return err
		}
		invoiceID := inv.ID()
		result.InvoiceID = &invoiceID
		result.InvoiceCreated = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.InvoiceCreated {
		slog.InfoContext(ctx, "invoice issued", "payment_id", id, "invoice_id", *result.InvoiceID)
	}
	return result, nil
}

func (uc *paymentCommandsImpl) Fail(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payments().FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrPaymentNotFound)
		}
		if err := p.Fail(); err != nil {
			return err
		}
		if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
			return notFoundAs(err, errs.ErrPaymentNotFound)
		}
		return nil
	})
}

func (uc *paymentCommandsImpl) Refund(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payments().FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrPaymentNotFound)
		}
		if err := p.Refund(uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
			return notFoundAs(err, errs.ErrPaymentNotFound)
		}
		return nil
	})
}

func (uc *paymentCommandsImpl) GenerateInvoice(ctx context.Context, bookingID uuid.UUID) (*payment.Invoice, bool, error) {
	var (
		inv     *payment.Invoice
		created bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		inv, created, err = uc.issueInvoice(ctx, tx, bk, uc.hotel.Currency, uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		slog.InfoContext(ctx, "invoice issued", "booking_id", bookingID, "invoice_id", inv.ID())
	}
	return inv, created, nil
}

// issueInvoice returns the booking's invoice, creating it on the first call.
func (uc *paymentCommandsImpl) issueInvoice(ctx context.Context, tx shared.Tx, bk *booking.Booking, currency string, now time.Time) (*payment.Invoice, bool, error) {
	if bk.FinalBill() == nil {
		return nil, false, payment.ErrFinalBillNotSet
	}
	inv, err := payment.NewInvoice(bk.ID(), uc.numbers.InvoiceNumber(now), *bk.FinalBill(), uc.hotel.TaxRate, currency, now)
	if err != nil {
		return nil, false, err
	}
	created, err := tx.Invoices().CreateIfAbsent(ctx, inv)
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if created {
		return inv, true, nil
	}
	existing, err := tx.Invoices().FindByBookingID(ctx, bk.ID())
	if err != nil {
		return nil, false, notFoundAs(err, errs.ErrInvoiceNotFound)
	}
	return existing, false, nil
}
