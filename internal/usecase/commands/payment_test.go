//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/commands"
	"hotel-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	fx   *txFixture
	cmds commands.PaymentCommands
	bk   *booking.Booking
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fx = newTxFixture(s.ctrl)
	s.cmds = commands.NewPaymentCommands(s.fx.uow, clock.NewMockClock(testNow), fixedNumbers{}, testHotel())

	// 3泊x100で最終請求300
	bk, err := builder.NewBookingBuilder().BuildInStatus(booking.StatusCheckedOut, testNow)
	s.Require().NoError(err)
	s.bk = bk
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) pending(amount string) *payment.Payment {
	p, err := payment.NewPayment(s.bk.ID(), decimal.RequireFromString(amount), "USD", "card", "")
	s.Require().NoError(err)
	return p
}

// expectLocks registers the booking-then-payment lock sequence Process must follow.
func (s *PaymentCommandsTestSuite) expectLocks(p *payment.Payment, paidSoFar string) *gomock.Call {
	peek := s.fx.payments.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil)
	lockBooking := s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), s.bk.ID()).Return(s.bk, nil).After(peek)
	lockPayment := s.fx.payments.EXPECT().FindByIDForUpdate(gomock.Any(), p.ID()).Return(p, nil).After(lockBooking)
	return s.fx.payments.EXPECT().SumPaid(gomock.Any(), s.bk.ID()).
		Return(decimal.RequireFromString(paidSoFar), nil).After(lockPayment)
}

func (s *PaymentCommandsTestSuite) TestProcess() {
	s.Run("分割払いでも請求書は一枚", func() {
		deposit := s.pending("100.00")
		balance := s.pending("200.00")
		var issued *payment.Invoice

		gomock.InOrder(
			s.expectLocks(deposit, "0"),
			s.fx.payments.EXPECT().UpdateStatus(gomock.Any(), deposit).Return(nil),
			s.fx.invoices.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, inv *payment.Invoice) (bool, error) {
					issued = inv
					return true, nil
				}),
		)
		first, err := s.cmds.Process(context.Background(), deposit.ID())
		s.Require().NoError(err)
		s.Require().NotNil(issued)
		s.True(first.InvoiceCreated)
		s.Equal(issued.ID(), *first.InvoiceID)
		s.Equal("300.00", issued.Subtotal().StringFixed(2))
		s.Equal("30.00", issued.TaxAmount().StringFixed(2))

		gomock.InOrder(
			s.expectLocks(balance, "100.00"),
			s.fx.payments.EXPECT().UpdateStatus(gomock.Any(), balance).Return(nil),
			s.fx.invoices.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil),
			s.fx.invoices.EXPECT().FindByBookingID(gomock.Any(), s.bk.ID()).Return(issued, nil),
		)
		second, err := s.cmds.Process(context.Background(), balance.ID())
		s.Require().NoError(err)
		s.False(second.AlreadyPaid)
		s.False(second.InvoiceCreated)
		s.Equal(*first.InvoiceID, *second.InvoiceID)
		s.Equal(payment.StatusPaid, balance.Status())
	})

	s.Run("処理済みの支払いは何も書かない", func() {
		p := s.pending("50.00")
		s.Require().NoError(p.MarkPaid(testNow))
		s.fx.payments.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil)
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), s.bk.ID()).Return(s.bk, nil)
		s.fx.payments.EXPECT().FindByIDForUpdate(gomock.Any(), p.ID()).Return(p, nil)
		s.fx.payments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Times(0)
		s.fx.invoices.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Times(0)

		result, err := s.cmds.Process(context.Background(), p.ID())
		s.Require().NoError(err)
		s.True(result.AlreadyPaid)
		s.Nil(result.InvoiceID)
	})

	s.Run("最終請求を超える支払いは拒否", func() {
		p := s.pending("100.01")
		s.expectLocks(p, "200.00")
		s.fx.payments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.cmds.Process(context.Background(), p.ID())
		s.ErrorIs(err, payment.ErrOverpaymentRejected)
		s.Equal(payment.StatusPending, p.Status())
	})

	s.Run("存在しない支払い", func() {
		id := uuid.New()
		s.fx.payments.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())

		_, err := s.cmds.Process(context.Background(), id)
		s.ErrorIs(err, errs.ErrPaymentNotFound)
	})
}

func (s *PaymentCommandsTestSuite) TestCreate() {
	s.Run("チェックアウト前の予約には登録できない", func() {
		bk, err := builder.NewBookingBuilder().BuildInStatus(booking.StatusConfirmed, testNow)
		s.Require().NoError(err)
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err = s.cmds.Create(context.Background(), commands.CreatePaymentInput{
			BookingID: bk.ID(),
			Amount:    decimal.NewFromInt(10),
			Method:    "card",
		}, staffActor())
		s.ErrorIs(err, payment.ErrPaymentNotAllowed)
	})

	s.Run("通貨省略時はホテルの通貨", func() {
		var stored *payment.Payment
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), s.bk.ID()).Return(s.bk, nil)
		s.fx.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) error {
				stored = p
				return nil
			})

		id, err := s.cmds.Create(context.Background(), commands.CreatePaymentInput{
			BookingID: s.bk.ID(),
			Amount:    decimal.NewFromInt(10),
			Method:    "card",
		}, staffActor())
		s.Require().NoError(err)
		s.Equal(stored.ID(), id)
		s.Equal("USD", stored.Currency())
		s.Equal(payment.StatusPending, stored.Status())
	})
}

func (s *PaymentCommandsTestSuite) TestGenerateInvoice() {
	s.Run("支払い前でも最終請求があれば発行する", func() {
		var issued *payment.Invoice
		gomock.InOrder(
			s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), s.bk.ID()).Return(s.bk, nil),
			s.fx.invoices.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, inv *payment.Invoice) (bool, error) {
					issued = inv
					return true, nil
				}),
		)

		inv, created, err := s.cmds.GenerateInvoice(context.Background(), s.bk.ID())
		s.Require().NoError(err)
		s.True(created)
		s.Same(issued, inv)
		s.Equal("INV-TEST0001", inv.InvoiceNumber())
		s.Equal("330.00", inv.TotalAmount().StringFixed(2))
	})

	s.Run("チェックアウト前はFinalBillNotSet", func() {
		bk, err := builder.NewBookingBuilder().BuildInStatus(booking.StatusCheckedIn, testNow)
		s.Require().NoError(err)
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.invoices.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Times(0)

		_, _, err = s.cmds.GenerateInvoice(context.Background(), bk.ID())
		s.ErrorIs(err, payment.ErrFinalBillNotSet)
	})

	s.Run("存在しない予約", func() {
		id := uuid.New()
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, notFound())

		_, _, err := s.cmds.GenerateInvoice(context.Background(), id)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}
