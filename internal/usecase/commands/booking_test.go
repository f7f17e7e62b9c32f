//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/domain/housekeeping"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/domain/refund"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/dateutil"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/commands"
	"hotel-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	fx    *txFixture
	clock *clock.MockClock
	cmds  commands.BookingCommands
	owner uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fx = newTxFixture(s.ctrl)
	s.clock = clock.NewMockClock(testNow)
	s.cmds = commands.NewBookingCommands(s.fx.uow, s.clock, fixedNumbers{}, testHotel())
	s.owner = uuid.New()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) bookingIn(status booking.Status) *booking.Booking {
	bk, err := builder.NewBookingBuilder().WithCreatedBy(s.owner).BuildInStatus(status, testNow)
	s.Require().NoError(err)
	return bk
}

func (s *BookingCommandsTestSuite) TestTransitionOwnership() {
	s.Run("他人の予約の確定は保存前に403", func() {
		bk := s.bookingIn(booking.StatusPending)
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.bookings.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		err := s.cmds.Confirm(context.Background(), bk.ID(), regularActor(uuid.New()))
		s.ErrorIs(err, errs.ErrForbidden)
		s.Equal(booking.StatusPending, bk.Status())
	})

	s.Run("他人の予約のチェックインも403", func() {
		bk := s.bookingIn(booking.StatusConfirmed)
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)

		err := s.cmds.CheckIn(context.Background(), bk.ID(), regularActor(uuid.New()))
		s.ErrorIs(err, errs.ErrForbidden)
		s.Equal(booking.StatusConfirmed, bk.Status())
	})

	s.Run("他人の予約のノーショーは請求を作らない", func() {
		bk := s.bookingIn(booking.StatusConfirmed)
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.cmds.MarkNoShow(context.Background(), bk.ID(), regularActor(uuid.New()))
		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("他人の予約のチェックアウトは清掃タスクを作らない", func() {
		bk := s.bookingIn(booking.StatusCheckedIn)
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.housekeeping.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.cmds.CheckOut(context.Background(), bk.ID(), regularActor(uuid.New()))
		s.ErrorIs(err, errs.ErrForbidden)
		s.Nil(bk.FinalBill())
	})

	s.Run("自分の予約は確定できる", func() {
		bk := s.bookingIn(booking.StatusPending)
		gomock.InOrder(
			s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil),
			s.fx.bookings.EXPECT().Update(gomock.Any(), bk).Return(nil),
		)

		s.NoError(s.cmds.Confirm(context.Background(), bk.ID(), regularActor(s.owner)))
		s.Equal(booking.StatusConfirmed, bk.Status())
	})
}

func (s *BookingCommandsTestSuite) TestUpdate() {
	s.Run("他人の予約は存在しない扱い", func() {
		bk := s.bookingIn(booking.StatusPending)
		guests := 1
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)

		err := s.cmds.Update(context.Background(), bk.ID(), booking.Update{NumberOfGuests: &guests}, regularActor(uuid.New()))
		s.ErrorIs(err, errs.ErrBookingNotFound)
		s.Equal(2, bk.NumberOfGuests())
	})

	s.Run("一般ユーザーの内部メモは捨てる", func() {
		bk := s.bookingIn(booking.StatusPending)
		guests, notes := 1, "VIP"
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.bookings.EXPECT().Update(gomock.Any(), bk).Return(nil)

		err := s.cmds.Update(context.Background(), bk.ID(),
			booking.Update{NumberOfGuests: &guests, InternalNotes: &notes}, regularActor(s.owner))
		s.NoError(err)
		s.Equal(1, bk.NumberOfGuests())
		s.Empty(bk.InternalNotes())
	})

	s.Run("スタッフは内部メモを書ける", func() {
		bk := s.bookingIn(booking.StatusPending)
		notes := "VIP"
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.bookings.EXPECT().Update(gomock.Any(), bk).Return(nil)

		s.NoError(s.cmds.Update(context.Background(), bk.ID(), booking.Update{InternalNotes: &notes}, staffActor()))
		s.Equal("VIP", bk.InternalNotes())
	})
}

func (s *BookingCommandsTestSuite) TestCheckOut() {
	s.Run("最終請求、清掃タスク、部屋のメンテナンス化を順に行う", func() {
		bk := s.bookingIn(booking.StatusCheckedIn)
		tomorrow := dateutil.AddDays(dateutil.DateOf(testNow), 1)
		var task *housekeeping.Task

		gomock.InOrder(
			s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil),
			s.fx.bookings.EXPECT().Update(gomock.Any(), bk).Return(nil),
			s.fx.bookings.EXPECT().NextArrival(gomock.Any(), bk.RoomID(), dateutil.DateOf(testNow)).Return(&tomorrow, nil),
			s.fx.housekeeping.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, t *housekeeping.Task) error {
					task = t
					return nil
				}),
			s.fx.rooms.EXPECT().UpdateMaintenanceStatus(gomock.Any(), bk.RoomID(), room.MaintenanceInProgress).Return(nil),
		)

		result, err := s.cmds.CheckOut(context.Background(), bk.ID(), staffActor())
		s.Require().NoError(err)
		s.Require().NotNil(task)

		s.Equal(booking.StatusCheckedOut, bk.Status())
		s.True(decimal.RequireFromString("300").Equal(result.FinalBill), "got %s", result.FinalBill)
		s.Equal(task.ID(), result.TaskID)
		s.Equal(housekeeping.PriorityHigh, result.TaskPriority)
		s.Equal(housekeeping.TaskTypeCleaning, task.TaskType())
		s.Equal(bk.RoomID(), task.RoomID())
		s.Equal(bk.ID(), *task.BookingID())
		s.Equal(30, task.EstimatedMinutes())
	})

	s.Run("部屋更新の失敗は全体を失敗させる", func() {
		bk := s.bookingIn(booking.StatusCheckedIn)
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.bookings.EXPECT().Update(gomock.Any(), bk).Return(nil)
		s.fx.bookings.EXPECT().NextArrival(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.fx.housekeeping.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.fx.rooms.EXPECT().UpdateMaintenanceStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.New("conn reset"))

		_, err := s.cmds.CheckOut(context.Background(), bk.ID(), staffActor())
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed), "got %v", err)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	policy, err := refund.NewPolicy(refund.PolicyParams{
		Name:                    "Standard",
		FullRefundDays:          7,
		PartialRefundDays:       2,
		PartialRefundPercentage: decimal.NewFromInt(50),
	})
	s.Require().NoError(err)

	paidPayment := func(bookingID uuid.UUID, amount string) *payment.Payment {
		p, err := payment.NewPayment(bookingID, decimal.RequireFromString(amount), "USD", "card", "")
		s.Require().NoError(err)
		s.Require().NoError(p.MarkPaid(testNow))
		return p
	}

	s.Run("支払いごとに返金行を保存する", func() {
		// チェックイン3日前は50%
		s.clock.Set(time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC))
		defer s.clock.Set(testNow)

		bk := s.bookingIn(booking.StatusConfirmed)
		deposit := paidPayment(bk.ID(), "100.00")
		balance := paidPayment(bk.ID(), "60.50")
		var lines []*payment.Payment

		gomock.InOrder(
			s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil),
			s.fx.bookings.EXPECT().Update(gomock.Any(), bk).Return(nil),
			s.fx.policies.EXPECT().FindDefault(gomock.Any()).Return(policy, nil),
			s.fx.payments.EXPECT().ListPaidForUpdate(gomock.Any(), bk.ID()).Return([]*payment.Payment{deposit, balance}, nil),
			s.fx.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *payment.Payment) error {
					lines = append(lines, p)
					return nil
				}).Times(2),
		)

		result, err := s.cmds.Cancel(context.Background(), bk.ID(), nil, regularActor(s.owner))
		s.Require().NoError(err)

		s.Equal(booking.StatusCancelled, bk.Status())
		s.Equal("Standard", result.PolicyName)
		s.Equal("50", result.RefundPercentage.String())
		s.Equal(2, result.RefundCount)
		s.Equal("80.25", result.RefundTotal.StringFixed(2))

		s.Require().Len(lines, 2)
		for _, line := range lines {
			s.Equal(payment.StatusRefunded, line.Status())
			s.Equal(bk.ID(), line.BookingID())
		}
		s.Equal("50.00", lines[0].Amount().StringFixed(2))
		s.Equal("30.25", lines[1].Amount().StringFixed(2))
		s.Equal(payment.StatusPaid, deposit.Status())
	})

	s.Run("返金率0なら返金行は作らない", func() {
		s.clock.Set(time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC))
		defer s.clock.Set(testNow)

		bk := s.bookingIn(booking.StatusConfirmed)
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.bookings.EXPECT().Update(gomock.Any(), bk).Return(nil)
		s.fx.policies.EXPECT().FindDefault(gomock.Any()).Return(policy, nil)
		s.fx.payments.EXPECT().ListPaidForUpdate(gomock.Any(), bk.ID()).Return([]*payment.Payment{paidPayment(bk.ID(), "100.00")}, nil)
		s.fx.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		result, err := s.cmds.Cancel(context.Background(), bk.ID(), nil, staffActor())
		s.Require().NoError(err)
		s.Equal(0, result.RefundCount)
		s.True(result.RefundTotal.IsZero())
	})

	s.Run("他人の予約は403で何も保存しない", func() {
		bk := s.bookingIn(booking.StatusConfirmed)
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.bookings.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		s.fx.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.cmds.Cancel(context.Background(), bk.ID(), nil, regularActor(uuid.New()))
		s.ErrorIs(err, errs.ErrForbidden)
		s.Equal(booking.StatusConfirmed, bk.Status())
	})
}

func (s *BookingCommandsTestSuite) TestMarkNoShow() {
	s.Run("宿泊料金を支払済みで記録する", func() {
		bk := s.bookingIn(booking.StatusConfirmed)
		var charge *payment.Payment
		s.fx.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bk.ID()).Return(bk, nil)
		s.fx.bookings.EXPECT().Update(gomock.Any(), bk).Return(nil)
		s.fx.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) error {
				charge = p
				return nil
			})

		result, err := s.cmds.MarkNoShow(context.Background(), bk.ID(), regularActor(s.owner))
		s.Require().NoError(err)
		s.Require().NotNil(charge)
		s.Equal(charge.ID(), *result.ChargeID)
		s.Equal("300.00", result.Amount.StringFixed(2))
		s.Equal(payment.StatusPaid, charge.Status())
		s.Equal(payment.MethodNoShowCharge, charge.Method())
	})
}
