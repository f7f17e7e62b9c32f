//go:build unit

package commands_test

import (
	"context"
	"time"

	"hotel-core/internal/domain/user"
	"hotel-core/internal/infra"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/usecase/shared"
	sharedmock "hotel-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 13, 11, 0, 0, 0, time.UTC)

// txFixture runs every Within callback against one mocked transaction.
type txFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	bookings     *sharedmock.MockBookingRepository
	payments     *sharedmock.MockPaymentRepository
	invoices     *sharedmock.MockInvoiceRepository
	policies     *sharedmock.MockPolicyRepository
	rooms        *sharedmock.MockRoomRepository
	housekeeping *sharedmock.MockHousekeepingRepository
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		bookings:     sharedmock.NewMockBookingRepository(ctrl),
		payments:     sharedmock.NewMockPaymentRepository(ctrl),
		invoices:     sharedmock.NewMockInvoiceRepository(ctrl),
		policies:     sharedmock.NewMockPolicyRepository(ctrl),
		rooms:        sharedmock.NewMockRoomRepository(ctrl),
		housekeeping: sharedmock.NewMockHousekeepingRepository(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().Invoices().Return(f.invoices).AnyTimes()
	f.tx.EXPECT().Policies().Return(f.policies).AnyTimes()
	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Housekeeping().Return(f.housekeeping).AnyTimes()
	return f
}

func notFound() error {
	return infra.WrapRepoErr("row missing", nil, infra.KindNotFound)
}

type fixedNumbers struct{}

func (fixedNumbers) BookingNumber() string          { return "BK-TEST0001" }
func (fixedNumbers) InvoiceNumber(time.Time) string { return "INV-TEST0001" }

func testHotel() config.HotelConfig {
	return config.HotelConfig{
		TimeZone:                 "UTC",
		Currency:                 "USD",
		TaxRate:                  decimal.RequireFromString("0.10"),
		DefaultPolicyName:        "Standard",
		DefaultFullRefundDays:    7,
		DefaultPartialRefundDays: 2,
		DefaultPartialRefundPct:  decimal.NewFromInt(50),
		CheckoutCleaningMinutes:  30,
	}
}

func staffActor() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleManager}
}

func regularActor(id uuid.UUID) shared.Actor {
	return shared.Actor{UserID: id, Role: user.RoleRegular}
}
