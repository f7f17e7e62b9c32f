package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/domain/housekeeping"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/domain/refund"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/dateutil"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingInput struct {
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	NumberOfGuests  int
	SpecialRequests string
}

type CheckOutResult struct {
	FinalBill    decimal.Decimal
	TaskID       uuid.UUID
	TaskPriority housekeeping.Priority
}

type CancelResult struct {
	PolicyName       string
	RefundPercentage decimal.Decimal
	RefundCount      int
	RefundTotal      decimal.Decimal
}

type NoShowResult struct {
	ChargeID *uuid.UUID
	Amount   decimal.Decimal
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput, actor shared.Actor) (uuid.UUID, error)
	// Every command below locks the booking and checks the actor may act on it
	// before anything changes.
	Update(ctx context.Context, id uuid.UUID, u booking.Update, actor shared.Actor) error
	Confirm(ctx context.Context, id uuid.UUID, actor shared.Actor) error
	CheckIn(ctx context.Context, id uuid.UUID, actor shared.Actor) error
	CheckOut(ctx context.Context, id uuid.UUID, actor shared.Actor) (*CheckOutResult, error)
	// Cancel refunds PAID payments proportionally into new REFUNDED records.
	Cancel(ctx context.Context, id uuid.UUID, policyID *uuid.UUID, actor shared.Actor) (*CancelResult, error)
	MarkNoShow(ctx context.Context, id uuid.UUID, actor shared.Actor) (*NoShowResult, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	numbers NumberGenerator
	hotel   config.HotelConfig
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, numbers NumberGenerator, hotel config.HotelConfig) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		clock:   clk,
		numbers: numbers,
		hotel:   hotel,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput, actor shared.Actor) (uuid.UUID, error) {
	period, err := booking.NewStayPeriod(in.CheckIn, in.CheckOut)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, in.RoomID)
		if err != nil {
			return notFoundAs(err, errs.ErrRoomNotFound)
		}

		exists, err := tx.Guests().Exists(ctx, in.GuestID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !exists {
			return errs.ErrGuestNotFound
		}

		if err := ensureAvailable(ctx, tx, rm.ID(), period, nil); err != nil {
			return err
		}

		bk, err := booking.NewBooking(booking.NewBookingParams{
			BookingNumber:   uc.numbers.BookingNumber(),
			GuestID:         in.GuestID,
			RoomID:          rm.ID(),
			CreatedBy:       actor.UserID,
			Period:          period,
			NumberOfGuests:  in.NumberOfGuests,
			PricePerNight:   rm.PricePerNight(),
			SpecialRequests: in.SpecialRequests,
		})
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, bk); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		id = bk.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, u booking.Update, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// someone else's booking is invisible to a regular user, so it reads as missing
		bk, err := lockBookingFor(ctx, tx, id, actor, errs.ErrBookingNotFound)
		if err != nil {
			return err
		}
		if !actor.SeesAll() {
			u.InternalNotes = nil
		}

		moved, err := bk.ApplyUpdate(u)
		if err != nil {
			return err
		}
		if moved {
			if _, err := tx.Rooms().FindByIDForUpdate(ctx, bk.RoomID()); err != nil {
				return notFoundAs(err, errs.ErrRoomNotFound)
			}
			self := bk.ID()
			if err := ensureAvailable(ctx, tx, bk.RoomID(), bk.Period(), &self); err != nil {
				return err
			}
		}
		return saveBooking(ctx, tx, bk)
	})
}

func (uc *bookingCommandsImpl) Confirm(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	return uc.transition(ctx, id, actor, func(bk *booking.Booking) error {
		return bk.Confirm()
	})
}

func (uc *bookingCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	return uc.transition(ctx, id, actor, func(bk *booking.Booking) error {
		return bk.CheckIn(uc.clock.Now())
	})
}

func (uc *bookingCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID, actor shared.Actor) (*CheckOutResult, error) {
	var result *CheckOutResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk, err := lockBookingFor(ctx, tx, id, actor, errs.ErrForbidden)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := bk.CheckOut(now); err != nil {
			return err
		}
		if err := saveBooking(ctx, tx, bk); err != nil {
			return err
		}

		today := dateutil.DateOf(now)
		next, err := tx.Bookings().NextArrival(ctx, bk.RoomID(), today)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		createdBy := actor.UserID
		task := housekeeping.NewCheckoutCleaningTask(housekeeping.CheckoutCleaning{
			RoomID:           bk.RoomID(),
			BookingID:        bk.ID(),
			BookingNumber:    bk.BookingNumber(),
			Priority:         housekeeping.CleaningPriority(today, next),
			ScheduledDate:    today,
			EstimatedMinutes: uc.hotel.CheckoutCleaningMinutes,
			CreatedBy:        &createdBy,
		})
		if err := tx.Housekeeping().Create(ctx, task); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Rooms().UpdateMaintenanceStatus(ctx, bk.RoomID(), room.MaintenanceInProgress); err != nil {
			return notFoundAs(err, errs.ErrRoomNotFound)
		}

		result = &CheckOutResult{
			FinalBill:    *bk.FinalBill(),
			TaskID:       task.ID(),
			TaskPriority: task.Priority(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking checked out",
		"booking_id", id,
		"final_bill", result.FinalBill.String(),
		"cleaning_task_id", result.TaskID,
		"cleaning_priority", result.TaskPriority)
	return result, nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, policyID *uuid.UUID, actor shared.Actor) (*CancelResult, error) {
	var result *CancelResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk, err := lockBookingFor(ctx, tx, id, actor, errs.ErrForbidden)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := bk.Cancel(now); err != nil {
			return err
		}
		if err := saveBooking(ctx, tx, bk); err != nil {
			return err
		}

		policy, err := resolvePolicy(ctx, tx, policyID, uc.hotel)
		if err != nil {
			return err
		}

		paid, err := tx.Payments().ListPaidForUpdate(ctx, bk.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		outcome, err := refund.Plan(policy, bk.CheckInDate(), dateutil.DateOf(now), paid, now)
		if err != nil {
			return err
		}
		for _, line := range outcome.Lines {
			if err := tx.Payments().Create(ctx, line); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		result = &CancelResult{
			PolicyName:       policy.Name(),
			RefundPercentage: outcome.Percentage,
			RefundCount:      len(outcome.Lines),
			RefundTotal:      outcome.Total(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking cancelled",
		"booking_id", id,
		"policy", result.PolicyName,
		"refund_percentage", result.RefundPercentage.String(),
		"refund_lines", result.RefundCount,
		"refund_total", result.RefundTotal.String())
	return result, nil
}

func (uc *bookingCommandsImpl) MarkNoShow(ctx context.Context, id uuid.UUID, actor shared.Actor) (*NoShowResult, error) {
	var result *NoShowResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk, err := lockBookingFor(ctx, tx, id, actor, errs.ErrForbidden)
		if err != nil {
			return err
		}

		charge, err := bk.MarkNoShow()
		if err != nil {
			return err
		}
		if err := saveBooking(ctx, tx, bk); err != nil {
			return err
		}

		result = &NoShowResult{Amount: charge}
		if !charge.IsPositive() {
			return nil
		}

		p, err := payment.NewNoShowCharge(bk.ID(), bk.BookingNumber(), charge, uc.hotel.Currency, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		chargeID := p.ID()
		result.ChargeID = &chargeID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.ChargeID != nil {
		slog.InfoContext(ctx, "no-show charge recorded",
			"booking_id", id,
			"payment_id", *result.ChargeID,
			"amount", result.Amount.String())
	}
	return result, nil
}

func (uc *bookingCommandsImpl) transition(ctx context.Context, id uuid.UUID, actor shared.Actor, apply func(*booking.Booking) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk, err := lockBookingFor(ctx, tx, id, actor, errs.ErrForbidden)
		if err != nil {
			return err
		}
		if err := apply(bk); err != nil {
			return err
		}
		return saveBooking(ctx, tx, bk)
	})
}

func lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	bk, err := tx.Bookings().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrBookingNotFound)
	}
	return bk, nil
}

// lockBookingFor returns denied when a regular actor does not own the booking.
func lockBookingFor(ctx context.Context, tx shared.Tx, id uuid.UUID, actor shared.Actor, denied error) (*booking.Booking, error) {
	bk, err := lockBooking(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if !actor.SeesAll() && !bk.IsOwnedBy(actor.UserID) {
		return nil, denied
	}
	return bk, nil
}

func saveBooking(ctx context.Context, tx shared.Tx, bk *booking.Booking) error {
	if err := tx.Bookings().Update(ctx, bk); err != nil {
		return notFoundAs(err, errs.ErrBookingNotFound)
	}
	return nil
}

func ensureAvailable(ctx context.Context, tx shared.Tx, roomID uuid.UUID, period booking.StayPeriod, exclude *uuid.UUID) error {
	existing, err := tx.Bookings().FindOverlapping(ctx, roomID, period, exclude)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !booking.IsAvailable(period, existing, exclude) {
		return booking.ErrRoomUnavailable
	}
	return nil
}
