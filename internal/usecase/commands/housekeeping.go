package commands

import (
	"context"
	"log/slog"

	"hotel-core/internal/domain/housekeeping"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type HousekeepingCommands interface {
	Assign(ctx context.Context, taskID, assigneeID uuid.UUID) error
	Start(ctx context.Context, taskID uuid.UUID, actor shared.Actor) error
	Complete(ctx context.Context, taskID uuid.UUID, notes string, actor shared.Actor) error
	// Verify releases a room held in maintenance back to AVAILABLE.
	Verify(ctx context.Context, taskID uuid.UUID, notes string, actor shared.Actor) error
	Fail(ctx context.Context, taskID uuid.UUID, notes string) error
}

type housekeepingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHousekeepingCommands(uow shared.UnitOfWork, clk clock.Clock) HousekeepingCommands {
	return &housekeepingCommandsImpl{uow: uow, clock: clk}
}

func (uc *housekeepingCommandsImpl) Assign(ctx context.Context, taskID, assigneeID uuid.UUID) error {
	return uc.withTask(ctx, taskID, func(_ context.Context, _ shared.Tx, t *housekeeping.Task) error {
		return t.Assign(assigneeID)
	})
}

func (uc *housekeepingCommandsImpl) Start(ctx context.Context, taskID uuid.UUID, actor shared.Actor) error {
	return uc.withTask(ctx, taskID, func(_ context.Context, _ shared.Tx, t *housekeeping.Task) error {
		return t.Start(actor.UserID, uc.clock.Now())
	})
}

func (uc *housekeepingCommandsImpl) Complete(ctx context.Context, taskID uuid.UUID, notes string, actor shared.Actor) error {
	return uc.withTask(ctx, taskID, func(_ context.Context, _ shared.Tx, t *housekeeping.Task) error {
		return t.Complete(actor.UserID, notes, uc.clock.Now())
	})
}

func (uc *housekeepingCommandsImpl) Verify(ctx context.Context, taskID uuid.UUID, notes string, actor shared.Actor) error {
	return uc.withTask(ctx, taskID, func(ctx context.Context, tx shared.Tx, t *housekeeping.Task) error {
		if err := t.Verify(actor.UserID, notes, uc.clock.Now()); err != nil {
			return err
		}

		rm, err := tx.Rooms().FindByIDForUpdate(ctx, t.RoomID())
		if err != nil {
			return notFoundAs(err, errs.ErrRoomNotFound)
		}
		if rm.MaintenanceStatus() != room.MaintenanceInProgress {
			return nil
		}
		if err := tx.Rooms().UpdateMaintenanceStatus(ctx, rm.ID(), room.MaintenanceAvailable); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		slog.InfoContext(ctx, "room released after cleaning", "room_id", rm.ID(), "task_id", t.ID())
		return nil
	})
}

func (uc *housekeepingCommandsImpl) Fail(ctx context.Context, taskID uuid.UUID, notes string) error {
	return uc.withTask(ctx, taskID, func(_ context.Context, _ shared.Tx, t *housekeeping.Task) error {
		return t.Fail(notes)
	})
}

func (uc *housekeepingCommandsImpl) withTask(ctx context.Context, taskID uuid.UUID, apply func(context.Context, shared.Tx, *housekeeping.Task) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Housekeeping().FindByIDForUpdate(ctx, taskID)
		if err != nil {
			return notFoundAs(err, errs.ErrTaskNotFound)
		}
		if err := apply(ctx, tx, t); err != nil {
			return err
		}
		if err := tx.Housekeeping().Update(ctx, t); err != nil {
			return notFoundAs(err, errs.ErrTaskNotFound)
		}
		return nil
	})
}
