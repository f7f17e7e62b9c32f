package commands

import (
	"context"

	"hotel-core/internal/domain/room"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	SetMaintenanceStatus(ctx context.Context, roomID uuid.UUID, status room.MaintenanceStatus) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (uc *roomCommandsImpl) SetMaintenanceStatus(ctx context.Context, roomID uuid.UUID, status room.MaintenanceStatus) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, roomID)
		if err != nil {
			return notFoundAs(err, errs.ErrRoomNotFound)
		}
		if err := rm.SetMaintenanceStatus(status); err != nil {
			return err
		}
		if err := tx.Rooms().UpdateMaintenanceStatus(ctx, rm.ID(), rm.MaintenanceStatus()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
