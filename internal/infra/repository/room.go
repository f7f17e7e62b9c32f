package repository

import (
	"context"

	"hotel-core/internal/domain/room"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomQueries interface {
	FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	FindRoomByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	FindRoomTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RoomTypes, error)
	UpdateRoomMaintenanceStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomMaintenanceStatusParams) (int64, error)
}

type RoomRepository struct {
	queries RoomQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries *sqlc.Queries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.FindRoomByID(ctx, r.db, id)
	return r.toRoom(row, err)
}

func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.FindRoomByIDForUpdate(ctx, r.db, id)
	return r.toRoom(row, err)
}

func (r *RoomRepository) toRoom(row sqlc.Rooms, err error) (*room.Room, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	rm, err := converter.RoomToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode room row", err, infra.KindCorruptRow)
	}
	return rm, nil
}

func (r *RoomRepository) UpdateMaintenanceStatus(ctx context.Context, id uuid.UUID, status room.MaintenanceStatus) error {
	n, err := r.queries.UpdateRoomMaintenanceStatus(ctx, r.db, sqlc.UpdateRoomMaintenanceStatusParams{
		ID:                id,
		MaintenanceStatus: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update room maintenance status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindRoomType(ctx context.Context, id uuid.UUID) (*room.RoomType, error) {
	row, err := r.queries.FindRoomTypeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	rt, err := converter.RoomTypeToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode room type row", err, infra.KindCorruptRow)
	}
	return rt, nil
}
