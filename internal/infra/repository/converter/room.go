package converter

import (
	"hotel-core/internal/domain/room"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
)

func RoomToDomain(row sqlc.Rooms) (*room.Room, error) {
	status, err := room.ParseMaintenanceStatus(row.MaintenanceStatus)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, err
	}
	return room.ReconstructRoom(
		row.ID,
		row.Number,
		row.RoomTypeID,
		int(row.Floor),
		price,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RoomTypeToDomain(row sqlc.RoomTypes) (*room.RoomType, error) {
	base, err := pgconv.DecimalFromNumeric(row.BasePrice)
	if err != nil {
		return nil, err
	}
	return room.ReconstructRoomType(row.ID, row.Name, base, int(row.Capacity)), nil
}
