package room

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Room struct {
	id                uuid.UUID
	number            string
	roomTypeID        uuid.UUID
	floor             int
	pricePerNight     decimal.Decimal
	maintenanceStatus MaintenanceStatus
	createdAt         time.Time
	updatedAt         time.Time
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	roomTypeID uuid.UUID,
	floor int,
	pricePerNight decimal.Decimal,
	status MaintenanceStatus,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:                id,
		number:            number,
		roomTypeID:        roomTypeID,
		floor:             floor,
		pricePerNight:     pricePerNight,
		maintenanceStatus: status,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (r *Room) SetMaintenanceStatus(status MaintenanceStatus) error {
	if !status.IsValid() {
		return ErrInvalidMaintenanceStatus
	}
	r.maintenanceStatus = status
	return nil
}

func (r *Room) ID() uuid.UUID                        { return r.id }
func (r *Room) Number() string                       { return r.number }
func (r *Room) RoomTypeID() uuid.UUID                { return r.roomTypeID }
func (r *Room) Floor() int                           { return r.floor }
func (r *Room) PricePerNight() decimal.Decimal       { return r.pricePerNight }
func (r *Room) MaintenanceStatus() MaintenanceStatus { return r.maintenanceStatus }
func (r *Room) CreatedAt() time.Time                 { return r.createdAt }
func (r *Room) UpdatedAt() time.Time                 { return r.updatedAt }

type RoomType struct {
	id        uuid.UUID
	name      string
	basePrice decimal.Decimal
	capacity  int
}

func ReconstructRoomType(id uuid.UUID, name string, basePrice decimal.Decimal, capacity int) *RoomType {
	return &RoomType{id: id, name: name, basePrice: basePrice, capacity: capacity}
}

func (t *RoomType) ID() uuid.UUID              { return t.id }
func (t *RoomType) Name() string               { return t.name }
func (t *RoomType) BasePrice() decimal.Decimal { return t.basePrice }
func (t *RoomType) Capacity() int              { return t.capacity }
