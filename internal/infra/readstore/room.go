package readstore

import (
	"context"

	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomViewRow, error)
	FindRoomTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RoomTypes, error)
}

// RoomReadStore serves both rooms and room types.
type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomView(ctx, r.db, id)
	if err != nil {
		return nil, findErr("room", err)
	}

	var d rowDecoder
	view := &queries.RoomView{
		ID:                row.ID,
		Number:            row.Number,
		Floor:             row.Floor,
		RoomTypeID:        row.RoomTypeID,
		RoomTypeName:      row.RoomTypeName,
		Capacity:          row.Capacity,
		PricePerNight:     d.decimal(row.PricePerNight),
		MaintenanceStatus: row.MaintenanceStatus,
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if err := d.wrap("failed to decode room view"); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *RoomReadStore) FindRoomType(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	row, err := r.queries.FindRoomTypeByID(ctx, r.db, id)
	if err != nil {
		return nil, findErr("room type", err)
	}

	var d rowDecoder
	view := &queries.RoomTypeView{
		ID:        row.ID,
		Name:      row.Name,
		BasePrice: d.decimal(row.BasePrice),
		Capacity:  row.Capacity,
	}
	if err := d.wrap("failed to decode room type"); err != nil {
		return nil, err
	}
	return view, nil
}
