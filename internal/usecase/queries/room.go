package queries

import (
	"context"

	"hotel-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, readErr(err, errs.ErrRoomNotFound)
	}
	return view, nil
}
