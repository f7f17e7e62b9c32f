package queries

import (
	"context"
	"time"

	"hotel-core/internal/domain/housekeeping"
	"hotel-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type TaskFilter struct {
	Status        *housekeeping.Status
	RoomID        *uuid.UUID
	AssignedTo    *uuid.UUID
	ScheduledDate *time.Time
}

type TaskReadStore interface {
	// List orders by scheduled_date, then urgency, then created_at.
	List(ctx context.Context, filter TaskFilter, limit int32) ([]*TaskView, error)
}

type HousekeepingQueries interface {
	List(ctx context.Context, filter TaskFilter, limit int) ([]*TaskView, error)
}

type housekeepingQueriesImpl struct {
	store TaskReadStore
}

func NewHousekeepingQueries(store TaskReadStore) HousekeepingQueries {
	return &housekeepingQueriesImpl{store: store}
}

func (q *housekeepingQueriesImpl) List(ctx context.Context, filter TaskFilter, limit int) ([]*TaskView, error) {
	rows, err := q.store.List(ctx, filter, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, readErr(err, errs.ErrTaskNotFound)
	}
	return rows, nil
}
