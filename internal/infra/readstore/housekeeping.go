package readstore

import (
	"context"

	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type TaskReadQueries interface {
	ListHousekeepingTasks(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHousekeepingTasksParams) ([]sqlc.ListHousekeepingTasksRow, error)
}

type TaskReadStore struct {
	queries TaskReadQueries
	db      sqlc.DBTX
}

func NewTaskReadStore(queries TaskReadQueries, db sqlc.DBTX) *TaskReadStore {
	return &TaskReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TaskReadStore) List(ctx context.Context, filter queries.TaskFilter, limit int32) ([]*queries.TaskView, error) {
	params := sqlc.ListHousekeepingTasksParams{
		RoomID:        pgconv.UUIDPtrToPgtype(filter.RoomID),
		AssignedTo:    pgconv.UUIDPtrToPgtype(filter.AssignedTo),
		ScheduledDate: pgconv.DatePtrToPgtype(filter.ScheduledDate),
		Limit:         limit,
	}
	if filter.Status != nil {
		params.Status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}

	rows, err := r.queries.ListHousekeepingTasks(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list housekeeping tasks", err)
	}

	views := make([]*queries.TaskView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.TaskView{
			ID:                 row.ID,
			RoomID:             row.RoomID,
			RoomNumber:         row.RoomNumber,
			BookingID:          pgconv.UUIDPtrFromPgtype(row.BookingID),
			TaskType:           row.TaskType,
			Priority:           row.Priority,
			Status:             row.Status,
			ScheduledDate:      pgconv.DateFromPgtype(row.ScheduledDate),
			AssignedTo:         pgconv.UUIDPtrFromPgtype(row.AssignedTo),
			EstimatedMinutes:   row.EstimatedMinutes,
			IsCheckoutCleaning: row.IsCheckoutCleaning,
			Notes:              row.Notes,
			StartedAt:          pgconv.TimePtrFromPgtype(row.StartedAt),
			CompletedAt:        pgconv.TimePtrFromPgtype(row.CompletedAt),
			VerifiedAt:         pgconv.TimePtrFromPgtype(row.VerifiedAt),
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
