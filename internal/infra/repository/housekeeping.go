package repository

import (
	"context"

	"hotel-core/internal/domain/housekeeping"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HousekeepingQueries interface {
	CreateHousekeepingTask(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHousekeepingTaskParams) error
	FindHousekeepingTaskByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.HousekeepingTasks, error)
	UpdateHousekeepingTask(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHousekeepingTaskParams) (int64, error)
}

type HousekeepingRepository struct {
	queries HousekeepingQueries
	db      sqlc.DBTX
}

func NewHousekeepingRepository(queries *sqlc.Queries, db sqlc.DBTX) *HousekeepingRepository {
	return &HousekeepingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HousekeepingRepository) Create(ctx context.Context, t *housekeeping.Task) error {
	if err := r.queries.CreateHousekeepingTask(ctx, r.db, converter.TaskToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create housekeeping task", err)
	}
	return nil
}

func (r *HousekeepingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*housekeeping.Task, error) {
	row, err := r.queries.FindHousekeepingTaskByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("housekeeping task not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find housekeeping task", err)
	}
	t, err := converter.TaskToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode housekeeping task row", err, infra.KindCorruptRow)
	}
	return t, nil
}

func (r *HousekeepingRepository) Update(ctx context.Context, t *housekeeping.Task) error {
	n, err := r.queries.UpdateHousekeepingTask(ctx, r.db, converter.TaskToUpdateParams(t))
	if err != nil {
		return infra.WrapRepoErr("failed to update housekeeping task", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("housekeeping task not found", nil, infra.KindNotFound)
	}
	return nil
}
