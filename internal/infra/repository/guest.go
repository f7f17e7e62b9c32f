package repository

import (
	"context"

	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type GuestQueries interface {
	GuestExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

type GuestRepository struct {
	queries GuestQueries
	db      sqlc.DBTX
}

func NewGuestRepository(queries *sqlc.Queries, db sqlc.DBTX) *GuestRepository {
	return &GuestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GuestRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.GuestExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check guest", err)
	}
	return ok, nil
}
