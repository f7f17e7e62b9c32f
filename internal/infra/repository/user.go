package repository

import (
	"context"

	"hotel-core/internal/domain/user"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	CountUsersByRole(ctx context.Context, db sqlc.DBTX, role string) (int64, error)
}

// UserRepository covers the staff-account writes; reads for authentication live in readstore.
type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries *sqlc.Queries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{queries: queries, db: db}
}

// Create reports a taken email as KindDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create staff account "+u.Email().Value(), err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, r.db, userID); err != nil {
		return infra.WrapRepoErr("failed to stamp last login", err)
	}
	return nil
}

// EmailTaken lets callers inside a transaction avoid a unique violation,
// which would abort the whole transaction.
func (r *UserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := r.queries.FindUserByEmail(ctx, r.db, email)
	switch {
	case err == nil:
		return true, nil
	case pgconv.IsNoRows(err):
		return false, nil
	default:
		return false, infra.WrapRepoErr("failed to look up staff account", err)
	}
}

func (r *UserRepository) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	n, err := r.queries.CountUsersByRole(ctx, r.db, role.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count staff accounts", err)
	}
	return n, nil
}
