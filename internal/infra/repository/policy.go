package repository

import (
	"context"

	"hotel-core/internal/domain/refund"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PolicyQueries interface {
	CreatePolicy(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePolicyParams) error
	FindPolicyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CancellationPolicies, error)
	FindDefaultPolicy(ctx context.Context, db sqlc.DBTX) (sqlc.CancellationPolicies, error)
	UpsertPolicyByName(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPolicyByNameParams) (sqlc.CancellationPolicies, error)
}

type PolicyRepository struct {
	queries PolicyQueries
	db      sqlc.DBTX
}

func NewPolicyRepository(queries *sqlc.Queries, db sqlc.DBTX) *PolicyRepository {
	return &PolicyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PolicyRepository) Create(ctx context.Context, p *refund.Policy) error {
	if err := r.queries.CreatePolicy(ctx, r.db, converter.PolicyToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create cancellation policy", err)
	}
	return nil
}

func (r *PolicyRepository) FindByID(ctx context.Context, id uuid.UUID) (*refund.Policy, error) {
	row, err := r.queries.FindPolicyByID(ctx, r.db, id)
	return toPolicy(row, err)
}

func (r *PolicyRepository) FindDefault(ctx context.Context) (*refund.Policy, error) {
	row, err := r.queries.FindDefaultPolicy(ctx, r.db)
	return toPolicy(row, err)
}

func (r *PolicyRepository) EnsureByName(ctx context.Context, p *refund.Policy) (*refund.Policy, error) {
	row, err := r.queries.UpsertPolicyByName(ctx, r.db, converter.PolicyToUpsertParams(p))
	return toPolicy(row, err)
}

func toPolicy(row sqlc.CancellationPolicies, err error) (*refund.Policy, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cancellation policy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cancellation policy", err)
	}
	p, err := converter.PolicyToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode cancellation policy row", err, infra.KindCorruptRow)
	}
	return p, nil
}
