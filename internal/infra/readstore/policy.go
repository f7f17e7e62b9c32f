package readstore

import (
	"context"

	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/queries"
)

type PolicyReadQueries interface {
	ListPolicies(ctx context.Context, db sqlc.DBTX, activeOnly bool) ([]sqlc.CancellationPolicies, error)
}

type PolicyReadStore struct {
	queries PolicyReadQueries
	db      sqlc.DBTX
}

func NewPolicyReadStore(queries PolicyReadQueries, db sqlc.DBTX) *PolicyReadStore {
	return &PolicyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PolicyReadStore) List(ctx context.Context, activeOnly bool) ([]*queries.PolicyView, error) {
	rows, err := r.queries.ListPolicies(ctx, r.db, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cancellation policies", err)
	}

	var d rowDecoder
	views := make([]*queries.PolicyView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.PolicyView{
			ID:                      row.ID,
			Name:                    row.Name,
			Description:             row.Description,
			FullRefundDays:          row.FullRefundDays,
			PartialRefundDays:       row.PartialRefundDays,
			PartialRefundPercentage: d.decimal(row.PartialRefundPercentage),
			IsActive:                row.IsActive,
			CreatedAt:               pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	if err := d.wrap("failed to decode cancellation policies"); err != nil {
		return nil, err
	}
	return views, nil
}
