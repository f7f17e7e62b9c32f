package repository

import (
	"context"

	"hotel-core/internal/domain/pricing"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PricingRuleQueries interface {
	CreatePricingRule(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePricingRuleParams) error
	FindPricingRuleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PricingRules, error)
	UpdatePricingRule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePricingRuleParams) (int64, error)
	DeletePricingRule(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PricingRuleRepository struct {
	queries PricingRuleQueries
	db      sqlc.DBTX
}

func NewPricingRuleRepository(queries *sqlc.Queries, db sqlc.DBTX) *PricingRuleRepository {
	return &PricingRuleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PricingRuleRepository) Create(ctx context.Context, rule *pricing.Rule) error {
	if err := r.queries.CreatePricingRule(ctx, r.db, converter.PricingRuleToCreateParams(rule)); err != nil {
		return infra.WrapRepoErr("failed to create pricing rule", err)
	}
	return nil
}

func (r *PricingRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.Rule, error) {
	row, err := r.queries.FindPricingRuleByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pricing rule", err)
	}
	rule, err := converter.PricingRuleToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode pricing rule row", err, infra.KindCorruptRow)
	}
	return rule, nil
}

func (r *PricingRuleRepository) Update(ctx context.Context, rule *pricing.Rule) error {
	n, err := r.queries.UpdatePricingRule(ctx, r.db, converter.PricingRuleToUpdateParams(rule))
	if err != nil {
		return infra.WrapRepoErr("failed to update pricing rule", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("pricing rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PricingRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeletePricingRule(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pricing rule", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("pricing rule not found", nil, infra.KindNotFound)
	}
	return nil
}
