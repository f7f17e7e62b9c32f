package readstore

import (
	"context"
	"log/slog"
	"time"

	"hotel-core/internal/domain/pricing"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/patrickmn/go-cache"
)

const activeRulesKey = "pricing_rules:active"

type PricingRuleReadQueries interface {
	ListActivePricingRules(ctx context.Context, db sqlc.DBTX) ([]sqlc.PricingRules, error)
	FindPricingRuleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PricingRules, error)
	ListPricingRules(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPricingRulesParams) ([]sqlc.PricingRules, error)
}

// PricingRuleReadStore caches the active rule set; writers call Invalidate after commit.
type PricingRuleReadStore struct {
	queries PricingRuleReadQueries
	db      sqlc.DBTX
	cache   *cache.Cache
}

func NewPricingRuleReadStore(queries PricingRuleReadQueries, db sqlc.DBTX, ttl, cleanup time.Duration) *PricingRuleReadStore {
	return &PricingRuleReadStore{
		queries: queries,
		db:      db,
		cache:   cache.New(ttl, cleanup),
	}
}

func (r *PricingRuleReadStore) ActiveRules(ctx context.Context) ([]*pricing.Rule, error) {
	if cached, ok := r.cache.Get(activeRulesKey); ok {
		return cached.([]*pricing.Rule), nil
	}

	rows, err := r.queries.ListActivePricingRules(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active pricing rules", err)
	}
	rules := make([]*pricing.Rule, 0, len(rows))
	for _, row := range rows {
		rule, err := converter.PricingRuleToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode pricing rule row", err, infra.KindCorruptRow)
		}
		rules = append(rules, rule)
	}

	r.cache.SetDefault(activeRulesKey, rules)
	return rules, nil
}

func (r *PricingRuleReadStore) Invalidate() {
	r.cache.Delete(activeRulesKey)
	slog.Debug("pricing rule cache invalidated")
}

func (r *PricingRuleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PricingRuleView, error) {
	row, err := r.queries.FindPricingRuleByID(ctx, r.db, id)
	if err != nil {
		return nil, findErr("pricing rule", err)
	}
	return toPricingRuleView(row)
}

func (r *PricingRuleReadStore) List(ctx context.Context, filter queries.RuleFilter) ([]*queries.PricingRuleView, error) {
	params := sqlc.ListPricingRulesParams{
		IsActive: pgconv.BoolPtrToPgtype(filter.IsActive),
	}
	if filter.RuleType != nil {
		params.RuleType = pgtype.Text{String: filter.RuleType.String(), Valid: true}
	}

	rows, err := r.queries.ListPricingRules(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	views := make([]*queries.PricingRuleView, 0, len(rows))
	for _, row := range rows {
		v, err := toPricingRuleView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toPricingRuleView(row sqlc.PricingRules) (*queries.PricingRuleView, error) {
	p, err := converter.PricingRuleParams(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode pricing rule row", err, infra.KindCorruptRow)
	}
	return &queries.PricingRuleView{
		ID:              row.ID,
		Name:            p.Name,
		Description:     p.Description,
		RuleType:        row.RuleType,
		Priority:        row.Priority,
		AdjustmentType:  row.AdjustmentType,
		AdjustmentValue: p.AdjustmentValue,
		RoomTypeID:      p.RoomTypeID,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		ApplicableDays:  p.ApplicableDays,
		MinNights:       p.MinNights,
		MinAdvanceDays:  p.MinAdvanceDays,
		MaxAdvanceDays:  p.MaxAdvanceDays,
		MinLoyaltyTier:  p.MinLoyaltyTier,
		IsActive:        row.IsActive,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
