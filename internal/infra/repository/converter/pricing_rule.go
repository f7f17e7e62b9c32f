package converter

import (
	"hotel-core/internal/domain/pricing"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
)

func PricingRuleToCreateParams(r *pricing.Rule) sqlc.CreatePricingRuleParams {
	return sqlc.CreatePricingRuleParams(pricingRuleColumns(r))
}

func PricingRuleToUpdateParams(r *pricing.Rule) sqlc.UpdatePricingRuleParams {
	return sqlc.UpdatePricingRuleParams(pricingRuleColumns(r))
}

func pricingRuleColumns(r *pricing.Rule) sqlc.CreatePricingRuleParams {
	return sqlc.CreatePricingRuleParams{
		ID:              r.ID(),
		Name:            r.Name(),
		Description:     r.Description(),
		RuleType:        r.RuleType().String(),
		Priority:        int32(r.Priority()),
		AdjustmentType:  r.AdjustmentType().String(),
		AdjustmentValue: pgconv.NumericFromDecimal(r.AdjustmentValue()),
		RoomTypeID:      pgconv.UUIDPtrToPgtype(r.RoomTypeID()),
		StartDate:       pgconv.DatePtrToPgtype(r.StartDate()),
		EndDate:         pgconv.DatePtrToPgtype(r.EndDate()),
		ApplicableDays:  toInt32s(r.ApplicableDays()),
		MinNights:       pgconv.IntPtrToPgtype(r.MinNights()),
		MinAdvanceDays:  pgconv.IntPtrToPgtype(r.MinAdvanceDays()),
		MaxAdvanceDays:  pgconv.IntPtrToPgtype(r.MaxAdvanceDays()),
		MinLoyaltyTier:  pgconv.IntPtrToPgtype(r.MinLoyaltyTier()),
		IsActive:        r.IsActive(),
	}
}

func PricingRuleToDomain(row sqlc.PricingRules) (*pricing.Rule, error) {
	params, err := PricingRuleParams(row)
	if err != nil {
		return nil, err
	}
	return pricing.ReconstructRule(row.ID, params,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}

// PricingRuleParams decodes the rule columns, validating both enum columns.
func PricingRuleParams(row sqlc.PricingRules) (pricing.RuleParams, error) {
	ruleType, err := pricing.ParseRuleType(row.RuleType)
	if err != nil {
		return pricing.RuleParams{}, err
	}
	adjType, err := pricing.ParseAdjustmentType(row.AdjustmentType)
	if err != nil {
		return pricing.RuleParams{}, err
	}
	value, err := pgconv.DecimalFromNumeric(row.AdjustmentValue)
	if err != nil {
		return pricing.RuleParams{}, err
	}
	return pricing.RuleParams{
		Name:            row.Name,
		Description:     row.Description,
		RuleType:        ruleType,
		Priority:        int(row.Priority),
		AdjustmentType:  adjType,
		AdjustmentValue: value,
		RoomTypeID:      pgconv.UUIDPtrFromPgtype(row.RoomTypeID),
		StartDate:       pgconv.DatePtrFromPgtype(row.StartDate),
		EndDate:         pgconv.DatePtrFromPgtype(row.EndDate),
		ApplicableDays:  toInts(row.ApplicableDays),
		MinNights:       pgconv.IntPtrFromPgtype(row.MinNights),
		MinAdvanceDays:  pgconv.IntPtrFromPgtype(row.MinAdvanceDays),
		MaxAdvanceDays:  pgconv.IntPtrFromPgtype(row.MaxAdvanceDays),
		MinLoyaltyTier:  pgconv.IntPtrFromPgtype(row.MinLoyaltyTier),
		IsActive:        row.IsActive,
	}, nil
}

func toInt32s(in []int) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

func toInts(in []int32) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
