package converter

import (
	"hotel-core/internal/domain/refund"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
)

func PolicyToCreateParams(p *refund.Policy) sqlc.CreatePolicyParams {
	return sqlc.CreatePolicyParams{
		ID:                      p.ID(),
		Name:                    p.Name(),
		Description:             p.Description(),
		FullRefundDays:          int32(p.FullRefundDays()),
		PartialRefundDays:       int32(p.PartialRefundDays()),
		PartialRefundPercentage: pgconv.NumericFromDecimal(p.PartialRefundPercentage()),
		IsActive:                p.IsActive(),
	}
}

func PolicyToUpsertParams(p *refund.Policy) sqlc.UpsertPolicyByNameParams {
	return sqlc.UpsertPolicyByNameParams{
		ID:                      p.ID(),
		Name:                    p.Name(),
		Description:             p.Description(),
		FullRefundDays:          int32(p.FullRefundDays()),
		PartialRefundDays:       int32(p.PartialRefundDays()),
		PartialRefundPercentage: pgconv.NumericFromDecimal(p.PartialRefundPercentage()),
	}
}

func PolicyToDomain(row sqlc.CancellationPolicies) (*refund.Policy, error) {
	pct, err := pgconv.DecimalFromNumeric(row.PartialRefundPercentage)
	if err != nil {
		return nil, err
	}
	return refund.ReconstructPolicy(
		row.ID,
		row.Name, row.Description,
		int(row.FullRefundDays), int(row.PartialRefundDays),
		pct,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
