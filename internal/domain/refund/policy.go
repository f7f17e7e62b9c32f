package refund

import (
	"errors"
	"strings"
	"time"

	"hotel-core/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPolicyName = errors.New("policy name is required")
	ErrInvalidTiers      = errors.New("full_refund_days must be >= partial_refund_days >= 0")
	ErrInvalidPercentage = errors.New("partial refund percentage must be between 0 and 100")
)

var hundred = decimal.NewFromInt(100)

// Policy grants 100% at or beyond fullRefundDays before check-in, the partial
// percentage at or beyond partialRefundDays, and nothing after that.
type Policy struct {
	id                      uuid.UUID
	name                    string
	description             string
	fullRefundDays          int
	partialRefundDays       int
	partialRefundPercentage decimal.Decimal
	isActive                bool
	createdAt               time.Time
}

type PolicyParams struct {
	Name                    string
	Description             string
	FullRefundDays          int
	PartialRefundDays       int
	PartialRefundPercentage decimal.Decimal
}

func NewPolicy(p PolicyParams) (*Policy, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrInvalidPolicyName
	}
	if p.PartialRefundDays < 0 || p.FullRefundDays < p.PartialRefundDays {
		return nil, ErrInvalidTiers
	}
	if p.PartialRefundPercentage.IsNegative() || p.PartialRefundPercentage.GreaterThan(hundred) {
		return nil, ErrInvalidPercentage
	}
	return &Policy{
		id:                      uuid.New(),
		name:                    name,
		description:             p.Description,
		fullRefundDays:          p.FullRefundDays,
		partialRefundDays:       p.PartialRefundDays,
		partialRefundPercentage: p.PartialRefundPercentage,
		isActive:                true,
	}, nil
}

func ReconstructPolicy(
	id uuid.UUID,
	name, description string,
	fullRefundDays, partialRefundDays int,
	partialRefundPercentage decimal.Decimal,
	isActive bool,
	createdAt time.Time,
) *Policy {
	return &Policy{
		id:                      id,
		name:                    name,
		description:             description,
		fullRefundDays:          fullRefundDays,
		partialRefundDays:       partialRefundDays,
		partialRefundPercentage: partialRefundPercentage,
		isActive:                isActive,
		createdAt:               createdAt,
	}
}

// Percentage returns the refund percentage for a cancellation daysBefore check-in.
func (p *Policy) Percentage(daysBefore int) decimal.Decimal {
	switch {
	case daysBefore >= p.fullRefundDays:
		return hundred
	case daysBefore >= p.partialRefundDays:
		return p.partialRefundPercentage
	default:
		return decimal.Zero
	}
}

// PercentageFor measures the calendar days between the cancellation date and check-in.
func (p *Policy) PercentageFor(checkIn, cancelledOn time.Time) decimal.Decimal {
	return p.Percentage(dateutil.DaysBetween(cancelledOn, checkIn))
}

func (p *Policy) ID() uuid.UUID                            { return p.id }
func (p *Policy) Name() string                             { return p.name }
func (p *Policy) Description() string                      { return p.description }
func (p *Policy) FullRefundDays() int                      { return p.fullRefundDays }
func (p *Policy) PartialRefundDays() int                   { return p.partialRefundDays }
func (p *Policy) PartialRefundPercentage() decimal.Decimal { return p.partialRefundPercentage }
func (p *Policy) IsActive() bool                           { return p.isActive }
func (p *Policy) CreatedAt() time.Time                     { return p.createdAt }
