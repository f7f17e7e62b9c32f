package pricing

import (
	"slices"
	"strings"
	"time"

	"hotel-core/internal/pkg/dateutil"
	"hotel-core/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	minPercentage = decimal.NewFromInt(-100)
	maxPercentage = decimal.NewFromInt(100)
)

type Rule struct {
	id              uuid.UUID
	name            string
	description     string
	ruleType        RuleType
	priority        int
	adjustmentType  AdjustmentType
	adjustmentValue decimal.Decimal
	roomTypeID      *uuid.UUID
	startDate       *time.Time
	endDate         *time.Time
	applicableDays  []int
	minNights       *int
	minAdvanceDays  *int
	maxAdvanceDays  *int
	minLoyaltyTier  *int
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

type RuleParams struct {
	Name            string
	Description     string
	RuleType        RuleType
	Priority        int
	AdjustmentType  AdjustmentType
	AdjustmentValue decimal.Decimal
	RoomTypeID      *uuid.UUID
	StartDate       *time.Time
	EndDate         *time.Time
	ApplicableDays  []int
	MinNights       *int
	MinAdvanceDays  *int
	MaxAdvanceDays  *int
	MinLoyaltyTier  *int
	IsActive        bool
}

func NewRule(p RuleParams) (*Rule, error) {
	r := &Rule{
		id:              uuid.New(),
		name:            strings.TrimSpace(p.Name),
		description:     p.Description,
		ruleType:        p.RuleType,
		priority:        p.Priority,
		adjustmentType:  p.AdjustmentType,
		adjustmentValue: p.AdjustmentValue,
		roomTypeID:      p.RoomTypeID,
		startDate:       datePtr(p.StartDate),
		endDate:         datePtr(p.EndDate),
		applicableDays:  normalizeDays(p.ApplicableDays),
		minNights:       p.MinNights,
		minAdvanceDays:  p.MinAdvanceDays,
		maxAdvanceDays:  p.MaxAdvanceDays,
		minLoyaltyTier:  p.MinLoyaltyTier,
		isActive:        p.IsActive,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRule(
	id uuid.UUID,
	p RuleParams,
	createdAt, updatedAt time.Time,
) *Rule {
	return &Rule{
		id:              id,
		name:            p.Name,
		description:     p.Description,
		ruleType:        p.RuleType,
		priority:        p.Priority,
		adjustmentType:  p.AdjustmentType,
		adjustmentValue: p.AdjustmentValue,
		roomTypeID:      p.RoomTypeID,
		startDate:       p.StartDate,
		endDate:         p.EndDate,
		applicableDays:  p.ApplicableDays,
		minNights:       p.MinNights,
		minAdvanceDays:  p.MinAdvanceDays,
		maxAdvanceDays:  p.MaxAdvanceDays,
		minLoyaltyTier:  p.MinLoyaltyTier,
		isActive:        p.IsActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// RuleUpdate patches a rule. Nil fields are left as they are.
type RuleUpdate struct {
	Name            *string
	Description     *string
	RuleType        *RuleType
	Priority        *int
	AdjustmentType  *AdjustmentType
	AdjustmentValue *decimal.Decimal
	RoomTypeID      *uuid.UUID
	StartDate       *time.Time
	EndDate         *time.Time
	ApplicableDays  []int
	MinNights       *int
	MinAdvanceDays  *int
	MaxAdvanceDays  *int
	MinLoyaltyTier  *int
	IsActive        *bool
}

// ApplyUpdate validates the patched rule as a whole and leaves r unchanged on error.
func (r *Rule) ApplyUpdate(u RuleUpdate) error {
	next := *r
	next.name = strings.TrimSpace(patch.Coalesce(u.Name, r.name))
	next.description = patch.Coalesce(u.Description, r.description)
	next.ruleType = patch.Coalesce(u.RuleType, r.ruleType)
	next.priority = patch.Coalesce(u.Priority, r.priority)
	next.adjustmentType = patch.Coalesce(u.AdjustmentType, r.adjustmentType)
	next.adjustmentValue = patch.Coalesce(u.AdjustmentValue, r.adjustmentValue)
	next.isActive = patch.Coalesce(u.IsActive, r.isActive)
	if u.RoomTypeID != nil {
		next.roomTypeID = u.RoomTypeID
	}
	if u.StartDate != nil {
		next.startDate = datePtr(u.StartDate)
	}
	if u.EndDate != nil {
		next.endDate = datePtr(u.EndDate)
	}
	if u.ApplicableDays != nil {
		next.applicableDays = normalizeDays(u.ApplicableDays)
	}
	if u.MinNights != nil {
		next.minNights = u.MinNights
	}
	if u.MinAdvanceDays != nil {
		next.minAdvanceDays = u.MinAdvanceDays
	}
	if u.MaxAdvanceDays != nil {
		next.maxAdvanceDays = u.MaxAdvanceDays
	}
	if u.MinLoyaltyTier != nil {
		next.minLoyaltyTier = u.MinLoyaltyTier
	}
	if err := next.validate(); err != nil {
		return err
	}
	*r = next
	return nil
}

func (r *Rule) validate() error {
	if r.name == "" {
		return ErrInvalidRuleName
	}
	if !r.ruleType.IsValid() {
		return ErrInvalidRuleType
	}
	if !r.adjustmentType.IsValid() {
		return ErrInvalidAdjustmentType
	}
	if r.adjustmentType == AdjustmentPercentage &&
		(r.adjustmentValue.LessThan(minPercentage) || r.adjustmentValue.GreaterThan(maxPercentage)) {
		return ErrPercentageOutOfRange
	}
	for _, d := range r.applicableDays {
		if d < 0 || d > 6 {
			return ErrInvalidApplicableDay
		}
	}
	if r.startDate != nil && r.endDate != nil && r.startDate.After(*r.endDate) {
		return ErrInvalidRuleDateRange
	}
	for _, v := range []*int{r.minNights, r.minAdvanceDays, r.maxAdvanceDays, r.minLoyaltyTier} {
		if v != nil && *v < 0 {
			return ErrNegativeRuleConstraint
		}
	}
	if isSet(r.minAdvanceDays) && isSet(r.maxAdvanceDays) && *r.minAdvanceDays > *r.maxAdvanceDays {
		return ErrInvalidAdvanceWindow
	}
	return nil
}

func (r *Rule) Deactivate() { r.isActive = false }

func (r *Rule) ID() uuid.UUID                    { return r.id }
func (r *Rule) Name() string                     { return r.name }
func (r *Rule) Description() string              { return r.description }
func (r *Rule) RuleType() RuleType               { return r.ruleType }
func (r *Rule) Priority() int                    { return r.priority }
func (r *Rule) AdjustmentType() AdjustmentType   { return r.adjustmentType }
func (r *Rule) AdjustmentValue() decimal.Decimal { return r.adjustmentValue }
func (r *Rule) RoomTypeID() *uuid.UUID           { return r.roomTypeID }
func (r *Rule) StartDate() *time.Time            { return r.startDate }
func (r *Rule) EndDate() *time.Time              { return r.endDate }
func (r *Rule) ApplicableDays() []int            { return slices.Clone(r.applicableDays) }
func (r *Rule) MinNights() *int                  { return r.minNights }
func (r *Rule) MinAdvanceDays() *int             { return r.minAdvanceDays }
func (r *Rule) MaxAdvanceDays() *int             { return r.maxAdvanceDays }
func (r *Rule) MinLoyaltyTier() *int             { return r.minLoyaltyTier }
func (r *Rule) IsActive() bool                   { return r.isActive }
func (r *Rule) CreatedAt() time.Time             { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time             { return r.updatedAt }

// isSet treats zero like NULL: a zero threshold never filters anything.
func isSet(v *int) bool {
	return v != nil && *v > 0
}

func datePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dateutil.DateOf(*t)
	return &d
}

func normalizeDays(days []int) []int {
	if len(days) == 0 {
		return nil
	}
	out := slices.Clone(days)
	slices.Sort(out)
	return slices.Compact(out)
}
