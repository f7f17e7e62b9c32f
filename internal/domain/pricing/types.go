package pricing

import "errors"

var (
	ErrInvalidRuleType        = errors.New("invalid pricing rule type")
	ErrInvalidAdjustmentType  = errors.New("adjustment type must be percentage or fixed_amount")
	ErrPercentageOutOfRange   = errors.New("percentage adjustment must be between -100 and 100")
	ErrInvalidRuleName        = errors.New("pricing rule name is required")
	ErrInvalidApplicableDay   = errors.New("applicable days must be weekday indices 0 (Mon) to 6 (Sun)")
	ErrInvalidRuleDateRange   = errors.New("rule start date must not be after end date")
	ErrInvalidAdvanceWindow   = errors.New("min advance days must not exceed max advance days")
	ErrNegativeRuleConstraint = errors.New("rule constraints must not be negative")
	ErrInvalidBasePrice       = errors.New("base price must not be negative")
)

// RuleType is informational; it never changes how a rule is applied.
type RuleType string

const (
	RuleTypeSeasonal   RuleType = "seasonal"
	RuleTypeWeekend    RuleType = "weekend"
	RuleTypeEarlyBird  RuleType = "early_bird"
	RuleTypeLastMinute RuleType = "last_minute"
	RuleTypeLoyalty    RuleType = "loyalty"
	RuleTypeLongStay   RuleType = "long_stay"
	RuleTypeCustom     RuleType = "custom"
)

func (t RuleType) String() string { return string(t) }

func (t RuleType) IsValid() bool {
	switch t {
	case RuleTypeSeasonal, RuleTypeWeekend, RuleTypeEarlyBird, RuleTypeLastMinute,
		RuleTypeLoyalty, RuleTypeLongStay, RuleTypeCustom:
		return true
	default:
		return false
	}
}

func ParseRuleType(s string) (RuleType, error) {
	t := RuleType(s)
	if !t.IsValid() {
		return "", ErrInvalidRuleType
	}
	return t, nil
}

type AdjustmentType string

const (
	AdjustmentPercentage  AdjustmentType = "percentage"
	AdjustmentFixedAmount AdjustmentType = "fixed_amount"
)

func (t AdjustmentType) String() string { return string(t) }

func (t AdjustmentType) IsValid() bool {
	return t == AdjustmentPercentage || t == AdjustmentFixedAmount
}

func ParseAdjustmentType(s string) (AdjustmentType, error) {
	t := AdjustmentType(s)
	if !t.IsValid() {
		return "", ErrInvalidAdjustmentType
	}
	return t, nil
}
