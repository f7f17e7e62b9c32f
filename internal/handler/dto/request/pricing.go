package request

import (
	"hotel-core/internal/domain/pricing"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteRequest struct {
	RoomTypeID   *uuid.UUID       `json:"room_type_id"`
	BasePrice    *decimal.Decimal `json:"base_price"`
	CheckInDate  string           `json:"check_in_date" binding:"required"`
	CheckOutDate string           `json:"check_out_date" binding:"required"`
	LoyaltyTier  int              `json:"loyalty_tier" binding:"min=0"`
}

func (r *QuoteRequest) ToInput() (queries.QuoteInput, error) {
	checkIn, err := parseDate("check_in_date", r.CheckInDate)
	if err != nil {
		return queries.QuoteInput{}, err
	}
	checkOut, err := parseDate("check_out_date", r.CheckOutDate)
	if err != nil {
		return queries.QuoteInput{}, err
	}
	return queries.QuoteInput{
		RoomTypeID:  r.RoomTypeID,
		BasePrice:   r.BasePrice,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		LoyaltyTier: r.LoyaltyTier,
	}, nil
}

type CreatePricingRuleRequest struct {
	Name            string          `json:"name" binding:"required,max=255"`
	Description     string          `json:"description"`
	RuleType        string          `json:"rule_type" binding:"required"`
	Priority        int             `json:"priority"`
	AdjustmentType  string          `json:"adjustment_type" binding:"required"`
	AdjustmentValue decimal.Decimal `json:"adjustment_value"`
	RoomTypeID      *uuid.UUID      `json:"room_type_id"`
	StartDate       *string         `json:"start_date"`
	EndDate         *string         `json:"end_date"`
	ApplicableDays  []int           `json:"applicable_days"`
	MinNights       *int            `json:"min_nights"`
	MinAdvanceDays  *int            `json:"min_advance_days"`
	MaxAdvanceDays  *int            `json:"max_advance_days"`
	MinLoyaltyTier  *int            `json:"min_loyalty_tier"`
	IsActive        *bool           `json:"is_active"`
}

func (r *CreatePricingRuleRequest) ToParams() (pricing.RuleParams, error) {
	ruleType, err := pricing.ParseRuleType(r.RuleType)
	if err != nil {
		return pricing.RuleParams{}, err
	}
	adjType, err := pricing.ParseAdjustmentType(r.AdjustmentType)
	if err != nil {
		return pricing.RuleParams{}, err
	}
	start, err := parseOptionalDate("start_date", r.StartDate)
	if err != nil {
		return pricing.RuleParams{}, err
	}
	end, err := parseOptionalDate("end_date", r.EndDate)
	if err != nil {
		return pricing.RuleParams{}, err
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return pricing.RuleParams{
		Name:            r.Name,
		Description:     r.Description,
		RuleType:        ruleType,
		Priority:        r.Priority,
		AdjustmentType:  adjType,
		AdjustmentValue: r.AdjustmentValue,
		RoomTypeID:      r.RoomTypeID,
		StartDate:       start,
		EndDate:         end,
		ApplicableDays:  r.ApplicableDays,
		MinNights:       r.MinNights,
		MinAdvanceDays:  r.MinAdvanceDays,
		MaxAdvanceDays:  r.MaxAdvanceDays,
		MinLoyaltyTier:  r.MinLoyaltyTier,
		IsActive:        active,
	}, nil
}

// UpdatePricingRuleRequest is a partial update; absent fields stay unchanged.
type UpdatePricingRuleRequest struct {
	Name            *string          `json:"name" binding:"omitempty,max=255"`
	Description     *string          `json:"description"`
	RuleType        *string          `json:"rule_type"`
	Priority        *int             `json:"priority"`
	AdjustmentType  *string          `json:"adjustment_type"`
	AdjustmentValue *decimal.Decimal `json:"adjustment_value"`
	RoomTypeID      *uuid.UUID       `json:"room_type_id"`
	StartDate       *string          `json:"start_date"`
	EndDate         *string          `json:"end_date"`
	ApplicableDays  []int            `json:"applicable_days"`
	MinNights       *int             `json:"min_nights"`
	MinAdvanceDays  *int             `json:"min_advance_days"`
	MaxAdvanceDays  *int             `json:"max_advance_days"`
	MinLoyaltyTier  *int             `json:"min_loyalty_tier"`
	IsActive        *bool            `json:"is_active"`
}

func (r *UpdatePricingRuleRequest) ToDomain() (pricing.RuleUpdate, error) {
	u := pricing.RuleUpdate{
		Name:            r.Name,
		Description:     r.Description,
		Priority:        r.Priority,
		AdjustmentValue: r.AdjustmentValue,
		RoomTypeID:      r.RoomTypeID,
		ApplicableDays:  r.ApplicableDays,
		MinNights:       r.MinNights,
		MinAdvanceDays:  r.MinAdvanceDays,
		MaxAdvanceDays:  r.MaxAdvanceDays,
		MinLoyaltyTier:  r.MinLoyaltyTier,
		IsActive:        r.IsActive,
	}
	if r.RuleType != nil {
		rt, err := pricing.ParseRuleType(*r.RuleType)
		if err != nil {
			return u, err
		}
		u.RuleType = &rt
	}
	if r.AdjustmentType != nil {
		at, err := pricing.ParseAdjustmentType(*r.AdjustmentType)
		if err != nil {
			return u, err
		}
		u.AdjustmentType = &at
	}
	var err error
	if u.StartDate, err = parseOptionalDate("start_date", r.StartDate); err != nil {
		return u, err
	}
	if u.EndDate, err = parseOptionalDate("end_date", r.EndDate); err != nil {
		return u, err
	}
	return u, nil
}

type ListPricingRulesQuery struct {
	IsActive *bool  `form:"is_active"`
	RuleType string `form:"rule_type"`
}

func (q *ListPricingRulesQuery) ToFilter() (queries.RuleFilter, error) {
	f := queries.RuleFilter{IsActive: q.IsActive}
	if q.RuleType != "" {
		rt, err := pricing.ParseRuleType(q.RuleType)
		if err != nil {
			return f, err
		}
		f.RuleType = &rt
	}
	return f, nil
}
