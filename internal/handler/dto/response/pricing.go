package response

import (
	"time"

	"hotel-core/internal/domain/pricing"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppliedRuleResponse struct {
	RuleID          uuid.UUID `json:"rule_id"`
	RuleName        string    `json:"rule_name"`
	RuleType        string    `json:"rule_type"`
	AdjustmentType  string    `json:"adjustment_type"`
	AdjustmentValue string    `json:"adjustment_value"`
	PriceBefore     string    `json:"price_before"`
	PriceAfter      string    `json:"price_after"`
}

type QuoteResponse struct {
	BasePrice             string                `json:"base_price"`
	TotalNights           int                   `json:"total_nights"`
	AppliedRules          []AppliedRuleResponse `json:"applied_rules"`
	AdjustedPricePerNight string                `json:"adjusted_price_per_night"`
	TotalPrice            string                `json:"total_price"`
	Savings               string                `json:"savings"`
}

func FromQuote(q *pricing.Quote) *QuoteResponse {
	var res QuoteResponse
	mustCopy(&res, q)
	if res.AppliedRules == nil {
		res.AppliedRules = []AppliedRuleResponse{}
	}
	return &res
}

type PricingRuleResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	RuleType        string     `json:"rule_type"`
	Priority        int32      `json:"priority"`
	AdjustmentType  string     `json:"adjustment_type"`
	AdjustmentValue string     `json:"adjustment_value"`
	RoomTypeID      *uuid.UUID `json:"room_type_id,omitempty"`
	StartDate       *string    `json:"start_date,omitempty"`
	EndDate         *string    `json:"end_date,omitempty"`
	ApplicableDays  []int      `json:"applicable_days"`
	MinNights       *int       `json:"min_nights,omitempty"`
	MinAdvanceDays  *int       `json:"min_advance_days,omitempty"`
	MaxAdvanceDays  *int       `json:"max_advance_days,omitempty"`
	MinLoyaltyTier  *int       `json:"min_loyalty_tier,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromPricingRuleView(v *queries.PricingRuleView) *PricingRuleResponse {
	var res PricingRuleResponse
	mustCopy(&res, v)
	if res.ApplicableDays == nil {
		res.ApplicableDays = []int{}
	}
	return &res
}

func FromPricingRuleList(items []*queries.PricingRuleView) []*PricingRuleResponse {
	res := make([]*PricingRuleResponse, len(items))
	for i, it := range items {
		res[i] = FromPricingRuleView(it)
	}
	return res
}
