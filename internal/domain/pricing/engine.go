package pricing

import (
	"cmp"
	"slices"
	"time"

	"hotel-core/internal/pkg/dateutil"
	"hotel-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// QuoteRequest describes a prospective stay. Today is the hotel's current date.
type QuoteRequest struct {
	RoomTypeID  *uuid.UUID
	BasePrice   decimal.Decimal
	CheckIn     time.Time
	CheckOut    time.Time
	LoyaltyTier int
	Today       time.Time
}

type AppliedRule struct {
	RuleID          uuid.UUID
	RuleName        string
	RuleType        RuleType
	AdjustmentType  AdjustmentType
	AdjustmentValue decimal.Decimal
	PriceBefore     decimal.Decimal
	PriceAfter      decimal.Decimal
}

type Quote struct {
	BasePrice             decimal.Decimal
	TotalNights           int
	AppliedRules          []AppliedRule
	AdjustedPricePerNight decimal.Decimal
	TotalPrice            decimal.Decimal
	Savings               decimal.Decimal
}

// Calculate stacks every applicable rule onto the base price, highest priority first.
// Ties fall back to creation time, then id, so the order never depends on storage.
func Calculate(rules []*Rule, req QuoteRequest) (Quote, error) {
	checkIn := dateutil.DateOf(req.CheckIn)
	checkOut := dateutil.DateOf(req.CheckOut)
	nights := dateutil.DaysBetween(checkIn, checkOut)
	if nights <= 0 {
		return Quote{}, errs.ErrInvalidDateRange
	}
	if req.BasePrice.IsNegative() {
		return Quote{}, ErrInvalidBasePrice
	}

	stay := stayFacts{
		roomTypeID:  req.RoomTypeID,
		checkIn:     checkIn,
		nights:      nights,
		daysAhead:   dateutil.DaysBetween(req.Today, checkIn),
		loyaltyTier: req.LoyaltyTier,
	}
	applicable := make([]*Rule, 0, len(rules))
	for _, r := range rules {
		if r.appliesTo(stay) {
			applicable = append(applicable, r)
		}
	}
	slices.SortStableFunc(applicable, compareRules)

	price := req.BasePrice
	applied := make([]AppliedRule, 0, len(applicable))
	for _, r := range applicable {
		before := price
		price = r.adjust(price)
		applied = append(applied, AppliedRule{
			RuleID:          r.id,
			RuleName:        r.name,
			RuleType:        r.ruleType,
			AdjustmentType:  r.adjustmentType,
			AdjustmentValue: r.adjustmentValue,
			PriceBefore:     before,
			PriceAfter:      price,
		})
	}

	n := decimal.NewFromInt(int64(nights))
	total := price.Mul(n)
	return Quote{
		BasePrice:             req.BasePrice,
		TotalNights:           nights,
		AppliedRules:          applied,
		AdjustedPricePerNight: price,
		TotalPrice:            total,
		Savings:               req.BasePrice.Mul(n).Sub(total),
	}, nil
}

func compareRules(a, b *Rule) int {
	if c := cmp.Compare(b.priority, a.priority); c != 0 {
		return c
	}
	if c := a.createdAt.Compare(b.createdAt); c != 0 {
		return c
	}
	return cmp.Compare(a.id.String(), b.id.String())
}

type stayFacts struct {
	roomTypeID  *uuid.UUID
	checkIn     time.Time
	nights      int
	daysAhead   int
	loyaltyTier int
}

func (r *Rule) appliesTo(s stayFacts) bool {
	if !r.isActive {
		return false
	}
	if r.roomTypeID != nil && (s.roomTypeID == nil || *r.roomTypeID != *s.roomTypeID) {
		return false
	}
	if r.startDate != nil && s.checkIn.Before(*r.startDate) {
		return false
	}
	if r.endDate != nil && s.checkIn.After(*r.endDate) {
		return false
	}
	if isSet(r.minNights) && s.nights < *r.minNights {
		return false
	}
	if isSet(r.minAdvanceDays) && s.daysAhead < *r.minAdvanceDays {
		return false
	}
	if isSet(r.maxAdvanceDays) && s.daysAhead > *r.maxAdvanceDays {
		return false
	}
	if isSet(r.minLoyaltyTier) && s.loyaltyTier < *r.minLoyaltyTier {
		return false
	}
	if len(r.applicableDays) > 0 && !r.coversAnyNight(s.checkIn, s.nights) {
		return false
	}
	return true
}

func (r *Rule) coversAnyNight(checkIn time.Time, nights int) bool {
	for i := 0; i < nights; i++ {
		if slices.Contains(r.applicableDays, dateutil.WeekdayIndex(checkIn.AddDate(0, 0, i))) {
			return true
		}
	}
	return false
}

// adjust applies one step and clamps the running price at zero.
func (r *Rule) adjust(price decimal.Decimal) decimal.Decimal {
	var next decimal.Decimal
	switch r.adjustmentType {
	case AdjustmentPercentage:
		next = price.Add(price.Mul(r.adjustmentValue).Div(hundred))
	default:
		next = price.Add(r.adjustmentValue)
	}
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}
