package queries

import (
	"context"
	"time"

	"hotel-core/internal/domain/pricing"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrQuoteBaseRequired = errs.New("either room_type_id or base_price is required")

type QuoteInput struct {
	RoomTypeID  *uuid.UUID
	BasePrice   *decimal.Decimal
	CheckIn     time.Time
	CheckOut    time.Time
	LoyaltyTier int
}

type RuleFilter struct {
	IsActive *bool
	RuleType *pricing.RuleType
}

// PricingRuleReadStore serves active rules from a short-lived cache.
type PricingRuleReadStore interface {
	ActiveRules(ctx context.Context) ([]*pricing.Rule, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PricingRuleView, error)
	// List orders by priority desc, created_at asc.
	List(ctx context.Context, filter RuleFilter) ([]*PricingRuleView, error)
}

type RoomTypeReadStore interface {
	FindRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
}

type PricingQueries interface {
	Quote(ctx context.Context, in QuoteInput) (*pricing.Quote, error)
	ListRules(ctx context.Context, filter RuleFilter) ([]*PricingRuleView, error)
	GetRule(ctx context.Context, id uuid.UUID) (*PricingRuleView, error)
}

type pricingQueriesImpl struct {
	rules     PricingRuleReadStore
	roomTypes RoomTypeReadStore
	clock     clock.Clock
}

func NewPricingQueries(rules PricingRuleReadStore, roomTypes RoomTypeReadStore, clk clock.Clock) PricingQueries {
	return &pricingQueriesImpl{
		rules:     rules,
		roomTypes: roomTypes,
		clock:     clk,
	}
}

// Quote prices a prospective stay. An explicit base price wins over the room type's.
func (q *pricingQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*pricing.Quote, error) {
	var base decimal.Decimal
	switch {
	case in.BasePrice != nil:
		base = *in.BasePrice
	case in.RoomTypeID != nil:
		rt, err := q.roomTypes.FindRoomType(ctx, *in.RoomTypeID)
		if err != nil {
			return nil, readErr(err, errs.ErrRoomTypeNotFound)
		}
		base = rt.BasePrice
	default:
		return nil, ErrQuoteBaseRequired
	}

	rules, err := q.rules.ActiveRules(ctx)
	if err != nil {
		return nil, readErr(err, errs.ErrRuleNotFound)
	}

	quote, err := pricing.Calculate(rules, pricing.QuoteRequest{
		RoomTypeID:  in.RoomTypeID,
		BasePrice:   base,
		CheckIn:     in.CheckIn,
		CheckOut:    in.CheckOut,
		LoyaltyTier: in.LoyaltyTier,
		Today:       q.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (q *pricingQueriesImpl) ListRules(ctx context.Context, filter RuleFilter) ([]*PricingRuleView, error) {
	rows, err := q.rules.List(ctx, filter)
	if err != nil {
		return nil, readErr(err, errs.ErrRuleNotFound)
	}
	return rows, nil
}

func (q *pricingQueriesImpl) GetRule(ctx context.Context, id uuid.UUID) (*PricingRuleView, error) {
	view, err := q.rules.FindByID(ctx, id)
	if err != nil {
		return nil, readErr(err, errs.ErrRuleNotFound)
	}
	return view, nil
}
