//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"hotel-core/internal/domain/pricing"
	"hotel-core/internal/pkg/dateutil"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = dateutil.Date(2025, 1, 6) // Monday

func rule(t *testing.T, mutate func(*pricing.RuleParams)) *pricing.Rule {
	t.Helper()
	p := pricing.RuleParams{
		Name:            "rule",
		RuleType:        pricing.RuleTypeCustom,
		AdjustmentType:  pricing.AdjustmentPercentage,
		AdjustmentValue: decimal.NewFromInt(-10),
		IsActive:        true,
	}
	mutate(&p)
	r, err := pricing.NewRule(p)
	require.NoError(t, err)
	return r
}

func quote(checkInOffset, nights int) pricing.QuoteRequest {
	in := dateutil.AddDays(today, checkInOffset)
	return pricing.QuoteRequest{
		BasePrice: decimal.NewFromInt(100),
		CheckIn:   in,
		CheckOut:  dateutil.AddDays(in, nights),
		Today:     today,
	}
}

func TestCalculateStacking(t *testing.T) {
	earlyBird := rule(t, func(p *pricing.RuleParams) {
		p.Name = "Early Bird"
		p.RuleType = pricing.RuleTypeEarlyBird
		p.Priority = 10
		p.MinAdvanceDays = ptr.To(30)
	})
	longStay := rule(t, func(p *pricing.RuleParams) {
		p.Name = "Long Stay"
		p.RuleType = pricing.RuleTypeLongStay
		p.Priority = 5
		p.AdjustmentValue = decimal.NewFromInt(-5)
		p.MinNights = ptr.To(5)
	})

	q, err := pricing.Calculate([]*pricing.Rule{longStay, earlyBird}, quote(45, 5))
	require.NoError(t, err)

	assert.Equal(t, "85.50", q.AdjustedPricePerNight.StringFixed(2))
	assert.Equal(t, "427.50", q.TotalPrice.StringFixed(2))
	assert.Equal(t, "72.50", q.Savings.StringFixed(2))
	require.Len(t, q.AppliedRules, 2)
	assert.Equal(t, "Early Bird", q.AppliedRules[0].RuleName)
	assert.Equal(t, "90.00", q.AppliedRules[0].PriceAfter.StringFixed(2))
	assert.Equal(t, "Long Stay", q.AppliedRules[1].RuleName)
	assert.True(t, q.AppliedRules[1].PriceBefore.Equal(q.AppliedRules[0].PriceAfter))
}

func TestCalculateFilters(t *testing.T) {
	roomType := uuid.New()

	cases := []struct {
		name    string
		mutate  func(*pricing.RuleParams)
		req     func(*pricing.QuoteRequest)
		applies bool
	}{
		{"inactive rule is ignored", func(p *pricing.RuleParams) { p.IsActive = false }, nil, false},
		{"other room type is ignored", func(p *pricing.RuleParams) { p.RoomTypeID = ptr.To(uuid.New()) },
			func(q *pricing.QuoteRequest) { q.RoomTypeID = &roomType }, false},
		{"matching room type applies", func(p *pricing.RuleParams) { p.RoomTypeID = &roomType },
			func(q *pricing.QuoteRequest) { q.RoomTypeID = &roomType }, true},
		{"season containing check-in applies", func(p *pricing.RuleParams) {
			p.StartDate = ptr.To(dateutil.AddDays(today, 5))
			p.EndDate = ptr.To(dateutil.AddDays(today, 10))
		}, nil, true},
		{"season ending before check-in is ignored", func(p *pricing.RuleParams) {
			p.EndDate = ptr.To(dateutil.AddDays(today, 9))
		}, nil, false},
		{"open-ended season started earlier applies", func(p *pricing.RuleParams) {
			p.StartDate = ptr.To(today)
		}, nil, true},
		{"short stay misses min nights", func(p *pricing.RuleParams) { p.MinNights = ptr.To(3) }, nil, false},
		{"last minute window passes", func(p *pricing.RuleParams) { p.MaxAdvanceDays = ptr.To(14) }, nil, true},
		{"last minute window misses", func(p *pricing.RuleParams) { p.MaxAdvanceDays = ptr.To(7) }, nil, false},
		{"zero thresholds never filter", func(p *pricing.RuleParams) {
			p.MinNights = ptr.To(0)
			p.MinAdvanceDays = ptr.To(0)
			p.MaxAdvanceDays = ptr.To(0)
		}, nil, true},
		{"loyalty tier below minimum", func(p *pricing.RuleParams) { p.MinLoyaltyTier = ptr.To(2) }, nil, false},
		{"loyalty tier at minimum", func(p *pricing.RuleParams) { p.MinLoyaltyTier = ptr.To(2) },
			func(q *pricing.QuoteRequest) { q.LoyaltyTier = 2 }, true},
		// check-in is Thursday; the two nights are Thu and Fri
		{"weekend rule hits friday night", func(p *pricing.RuleParams) { p.ApplicableDays = []int{4, 5} }, nil, true},
		{"sunday only misses thu-fri stay", func(p *pricing.RuleParams) { p.ApplicableDays = []int{6} }, nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := rule(t, c.mutate)
			req := quote(10, 2)
			if c.req != nil {
				c.req(&req)
			}

			q, err := pricing.Calculate([]*pricing.Rule{r}, req)
			require.NoError(t, err)

			if c.applies {
				require.Len(t, q.AppliedRules, 1)
				assert.Equal(t, "90.00", q.AdjustedPricePerNight.StringFixed(2))
			} else {
				assert.Empty(t, q.AppliedRules)
				assert.True(t, q.Savings.IsZero())
			}
		})
	}
}

func TestCalculateEdges(t *testing.T) {
	t.Run("inverted range", func(t *testing.T) {
		req := quote(10, 0)
		_, err := pricing.Calculate(nil, req)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("price clamps at zero", func(t *testing.T) {
		r := rule(t, func(p *pricing.RuleParams) {
			p.AdjustmentType = pricing.AdjustmentFixedAmount
			p.AdjustmentValue = decimal.NewFromInt(-150)
		})
		q, err := pricing.Calculate([]*pricing.Rule{r}, quote(1, 2))
		require.NoError(t, err)
		assert.True(t, q.AdjustedPricePerNight.IsZero())
		assert.Equal(t, "200.00", q.Savings.StringFixed(2))
	})

	t.Run("equal priority uses creation order", func(t *testing.T) {
		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		fixed := pricing.RuleParams{
			Name: "first", RuleType: pricing.RuleTypeCustom, Priority: 1,
			AdjustmentType: pricing.AdjustmentFixedAmount, AdjustmentValue: decimal.NewFromInt(10), IsActive: true,
		}
		pct := fixed
		pct.Name = "second"
		pct.AdjustmentType = pricing.AdjustmentPercentage
		first := pricing.ReconstructRule(uuid.New(), fixed, base, base)
		second := pricing.ReconstructRule(uuid.New(), pct, base.Add(time.Minute), base)

		q, err := pricing.Calculate([]*pricing.Rule{second, first}, quote(1, 1))
		require.NoError(t, err)
		require.Len(t, q.AppliedRules, 2)
		assert.Equal(t, "first", q.AppliedRules[0].RuleName)
		assert.Equal(t, "121.00", q.AdjustedPricePerNight.StringFixed(2))
	})
}

func TestRuleValidation(t *testing.T) {
	base := func() pricing.RuleParams {
		return pricing.RuleParams{
			Name: "r", RuleType: pricing.RuleTypeCustom,
			AdjustmentType: pricing.AdjustmentPercentage, AdjustmentValue: decimal.NewFromInt(10),
		}
	}
	cases := []struct {
		name   string
		mutate func(*pricing.RuleParams)
		errIs  error
	}{
		{"percentage above 100", func(p *pricing.RuleParams) { p.AdjustmentValue = decimal.NewFromInt(101) }, pricing.ErrPercentageOutOfRange},
		{"fixed amount may exceed 100", func(p *pricing.RuleParams) {
			p.AdjustmentType = pricing.AdjustmentFixedAmount
			p.AdjustmentValue = decimal.NewFromInt(250)
		}, nil},
		{"unknown rule type", func(p *pricing.RuleParams) { p.RuleType = "flash" }, pricing.ErrInvalidRuleType},
		{"weekday out of range", func(p *pricing.RuleParams) { p.ApplicableDays = []int{7} }, pricing.ErrInvalidApplicableDay},
		{"inverted season", func(p *pricing.RuleParams) {
			p.StartDate = ptr.To(dateutil.Date(2025, 2, 1))
			p.EndDate = ptr.To(dateutil.Date(2025, 1, 1))
		}, pricing.ErrInvalidRuleDateRange},
		{"inverted advance window", func(p *pricing.RuleParams) {
			p.MinAdvanceDays = ptr.To(10)
			p.MaxAdvanceDays = ptr.To(5)
		}, pricing.ErrInvalidAdvanceWindow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := base()
			c.mutate(&p)
			_, err := pricing.NewRule(p)
			if c.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.errIs)
		})
	}

	t.Run("failed update leaves rule untouched", func(t *testing.T) {
		r, err := pricing.NewRule(base())
		require.NoError(t, err)

		err = r.ApplyUpdate(pricing.RuleUpdate{AdjustmentValue: ptr.To(decimal.NewFromInt(-120))})
		assert.ErrorIs(t, err, pricing.ErrPercentageOutOfRange)
		assert.True(t, decimal.NewFromInt(10).Equal(r.AdjustmentValue()))
	})
}
