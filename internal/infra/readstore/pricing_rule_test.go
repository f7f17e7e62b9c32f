//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"hotel-core/internal/infra"
	"hotel-core/internal/infra/readstore"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	readstoremock "hotel-core/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func weekendRow() sqlc.PricingRules {
	return sqlc.PricingRules{
		ID:              uuid.New(),
		Name:            "Weekend premium",
		RuleType:        "weekend",
		Priority:        10,
		AdjustmentType:  "percentage",
		AdjustmentValue: pgconv.NumericFromDecimal(decimal.NewFromInt(20)),
		ApplicableDays:  []int32{5, 6},
		IsActive:        true,
		CreatedAt:       pgconv.TimeToPgtype(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		UpdatedAt:       pgconv.TimeToPgtype(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestPricingRuleReadStore_ActiveRules_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("2回目の呼び出しはキャッシュから返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockPricingRuleReadQueries(ctrl)
		q.EXPECT().ListActivePricingRules(ctx, gomock.Any()).Return([]sqlc.PricingRules{weekendRow()}, nil).Times(1)

		store := readstore.NewPricingRuleReadStore(q, nil, time.Minute, time.Minute)

		first, err := store.ActiveRules(ctx)
		require.NoError(t, err)
		second, err := store.ActiveRules(ctx)
		require.NoError(t, err)

		require.Len(t, first, 1)
		assert.Equal(t, first, second)
		assert.Equal(t, []int{5, 6}, first[0].ApplicableDays())
	})

	t.Run("Invalidate forces a reload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockPricingRuleReadQueries(ctrl)
		q.EXPECT().ListActivePricingRules(ctx, gomock.Any()).Return([]sqlc.PricingRules{weekendRow()}, nil).Times(2)

		store := readstore.NewPricingRuleReadStore(q, nil, time.Minute, time.Minute)

		_, err := store.ActiveRules(ctx)
		require.NoError(t, err)
		store.Invalidate()
		_, err = store.ActiveRules(ctx)
		require.NoError(t, err)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockPricingRuleReadQueries(ctrl)
		gomock.InOrder(
			q.EXPECT().ListActivePricingRules(ctx, gomock.Any()).Return(nil, assert.AnError),
			q.EXPECT().ListActivePricingRules(ctx, gomock.Any()).Return([]sqlc.PricingRules{}, nil),
		)

		store := readstore.NewPricingRuleReadStore(q, nil, time.Minute, time.Minute)

		_, err := store.ActiveRules(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		rules, err := store.ActiveRules(ctx)
		require.NoError(t, err)
		assert.Empty(t, rules)
	})

	t.Run("corrupt adjustment type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockPricingRuleReadQueries(ctrl)
		row := weekendRow()
		row.AdjustmentType = "multiplier"
		q.EXPECT().ListActivePricingRules(ctx, gomock.Any()).Return([]sqlc.PricingRules{row}, nil)

		store := readstore.NewPricingRuleReadStore(q, nil, time.Minute, time.Minute)

		_, err := store.ActiveRules(ctx)
		assert.True(t, infra.IsKind(err, infra.KindCorruptRow))
	})
}

func TestPricingRuleReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := weekendRow()

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: rule found"},
		{name: "error: rule not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", err: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockPricingRuleReadQueries(ctrl)
			if tc.err != nil {
				q.EXPECT().FindPricingRuleByID(ctx, gomock.Any(), row.ID).Return(sqlc.PricingRules{}, tc.err)
			} else {
				q.EXPECT().FindPricingRuleByID(ctx, gomock.Any(), row.ID).Return(row, nil)
			}
			store := readstore.NewPricingRuleReadStore(q, nil, time.Minute, time.Minute)

			view, err := store.FindByID(ctx, row.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "weekend", view.RuleType)
			assert.True(t, view.AdjustmentValue.Equal(decimal.NewFromInt(20)))
			assert.Nil(t, view.RoomTypeID)
		})
	}
}
