package commands

import (
	"context"

	"hotel-core/internal/domain/pricing"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type PricingRuleCommands interface {
	Create(ctx context.Context, params pricing.RuleParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, u pricing.RuleUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type pricingRuleCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.RuleCacheInvalidator
}

func NewPricingRuleCommands(uow shared.UnitOfWork, cache shared.RuleCacheInvalidator) PricingRuleCommands {
	return &pricingRuleCommandsImpl{uow: uow, cache: cache}
}

func (uc *pricingRuleCommandsImpl) Create(ctx context.Context, params pricing.RuleParams) (uuid.UUID, error) {
	rule, err := pricing.NewRule(params)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := checkRoomType(ctx, tx, rule.RoomTypeID()); err != nil {
			return err
		}
		if err := tx.PricingRules().Create(ctx, rule); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	uc.cache.Invalidate()
	return rule.ID(), nil
}

func (uc *pricingRuleCommandsImpl) Update(ctx context.Context, id uuid.UUID, u pricing.RuleUpdate) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rule, err := tx.PricingRules().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrRuleNotFound)
		}
		if err := rule.ApplyUpdate(u); err != nil {
			return err
		}
		if u.RoomTypeID != nil {
			if err := checkRoomType(ctx, tx, u.RoomTypeID); err != nil {
				return err
			}
		}
		if err := tx.PricingRules().Update(ctx, rule); err != nil {
			return notFoundAs(err, errs.ErrRuleNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.cache.Invalidate()
	return nil
}

func (uc *pricingRuleCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.PricingRules().Delete(ctx, id); err != nil {
			return notFoundAs(err, errs.ErrRuleNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.cache.Invalidate()
	return nil
}

func checkRoomType(ctx context.Context, tx shared.Tx, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := tx.Rooms().FindRoomType(ctx, *id); err != nil {
		return notFoundAs(err, errs.ErrRoomTypeNotFound)
	}
	return nil
}
