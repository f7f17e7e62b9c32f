package commands

import (
	"context"

	"hotel-core/internal/domain/refund"
	"hotel-core/internal/infra"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPolicyNameTaken = errs.New("cancellation policy name already exists")

type PolicyCommands interface {
	Create(ctx context.Context, params refund.PolicyParams) (uuid.UUID, error)
}

type policyCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPolicyCommands(uow shared.UnitOfWork) PolicyCommands {
	return &policyCommandsImpl{uow: uow}
}

func (uc *policyCommandsImpl) Create(ctx context.Context, params refund.PolicyParams) (uuid.UUID, error) {
	policy, err := refund.NewPolicy(params)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Policies().Create(ctx, policy); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrPolicyNameTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return policy.ID(), nil
}

// resolvePolicy picks the requested policy, else the default one. With no active
// policy at all the configured standard policy is persisted and used.
func resolvePolicy(ctx context.Context, tx shared.Tx, policyID *uuid.UUID, hotel config.HotelConfig) (*refund.Policy, error) {
	if policyID != nil {
		p, err := tx.Policies().FindByID(ctx, *policyID)
		if err != nil {
			return nil, notFoundAs(err, errs.ErrPolicyNotFound)
		}
		return p, nil
	}

	p, err := tx.Policies().FindDefault(ctx)
	if err == nil {
		return p, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	standard, err := refund.NewPolicy(refund.PolicyParams{
		Name:                    hotel.DefaultPolicyName,
		Description:             "Default cancellation policy",
		FullRefundDays:          hotel.DefaultFullRefundDays,
		PartialRefundDays:       hotel.DefaultPartialRefundDays,
		PartialRefundPercentage: hotel.DefaultPartialRefundPct,
	})
	if err != nil {
		return nil, errs.Wrap(err, "invalid default cancellation policy configuration")
	}
	stored, err := tx.Policies().EnsureByName(ctx, standard)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return stored, nil
}
