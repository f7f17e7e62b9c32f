package queries

import (
	"context"

	"hotel-core/internal/pkg/errs"
)

type PolicyReadStore interface {
	// List orders by created_at desc.
	List(ctx context.Context, activeOnly bool) ([]*PolicyView, error)
}

type PolicyQueries interface {
	List(ctx context.Context, activeOnly bool) ([]*PolicyView, error)
}

type policyQueriesImpl struct {
	store PolicyReadStore
}

func NewPolicyQueries(store PolicyReadStore) PolicyQueries {
	return &policyQueriesImpl{store: store}
}

func (q *policyQueriesImpl) List(ctx context.Context, activeOnly bool) ([]*PolicyView, error) {
	rows, err := q.store.List(ctx, activeOnly)
	if err != nil {
		return nil, readErr(err, errs.ErrPolicyNotFound)
	}
	return rows, nil
}
