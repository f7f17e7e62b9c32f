package queries

import (
	"context"

	"hotel-core/internal/infra"
	"hotel-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserInactive = errs.New("user inactive")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail also returns the bcrypt hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, readErr(err, errs.ErrUserNotFound)
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}

// readErr swaps a read store NOT_FOUND for the caller-facing sentinel.
func readErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
