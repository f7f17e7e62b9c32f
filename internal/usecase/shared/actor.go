package shared

import (
	"hotel-core/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller, resolved by the HTTP layer.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

// SeesAll reports whether the actor is exempt from per-owner filtering.
func (a Actor) SeesAll() bool {
	return a.Role.IsStaff()
}

// RuleCacheInvalidator drops cached pricing rules after a write.
type RuleCacheInvalidator interface {
	Invalidate()
}
