package converter

import (
	"hotel-core/internal/domain/user"
	sqlc "hotel-core/internal/infra/sqlc/generated"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		FullName:     u.FullName(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
}
