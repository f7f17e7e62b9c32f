//go:build unit || e2e

package builder

import (
	"hotel-core/internal/domain/user"
	reqdto "hotel-core/internal/handler/dto/request"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

// UserBuilder describes one staff account. The same values feed the domain
// entity, the read model returned by /auth/me and the login request body.
type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	Password     string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "frontdesk@hotel.test",
		FullName:     "Front Desk",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         user.RoleManager.String(),
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.FullName, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildLogin() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: u.Password}
}
