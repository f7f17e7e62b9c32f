package usecase

import (
	"hotel-core/internal/domain/user"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/pkg/jwt"
	"hotel-core/internal/usecase/shared"
)

var ErrNotAccessToken = errs.New("token is not an access token")

// TokenValidator turns a bearer token into the caller every command and query is scoped to.
type TokenValidator interface {
	Authenticate(token string) (shared.Actor, error)
}

type accessTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &accessTokenValidator{jwt: jwtService}
}

// Authenticate accepts access tokens only; a refresh token presented as a
// bearer is rejected even though its signature is valid.
func (v *accessTokenValidator) Authenticate(token string) (shared.Actor, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return shared.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Actor{}, errs.Wrapf(ErrNotAccessToken, "got %s token", claims.TokenType)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, errs.Wrap(err, "token carries unknown role")
	}
	return shared.Actor{UserID: claims.UserID, Role: role}, nil
}
