package commands

import (
	"context"
	"log/slog"

	"hotel-core/internal/domain/user"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/pkg/jwt"
	"hotel-core/internal/usecase/queries"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issueTokens(account.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, account.ID); updateErr != nil {
			slog.WarnContext(ctx, "failed to update last login", "user_id", account.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// login already succeeded
		slog.WarnContext(ctx, "transaction failed during login", "user_id", account.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    account.ID,
		Role:      role,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// the role may have changed since the token was issued
	account, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || account == nil {
		return nil, errs.ErrUserNotFound
	}
	if !account.IsActive {
		return nil, ErrUserInactive
	}
	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issueTokens(account.ID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(a.jwtService.AccessTokenDuration().Seconds()),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	account, passwordHash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || account == nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, ErrUserInactive
	}

	if err := user.VerifyPassword(passwordHash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
