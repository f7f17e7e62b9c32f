//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-core/internal/domain/user"
	"hotel-core/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", time.Minute, time.Hour)
	userID := uuid.New()

	t.Run("access token round trip", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleManager)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "manager", claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token is typed", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleRegular)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Minute, time.Hour).GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expiring := jwt.NewService("secret", -time.Minute, time.Hour)
		token, err := expiring.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
