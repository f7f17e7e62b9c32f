//go:build unit || e2e

// Package authtest signs staff in against a running router, or mints tokens
// directly when a test needs one the login endpoint would never issue.
package authtest

import (
	"net/http"
	"testing"
	"time"

	"hotel-core/internal/domain/user"
	"hotel-core/internal/handler/dto/request"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/jwt"
	"hotel-core/tests/common/dbtest"
	"hotel-core/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Login posts credentials and fails the test unless tokens come back.
func Login(t *testing.T, router http.Handler, email, password string) resdto.LoginResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equalf(t, http.StatusOK, w.Code, "login %s: %s", email, w.Body.String())

	var res resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.AccessToken)
	return res
}

// AccessToken signs in an existing account that uses the fixture password.
func AccessToken(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	return Login(t, router, email, dbtest.TestPassword).AccessToken
}

// StaffToken creates the account when missing and returns its access token.
func StaffToken(t *testing.T, db dbtest.DBLike, router http.Handler, email string, role user.Role) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role.String())
	return AccessToken(t, router, email)
}

// Minter signs tokens with the application secret, bypassing login.
type Minter struct {
	cfg config.JWTConfig
}

func NewMinter(cfg config.JWTConfig) *Minter {
	return &Minter{cfg: cfg}
}

func (m *Minter) Access(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return m.mint(t, m.cfg.AccessTokenDuration, userID, role)
}

// Expired returns a token whose exp is already in the past.
func (m *Minter) Expired(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return m.mint(t, -time.Minute, userID, role)
}

func (m *Minter) mint(t *testing.T, ttl time.Duration, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(m.cfg.Secret, ttl, m.cfg.RefreshTokenDuration).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
