//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-core/internal/domain/user"
	"hotel-core/internal/handler/dto/request"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/tests/common/authtest"
	"hotel-core/tests/common/dbtest"
	"hotel-core/tests/common/httptest"
	"hotel-core/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"

	adminEmail   = "gm@hotel.test"
	managerEmail = "duty.manager@hotel.test"
	clerkEmail   = "frontdesk@hotel.test"
	leaverEmail  = "night.audit@hotel.test"
)

type authSuite struct {
	e2e.SharedSuite
	minter *authtest.Minter
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.minter = authtest.NewMinter(s.Config.JWT)
}

// 各サブテストはリセット済みDBにスタッフ4名を持つ
func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	dbtest.CreateTestUser(t, s.DB, adminEmail, user.RoleAdmin.String())
	dbtest.CreateTestUser(t, s.DB, managerEmail, user.RoleManager.String())
	dbtest.CreateTestUser(t, s.DB, clerkEmail, user.RoleRegular.String())
	dbtest.CreateTestUser(t, s.DB, leaverEmail, user.RoleRegular.String())
	dbtest.DeactivateUser(t, s.DB, leaverEmail)
}

func (s *authSuite) TestLogin() {
	cases := []struct {
		name     string
		email    string
		password string
		want     int
		wantRole string
	}{
		{name: "管理者", email: adminEmail, password: dbtest.TestPassword, want: http.StatusOK, wantRole: "admin"},
		{name: "フロント係", email: clerkEmail, password: dbtest.TestPassword, want: http.StatusOK, wantRole: "regular"},
		{name: "未登録のメール", email: "ghost@hotel.test", password: dbtest.TestPassword, want: http.StatusUnauthorized},
		{name: "パスワード違い", email: managerEmail, password: "not-the-password", want: http.StatusUnauthorized},
		{name: "退職済みアカウント", email: leaverEmail, password: dbtest.TestPassword, want: http.StatusForbidden},
		{name: "メール空", email: "", password: dbtest.TestPassword, want: http.StatusBadRequest},
		{name: "パスワード空", email: adminEmail, password: "", want: http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tc.email, Password: tc.password}, "")
			if tc.want != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tc.want, "")
				return
			}

			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.NotEmpty(t, res.RefreshToken)
			require.Equal(t, "Bearer", res.TokenType)
			require.Equal(t, int64(s.Config.JWT.AccessTokenDuration/time.Second), res.ExpiresIn)
			require.Equal(t, tc.wantRole, res.Role)

			var lastLogin *time.Time
			require.NoError(t, s.DB.QueryRow(t.Context(),
				"SELECT last_login FROM users WHERE email = $1", tc.email).Scan(&lastLogin))
			require.NotNil(t, lastLogin, "last_login not stamped")
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("成功: 新しいトークンペアでmeが引ける", func() {
		t := s.T()
		first := authtest.Login(t, s.Router, managerEmail, dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: first.RefreshToken}, "")
		var res resdto.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotEqual(t, first.AccessToken, res.AccessToken)

		me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, res.AccessToken)
		require.Equal(t, http.StatusOK, me.Code, me.Body.String())
	})

	rejected := []struct {
		name  string
		token func() string
		want  int
	}{
		{
			name:  "アクセストークンでは更新できない",
			token: func() string { return authtest.AccessToken(s.T(), s.Router, managerEmail) },
			want:  http.StatusUnauthorized,
		},
		{name: "壊れたトークン", token: func() string { return "not.a.jwt" }, want: http.StatusUnauthorized},
		{name: "トークン空", token: func() string { return "" }, want: http.StatusBadRequest},
	}
	for _, tc := range rejected {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
				request.RefreshRequest{RefreshToken: tc.token()}, "")
			httptest.AssertErrorResponse(s.T(), w, tc.want, "")
		})
	}

	s.Run("退職後はリフレッシュできない", func() {
		t := s.T()
		refresh := authtest.Login(t, s.Router, clerkEmail, dbtest.TestPassword).RefreshToken
		dbtest.DeactivateUser(t, s.DB, clerkEmail)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: refresh}, "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "user inactive")
	})
}

func (s *authSuite) TestMe() {
	s.Run("成功: ロールごとのプロフィール", func() {
		for email, role := range map[string]string{adminEmail: "admin", managerEmail: "manager", clerkEmail: "regular"} {
			t := s.T()
			token := authtest.AccessToken(t, s.Router, email)

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			var me resdto.UserResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
			require.Equal(t, email, me.Email)
			require.Equal(t, role, me.Role)
			require.True(t, me.IsActive)
			require.NotContains(t, w.Body.String(), "password")
		}
	})

	s.Run("リフレッシュトークンはbearerに使えない", func() {
		refresh := authtest.Login(s.T(), s.Router, adminEmail, dbtest.TestPassword).RefreshToken
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, refresh)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("トークン無し", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("期限切れトークン", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "expiry@hotel.test", user.RoleAdmin.String())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, s.minter.Expired(t, id, user.RoleAdmin))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("署名は正しいが存在しないユーザー", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, s.minter.Access(t, uuid.New(), user.RoleManager))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("ログイン後に無効化されたユーザーは403", func() {
		t := s.T()
		token := authtest.AccessToken(t, s.Router, clerkEmail)
		dbtest.DeactivateUser(t, s.DB, clerkEmail)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}

func (s *authSuite) TestStaffOnlyRoutes() {
	rule := map[string]any{
		"name":             "Flash sale",
		"rule_type":        "custom",
		"adjustment_type":  "percentage",
		"adjustment_value": "-5",
	}

	s.Run("フロント係は料金ルールを作れない", func() {
		token := authtest.AccessToken(s.T(), s.Router, clerkEmail)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/pricing-rules", rule, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("マネージャーと管理者は作れる", func() {
		for _, email := range []string{managerEmail, adminEmail} {
			token := authtest.AccessToken(s.T(), s.Router, email)
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/pricing-rules", rule, token)
			require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
		}
	})
}

func (s *authSuite) TestParallelSessions() {
	s.Run("同じアカウントの複数端末ログイン", func() {
		t := s.T()

		desk := authtest.AccessToken(t, s.Router, clerkEmail)
		tablet := authtest.AccessToken(t, s.Router, clerkEmail)
		require.NotEqual(t, desk, tablet)

		for _, token := range []string{desk, tablet} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
	})
}
