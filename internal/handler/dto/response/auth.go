package response

import (
	"time"

	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type LoginResponse struct {
	TokenResponse
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

func FromTokenPair(p *commands.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    p.ExpiresIn,
	}
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		TokenResponse: FromTokenPair(r.TokenPair),
		UserID:        r.UserID,
		Role:          r.Role.String(),
	}
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	var res UserResponse
	mustCopy(&res, v)
	return &res
}
