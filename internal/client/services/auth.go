package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/assetkeeper/internal/client/api"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
)

// ErrNoAccessToken is returned when a login reply carries no access token.
var ErrNoAccessToken = errors.New("login response has no access token")

// AuthService wraps the auth endpoints.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.Tokens, error)
	// Me fetches the profile for token, ignoring the stored session.
	Me(ctx context.Context, token string) (models.UserProfile, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (*models.Tokens, error)
}

type authService struct {
	client *api.Client
}

func NewAuthService(client *api.Client) AuthService {
	return &authService{client: client}
}

func (s *authService) Login(ctx context.Context, username string, password []byte) (*models.Tokens, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: string(password)}

	var out models.Tokens
	if err := s.client.PostJSON(ctx, "auth/login", body, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, ErrNoAccessToken
	}
	return &out, nil
}

func (s *authService) Me(ctx context.Context, token string) (models.UserProfile, error) {
	var out models.UserProfile
	if err := s.client.GetJSON(api.WithToken(ctx, token), "auth/me", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = models.UserProfile{}
	}
	return out, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.client.PostJSON(ctx, "auth/logout", nil, nil)
}

// Refresh exchanges a refresh token for a new access token. The refresh
// token is sent as the bearer and in the body.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.Tokens, error) {
	body := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: refreshToken}

	var out models.Tokens
	if err := s.client.PostJSON(api.WithToken(ctx, refreshToken), "auth/refresh", body, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, ErrNoAccessToken
	}
	return &out, nil
}
