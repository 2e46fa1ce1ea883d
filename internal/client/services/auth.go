package services

import (
	"context"
	"net/http"

	"github.com/littlerefugees/refugio-cli/internal/client/api"
	"github.com/littlerefugees/refugio-cli/internal/client/models"
)

// AuthService performs the authentication requests. It never mutates session
// state itself: after a successful Login the caller hands the token and user
// to the session manager.
type AuthService struct {
	api *api.Client
}

// NewAuthService binds the service to the api client.
func NewAuthService(c *api.Client) *AuthService {
	return &AuthService{api: c}
}

// Login exchanges credentials for a token and the user profile.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	body := models.LoginRequest{Email: email, Password: password}
	if err := s.api.Do(ctx, http.MethodPost, "/api/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. The caller logs in separately afterwards.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	return s.api.Do(ctx, http.MethodPost, "/api/auth/register", nil, req, nil)
}
