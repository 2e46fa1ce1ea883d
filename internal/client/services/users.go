package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/littlerefugees/refugio-cli/internal/client/api"
	"github.com/littlerefugees/refugio-cli/internal/client/models"
)

// ProfileUpdate is the payload of PUT /api/users/me. The backend requires
// the current password to authorize any profile change; NewPassword is set
// only on password changes.
type ProfileUpdate struct {
	FullName        string `json:"fullName,omitempty"`
	Email           string `json:"email,omitempty"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// UserService manages the caller's own account.
type UserService struct {
	api *api.Client
}

func NewUserService(c *api.Client) *UserService {
	return &UserService{api: c}
}

// UpdateMyProfile edits the caller's profile and returns the updated user.
func (s *UserService) UpdateMyProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var out models.User
	if err := s.api.Do(ctx, http.MethodPut, "/api/users/me", nil, upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword goes through the same endpoint as UpdateMyProfile, with the
// new password set.
func (s *UserService) ChangePassword(ctx context.Context, fullName, email, currentPassword, newPassword string) (*models.User, error) {
	return s.UpdateMyProfile(ctx, ProfileUpdate{
		FullName:        fullName,
		Email:           email,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
}

// DeleteMyAccount removes the caller's account; the current password travels
// in the request body.
func (s *UserService) DeleteMyAccount(ctx context.Context, currentPassword string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
	}{CurrentPassword: currentPassword}
	return s.api.Do(ctx, http.MethodDelete, "/api/users/me", nil, body, nil)
}

// DeleteUser removes another user. Owner-only on the backend.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil, nil)
}

// CompleteFirstLogin marks the one-time onboarding choice as done and
// returns the updated user.
func (s *UserService) CompleteFirstLogin(ctx context.Context) (*models.User, error) {
	body := struct {
		FirstLoginCompleted bool `json:"firstLoginCompleted"`
	}{FirstLoginCompleted: true}

	var out models.User
	if err := s.api.Do(ctx, http.MethodPut, "/api/users/first-login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
