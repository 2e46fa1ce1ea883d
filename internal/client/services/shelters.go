package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/littlerefugees/refugio-cli/internal/client/api"
	"github.com/littlerefugees/refugio-cli/internal/client/models"
	"github.com/littlerefugees/refugio-cli/internal/client/nav"
)

// ErrNoShelter is returned by shelter-scoped operations when the current
// user has no associated shelter.
var ErrNoShelter = errors.New("current user has no associated shelter")

// ShelterService manages shelters: creation by any user, overview and edits
// by the shelter's administrators.
type ShelterService struct {
	api   *api.Client
	users nav.UserSource
}

func NewShelterService(c *api.Client, users nav.UserSource) *ShelterService {
	return &ShelterService{api: c, users: users}
}

// Create registers a new shelter; the backend promotes the caller to its
// owning administrator.
func (s *ShelterService) Create(ctx context.Context, payload models.ShelterCreate) error {
	return s.api.Do(ctx, http.MethodPost, "/api/shelters/create-shelter", nil, payload, nil)
}

// myShelterID resolves the current user's shelter, or ErrNoShelter.
func (s *ShelterService) myShelterID() (int64, error) {
	u := s.users.CurrentUser()
	if u == nil || u.ShelterID == nil {
		return 0, ErrNoShelter
	}
	return *u.ShelterID, nil
}

// MyOverview fetches the "my shelter" dashboard for the current admin.
func (s *ShelterService) MyOverview(ctx context.Context) (*models.ShelterOverview, error) {
	id, err := s.myShelterID()
	if err != nil {
		return nil, err
	}

	var out struct {
		Message string                 `json:"message"`
		Shelter models.ShelterOverview `json:"shelter"`
	}
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/api/shelters/%d/admin", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Shelter, nil
}

// Update edits the current admin's shelter.
func (s *ShelterService) Update(ctx context.Context, payload models.ShelterCreate) error {
	id, err := s.myShelterID()
	if err != nil {
		return err
	}
	return s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/api/shelters/%d", id), nil, payload, nil)
}

// Admins lists the administrators of the current owner's shelter, the owner
// included.
func (s *ShelterService) Admins(ctx context.Context) ([]models.ShelterAdmin, error) {
	id, err := s.myShelterID()
	if err != nil {
		return nil, err
	}

	var out struct {
		Message string                `json:"message"`
		Admins  []models.ShelterAdmin `json:"admins"`
	}
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/api/shelters/%d/my-shelter-admins", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Admins, nil
}

// AddAdmin grants shelter administration to an existing account by email.
func (s *ShelterService) AddAdmin(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return s.api.Do(ctx, http.MethodPost, "/api/shelters/add-admin", nil, body, nil)
}

// RemoveAdmin revokes an administrator from the shelter.
func (s *ShelterService) RemoveAdmin(ctx context.Context, adminID int64) error {
	body := struct {
		AdminID int64 `json:"adminId"`
	}{AdminID: adminID}
	return s.api.Do(ctx, http.MethodPost, "/api/shelters/remove-admin", nil, body, nil)
}
