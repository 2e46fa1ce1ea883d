package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/littlerefugees/refugio-cli/internal/client/api"
	"github.com/littlerefugees/refugio-cli/internal/client/models"
)

// AdminAdoptionsQuery filters the shelter-side adoption request listing.
type AdminAdoptionsQuery struct {
	AnimalName string
	UserName   string
	Statuses   []models.AdoptionStatus
	OrderBy    string // "createdAt"
	Direction  Direction
	Page       int
	Limit      int
}

func (q AdminAdoptionsQuery) values() url.Values {
	v := url.Values{}
	setString(v, "animalName", q.AnimalName)
	setString(v, "userName", q.UserName)
	setCSV(v, "status", q.Statuses)
	setString(v, "orderBy", q.OrderBy)
	setString(v, "direction", string(q.Direction))
	setInt(v, "page", q.Page)
	setInt(v, "limit", q.Limit)
	return v
}

// AdminAdoptionService manages the adoption requests addressed to the
// caller's shelter.
type AdminAdoptionService struct {
	api *api.Client
}

func NewAdminAdoptionService(c *api.Client) *AdminAdoptionService {
	return &AdminAdoptionService{api: c}
}

// List fetches the shelter's incoming adoption requests.
func (s *AdminAdoptionService) List(ctx context.Context, q AdminAdoptionsQuery) ([]models.AdoptionRequest, error) {
	var raw json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, "/api/adoptions/shelter", q.values(), nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[models.AdoptionRequest](raw, "requests"), nil
}

// Get fetches one request with its animal and requesting user.
func (s *AdminAdoptionService) Get(ctx context.Context, id int64) (*models.AdoptionRequest, error) {
	var out struct {
		Message string                 `json:"message"`
		Request models.AdoptionRequest `json:"request"`
	}
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/api/adoptions/request/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Request, nil
}

// SetStatus approves or rejects a request.
func (s *AdminAdoptionService) SetStatus(ctx context.Context, id int64, status models.AdoptionStatus) error {
	body := struct {
		Status models.AdoptionStatus `json:"status"`
	}{Status: status}
	return s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/api/adoptions/%d/status", id), nil, body, nil)
}

// Delete removes a request.
func (s *AdminAdoptionService) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/adoptions/%d", id), nil, nil, nil)
}

// Reassign moves an administrator's assigned requests to another admin,
// typically before removing them from the shelter.
func (s *AdminAdoptionService) Reassign(ctx context.Context, adminID, newAdminID int64) error {
	body := struct {
		AdminID    int64 `json:"adminId"`
		NewAdminID int64 `json:"newAdminId"`
	}{AdminID: adminID, NewAdminID: newAdminID}
	return s.api.Do(ctx, http.MethodPost, "/api/adoptions/reassign", nil, body, nil)
}
