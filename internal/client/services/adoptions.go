package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/littlerefugees/refugio-cli/internal/client/api"
	"github.com/littlerefugees/refugio-cli/internal/client/models"
)

// MyRequestsQuery filters the caller's own adoption requests.
type MyRequestsQuery struct {
	Statuses  []models.AdoptionStatus
	OrderBy   string // "createdAt"
	Direction Direction
}

func (q MyRequestsQuery) values() url.Values {
	v := url.Values{}
	setCSV(v, "status", q.Statuses)
	setString(v, "orderBy", q.OrderBy)
	setString(v, "direction", string(q.Direction))
	return v
}

// AdoptionService reads the requester's own adoption requests.
type AdoptionService struct {
	api *api.Client
}

func NewAdoptionService(c *api.Client) *AdoptionService {
	return &AdoptionService{api: c}
}

// MyRequests lists the caller's adoption requests, newest first when so
// ordered. Tolerates both the bare-array and {"requests": [...]} shapes.
func (s *AdoptionService) MyRequests(ctx context.Context, q MyRequestsQuery) ([]models.AdoptionRequest, error) {
	var raw json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, "/api/adoptions/my-requests", q.values(), nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[models.AdoptionRequest](raw, "requests"), nil
}
