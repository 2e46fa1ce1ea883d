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

// AnimalsQuery filters the public animal catalog.
type AnimalsQuery struct {
	Search      string
	Species     []string
	Breeds      []string
	Genders     []string
	AgeMin      *int
	AgeMax      *int
	OrderBy     string // "age", "name" or "createdAt"
	Direction   Direction
	Page        int
	Limit       int
	ShelterName string
}

func (q AnimalsQuery) values() url.Values {
	v := url.Values{}
	setString(v, "name", q.Search)
	setCSV(v, "species", q.Species)
	setCSV(v, "breed", q.Breeds)
	setCSV(v, "gender", q.Genders)
	setIntPtr(v, "age_min", q.AgeMin)
	setIntPtr(v, "age_max", q.AgeMax)
	setString(v, "orderBy", q.OrderBy)
	setString(v, "direction", string(q.Direction))
	setInt(v, "page", q.Page)
	setInt(v, "limit", q.Limit)
	setString(v, "shelter", q.ShelterName)
	return v
}

// AnimalService serves the public catalog and the visitor-side adoption
// request submission.
type AnimalService struct {
	api *api.Client
}

func NewAnimalService(c *api.Client) *AnimalService {
	return &AnimalService{api: c}
}

// List fetches the public catalog page matching the query. The backend
// answers either a bare array or an {"animals": [...]} envelope.
func (s *AnimalService) List(ctx context.Context, q AnimalsQuery) ([]models.Animal, error) {
	var raw json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, "/api/animals", q.values(), nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Animal](raw, "animals"), nil
}

// Detail fetches a single animal with its adopted flag.
func (s *AnimalService) Detail(ctx context.Context, id int64) (*models.Animal, error) {
	var out models.Animal
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/api/animals/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestAdoption submits an adoption request for the animal.
func (s *AnimalService) RequestAdoption(ctx context.Context, animalID int64, message string) error {
	body := struct {
		AnimalID int64  `json:"animalId"`
		Message  string `json:"message"`
	}{AnimalID: animalID, Message: message}
	return s.api.Do(ctx, http.MethodPost, "/api/adoptions", nil, body, nil)
}
