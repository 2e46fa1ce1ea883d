package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/littlerefugees/refugio-cli/internal/client/api"
	"github.com/littlerefugees/refugio-cli/internal/client/models"
)

// AdminAnimalsQuery filters the shelter-side animal listing. Adopted is a
// tri-state: nil leaves the filter off entirely.
type AdminAnimalsQuery struct {
	Name      string
	Species   []string
	Breeds    []string
	Genders   []string
	AgeMin    *int
	AgeMax    *int
	Adopted   *bool
	OrderBy   string // "age"
	Direction Direction
	Page      int
	Limit     int
}

func (q AdminAnimalsQuery) values() url.Values {
	v := url.Values{}
	setString(v, "name", q.Name)
	setCSV(v, "species", q.Species)
	setCSV(v, "breed", q.Breeds)
	setCSV(v, "gender", q.Genders)
	setIntPtr(v, "age_min", q.AgeMin)
	setIntPtr(v, "age_max", q.AgeMax)
	setString(v, "orderBy", q.OrderBy)
	setString(v, "direction", string(q.Direction))
	setInt(v, "page", q.Page)
	setInt(v, "limit", q.Limit)
	if q.Adopted != nil {
		if *q.Adopted {
			v.Set("adopted", "true")
		} else {
			v.Set("adopted", "false")
		}
	}
	return v
}

// PhotoUpload is one file in a photo upload batch.
type PhotoUpload struct {
	Name string
	Data io.Reader
}

// AdminAnimalService manages the shelter's own animals, including their
// photo gallery.
type AdminAnimalService struct {
	api *api.Client
}

func NewAdminAnimalService(c *api.Client) *AdminAnimalService {
	return &AdminAnimalService{api: c}
}

// List fetches the shelter-side animal listing. The backend wraps it as
// {message, page, limit, total, totalPages, animals}.
func (s *AdminAnimalService) List(ctx context.Context, q AdminAnimalsQuery) ([]models.Animal, error) {
	var raw json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, "/api/animals/admin", q.values(), nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Animal](raw, "animals"), nil
}

// Get fetches one animal for editing.
func (s *AdminAnimalService) Get(ctx context.Context, id int64) (*models.Animal, error) {
	var out models.Animal
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/api/animals/admin/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new animal under the caller's shelter.
func (s *AdminAnimalService) Create(ctx context.Context, payload models.AnimalUpsert) (*models.Animal, error) {
	var out models.Animal
	if err := s.api.Do(ctx, http.MethodPost, "/api/animals/admin", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits an existing animal.
func (s *AdminAnimalService) Update(ctx context.Context, id int64, payload models.AnimalUpsert) (*models.Animal, error) {
	var out models.Animal
	if err := s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/api/animals/admin/%d", id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an animal.
func (s *AdminAnimalService) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/animals/admin/%d", id), nil, nil, nil)
}

// Photos lists an animal's photo gallery.
func (s *AdminAnimalService) Photos(ctx context.Context, animalID int64) ([]models.AnimalPhoto, error) {
	var out struct {
		Photos []models.AnimalPhoto `json:"photos"`
	}
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/api/animals/admin/%d/photos", animalID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Photos, nil
}

// UploadPhotos adds photos to an animal as a multipart form, each file under
// the "photos" field.
func (s *AdminAnimalService) UploadPhotos(ctx context.Context, animalID int64, files []PhotoUpload) ([]models.AnimalPhoto, error) {
	var form bytes.Buffer
	w := multipart.NewWriter(&form)
	for _, f := range files {
		part, err := w.CreateFormFile("photos", f.Name)
		if err != nil {
			return nil, fmt.Errorf("build photo form: %w", err)
		}
		if _, err := io.Copy(part, f.Data); err != nil {
			return nil, fmt.Errorf("read photo %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish photo form: %w", err)
	}

	var out struct {
		Message string               `json:"message"`
		Photos  []models.AnimalPhoto `json:"photos"`
	}
	path := fmt.Sprintf("/api/animals/admin/%d/photos", animalID)
	if err := s.api.DoMultipart(ctx, http.MethodPost, path, w.FormDataContentType(), &form, &out); err != nil {
		return nil, err
	}
	return out.Photos, nil
}

// DeletePhoto removes one photo from an animal's gallery.
func (s *AdminAnimalService) DeletePhoto(ctx context.Context, animalID, photoID int64) error {
	path := fmt.Sprintf("/api/animals/admin/%d/photos/%d", animalID, photoID)
	return s.api.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}
