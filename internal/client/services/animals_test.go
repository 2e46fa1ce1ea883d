package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/littlerefugees/refugio-cli/internal/client/api"
)

func intPtr(v int) *int { return &v }

func newAPI(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, nil)
}

func TestAnimalsQuery_BuildsExpectedParameters(t *testing.T) {
	var got url.Values
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	_, err := NewAnimalService(c).List(context.Background(), AnimalsQuery{
		Search:    "lu",
		Species:   []string{"dog", "cat"},
		Breeds:    []string{"mixed"},
		Genders:   []string{"female"},
		AgeMin:    intPtr(0),
		AgeMax:    intPtr(5),
		OrderBy:   "age",
		Direction: Desc,
		Page:      2,
		Limit:     12,
	})
	require.NoError(t, err)

	require.Equal(t, "lu", got.Get("name"))
	require.Equal(t, "dog,cat", got.Get("species"))
	require.Equal(t, "mixed", got.Get("breed"))
	require.Equal(t, "female", got.Get("gender"))
	require.Equal(t, "0", got.Get("age_min"), "a zero minimum age is still a filter")
	require.Equal(t, "5", got.Get("age_max"))
	require.Equal(t, "age", got.Get("orderBy"))
	require.Equal(t, "desc", got.Get("direction"))
	require.Equal(t, "2", got.Get("page"))
	require.Equal(t, "12", got.Get("limit"))
}

func TestAnimalsQuery_EmptyFiltersAreOmitted(t *testing.T) {
	var got url.Values
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	_, err := NewAnimalService(c).List(context.Background(), AnimalsQuery{})
	require.NoError(t, err)
	require.Empty(t, got, "an empty query must send no parameters")
}

func TestAnimalList_DecodesBareArray(t *testing.T) {
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Luna","species":"dog"},{"id":2,"name":"Michi","species":"cat"}]`))
	})

	animals, err := NewAnimalService(c).List(context.Background(), AnimalsQuery{})
	require.NoError(t, err)
	require.Len(t, animals, 2)
	require.Equal(t, "Luna", animals[0].Name)
}

func TestAnimalList_DecodesEnvelope(t *testing.T) {
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok","page":1,"animals":[{"id":3,"name":"Rocky","age":4}]}`))
	})

	animals, err := NewAnimalService(c).List(context.Background(), AnimalsQuery{})
	require.NoError(t, err)
	require.Len(t, animals, 1)
	require.Equal(t, int64(3), animals[0].ID)
	require.NotNil(t, animals[0].Age)
	require.Equal(t, 4, *animals[0].Age)
}

func TestAnimalList_UnexpectedShapeDecodesEmpty(t *testing.T) {
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"nothing here"}`))
	})

	animals, err := NewAnimalService(c).List(context.Background(), AnimalsQuery{})
	require.NoError(t, err)
	require.Empty(t, animals)
}

func TestRequestAdoption_PostsAnimalAndMessage(t *testing.T) {
	var gotPath, gotBody string
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusCreated)
	})

	err := NewAnimalService(c).RequestAdoption(context.Background(), 42, "We have a garden")
	require.NoError(t, err)
	require.Equal(t, "POST /api/adoptions", gotPath)
	require.JSONEq(t, `{"animalId":42,"message":"We have a garden"}`, gotBody)
}

func TestAnimalDetail_FetchesByID(t *testing.T) {
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/animals/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"name":"Bimba","adopted":true}`))
	})

	animal, err := NewAnimalService(c).Detail(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "Bimba", animal.Name)
	require.True(t, animal.Adopted)
}
