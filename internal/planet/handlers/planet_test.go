package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"swapi-server/internal/planet"
	"swapi-server/internal/shared/database/databasetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()

	db := databasetest.New(t)
	h := NewPlanetHandler(planet.NewService(planet.NewRepository(db, discard), nil, discard))

	mux := http.NewServeMux()
	mux.HandleFunc("/planets/{$}", h.Collection)
	mux.HandleFunc("/planets/{id}/{$}", h.Detail)
	return mux
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestCreateAndGetPlanet(t *testing.T) {
	mux := newMux(t)

	rec := do(mux, http.MethodPost, "/planets/", `{"name":"Tatooine","climate":"arid","terrain":"desert","population":"200000"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created planet.Planet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "arid", created.Climate)

	rec = do(mux, http.MethodGet, "/planets/1/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got planet.Planet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestListPlanets(t *testing.T) {
	mux := newMux(t)

	rec := do(mux, http.MethodGet, "/planets/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	do(mux, http.MethodPost, "/planets/", `{"name":"Hoth"}`)
	do(mux, http.MethodPost, "/planets/", `{"name":"Dagobah"}`)

	rec = do(mux, http.MethodGet, "/planets/", "")
	var planets []planet.Planet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &planets))
	require.Len(t, planets, 2)
	assert.Equal(t, "Hoth", planets[0].Name)
}

func TestCreatePlanetInvalid(t *testing.T) {
	mux := newMux(t)

	for _, body := range []string{`{"name":`, `{"climate":"arid"}`, `{"name":42}`} {
		rec := do(mux, http.MethodPost, "/planets/", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "Provided payload is not valid", body)
	}
}

func TestGetPlanetNotFound(t *testing.T) {
	mux := newMux(t)

	for _, target := range []string{"/planets/9/", "/planets/hoth/"} {
		rec := do(mux, http.MethodGet, target, "")

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "Could not find planet with id:")
	}
}

func TestPlanetInvalidMethod(t *testing.T) {
	mux := newMux(t)

	rec := do(mux, http.MethodDelete, "/planets/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(mux, http.MethodPut, "/planets/1/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid HTTP method")
}
