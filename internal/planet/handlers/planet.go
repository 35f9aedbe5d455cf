package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"swapi-server/internal/planet"
	"swapi-server/internal/shared/errors"
	"swapi-server/internal/shared/response"
)

const maxBodyBytes = 1 << 20

type PlanetHandler struct {
	service *planet.Service
}

func NewPlanetHandler(service *planet.Service) *PlanetHandler {
	return &PlanetHandler{service: service}
}

// Collection serves /planets/: GET lists, POST creates.
func (h *PlanetHandler) Collection(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "planet_collection")

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, logger)
	case http.MethodPost:
		h.create(w, r, logger)
	default:
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

func (h *PlanetHandler) list(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	planets, err := h.service.GetAll(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if planets == nil {
		planets = []planet.Planet{}
	}

	response.Success(w, http.StatusOK, planets)
}

func (h *PlanetHandler) create(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	var req planet.CreateRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("Provided payload is not valid", err))
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, created)
}

// Detail serves /planets/{id}/.
func (h *PlanetHandler) Detail(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "planet_detail")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	idStr := r.PathValue("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		response.Error(w, r, logger, errors.NotFoundf("Could not find planet with id: %s", idStr))
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, p)
}
