package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"swapi-server/internal/people"
	"swapi-server/internal/shared/errors"
	"swapi-server/internal/shared/response"
)

const maxBodyBytes = 1 << 20

type PeopleHandler struct {
	service *people.Service
}

func NewPeopleHandler(service *people.Service) *PeopleHandler {
	return &PeopleHandler{service: service}
}

// Collection serves /people/: GET lists, POST creates.
func (h *PeopleHandler) Collection(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "people_collection")

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, logger)
	case http.MethodPost:
		h.create(w, r, logger)
	default:
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

// Detail serves /people/{id}/.
func (h *PeopleHandler) Detail(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "people_detail")

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("ID does not exist", err))
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, logger, id)
	case http.MethodPut:
		h.update(w, r, logger, id, people.Full)
	case http.MethodPatch:
		h.update(w, r, logger, id, people.Partial)
	case http.MethodDelete:
		h.delete(w, r, logger, id)
	default:
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

// Sample serves a single static People document.
func (h *PeopleHandler) Sample(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, people.SamplePerson)
}

// Samples serves a static list of People documents.
func (h *PeopleHandler) Samples(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, people.SamplePeople)
}

func (h *PeopleHandler) list(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	all, err := h.service.List(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, people.SerializeAll(all))
}

func (h *PeopleHandler) create(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	body, err := readBody(w, r)
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("Provided payload is not valid", err))
		return
	}

	req, err := people.DecodeCreate(body)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	created, err := h.service.Create(r.Context(), *req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, people.Serialize(*created))
}

func (h *PeopleHandler) get(w http.ResponseWriter, r *http.Request, logger *slog.Logger, id int) {
	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, people.Serialize(*p))
}

func (h *PeopleHandler) update(w http.ResponseWriter, r *http.Request, logger *slog.Logger, id int, mode people.UpdateMode) {
	// unknown ids are reported before the payload is inspected
	if _, err := h.service.Get(r.Context(), id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("Provide a valid JSON payload", err))
		return
	}

	req, err := people.DecodeUpdate(body, mode)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, *req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, people.Serialize(*updated))
}

func (h *PeopleHandler) delete(w http.ResponseWriter, r *http.Request, logger *slog.Logger, id int) {
	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Message(w, http.StatusOK, true, fmt.Sprintf("deleted %s from the database", deleted.Name))
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}
