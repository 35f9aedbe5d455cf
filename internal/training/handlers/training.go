// Package handlers serves small fixed endpoints that exercise the response
// shapes clients commonly need to handle: plain text, hand-built and encoded
// JSON, custom status codes and headers, path and query arguments.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"swapi-server/internal/shared/response"
)

const (
	contentTypeHTML = "text/html"
	contentTypeText = "text/html; charset=utf-8"
)

type errorBody struct {
	Err string `json:"err"`
}

type statusBody struct {
	Status string `json:"status"`
}

type receivedBody struct {
	Name     string `json:"name,omitempty"`
	Received bool   `json:"received"`
}

type TrainingHandler struct {
	logger *slog.Logger
}

func NewTrainingHandler(logger *slog.Logger) *TrainingHandler {
	return &TrainingHandler{logger: logger.With("component", "training_handler")}
}

// Register mounts every training route under prefix, which must end in "/".
func (h *TrainingHandler) Register(mux *http.ServeMux, prefix string, wrap func(name, pattern string, fn http.HandlerFunc) http.HandlerFunc) {
	routes := []struct {
		name    string
		pattern string
		fn      http.HandlerFunc
	}{
		{"training_text", "text-response/{$}", h.TextResponse},
		{"training_looks_like_json", "looks-like-json/{$}", h.LooksLikeJSON},
		{"training_simple_json", "simple-json/{$}", h.SimpleJSON},
		{"training_json", "json-response/{$}", h.JSONResponse},
		{"training_json_list", "json-list/{$}", h.JSONList},
		{"training_json_error", "json-error/{$}", h.JSONError},
		{"training_only_post", "only-post/{$}", h.OnlyPost},
		{"training_post_payload", "post-payload/{$}", h.PostPayload},
		{"training_custom_headers", "custom-headers/{$}", h.CustomHeaders},
		{"training_url_int", "url-int-argument/{first_arg}/{$}", h.URLIntArgument},
		{"training_url_str", "url-str-argument/{first_arg}/{$}", h.URLStrArgument},
		{"training_url_multi", "url-multi-arguments/{first_arg}/{second_arg}/{$}", h.URLMultiArguments},
		{"training_get_params", "get-params/{$}", h.GetParams},
	}

	for _, rt := range routes {
		pattern := prefix + rt.pattern
		mux.HandleFunc(pattern, wrap(rt.name, pattern, rt.fn))
	}
}

func (h *TrainingHandler) TextResponse(w http.ResponseWriter, r *http.Request) {
	response.Text(w, http.StatusOK, contentTypeHTML, "a simple text message")
}

// LooksLikeJSON returns JSON-ish text that is deliberately not JSON.
func (h *TrainingHandler) LooksLikeJSON(w http.ResponseWriter, r *http.Request) {
	response.Text(w, http.StatusOK, contentTypeHTML, "{'received': True}")
}

// SimpleJSON writes a JSON document with an explicitly set content type.
func (h *TrainingHandler) SimpleJSON(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(receivedBody{Received: true})
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}
	response.Text(w, http.StatusOK, "application/json", string(body))
}

func (h *TrainingHandler) JSONResponse(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, receivedBody{Received: true})
}

func (h *TrainingHandler) JSONList(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, []receivedBody{
		{Name: "objectOne", Received: true},
		{Name: "objectTwo", Received: true},
	})
}

func (h *TrainingHandler) JSONError(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusBadRequest, errorBody{Err: "bad request"})
}

func (h *TrainingHandler) OnlyPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Text(w, http.StatusBadRequest, contentTypeText, "bad request")
		return
	}
	response.Text(w, http.StatusOK, contentTypeText, "everything is OK")
}

// PostPayload accepts any non-empty JSON document sent with POST.
func (h *TrainingHandler) PostPayload(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("operation", "post_payload")

	var body []byte
	if r.Method == http.MethodPost {
		var err error
		if body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20)); err != nil {
			logger.Debug("Failed to read payload", "error", err)
			body = nil
		}
	}
	if len(body) == 0 {
		response.Success(w, http.StatusBadRequest, errorBody{Err: "only POST request is allowed"})
		return
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Debug("Rejected payload", "error", err)
		response.Success(w, http.StatusBadRequest, errorBody{Err: "invalid JSON payload"})
		return
	}

	logger.Info("Received payload", "payload", payload)
	response.Success(w, http.StatusOK, statusBody{Status: "ok"})
}

func (h *TrainingHandler) CustomHeaders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("custom-header", "randome value")
	response.Success(w, http.StatusCreated, statusBody{Status: "ok"})
}

// URLIntArgument only matches unsigned decimal arguments; anything else is 404.
func (h *TrainingHandler) URLIntArgument(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseUint(r.PathValue("first_arg"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	response.Text(w, http.StatusOK, contentTypeText, fmt.Sprintf("a chosen integer is : %d", n))
}

func (h *TrainingHandler) URLStrArgument(w http.ResponseWriter, r *http.Request) {
	response.Text(w, http.StatusOK, contentTypeText, fmt.Sprintf("a chosen string is : '%s'", r.PathValue("first_arg")))
}

func (h *TrainingHandler) URLMultiArguments(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, map[string]string{
		"first parameter":  r.PathValue("first_arg"),
		"second parameter": r.PathValue("second_arg"),
	})
}

// GetParams echoes the query string; a repeated key reports its last value.
func (h *TrainingHandler) GetParams(w http.ResponseWriter, r *http.Request) {
	params := map[string]string{}
	for key, values := range r.URL.Query() {
		params[key] = values[len(values)-1]
	}
	response.Success(w, http.StatusOK, params)
}
