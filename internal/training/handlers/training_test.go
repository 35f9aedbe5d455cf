package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	h := NewTrainingHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.Register(mux, "/training/", func(_, _ string, fn http.HandlerFunc) http.HandlerFunc { return fn })
	return mux
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestStaticResponses(t *testing.T) {
	tests := []struct {
		path        string
		status      int
		contentType string
		body        string
	}{
		{"/training/text-response/", http.StatusOK, "text/html", "a simple text message"},
		{"/training/looks-like-json/", http.StatusOK, "text/html", "{'received': True}"},
		{"/training/simple-json/", http.StatusOK, "application/json", `{"received":true}`},
	}

	mux := newMux()
	for _, tt := range tests {
		rec := do(mux, http.MethodGet, tt.path, "")

		assert.Equal(t, tt.status, rec.Code, tt.path)
		assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"), tt.path)
		assert.Equal(t, tt.body, rec.Body.String(), tt.path)
	}
}

func TestJSONResponses(t *testing.T) {
	mux := newMux()

	rec := do(mux, http.MethodGet, "/training/json-response/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())

	rec = do(mux, http.MethodGet, "/training/json-list/", "")
	assert.JSONEq(t, `[{"name":"objectOne","received":true},{"name":"objectTwo","received":true}]`, rec.Body.String())

	rec = do(mux, http.MethodGet, "/training/json-error/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"err":"bad request"}`, rec.Body.String())
}

func TestOnlyPost(t *testing.T) {
	mux := newMux()

	rec := do(mux, http.MethodPost, "/training/only-post/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "everything is OK", rec.Body.String())

	rec = do(mux, http.MethodGet, "/training/only-post/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad request", rec.Body.String())
}

func TestPostPayload(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
		status int
		want   string
	}{
		{"valid", http.MethodPost, `{"a":1}`, http.StatusOK, `{"status":"ok"}`},
		{"empty body", http.MethodPost, "", http.StatusBadRequest, `{"err":"only POST request is allowed"}`},
		{"wrong method", http.MethodPut, `{"a":1}`, http.StatusBadRequest, `{"err":"only POST request is allowed"}`},
		{"malformed", http.MethodPost, `{"a":`, http.StatusBadRequest, `{"err":"invalid JSON payload"}`},
	}

	mux := newMux()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(mux, tt.method, "/training/post-payload/", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestCustomHeaders(t *testing.T) {
	rec := do(newMux(), http.MethodGet, "/training/custom-headers/", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "randome value", rec.Header().Get("custom-header"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestURLArguments(t *testing.T) {
	mux := newMux()

	rec := do(mux, http.MethodGet, "/training/url-int-argument/42/", "")
	assert.Equal(t, "a chosen integer is : 42", rec.Body.String())

	rec = do(mux, http.MethodGet, "/training/url-int-argument/forty-two/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(mux, http.MethodGet, "/training/url-str-argument/jedi/", "")
	assert.Equal(t, "a chosen string is : 'jedi'", rec.Body.String())

	rec = do(mux, http.MethodGet, "/training/url-multi-arguments/han/solo/", "")
	assert.JSONEq(t, `{"first parameter":"han","second parameter":"solo"}`, rec.Body.String())
}

func TestGetParams(t *testing.T) {
	rec := do(newMux(), http.MethodGet, "/training/get-params/?side=dark&rank=lord&rank=sith", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"side":"dark","rank":"sith"}`, rec.Body.String())
}
