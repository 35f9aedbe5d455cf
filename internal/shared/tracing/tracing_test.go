package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"swapi-server/internal/shared/config"

	instana "github.com/instana/go-sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	assert.Nil(t, Init(config.TracingConfig{Enabled: false}))
}

func TestHandlerWithoutSensor(t *testing.T) {
	h := Handler(nil, "people_list", "/people/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/people/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestHandlerRecordsEntrySpan(t *testing.T) {
	recorder := instana.NewTestRecorder()
	sensor := instana.NewSensorWithTracer(instana.NewTracerWithEverything(&instana.Options{
		Service: "swapi-server-test",
	}, recorder))

	h := Handler(sensor, "people_detail", "/people/{id}/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/people/1/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	spans := recorder.GetQueuedSpans()
	require.Len(t, spans, 1)
	assert.EqualValues(t, instana.EntrySpanKind, spans[0].Kind)
}
