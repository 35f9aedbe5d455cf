package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	tests := map[string]struct {
		err  error
		want string
	}{
		"connected":    {nil, "connected"},
		"disconnected": {errors.New("connection refused"), "disconnected"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := NewHealthHandler(pinger{err: tt.err})
			h.now = func() time.Time { return time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC) }

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)

			var body HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, HealthResponse{Status: "healthy", Timestamp: "2024-05-04T00:00:00Z", Database: tt.want}, body)
		})
	}
}
