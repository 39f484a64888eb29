package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "checkout-42")
	rr := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, "checkout-42", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesVersion7(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		id, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
		seen[id.String()] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestWithTraceID_RequestLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}
