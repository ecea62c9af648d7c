package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightapi/config"
	"flightapi/infras/otel/mocks"
	"flightapi/shared/constant"
	"flightapi/transport/http/middleware"
)

func newAppMiddleware() middleware.AppMiddleware {
	return middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)
}

func TestRequestLog_AssignsRequestID(t *testing.T) {
	mw := newAppMiddleware()

	handler := mw.RequestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flights", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestRequestLog_KeepsProvidedRequestID(t *testing.T) {
	mw := newAppMiddleware()

	handler := mw.RequestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/flights", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "req-42")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestRequestLog_FlushReachesUnderlyingWriter(t *testing.T) {
	mw := newAppMiddleware()

	handler := mw.RequestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok, "wrapped writer must stay flushable")

		flusher.Flush()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flights", nil))

	assert.True(t, rec.Flushed)
}
