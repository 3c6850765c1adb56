package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(_ context.Context) error { return s.err }

func TestHealthz(t *testing.T) {
	res := httptest.NewRecorder()
	Healthz().ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"status":"ok"}`, res.Body.String())
}

func TestReadyzReady(t *testing.T) {
	res := httptest.NewRecorder()
	Readyz(stubPinger{}).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"status":"ready"}`, res.Body.String())
}

func TestReadyzDatabaseDown(t *testing.T) {
	res := httptest.NewRecorder()
	Readyz(stubPinger{err: errors.New("connection refused")}).
		ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, res.Code)
	require.JSONEq(t, `{"status":"unavailable"}`, res.Body.String())
}

func TestReadyzNilPool(t *testing.T) {
	res := httptest.NewRecorder()
	Readyz(nil).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, res.Code)
}
