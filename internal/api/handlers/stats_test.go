package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubCounter struct {
	count int64
	err   error
}

func (s stubCounter) Count(_ context.Context) (int64, error) {
	return s.count, s.err
}

func TestStatsHandlerGet(t *testing.T) {
	h := NewStatsHandler(stubCounter{count: 12}, stubCounter{count: 340})

	res := httptest.NewRecorder()
	h.Get(res, httptest.NewRequest(http.MethodGet, "/event-stats", nil))

	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"totalEvents":12,"totalAttendees":340}`, res.Body.String())
}

func TestStatsHandlerGetEmptyCollections(t *testing.T) {
	h := NewStatsHandler(stubCounter{}, stubCounter{})

	res := httptest.NewRecorder()
	h.Get(res, httptest.NewRequest(http.MethodGet, "/event-stats", nil))

	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"totalEvents":0,"totalAttendees":0}`, res.Body.String())
}

func TestStatsHandlerStorageError(t *testing.T) {
	tests := []struct {
		name      string
		events    stubCounter
		attendees stubCounter
	}{
		{
			name:   "events count fails",
			events: stubCounter{err: errors.New("connection reset")},
		},
		{
			name:      "attendees count fails",
			events:    stubCounter{count: 3},
			attendees: stubCounter{err: errors.New("connection reset")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStatsHandler(tt.events, tt.attendees)

			res := httptest.NewRecorder()
			h.Get(res, httptest.NewRequest(http.MethodGet, "/event-stats", nil))

			require.Equal(t, http.StatusInternalServerError, res.Code)
			require.JSONEq(t, `{"message":"Internal server error"}`, res.Body.String())
		})
	}
}
