package handlers

import (
	"context"
	"net/http"

	"github.com/eventdesk/server/internal/api/respond"
)

// collectionCounter is the slice of the repository interface the stats
// endpoint needs.
type collectionCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsHandler serves GET /event-stats with record counts across the
// event and attendee collections.
type StatsHandler struct {
	events    collectionCounter
	attendees collectionCounter
}

func NewStatsHandler(events, attendees collectionCounter) *StatsHandler {
	return &StatsHandler{events: events, attendees: attendees}
}

// StatsResponse is the statistics payload.
type StatsResponse struct {
	TotalEvents    int64 `json:"totalEvents"`
	TotalAttendees int64 `json:"totalAttendees"`
}

func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalEvents, err := h.events.Count(ctx)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, msgServerError, err)
		return
	}

	totalAttendees, err := h.attendees.Count(ctx)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, msgServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, StatsResponse{
		TotalEvents:    totalEvents,
		TotalAttendees: totalAttendees,
	})
}
