package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/eventdesk/server/internal/api/respond"
	"github.com/eventdesk/server/internal/domain/resource"
)

const (
	msgServerError = "Internal server error"
	msgInvalidBody = "Invalid JSON body"
)

// ResourceHandler serves the CRUD endpoints for one collection. Events,
// attendees and organizers share this one handler family; only the record
// type and the Kind naming differ.
type ResourceHandler[T resource.Record[T]] struct {
	service *resource.Service[T]
	kind    resource.Kind
}

func NewResourceHandler[T resource.Record[T]](service *resource.Service[T], kind resource.Kind) *ResourceHandler[T] {
	return &ResourceHandler[T]{service: service, kind: kind}
}

func (h *ResourceHandler[T]) Kind() resource.Kind {
	return h.kind
}

// List handles GET /api/{plural}.
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, msgServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, records)
}

// Get handles GET /api/{plural}/{id}.
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, h.kind.NotFoundMessage())
		return
	}

	record, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			respond.Message(w, http.StatusNotFound, h.kind.NotFoundMessage())
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, msgServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, record)
}

// Create handles POST /api/{plural}. The response echoes the submitted
// fields with the assigned id; it is not re-read from storage.
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var record T
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respond.Error(w, r, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	created, err := h.service.Create(r.Context(), record)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, msgServerError, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

// Patch handles PATCH /api/{plural}/{id}: fields present in the body
// overwrite the stored record, everything else stays untouched.
func (h *ResourceHandler[T]) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, h.kind.NotFoundMessage())
		return
	}

	fields := make(map[string]any)
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond.Error(w, r, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	updated, err := h.service.Patch(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			respond.Message(w, http.StatusNotFound, h.kind.NotFoundMessage())
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, msgServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// Replace handles PUT /api/{plural}/{id}: every field except the id is
// overwritten by the body.
func (h *ResourceHandler[T]) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, h.kind.NotFoundMessage())
		return
	}

	var record T
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respond.Error(w, r, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	replaced, err := h.service.Replace(r.Context(), id, record)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			respond.Message(w, http.StatusNotFound, h.kind.NotFoundMessage())
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, msgServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, replaced)
}

// Delete handles DELETE /api/{plural}/{id}.
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, h.kind.NotFoundMessage())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			respond.Message(w, http.StatusNotFound, h.kind.NotFoundMessage())
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, msgServerError, err)
		return
	}
	respond.Message(w, http.StatusOK, h.kind.DeletedMessage())
}

// pathID extracts and coerces the {id} path parameter. A non-numeric id
// can never match a record, so callers treat the failure as not-found.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
