package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/yesigotthis/adhd-hub/pkg/catalog"
)

// ContentHandler handles HTTP requests for the content catalog.
type ContentHandler struct {
	service catalog.Service
}

// NewContentHandler creates a content handler over the service.
func NewContentHandler(service catalog.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// GetUploadURL issues a presigned upload URL for a new asset.
func (h *ContentHandler) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	var req catalog.GetUploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	target, err := h.service.GetUploadURL(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, target)
}

// CreateContent registers a catalog record for already-uploaded assets.
func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.service.CreateContent(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, item)
}

// ListContent returns the catalog filtered by the optional query params.
func (h *ContentHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.service.GetContent(r.Context(), filters)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []*catalog.ContentItem{}
	}

	render.JSON(w, r, items)
}

// GetContent returns a single item by id.
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetContentByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, item)
}

// UpdateContent applies a partial update.
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req catalog.UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.service.UpdateContent(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, item)
}

// DeleteContent removes an item.
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteContent(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PublishContent moves an item to published.
func (h *ContentHandler) PublishContent(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.service.PublishContent)
}

// UnpublishContent moves an item back to draft.
func (h *ContentHandler) UnpublishContent(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.service.UnpublishContent)
}

// ArchiveContent retires an item permanently.
func (h *ContentHandler) ArchiveContent(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.service.ArchiveContent)
}

// RecordView bumps the view counter. Fire-and-forget from the client's
// perspective; failures still return an error status but carry no body
// the caller is expected to act on.
func (h *ContentHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.IncrementViewCount(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *ContentHandler) lifecycle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) (*catalog.ContentItem, error)) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := op(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, item)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid content id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// parseFilters builds ItemFilters from the query string, rejecting
// unknown enum values up front.
func parseFilters(r *http.Request) (catalog.ItemFilters, error) {
	var filters catalog.ItemFilters
	q := r.URL.Query()

	if v := q.Get("type"); v != "" {
		t := catalog.ContentType(v)
		if !t.IsValid() {
			return filters, fmt.Errorf("%w: unknown type %q", catalog.ErrValidationFailed, v)
		}
		filters.Type = &t
	}
	if v := q.Get("topic"); v != "" {
		t := catalog.Topic(v)
		if !t.IsValid() {
			return filters, fmt.Errorf("%w: unknown topic %q", catalog.ErrValidationFailed, v)
		}
		filters.Topic = &t
	}
	if v := q.Get("status"); v != "" {
		s := catalog.ContentStatus(v)
		if !s.IsValid() {
			return filters, fmt.Errorf("%w: unknown status %q", catalog.ErrValidationFailed, v)
		}
		filters.Status = &s
	}
	if v := q.Get("contentLevel"); v != "" {
		l := catalog.ContentLevel(v)
		if !l.IsValid() {
			return filters, fmt.Errorf("%w: unknown content level %q", catalog.ErrValidationFailed, v)
		}
		filters.ContentLevel = &l
	}

	return filters, nil
}
