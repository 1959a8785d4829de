package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/yesigotthis/adhd-hub/pkg/catalog"
)

// ErrorResponse is the JSON body for every error status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps the catalog error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, catalog.ErrContentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, catalog.ErrValidationFailed),
		errors.Is(err, catalog.ErrInvalidStatusTransition),
		errors.Is(err, catalog.ErrImmutableField):
		status = http.StatusBadRequest
	case errors.Is(err, catalog.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, catalog.ErrUnauthorized):
		status = http.StatusForbidden
	}

	if status >= 500 {
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}
