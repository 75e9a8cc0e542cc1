// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	service "github.com/carbonlens/carbonlens/internal/app"
)

// TimeSeriesHandler handles time series requests.
type TimeSeriesHandler struct {
	deps Dependencies
}

// NewTimeSeriesHandler creates a new time series handler.
func NewTimeSeriesHandler(deps Dependencies) *TimeSeriesHandler {
	return &TimeSeriesHandler{deps: deps}
}

// HandleGetTimeSeries handles GET /api/timeseries?entity=X&start=Y&end=Z.
// An unknown entity or an interval with no rows returns 200 with an empty
// array; that is a valid "no rows matched" outcome, not an error.
func (h *TimeSeriesHandler) HandleGetTimeSeries(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_timeseries"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	slice, err := h.deps.TimeSeries(r.Context(), sel)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSelection):
			writeError(w, http.StatusBadRequest, "bad_request", err)
		case errors.Is(err, service.ErrNotStarted):
			writeError(w, http.StatusServiceUnavailable, "unavailable", NewKind(op, ErrUnavailable))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, slice)
}
