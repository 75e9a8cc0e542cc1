// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	service "github.com/carbonlens/carbonlens/internal/app"
	"github.com/carbonlens/carbonlens/internal/domain/summary"
	"github.com/carbonlens/carbonlens/internal/domain/types"
)

// SummaryHandler handles summary metric requests.
type SummaryHandler struct {
	deps Dependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps Dependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// summaryResponse distinguishes "no data" from a zero-valued summary: the
// client renders a placeholder when HasData is false.
type summaryResponse struct {
	HasData bool           `json:"has_data"`
	Summary *types.Summary `json:"summary,omitempty"`
}

// HandleGetSummary handles GET /api/summary?entity=X&start=Y&end=Z.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_summary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	sum, err := h.deps.Summary(r.Context(), sel)
	if err != nil {
		switch {
		case errors.Is(err, summary.ErrNoData):
			writeJSON(w, http.StatusOK, summaryResponse{HasData: false})
		case errors.Is(err, service.ErrInvalidSelection):
			writeError(w, http.StatusBadRequest, "bad_request", err)
		case errors.Is(err, service.ErrNotStarted):
			writeError(w, http.StatusServiceUnavailable, "unavailable", NewKind(op, ErrUnavailable))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{HasData: true, Summary: &sum})
}
