// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	"github.com/carbonlens/carbonlens/internal/adapters/repository"
	service "github.com/carbonlens/carbonlens/internal/app"
)

// CatalogHandler serves the selector data the dashboard needs before it can
// issue its first query: the entity list and the dataset year bounds.
type CatalogHandler struct {
	deps Dependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps Dependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// yearsResponse reports the dataset year span; HasData is false when the
// dataset is empty (degraded load).
type yearsResponse struct {
	HasData bool `json:"has_data"`
	Min     int  `json:"min,omitempty"`
	Max     int  `json:"max,omitempty"`
}

// HandleGetEntities handles GET /api/entities.
func (h *CatalogHandler) HandleGetEntities(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_entities"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	entities, err := h.deps.Entities(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotStarted) {
			writeError(w, http.StatusServiceUnavailable, "unavailable", NewKind(op, ErrUnavailable))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, entities)
}

// HandleGetYears handles GET /api/years.
func (h *CatalogHandler) HandleGetYears(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_years"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	span, err := h.deps.YearBounds(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyDataset):
			writeJSON(w, http.StatusOK, yearsResponse{HasData: false})
		case errors.Is(err, service.ErrNotStarted):
			writeError(w, http.StatusServiceUnavailable, "unavailable", NewKind(op, ErrUnavailable))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, yearsResponse{HasData: true, Min: span.Min, Max: span.Max})
}
