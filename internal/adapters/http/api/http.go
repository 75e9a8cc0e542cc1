// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/carbonlens/carbonlens/internal/domain/model"
	"github.com/carbonlens/carbonlens/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Core query operations.
	TimeSeries(ctx context.Context, sel types.Selection) ([]model.Observation, error)
	Ranking(ctx context.Context, endYear int) ([]types.RankedEntry, error)
	Summary(ctx context.Context, sel types.Selection) (types.Summary, error)

	// Catalog reads for the dashboard selectors.
	Entities(ctx context.Context) ([]string, error)
	YearBounds(ctx context.Context) (types.YearSpan, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	timeSeriesHandler *TimeSeriesHandler
	rankingHandler    *RankingHandler
	summaryHandler    *SummaryHandler
	catalogHandler    *CatalogHandler
	statsHandler      *StatsHandler
	healthHandler     *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		timeSeriesHandler: NewTimeSeriesHandler(deps),
		rankingHandler:    NewRankingHandler(deps),
		summaryHandler:    NewSummaryHandler(deps),
		catalogHandler:    NewCatalogHandler(deps),
		statsHandler:      NewStatsHandler(statsProvider),
		healthHandler:     NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/timeseries", MetricsMiddleware(s.timeSeriesHandler.HandleGetTimeSeries, "timeseries"))
	mux.HandleFunc("/api/ranking", MetricsMiddleware(s.rankingHandler.HandleGetRanking, "ranking"))
	mux.HandleFunc("/api/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/api/entities", MetricsMiddleware(s.catalogHandler.HandleGetEntities, "entities"))
	mux.HandleFunc("/api/years", MetricsMiddleware(s.catalogHandler.HandleGetYears, "years"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// parseSelection reads entity/start/end query parameters.
func parseSelection(r *http.Request) (types.Selection, error) {
	q := r.URL.Query()

	entity := strings.TrimSpace(q.Get("entity"))
	if entity == "" {
		return types.Selection{}, NewKind("missing entity parameter", ErrBadRequest)
	}

	start, err := parseYearParam(q.Get("start"), "start")
	if err != nil {
		return types.Selection{}, err
	}
	end, err := parseYearParam(q.Get("end"), "end")
	if err != nil {
		return types.Selection{}, err
	}
	if start > end {
		return types.Selection{}, NewKind("start must not exceed end", ErrBadRequest)
	}

	return types.Selection{Entity: entity, StartYear: start, EndYear: end}, nil
}

func parseYearParam(raw, name string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, NewKind("invalid "+name+" year", ErrBadRequest)
	}
	return year, nil
}
