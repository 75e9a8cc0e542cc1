// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/carbonlens/carbonlens/internal/adapters/repository"
	"github.com/carbonlens/carbonlens/internal/adapters/source"
	"github.com/carbonlens/carbonlens/internal/domain/model"
	"github.com/carbonlens/carbonlens/internal/domain/query"
	"github.com/carbonlens/carbonlens/internal/domain/summary"
	"github.com/carbonlens/carbonlens/internal/domain/types"
	"github.com/carbonlens/carbonlens/pkg/logger"
	"github.com/carbonlens/carbonlens/pkg/metrics"
)

// Query kind labels for metrics.
const (
	kindTimeSeries = "timeseries"
	kindRanking    = "ranking"
	kindSummary    = "summary"
)

// Service wires the loader, the dataset store and the query engine, and
// implements the read operations the HTTP API depends on.
type Service struct {
	mu sync.RWMutex

	// Core components
	loader *source.Loader
	store  repository.Store
	engine *query.Engine

	// Configuration
	dataURL          string
	fetchTimeout     time.Duration
	rankingSize      int
	excludedEntities []string
	worldEntity      string
	aggregationToken string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataURL:          source.DefaultDataURL,
		fetchTimeout:     source.DefaultFetchTimeout,
		rankingSize:      query.DefaultRankingSize,
		excludedEntities: query.DefaultExcludedEntities,
		worldEntity:      query.DefaultWorldEntity,
		aggregationToken: query.DefaultAggregationToken,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset once and builds the read components. A transport
// failure upstream leaves the service running over an empty dataset; a
// schema failure is fatal.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	if s.loader == nil {
		s.loader = source.New(
			source.WithURL(s.dataURL),
			source.WithTimeout(s.fetchTimeout),
		)
	}
	s.engine = query.New(
		query.WithRankingSize(s.rankingSize),
		query.WithExcludedEntities(s.excludedEntities),
		query.WithWorldEntity(s.worldEntity),
		query.WithAggregationToken(s.aggregationToken),
	)

	observations, err := s.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	s.store = repository.NewMemStore(ctx, observations)

	if s.store.Len(ctx) == 0 {
		s.logger.Warn(ctx, "dataset is empty; all queries will return placeholders")
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("rows", s.store.Len(ctx)),
		logger.Int("entities", len(s.store.Entities(ctx))),
		logger.Int("rankingSize", s.rankingSize),
	)
	return nil
}

// Stop shuts the service down. The dataset is immutable in-process state, so
// there is nothing to flush; Stop exists for lifecycle symmetry with main.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Empty reports whether the loaded dataset has no rows (degraded mode).
func (s *Service) Empty(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.started || s.store.Len(ctx) == 0
}

// TimeSeries returns the observations for the selection, sorted by year
// ascending. An unknown entity or an empty interval yields an empty slice.
func (s *Service) TimeSeries(ctx context.Context, sel types.Selection) ([]model.Observation, error) {
	store, engine, err := s.components()
	if err != nil {
		return nil, err
	}
	if sel.StartYear > sel.EndYear {
		return nil, fmt.Errorf("%w: start year %d after end year %d", ErrInvalidSelection, sel.StartYear, sel.EndYear)
	}

	start := time.Now()
	slice := engine.TimeSeries(ctx, store.All(ctx), sel)
	metrics.RecordQuery(kindTimeSeries)
	metrics.RecordQueryDuration(kindTimeSeries, float64(time.Since(start).Milliseconds()))
	if len(slice) == 0 {
		metrics.RecordEmptyResult(kindTimeSeries)
	}
	return slice, nil
}

// Ranking returns the top-emitters snapshot for endYear.
func (s *Service) Ranking(ctx context.Context, endYear int) ([]types.RankedEntry, error) {
	store, engine, err := s.components()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	entries := engine.Ranking(ctx, store.All(ctx), endYear)
	metrics.RecordQuery(kindRanking)
	metrics.RecordQueryDuration(kindRanking, float64(time.Since(start).Milliseconds()))
	if len(entries) == 0 {
		metrics.RecordEmptyResult(kindRanking)
	}
	return entries, nil
}

// Summary reduces the selection's time series to its summary statistics.
// Returns summary.ErrNoData when nothing matches.
func (s *Service) Summary(ctx context.Context, sel types.Selection) (types.Summary, error) {
	slice, err := s.TimeSeries(ctx, sel)
	if err != nil {
		return types.Summary{}, err
	}

	start := time.Now()
	sum, err := summary.Summarize(slice)
	metrics.RecordQuery(kindSummary)
	metrics.RecordQueryDuration(kindSummary, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordEmptyResult(kindSummary)
		return types.Summary{}, err
	}
	return sum, nil
}

// Entities returns the selector catalog: the aggregation token first, then
// every entity except the world row, sorted.
func (s *Service) Entities(ctx context.Context) ([]string, error) {
	store, engine, err := s.components()
	if err != nil {
		return nil, err
	}

	all := store.Entities(ctx)
	out := make([]string, 0, len(all)+1)
	out = append(out, engine.AggregationToken())
	for _, entity := range all {
		if entity == engine.WorldEntity() {
			continue
		}
		out = append(out, entity)
	}
	return out, nil
}

// YearBounds returns the dataset's inclusive year span. Returns
// repository.ErrEmptyDataset when the dataset is empty.
func (s *Service) YearBounds(ctx context.Context) (types.YearSpan, error) {
	store, _, err := s.components()
	if err != nil {
		return types.YearSpan{}, err
	}

	span, ok := store.YearBounds(ctx)
	if !ok {
		return types.YearSpan{}, repository.ErrEmptyDataset
	}
	return span, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"dataURL":     s.dataURL,
		"rankingSize": s.rankingSize,
	}

	if s.started {
		stats["rows"] = s.store.Len(ctx)
		stats["entities"] = len(s.store.Entities(ctx))
		if span, ok := s.store.YearBounds(ctx); ok {
			stats["minYear"] = span.Min
			stats["maxYear"] = span.Max
		}
	}

	return stats
}

// components snapshots the started state under the read lock.
func (s *Service) components() (repository.Store, *query.Engine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, nil, ErrNotStarted
	}
	return s.store, s.engine, nil
}
