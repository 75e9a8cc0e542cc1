// Package query derives the two read views served by the dashboard: the
// per-entity time series slice and the top-emitters ranking snapshot.
package query

import (
	"context"
	"sort"

	"github.com/carbonlens/carbonlens/internal/domain/model"
	"github.com/carbonlens/carbonlens/internal/domain/types"
)

// Defaults mirroring the upstream dashboard behaviour.
const (
	DefaultRankingSize      = 10
	DefaultWorldEntity      = "World"
	DefaultAggregationToken = "Global"
)

// DefaultExcludedEntities are aggregate rows that must never appear in the
// per-country ranking snapshot.
var DefaultExcludedEntities = []string{
	"World",
	"International Transport",
	"Oceania",
	"Asia",
	"Europe",
	"Africa",
}

// Engine evaluates selections against an immutable dataset. All methods are
// pure reads; an Engine is safe for concurrent use.
type Engine struct {
	rankingSize      int
	worldEntity      string
	aggregationToken string
	excluded         map[string]struct{}
}

// New constructs an Engine with default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		rankingSize:      DefaultRankingSize,
		worldEntity:      DefaultWorldEntity,
		aggregationToken: DefaultAggregationToken,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.excluded == nil {
		e.excluded = toSet(DefaultExcludedEntities)
	}
	return e
}

// AggregationToken returns the selection value that maps to the world series.
func (e *Engine) AggregationToken() string {
	return e.aggregationToken
}

// WorldEntity returns the dataset entity holding global totals.
func (e *Engine) WorldEntity() string {
	return e.worldEntity
}

// RankingSize returns the configured snapshot size.
func (e *Engine) RankingSize() int {
	return e.rankingSize
}

// TimeSeries returns the observations matching the selection, sorted by year
// ascending. The aggregation token resolves to the world entity. An unknown
// entity or an interval with no rows yields an empty slice, not an error.
func (e *Engine) TimeSeries(_ context.Context, dataset []model.Observation, sel types.Selection) []model.Observation {
	entity := sel.Entity
	if entity == e.aggregationToken {
		entity = e.worldEntity
	}

	out := make([]model.Observation, 0)
	for _, obs := range dataset {
		if obs.Entity != entity {
			continue
		}
		if obs.Year < sel.StartYear || obs.Year > sel.EndYear {
			continue
		}
		out = append(out, obs)
	}

	// The source rows happen to arrive year-ordered per entity; sort anyway so
	// the ordering guarantee does not rest on upstream file layout.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}

// Ranking returns the top emitters for endYear, excluding aggregate entities,
// sorted by CO2 descending. Ties break on entity name ascending so repeated
// calls return identical snapshots. Fewer qualifying rows than the snapshot
// size yields all of them.
func (e *Engine) Ranking(_ context.Context, dataset []model.Observation, endYear int) []types.RankedEntry {
	candidates := make([]model.Observation, 0)
	for _, obs := range dataset {
		if obs.Year != endYear {
			continue
		}
		if _, skip := e.excluded[obs.Entity]; skip {
			continue
		}
		candidates = append(candidates, obs)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].CO2 != candidates[j].CO2 {
			return candidates[i].CO2 > candidates[j].CO2
		}
		return candidates[i].Entity < candidates[j].Entity
	})

	if len(candidates) > e.rankingSize {
		candidates = candidates[:e.rankingSize]
	}

	entries := make([]types.RankedEntry, len(candidates))
	for i, obs := range candidates {
		entries[i] = types.RankedEntry{
			Rank:   i + 1,
			Entity: obs.Entity,
			CO2:    obs.CO2,
		}
	}
	return entries
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
