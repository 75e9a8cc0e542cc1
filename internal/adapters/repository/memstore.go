package repository

import (
	"context"
	"sort"

	"github.com/carbonlens/carbonlens/internal/domain/model"
	"github.com/carbonlens/carbonlens/internal/domain/types"
	"github.com/carbonlens/carbonlens/pkg/metrics"
)

// MemStore holds the dataset in memory. The entity catalog and year span are
// computed once at construction; afterwards the store is purely read-only.
type MemStore struct {
	observations []model.Observation
	entities     []string
	span         types.YearSpan
	hasSpan      bool

	metricsEnabled bool
}

// NewMemStore builds a store from loader output. It takes ownership of the
// observations slice.
func NewMemStore(ctx context.Context, observations []model.Observation, opts ...Option) *MemStore {
	s := &MemStore{
		observations:   observations,
		metricsEnabled: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.index(ctx)

	if s.metricsEnabled {
		metrics.UpdateDatasetRows(len(s.observations))
		metrics.UpdateDatasetEntities(len(s.entities))
	}
	return s
}

// index derives the entity catalog and year bounds in one pass.
func (s *MemStore) index(_ context.Context) {
	seen := make(map[string]struct{})
	for i, obs := range s.observations {
		if _, ok := seen[obs.Entity]; !ok {
			seen[obs.Entity] = struct{}{}
			s.entities = append(s.entities, obs.Entity)
		}
		if i == 0 {
			s.span = types.YearSpan{Min: obs.Year, Max: obs.Year}
			s.hasSpan = true
			continue
		}
		if obs.Year < s.span.Min {
			s.span.Min = obs.Year
		}
		if obs.Year > s.span.Max {
			s.span.Max = obs.Year
		}
	}
	sort.Strings(s.entities)
}

// All returns the full dataset as a read-only view.
func (s *MemStore) All(_ context.Context) []model.Observation {
	return s.observations
}

// Entities returns the distinct entity names, sorted.
func (s *MemStore) Entities(_ context.Context) []string {
	return s.entities
}

// YearBounds returns the inclusive year span of the dataset.
func (s *MemStore) YearBounds(_ context.Context) (types.YearSpan, bool) {
	return s.span, s.hasSpan
}

// Len returns the number of observations held.
func (s *MemStore) Len(_ context.Context) int {
	return len(s.observations)
}
