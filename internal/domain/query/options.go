// Package query derives the two read views served by the dashboard.
package query

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRankingSize sets how many entries the ranking snapshot holds.
func WithRankingSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.rankingSize = n
		}
	}
}

// WithExcludedEntities replaces the set of aggregate entities hidden from
// the ranking snapshot.
func WithExcludedEntities(entities []string) Option {
	return func(e *Engine) {
		if len(entities) > 0 {
			e.excluded = toSet(entities)
		}
	}
}

// WithWorldEntity sets the dataset entity holding global totals.
func WithWorldEntity(entity string) Option {
	return func(e *Engine) {
		if entity != "" {
			e.worldEntity = entity
		}
	}
}

// WithAggregationToken sets the selection value that maps to the world series.
func WithAggregationToken(token string) Option {
	return func(e *Engine) {
		if token != "" {
			e.aggregationToken = token
		}
	}
}
