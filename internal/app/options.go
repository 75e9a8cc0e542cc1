package service

import (
	"time"

	"github.com/carbonlens/carbonlens/internal/adapters/source"
	"github.com/carbonlens/carbonlens/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataURL overrides the dataset location.
func WithDataURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.dataURL = url
		}
	}
}

// WithFetchTimeout bounds the one-shot dataset download.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.fetchTimeout = timeout
		}
	}
}

// WithRankingSize sets the top-emitters snapshot size.
func WithRankingSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.rankingSize = n
		}
	}
}

// WithExcludedEntities replaces the aggregate entities hidden from the
// ranking snapshot.
func WithExcludedEntities(entities []string) Option {
	return func(s *Service) {
		if len(entities) > 0 {
			s.excludedEntities = entities
		}
	}
}

// WithWorldEntity names the dataset row carrying global totals.
func WithWorldEntity(entity string) Option {
	return func(s *Service) {
		if entity != "" {
			s.worldEntity = entity
		}
	}
}

// WithAggregationToken sets the selection value that maps to the world series.
func WithAggregationToken(token string) Option {
	return func(s *Service) {
		if token != "" {
			s.aggregationToken = token
		}
	}
}

// WithLoader injects a pre-built loader. Tests use it to point the service
// at a local fixture server.
func WithLoader(l *source.Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}
