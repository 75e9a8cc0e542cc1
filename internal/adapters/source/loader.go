// Package source loads the remote emissions CSV into domain observations.
//
// The dataset is fetched at most once per process. A transport failure
// degrades to an empty dataset (logged, not fatal) so the service starts and
// renders placeholders; a schema failure propagates because serving a
// silently wrong dataset is worse than not serving one.
package source

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/carbonlens/carbonlens/internal/domain/model"
	"github.com/carbonlens/carbonlens/pkg/logger"
	"github.com/carbonlens/carbonlens/pkg/metrics"
)

// DefaultDataURL is the Our World in Data CO2 dataset.
const DefaultDataURL = "https://raw.githubusercontent.com/owid/co2-data/master/owid-co2-data.csv"

// DefaultFetchTimeout bounds the one-shot dataset download.
const DefaultFetchTimeout = 60 * time.Second

// Loader fetches and parses the dataset, memoizing the result for the
// process lifetime. The zero value is not usable; construct with New.
type Loader struct {
	url     string
	client  *http.Client
	timeout time.Duration

	once         sync.Once
	observations []model.Observation
	err          error
}

// New constructs a Loader with default configuration.
func New(opts ...Option) *Loader {
	l := &Loader{
		url:     DefaultDataURL,
		timeout: DefaultFetchTimeout,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.client == nil {
		l.client = &http.Client{Timeout: l.timeout}
	}
	return l
}

// Load returns the dataset, fetching it on first call. Subsequent calls
// return the memoized result without re-fetching; the sync.Once guard keeps
// concurrent first callers from racing duplicate downloads. The context of
// the winning first call drives the fetch.
//
// A transport failure yields an empty dataset and a nil error; callers must
// check emptiness and degrade gracefully. A schema failure yields an error.
func (l *Loader) Load(ctx context.Context) ([]model.Observation, error) {
	l.once.Do(func() {
		l.observations, l.err = l.fetch(ctx)
	})
	return l.observations, l.err
}

// fetch downloads and parses the CSV once.
func (l *Loader) fetch(ctx context.Context) ([]model.Observation, error) {
	log := logger.Get()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		// Degrade to empty: the dashboard renders placeholders instead of
		// crashing when the source is unreachable.
		metrics.RecordDatasetLoadFailure()
		log.Warn(ctx, "dataset fetch failed; continuing with empty dataset",
			logger.String("url", l.url),
			logger.Error(fmt.Errorf("%w: %v", ErrFetch, err)),
		)
		return []model.Observation{}, nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RecordDatasetLoadFailure()
		log.Warn(ctx, "dataset fetch returned non-2xx; continuing with empty dataset",
			logger.String("url", l.url),
			logger.Int("status", resp.StatusCode),
		)
		return []model.Observation{}, nil
	}

	observations, err := parseCSV(ctx, resp.Body)
	if err != nil {
		metrics.RecordDatasetLoadFailure()
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RecordDatasetLoadDuration(float64(elapsed.Milliseconds()))
	log.Info(ctx, "dataset loaded",
		logger.String("url", l.url),
		logger.Int("rows", len(observations)),
		logger.String("elapsed", elapsed.String()),
	)
	return observations, nil
}
