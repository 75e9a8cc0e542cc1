package probe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/carbonlens/carbonlens/internal/domain/model"
	"github.com/carbonlens/carbonlens/internal/domain/query"
	"github.com/carbonlens/carbonlens/internal/domain/types"
	"github.com/carbonlens/carbonlens/pkg/logger"
)

// unknownEntity is queried to confirm the no-data path.
const unknownEntity = "No Such Country"

// Run executes the complete probe sequence against a running instance.
func Run(ctx context.Context, cfg *Config) error {
	runID := uuid.NewString()
	log := logger.Get().Named("probe")
	start := time.Now()

	log.Info(ctx, "starting probe run",
		logger.String("runID", runID),
		logger.String("baseURL", cfg.BaseURL),
		logger.String("timeout", cfg.Timeout.String()))

	client := &http.Client{Timeout: cfg.Timeout}

	// Step 1: check the service is up.
	if err := checkHealth(ctx, client, cfg.BaseURL); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	// Step 2: dataset bounds.
	var years yearsResponse
	if err := getJSON(ctx, client, cfg.BaseURL+"/api/years", &years); err != nil {
		return fmt.Errorf("year bounds retrieval failed: %w", err)
	}
	if !years.HasData {
		log.Warn(ctx, "service reports an empty dataset; nothing to verify",
			logger.String("runID", runID))
		return nil
	}
	log.Info(ctx, "dataset bounds",
		logger.Int("min", years.Min),
		logger.Int("max", years.Max))

	// Step 3: entity catalog and selection.
	var entities []string
	if err := getJSON(ctx, client, cfg.BaseURL+"/api/entities", &entities); err != nil {
		return fmt.Errorf("entity catalog retrieval failed: %w", err)
	}
	sel, err := buildSelection(cfg, years, entities)
	if err != nil {
		return err
	}
	log.Info(ctx, "selection",
		logger.String("entity", sel.Entity),
		logger.Int("start", sel.StartYear),
		logger.Int("end", sel.EndYear))

	// Step 4: time series for the selection.
	slice, err := fetchTimeSeries(ctx, client, cfg.BaseURL, sel)
	if err != nil {
		return fmt.Errorf("time series retrieval failed: %w", err)
	}
	if err := verifyTimeSeries(slice, sel); err != nil {
		return fmt.Errorf("time series verification failed: %w", err)
	}
	log.Info(ctx, "time series verified", logger.Int("rows", len(slice)))

	// Step 5: summary consistency against the same slice.
	summary, err := fetchSummary(ctx, client, cfg.BaseURL, sel)
	if err != nil {
		return fmt.Errorf("summary retrieval failed: %w", err)
	}
	if err := verifySummary(slice, summary); err != nil {
		return fmt.Errorf("summary verification failed: %w", err)
	}
	log.Info(ctx, "summary verified")

	// Step 6: ranking snapshot at the dataset maximum year.
	ranking, err := fetchRanking(ctx, client, cfg.BaseURL, years.Max)
	if err != nil {
		return fmt.Errorf("ranking retrieval failed: %w", err)
	}
	if err := verifyRanking(ranking, query.DefaultRankingSize); err != nil {
		return fmt.Errorf("ranking verification failed: %w", err)
	}
	log.Info(ctx, "ranking verified", logger.Int("entries", len(ranking)))

	// Step 7: an unknown entity must report no data, not an error.
	unknown := types.Selection{Entity: unknownEntity, StartYear: sel.StartYear, EndYear: sel.EndYear}
	unknownSummary, err := fetchSummary(ctx, client, cfg.BaseURL, unknown)
	if err != nil {
		return fmt.Errorf("unknown entity retrieval failed: %w", err)
	}
	if unknownSummary.HasData {
		return fmt.Errorf("unknown entity %q reports data", unknownEntity)
	}
	log.Info(ctx, "no-data path verified")

	log.Info(ctx, "probe run completed",
		logger.String("runID", runID),
		logger.String("duration", time.Since(start).String()))
	return nil
}

// checkHealth verifies the service answers on /healthz.
func checkHealth(ctx context.Context, client *http.Client, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Any 200 is healthy; the endpoint serves Prometheus metrics.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

// buildSelection resolves the configured entity and interval against the
// catalog and dataset bounds.
func buildSelection(cfg *Config, years yearsResponse, entities []string) (types.Selection, error) {
	sel := types.Selection{
		Entity:    cfg.Entity,
		StartYear: cfg.StartYear,
		EndYear:   cfg.EndYear,
	}
	if sel.Entity == "" {
		// The catalog lists the aggregation token first; pick the first
		// real country after it.
		for _, entity := range entities {
			if entity != query.DefaultAggregationToken {
				sel.Entity = entity
				break
			}
		}
	}
	if sel.Entity == "" {
		return types.Selection{}, fmt.Errorf("entity catalog is empty")
	}
	if sel.StartYear == 0 {
		sel.StartYear = years.Min
	}
	if sel.EndYear == 0 {
		sel.EndYear = years.Max
	}
	if sel.StartYear > sel.EndYear {
		return types.Selection{}, fmt.Errorf("start year %d is after end year %d", sel.StartYear, sel.EndYear)
	}
	return sel, nil
}

func fetchTimeSeries(ctx context.Context, client *http.Client, baseURL string, sel types.Selection) ([]model.Observation, error) {
	var slice []model.Observation
	if err := getJSON(ctx, client, timeseriesURL(baseURL, "/api/timeseries", sel), &slice); err != nil {
		return nil, err
	}
	return slice, nil
}

func fetchSummary(ctx context.Context, client *http.Client, baseURL string, sel types.Selection) (summaryResponse, error) {
	var resp summaryResponse
	if err := getJSON(ctx, client, timeseriesURL(baseURL, "/api/summary", sel), &resp); err != nil {
		return summaryResponse{}, err
	}
	return resp, nil
}

func fetchRanking(ctx context.Context, client *http.Client, baseURL string, year int) ([]types.RankedEntry, error) {
	var entries []types.RankedEntry
	u := baseURL + "/api/ranking?year=" + strconv.Itoa(year)
	if err := getJSON(ctx, client, u, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// timeseriesURL builds a selection query URL for path.
func timeseriesURL(baseURL, path string, sel types.Selection) string {
	q := url.Values{}
	q.Set("entity", sel.Entity)
	q.Set("start", strconv.Itoa(sel.StartYear))
	q.Set("end", strconv.Itoa(sel.EndYear))
	return baseURL + path + "?" + q.Encode()
}
