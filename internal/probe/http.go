package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carbonlens/carbonlens/internal/domain/types"
)

// summaryResponse mirrors the API wire shape for GET /api/summary.
type summaryResponse struct {
	HasData bool           `json:"has_data"`
	Summary *types.Summary `json:"summary,omitempty"`
}

// yearsResponse mirrors the API wire shape for GET /api/years.
type yearsResponse struct {
	HasData bool `json:"has_data"`
	Min     int  `json:"min"`
	Max     int  `json:"max"`
}

// getJSON fetches url and decodes the response body into out.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("get %s: status %d: %s", url, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
