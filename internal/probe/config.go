// Package probe is a self-verification tool: it queries a running
// CarbonLens instance and checks the invariants the read API promises
// (ordering, bounds, exclusions, summary arithmetic). It can also generate
// a synthetic CSV dataset to serve as a local fixture source.
package probe

import "time"

// Default probe settings.
const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 30 * time.Second
)

// Config holds the probe run parameters.
type Config struct {
	// BaseURL of the service under test.
	BaseURL string

	// Entity to query; empty picks the first non-token entity from the
	// catalog.
	Entity string

	// StartYear and EndYear bound the selection; zero values fall back to
	// the dataset bounds reported by /api/years.
	StartYear int
	EndYear   int

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// GeneratePath, when set, writes a synthetic CSV dataset to this path
	// and exits without probing.
	GeneratePath string

	// Verbose enables debug logging.
	Verbose bool
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}
