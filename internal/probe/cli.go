package probe

import (
	"fmt"
	"os"

	"github.com/carbonlens/carbonlens/pkg/logger"
)

// SetupLogging initializes the shared logger for a probe run.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		if err := logger.SetLevelString("debug"); err != nil {
			return fmt.Errorf("failed to set log level: %w", err)
		}
	}
	return nil
}

// ShowHelp prints usage information for the probe tool.
func ShowHelp() {
	os.Stdout.WriteString(`CarbonLens Probe Tool
=====================

Queries a running CarbonLens instance and verifies the invariants its
read API promises: ascending time series, bounded intervals, descending
rankings without aggregate entities, and consistent summary arithmetic.

Usage:
  go run cmd/probe/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -entity string
        Entity to query (default: first country from the catalog)
  -start int
        Start year of the selection (default: dataset minimum)
  -end int
        End year of the selection (default: dataset maximum)
  -timeout duration
        HTTP request timeout (default 30s)
  -generate string
        Write a synthetic CSV dataset to this path and exit
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Probe a local instance with defaults
  go run cmd/probe/main.go

  # Probe a specific entity and interval
  go run cmd/probe/main.go -entity "United States" -start 2000 -end 2020

  # Generate a local CSV fixture for offline runs
  go run cmd/probe/main.go -generate testdata/emissions.csv
`)
}
