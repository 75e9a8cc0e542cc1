// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataURL locates the emissions CSV export.
	DataURL string `koanf:"data_url"`

	// FetchTimeoutSec bounds the one-shot dataset download.
	FetchTimeoutSec int `koanf:"fetch_timeout_sec"`

	// RankingSize sets how many entries the top-emitters snapshot holds.
	RankingSize int `koanf:"ranking_size"`

	// ExcludedEntities are aggregate rows hidden from the ranking snapshot.
	ExcludedEntities []string `koanf:"excluded_entities"`

	// WorldEntity names the dataset row carrying global totals.
	WorldEntity string `koanf:"world_entity"`

	// AggregationToken is the selection value that maps to the world series.
	AggregationToken string `koanf:"aggregation_token"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8080",
		DataURL:         "https://raw.githubusercontent.com/owid/co2-data/master/owid-co2-data.csv",
		FetchTimeoutSec: 60,
		RankingSize:     10,
		ExcludedEntities: []string{
			"World",
			"International Transport",
			"Oceania",
			"Asia",
			"Europe",
			"Africa",
		},
		WorldEntity:      "World",
		AggregationToken: "Global",
	}
}
