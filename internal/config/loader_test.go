package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/carbonlens/carbonlens/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.FetchTimeoutSec, convey.ShouldEqual, 60)
				convey.So(cfg.RankingSize, convey.ShouldEqual, 10)
				convey.So(cfg.WorldEntity, convey.ShouldEqual, "World")
				convey.So(cfg.AggregationToken, convey.ShouldEqual, "Global")
				convey.So(cfg.DataURL, convey.ShouldContainSubstring, "owid-co2-data.csv")
				convey.So(cfg.ExcludedEntities, convey.ShouldContain, "International Transport")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CARBONLENS_ADDR", ":9090")
			_ = os.Setenv("CARBONLENS_DATA_URL", "http://localhost:7000/data.csv")
			_ = os.Setenv("CARBONLENS_FETCH_TIMEOUT_SEC", "30")
			_ = os.Setenv("CARBONLENS_RANKING_SIZE", "5")
			_ = os.Setenv("CARBONLENS_LOG_LEVEL", "debug")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DataURL, convey.ShouldEqual, "http://localhost:7000/data.csv")
				convey.So(cfg.FetchTimeoutSec, convey.ShouldEqual, 30)
				convey.So(cfg.RankingSize, convey.ShouldEqual, 5)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":7070"
data_url: "http://example.com/export.csv"
fetch_timeout_sec: 45
ranking_size: 15
world_entity: "Earth"
aggregation_token: "Total"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CARBONLENS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.DataURL, convey.ShouldEqual, "http://example.com/export.csv")
				convey.So(cfg.FetchTimeoutSec, convey.ShouldEqual, 45)
				convey.So(cfg.RankingSize, convey.ShouldEqual, 15)
				convey.So(cfg.WorldEntity, convey.ShouldEqual, "Earth")
				convey.So(cfg.AggregationToken, convey.ShouldEqual, "Total")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":7070"
ranking_size: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CARBONLENS_CONFIG", tmpFile)
			_ = os.Setenv("CARBONLENS_ADDR", ":9090") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")    // Overridden by env
				convey.So(cfg.RankingSize, convey.ShouldEqual, 15) // From file
				convey.So(cfg.FetchTimeoutSec, convey.ShouldEqual, 60) // From defaults
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CARBONLENS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("CARBONLENS_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("CARBONLENS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a non-positive ranking size", func() {
			_ = os.Setenv("CARBONLENS_RANKING_SIZE", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "ranking_size")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a non-positive fetch timeout", func() {
			_ = os.Setenv("CARBONLENS_FETCH_TIMEOUT_SEC", "-5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an invalid numeric value", func() {
			_ = os.Setenv("CARBONLENS_RANKING_SIZE", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a partial YAML file", func() {
			yamlContent := `
ranking_size: 20
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CARBONLENS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.RankingSize, convey.ShouldEqual, 20) // From file
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")   // From defaults
				convey.So(cfg.WorldEntity, convey.ShouldEqual, "World")
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"CARBONLENS_CONFIG",
		"CARBONLENS_ADDR",
		"CARBONLENS_LOG_LEVEL",
		"CARBONLENS_DATA_URL",
		"CARBONLENS_FETCH_TIMEOUT_SEC",
		"CARBONLENS_RANKING_SIZE",
		"CARBONLENS_WORLD_ENTITY",
		"CARBONLENS_AGGREGATION_TOKEN",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "carbonlens-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
