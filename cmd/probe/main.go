package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/carbonlens/carbonlens/internal/probe"
)

// Default configuration constants.
const (
	defaultTimeout  = 30 * time.Second
	defaultRunLimit = 5 * time.Minute
)

func main() {
	var (
		baseURL      = flag.String("url", probe.DefaultBaseURL, "Base URL of the service")
		entity       = flag.String("entity", "", "Entity to query (default: first country from the catalog)")
		startYear    = flag.Int("start", 0, "Start year of the selection (default: dataset minimum)")
		endYear      = flag.Int("end", 0, "End year of the selection (default: dataset maximum)")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		generatePath = flag.String("generate", "", "Write a synthetic CSV dataset to this path and exit")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp()
		return
	}

	if err := probe.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	if *generatePath != "" {
		if err := probe.WriteFixture(*generatePath); err != nil {
			os.Stderr.WriteString("Fixture generation failed: " + err.Error() + "\n")
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunLimit)
	defer cancel()

	cfg := probe.NewConfig()
	cfg.BaseURL = *baseURL
	cfg.Entity = *entity
	cfg.StartYear = *startYear
	cfg.EndYear = *endYear
	cfg.Timeout = *timeout
	cfg.Verbose = *verbose

	if err := probe.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
