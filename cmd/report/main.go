// Command report fetches one weather report from the command line, using the
// same configuration and lookup path as the server. Handy for checking an API
// key or inspecting the exact projected shapes.
//
// Usage:
//
//	WEATHER_API_KEY=... go run ./cmd/report "London++"
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/Ptuyizere/weatherapp-vercel/internal/config"
	"github.com/Ptuyizere/weatherapp-vercel/internal/observability"
	"github.com/Ptuyizere/weatherapp-vercel/internal/owm"
	"github.com/Ptuyizere/weatherapp-vercel/internal/weather"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, `usage: report "<city>[+|++]"`)
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}

func run(input string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()

	provider := owm.NewClient(cfg.APIKey, cfg.OWMBaseURL, cfg.OWMTimeout, metrics, logger)
	fetcher := weather.NewFetcher(provider, nil, metrics, logger)

	q, report, err := fetcher.Lookup(context.Background(), input)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n%s\n", q.Name, q.Detail, out)
	return nil
}
