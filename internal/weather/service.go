// Package weather wires the suffix parser, the provider client, and the
// search history into the lookup operation the HTTP handlers call.
package weather

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Ptuyizere/weatherapp-vercel/internal/domain"
	"github.com/Ptuyizere/weatherapp-vercel/internal/observability"
)

// Provider returns current conditions for a city name.
type Provider interface {
	CurrentByCity(ctx context.Context, city string) (domain.Observation, error)
}

// Recorder persists one search outcome.
type Recorder interface {
	Record(ctx context.Context, city string, detail domain.Detail, succeeded bool) error
}

// Fetcher resolves weather reports: one provider call per invocation, no
// retries, no caching.
type Fetcher struct {
	provider Provider
	history  Recorder // nil when search history is disabled
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewFetcher creates a Fetcher. history may be nil.
func NewFetcher(provider Provider, history Recorder, metrics *observability.Metrics, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		provider: provider,
		history:  history,
		metrics:  metrics,
		logger:   logger,
	}
}

// Lookup runs the full path for one raw user input: trim whitespace, parse
// the detail suffix, fetch, project. The returned query carries the stripped
// city name and detail level even when the fetch fails.
func (f *Fetcher) Lookup(ctx context.Context, rawInput string) (domain.LocationQuery, domain.Report, error) {
	q := domain.Parse(strings.TrimSpace(rawInput))
	report, err := f.Fetch(ctx, q.Name, q.Detail)
	return q, report, err
}

// Fetch retrieves current conditions for name (lowercased first) and projects
// them onto the report shape for detail. Every failure (unknown city,
// transport error, bad credentials) comes back as a *domain.LookupError with
// the single user-facing message; the cause is logged here.
func (f *Fetcher) Fetch(ctx context.Context, name string, detail domain.Detail) (domain.Report, error) {
	city := strings.ToLower(name)

	obs, err := f.provider.CurrentByCity(ctx, city)
	if err != nil {
		f.logger.Warn("weather lookup failed", "city", city, "detail", detail.String(), "error", err)
		f.metrics.Lookups.WithLabelValues(detail.String(), "error").Inc()
		f.record(ctx, city, detail, false)
		return nil, &domain.LookupError{City: city, Cause: err}
	}

	f.metrics.Lookups.WithLabelValues(detail.String(), "success").Inc()
	f.record(ctx, city, detail, true)
	return domain.Project(obs, detail), nil
}

// record writes the search to history, best-effort: a failed insert is logged
// and counted but never fails the lookup.
func (f *Fetcher) record(ctx context.Context, city string, detail domain.Detail, succeeded bool) {
	if f.history == nil {
		return
	}
	if err := f.history.Record(ctx, city, detail, succeeded); err != nil {
		f.logger.Warn("history write failed", "city", city, "error", err)
		f.metrics.HistoryWrites.WithLabelValues("error").Inc()
		return
	}
	f.metrics.HistoryWrites.WithLabelValues("success").Inc()
}
