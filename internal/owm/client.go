// Package owm is the OpenWeatherMap adapter: one GET against the
// "current weather by city name" endpoint, decoded into a domain.Observation.
package owm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Ptuyizere/weatherapp-vercel/internal/domain"
	"github.com/Ptuyizere/weatherapp-vercel/internal/observability"
)

// Client fetches current weather conditions from the OpenWeatherMap API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client. baseURL points at the
// "/data/2.5" API root and is overridable for tests and proxies.
func NewClient(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// CurrentByCity fetches the current conditions for a city name, metric units.
// The city is sent exactly as given; callers normalize case beforehand.
func (c *Client) CurrentByCity(ctx context.Context, city string) (domain.Observation, error) {
	params := url.Values{
		"q":     {city},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	fullURL := c.baseURL + "/weather?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues("error").Inc()
		return domain.Observation{}, fmt.Errorf("current weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ProviderRequests.WithLabelValues("error").Inc()
		return domain.Observation{}, fmt.Errorf("openweathermap API error: status %d: %s", resp.StatusCode, body)
	}

	var owmResp response
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		c.metrics.ProviderRequests.WithLabelValues("error").Inc()
		return domain.Observation{}, fmt.Errorf("decode response: %w", err)
	}

	c.metrics.ProviderRequests.WithLabelValues("success").Inc()

	obs := domain.Observation{
		Latitude:    owmResp.Coord.Lat,
		Longitude:   owmResp.Coord.Lon,
		Timezone:    owmResp.Timezone,
		ObservedAt:  owmResp.Dt,
		Temperature: owmResp.Main.Temp,
		FeelsLike:   owmResp.Main.FeelsLike,
		Pressure:    owmResp.Main.Pressure,
		Humidity:    owmResp.Main.Humidity,
		Visibility:  owmResp.Visibility,
		WindSpeed:   owmResp.Wind.Speed,
	}
	if len(owmResp.Weather) > 0 {
		obs.Description = owmResp.Weather[0].Description
	}
	return obs, nil
}

// OpenWeatherMap API response types.

type response struct {
	Coord      coord       `json:"coord"`
	Weather    []condition `json:"weather"`
	Main       mainBlock   `json:"main"`
	Visibility int         `json:"visibility"`
	Wind       wind        `json:"wind"`
	Dt         int64       `json:"dt"`
	Timezone   int         `json:"timezone"` // UTC offset in seconds
}

type coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type condition struct {
	Description string `json:"description"`
}

type mainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type wind struct {
	Speed float64 `json:"speed"`
}
