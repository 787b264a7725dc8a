package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// OpenWeatherMap provider configuration. An empty APIKey is deliberately
	// not an error here: it surfaces as an authentication failure from the
	// provider, which folds into the normal lookup-failure path.
	APIKey     string
	OWMBaseURL string
	OWMTimeout time.Duration

	// Search-history configuration.
	HistoryEnabled bool
	HistoryDBPath  string
	HistoryLimit   int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	owmTimeout, err := parseDuration("OWM_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	historyEnabled := true
	if v := os.Getenv("HISTORY_ENABLED"); v != "" {
		historyEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		APIKey:     os.Getenv("WEATHER_API_KEY"),
		OWMBaseURL: envOrDefault("OWM_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		OWMTimeout: owmTimeout,

		HistoryEnabled: historyEnabled,
		HistoryDBPath:  envOrDefault("HISTORY_DB_PATH", "weatherapp.db"),
		HistoryLimit:   parseHistoryLimit(),
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.OWMBaseURL == "" {
		return nil, errors.New("OWM_BASE_URL is required")
	}
	if cfg.HistoryEnabled && cfg.HistoryDBPath == "" {
		return nil, errors.New("HISTORY_ENABLED is true but HISTORY_DB_PATH is not set")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseHistoryLimit() int {
	if s := os.Getenv("HISTORY_LIMIT"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 10
}
