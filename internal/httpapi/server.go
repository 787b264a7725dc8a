// Package httpapi serves the city lookup page, a JSON API mirroring it, and
// the health and metrics endpoints.
package httpapi

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ptuyizere/weatherapp-vercel/internal/domain"
	"github.com/Ptuyizere/weatherapp-vercel/internal/history"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Lookuper runs the trim-parse-fetch path for one raw user input.
type Lookuper interface {
	Lookup(ctx context.Context, rawInput string) (domain.LocationQuery, domain.Report, error)
}

// HistoryReader lists recent searches and reports store health.
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]history.Search, error)
	Ping(ctx context.Context) error
}

// Server exposes the lookup page, JSON API, health, readiness, and metrics routes.
type Server struct {
	httpServer   *http.Server
	fetcher      Lookuper
	history      HistoryReader // nil when search history is disabled
	historyLimit int
	logger       *slog.Logger
}

// NewServer creates the HTTP server and mounts all routes. hist may be nil.
func NewServer(addr string, fetcher Lookuper, hist HistoryReader, historyLimit int, logger *slog.Logger) *Server {
	s := &Server{
		fetcher:      fetcher,
		history:      hist,
		historyLimit: historyLimit,
		logger:       logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleLookupForm)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/weather", s.handleWeatherAPI)
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// indexData is the template payload for the lookup page.
type indexData struct {
	City      string
	HasReport bool
	Fields    []domain.Field
	Error     string
	Recent    []history.Search
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, r, indexData{})
}

func (s *Server) handleLookupForm(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("city")

	data := indexData{City: raw}
	_, report, err := s.fetcher.Lookup(r.Context(), raw)
	if err != nil {
		data.Error = err.Error()
	} else {
		data.HasReport = true
		data.Fields = report.Fields()
	}

	s.renderIndex(w, r, data)
}

func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request, data indexData) {
	if s.history != nil {
		recent, err := s.history.Recent(r.Context(), s.historyLimit)
		if err != nil {
			s.logger.Warn("listing recent searches failed", "error", err)
		} else {
			data.Recent = recent
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index failed", "error", err)
	}
}

func (s *Server) handleWeatherAPI(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("city")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query parameter 'city' is required"})
		return
	}

	_, report, err := s.fetcher.Lookup(r.Context(), raw)
	if err != nil {
		var lookupErr *domain.LookupError
		if errors.As(err, &lookupErr) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": lookupErr.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if s.history != nil {
		if err := s.history.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
