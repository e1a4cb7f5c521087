package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Defaults are the values used when a request leaves them out.
type Defaults struct {
	Locale         string
	Currency       string
	ContrastTarget float64
}

// service represents the HTTP service.
type service struct {
	Host     string
	Port     int
	defaults Defaults
	mu       sync.Mutex
	server   *http.Server
	registry *prometheus.Registry
	metrics  *metrics
	log      *slog.Logger
}

// New creates a new service instance.
func New(host string, port int, defaults Defaults) *service {
	reg := prometheus.NewRegistry()
	return &service{
		Host:     host,
		Port:     port,
		defaults: defaults,
		registry: reg,
		metrics:  newMetrics(reg),
		log:      slog.Default().With("component", "service"),
	}
}

// Handler returns the routed API, including /metrics.
func (s *service) Handler() http.Handler {
	mux := http.NewServeMux()
	s.handle(mux, "GET /api/health", s.handleHealth)
	s.handle(mux, "GET /api/contrast", s.handleContrast)
	s.handle(mux, "GET /api/palette/{kind}", s.handlePalette)
	s.handle(mux, "POST /api/audit", s.handleAudit)
	s.handle(mux, "GET /api/ticks", s.handleTicks)
	s.handle(mux, "GET /api/layout/margins", s.handleMargins)
	s.handle(mux, "GET /api/layout/grid", s.handleGrid)
	s.handle(mux, "GET /api/format/number", s.handleFormatNumber)
	s.handle(mux, "GET /api/tokens", s.handleTokens)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// Start runs the HTTP server.
func (s *service) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	s.log.Info("Starting HTTP service", "address", addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 3 * time.Second,
	}
	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()
	return srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()
	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}

func (s *service) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("Failed to encode response", "error", err)
	}
}

func (s *service) fail(w http.ResponseWriter, status int, err error) {
	s.log.Debug("Request rejected", "status", status, "error", err)
	s.respond(w, status, map[string]string{"error": err.Error()})
}
