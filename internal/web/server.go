// Package web exposes the dashboard's request/response boundary over HTTP.
package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"StockBoard/internal/calculator"
	"StockBoard/internal/pipeline"
	"StockBoard/internal/telemetry"
)

// Server serves the dashboard API.
type Server struct {
	runner        *pipeline.Runner
	metrics       *telemetry.Metrics
	watch         []string
	defaultSymbol string
	reference     calculator.ReferenceMode
	server        *http.Server
}

// NewServer creates the HTTP server for the given pipeline runner.
func NewServer(addr string, runner *pipeline.Runner, metrics *telemetry.Metrics, watch []string, defaultSymbol string, reference calculator.ReferenceMode) *Server {
	s := &Server{
		runner:        runner,
		metrics:       metrics,
		watch:         watch,
		defaultSymbol: defaultSymbol,
		reference:     reference,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/watchlist", s.handleWatchlist)
	mux.HandleFunc("/api/periods", s.handlePeriods)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Handler exposes the route mux.
func (s *Server) Handler() http.Handler { return s.server.Handler }

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	log.Printf("[INFO] http server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] shutting down http server")
	return s.server.Shutdown(ctx)
}
