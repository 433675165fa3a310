// Package api serves the monitor state over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/rustyeddy/etfmon/monitor"
)

// State is what the server exposes: the latest snapshot and the
// activity log. *monitor.Monitor satisfies it.
type State interface {
	Snapshot() *monitor.Snapshot
	Events() []monitor.Event
}

// Server exposes the dashboard endpoints.
type Server struct {
	state  State
	logger zerolog.Logger
	server *http.Server
}

func New(addr string, state State, logger zerolog.Logger) *Server {
	s := &Server{state: state, logger: logger}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/monitor-log", s.handleMonitorLog)
	})
	return r
}

// ListenAndServe blocks until the context is cancelled, then shuts the
// server down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.server.Addr).Msg("api listening")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]any{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	snap := s.state.Snapshot()
	if snap == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]any{"error": "no run completed yet"})
		return
	}
	s.writeJSON(w, snap)
}

func (s *Server) handleMonitorLog(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]any{"events": s.state.Events()})
}

func (s *Server) writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}
