// Package api exposes the analytics pipelines over HTTP. The surface is a
// thin adapter: every route resolves a user, runs one engine pipeline, and
// writes the result object as JSON.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lenahart/ledgerlens/internal/engine"
)

// Server hosts the HTTP API.
type Server struct {
	engine *engine.Engine
	http   *http.Server
}

// NewServer creates an API server bound to addr.
func NewServer(addr string, eng *engine.Engine) *Server {
	s := &Server{engine: eng}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /visualize", s.handleVisualize)
	mux.HandleFunc("GET /budget", s.handleBudget)
	mux.HandleFunc("GET /insights", s.handleInsights)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
	}

	return s
}

// ListenAndServe blocks serving requests until the context is canceled,
// then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		slog.Info("API server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
