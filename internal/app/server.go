package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 20 * time.Second
	idleTimeout     = 90 * time.Second
	shutdownTimeout = 15 * time.Second
)

// Server runs the HTTP listener and handles graceful shutdown on SIGINT
// and SIGTERM. Calculation requests are short-lived; the write timeout
// leaves headroom for catalog lookups against a slow database.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a Server listening on the given port.
func NewServer(handler http.Handler, port string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + port,
			Handler:        handler,
			ReadTimeout:    readTimeout,
			WriteTimeout:   writeTimeout,
			IdleTimeout:    idleTimeout,
			MaxHeaderBytes: 1 << 20,
		},
	}
}

// Run starts serving and blocks until a shutdown signal arrives or the
// listener fails.
func (s *Server) Run() error {
	serveErr := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-signals:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received, draining connections")
	}

	return s.Shutdown()
}

// Shutdown drains in-flight requests, forcing the close after the
// shutdown timeout.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown deadline exceeded, closing server")
		return err
	}

	log.Info().Msg("HTTP server stopped")
	return nil
}
