// Package server provides HTTP server lifecycle management with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/JaimeStill/forum/internal/config"
)

// System manages the HTTP server lifecycle including startup and shutdown.
type System interface {
	Start() error
	Shutdown(ctx context.Context) error
	Ready() bool
	Addr() string
}

type server struct {
	http   *http.Server
	logger *slog.Logger
	addr   atomic.Value
	ready  atomic.Bool
}

// New creates a server system with the specified configuration, handler, and logger.
func New(cfg *config.ServerConfig, handler http.Handler, logger *slog.Logger) System {
	s := &server{
		http: &http.Server{
			Addr:           cfg.Addr(),
			Handler:        handler,
			ReadTimeout:    cfg.ReadTimeoutDuration(),
			WriteTimeout:   cfg.WriteTimeoutDuration(),
			IdleTimeout:    cfg.IdleTimeoutDuration(),
			MaxHeaderBytes: cfg.MaxHeaderBytesValue(),
		},
		logger: logger,
	}
	s.addr.Store(cfg.Addr())
	return s
}

// Start binds the listener and serves in the background. Bind errors are
// returned; serve errors after start are logged.
func (s *server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	s.addr.Store(ln.Addr().String())
	s.ready.Store(true)

	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	return nil
}

// Shutdown stops accepting requests and waits for in-flight requests until
// ctx is done.
func (s *server) Shutdown(ctx context.Context) error {
	s.ready.Store(false)
	s.logger.Info("shutting down server")

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("server shutdown error", "error", err)
		return err
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Ready reports whether the server is accepting requests.
func (s *server) Ready() bool {
	return s.ready.Load()
}

// Addr returns the bound address once started, the configured one before.
func (s *server) Addr() string {
	return s.addr.Load().(string)
}
