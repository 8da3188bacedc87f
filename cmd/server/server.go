package main

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/forum/internal/config"
	"github.com/JaimeStill/forum/internal/server"
	"github.com/JaimeStill/forum/internal/site"
	"github.com/JaimeStill/forum/pkg/logging"
)

// Server coordinates the lifecycle of the HTTP surface.
type Server struct {
	logger *slog.Logger
	http   server.System
}

// NewServer builds the site and the HTTP server around it.
func NewServer(cfg *config.Config) (*Server, error) {
	logger := logging.New(&cfg.Logging, nil)
	s := &Server{logger: logger}

	runtime := site.NewRuntime(logger, nil, s.ready)
	st, err := site.New(runtime, cfg)
	if err != nil {
		return nil, err
	}

	s.http = server.New(&cfg.Server, st.Handler, logger)

	logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"routes", len(st.Routes.Routes()),
		"accounts", cfg.Accounts.Name,
	)

	return s, nil
}

// Start begins serving requests.
func (s *Server) Start() error {
	s.logger.Info("starting server")
	return s.http.Start()
}

// Shutdown gracefully stops the server within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("initiating shutdown")
	return s.http.Shutdown(ctx)
}

func (s *Server) ready() bool {
	return s.http != nil && s.http.Ready()
}
