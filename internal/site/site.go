// Package site assembles the service's HTTP surface: health endpoints and
// the account routes, wrapped in the request middleware stack.
package site

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/forum/internal/accounts"
	"github.com/JaimeStill/forum/internal/config"
	"github.com/JaimeStill/forum/internal/routes"
	"github.com/JaimeStill/forum/pkg/middleware"
	pkgroutes "github.com/JaimeStill/forum/pkg/routes"
)

// Site is the registered route table and the handler built from it.
type Site struct {
	Routes  pkgroutes.System
	Handler http.Handler
}

// New registers every route and builds the handler. Configuration errors,
// such as a missing controller or an invalid pattern, are returned here
// rather than on the first request.
func New(runtime *Runtime, cfg *config.Config) (*Site, error) {
	domain := NewDomain(runtime, &cfg.Accounts)

	r := routes.New(runtime.Logger, routes.WithNotFound(handleNotFound))
	if err := registerRoutes(r, runtime, domain, cfg); err != nil {
		return nil, err
	}

	h, err := r.Build()
	if err != nil {
		return nil, fmt.Errorf("build routes: %w", err)
	}

	mw := buildMiddleware(runtime, cfg)
	return &Site{Routes: r, Handler: mw.Apply(h)}, nil
}

func buildMiddleware(runtime *Runtime, cfg *config.Config) middleware.System {
	sys := middleware.New()
	sys.Use(middleware.RequestID())
	sys.Use(middleware.TrimSlash())
	sys.Use(middleware.Logger(runtime.Logger))
	if prefix := cfg.Accounts.APIPrefixValue(); prefix != "" {
		sys.Use(accounts.MarkAPI(prefix))
	}
	return sys
}
