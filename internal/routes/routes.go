// Package routes provides the chi-backed route table used by the service.
package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	pkgroutes "github.com/JaimeStill/forum/pkg/routes"
)

type routes struct {
	routes   []pkgroutes.Route
	mounts   []pkgroutes.Mount
	notFound http.HandlerFunc
	logger   *slog.Logger
}

// Option configures the route system.
type Option func(*routes)

// WithNotFound sets the handler for paths no route matches.
func WithNotFound(h http.HandlerFunc) Option {
	return func(r *routes) {
		r.notFound = h
	}
}

// New creates a route system with the specified logger.
func New(logger *slog.Logger, opts ...Option) pkgroutes.System {
	r := &routes{
		logger: logger,
		routes: []pkgroutes.Route{},
		mounts: []pkgroutes.Mount{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *routes) Routes() []pkgroutes.Route {
	out := make([]pkgroutes.Route, len(r.routes))
	copy(out, r.routes)
	return out
}

func (r *routes) Mounts() []pkgroutes.Mount {
	out := make([]pkgroutes.Mount, len(r.mounts))
	copy(out, r.mounts)
	return out
}

// Handle appends a route entry. Patterns are validated by Build.
func (r *routes) Handle(method, pattern string, chain *pkgroutes.Chain, handler http.HandlerFunc) {
	r.routes = append(r.routes, pkgroutes.Route{
		Method:  method,
		Pattern: pattern,
		Chain:   chain,
		Handler: handler,
	})
	r.logger.Debug("route registered", "method", method, "pattern", pattern, "chain", chain.String())
}

func (r *routes) Get(pattern string, chain *pkgroutes.Chain, handler http.HandlerFunc) {
	r.Handle(http.MethodGet, pattern, chain, handler)
}

// Use appends a prefix mount answering every method.
func (r *routes) Use(prefix string, handler http.HandlerFunc) {
	r.mounts = append(r.mounts, pkgroutes.Mount{Prefix: prefix, Handler: handler})
	r.logger.Debug("mount registered", "prefix", prefix)
}

// RegisterGroup appends every route of the group with its full pattern.
func (r *routes) RegisterGroup(group pkgroutes.Group) {
	for _, route := range group.Flatten() {
		r.Handle(route.Method, route.Pattern, route.Chain, route.Handler)
	}
}

// Build constructs an http.Handler from all registered routes and mounts.
// The first entry registered for a method and pattern is dispatched; later
// duplicates are logged and skipped.
func (r *routes) Build() (http.Handler, error) {
	mux := chi.NewRouter()
	mux.Use(chimiddleware.RealIP, chimiddleware.Recoverer, chimiddleware.GetHead)

	seen := make(map[string]string)

	for _, route := range r.routes {
		if route.Handler == nil {
			return nil, fmt.Errorf("route %s %s: nil handler", route.Method, route.Pattern)
		}
		pattern, err := pkgroutes.ParsePattern(route.Pattern)
		if err != nil {
			return nil, fmt.Errorf("route %s %s: %w", route.Method, route.Pattern, err)
		}

		endpoint := route.Endpoint()
		for _, expanded := range pattern.Expand() {
			key := route.Method + " " + expanded
			if first, ok := seen[key]; ok {
				r.logger.Warn(
					"route shadowed by earlier registration",
					"method", route.Method,
					"pattern", route.Pattern,
					"shadowed_by", first,
				)
				continue
			}
			seen[key] = route.Pattern
			if err := mount(func() { mux.Method(route.Method, expanded, endpoint) }); err != nil {
				return nil, fmt.Errorf("route %s %s: %w", route.Method, route.Pattern, err)
			}
		}
	}

	for _, m := range r.mounts {
		if m.Handler == nil {
			return nil, fmt.Errorf("mount %s: nil handler", m.Prefix)
		}
		prefix := strings.TrimRight(m.Prefix, "/")
		if _, err := pkgroutes.ParsePattern(orRoot(prefix)); err != nil {
			return nil, fmt.Errorf("mount %s: %w", m.Prefix, err)
		}

		for _, expanded := range []string{orRoot(prefix), prefix + "/*"} {
			key := "* " + expanded
			if first, ok := seen[key]; ok {
				r.logger.Warn("mount shadowed by earlier registration", "prefix", m.Prefix, "shadowed_by", first)
				continue
			}
			seen[key] = m.Prefix
			if err := mount(func() { mux.Handle(expanded, m.Handler) }); err != nil {
				return nil, fmt.Errorf("mount %s: %w", m.Prefix, err)
			}
		}
	}

	if r.notFound != nil {
		mux.NotFound(r.notFound)
	}

	r.logger.Info("routes built", "routes", len(r.routes), "mounts", len(r.mounts))
	return mux, nil
}

// mount converts a chi registration panic into an error.
func mount(register func()) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()
	register()
	return nil
}

func orRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
