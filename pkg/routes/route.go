// Package routes defines the route table: registered entries, named
// middleware chains, and the System that turns the table into an
// http.Handler.
package routes

import (
	"net/http"

	"github.com/JaimeStill/forum/pkg/middleware"
)

// Route is a single registered entry. Entries are immutable once registered.
type Route struct {
	Method  string
	Pattern string
	Chain   *Chain
	Handler http.HandlerFunc
}

// Endpoint returns the route handler wrapped in its chain.
func (r Route) Endpoint() http.Handler {
	return r.Chain.Then(r.Handler)
}

// Mount is a prefix registration. The handler answers every method for the
// prefix itself and every path below it.
type Mount struct {
	Prefix  string
	Handler http.HandlerFunc
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Flatten returns the group's routes with full patterns, parents first.
func (g Group) Flatten() []Route {
	return g.flatten("")
}

func (g Group) flatten(parent string) []Route {
	prefix := parent + g.Prefix
	out := make([]Route, 0, len(g.Routes))
	for _, r := range g.Routes {
		r.Pattern = prefix + r.Pattern
		out = append(out, r)
	}
	for _, child := range g.Children {
		out = append(out, child.flatten(prefix)...)
	}
	return out
}

// Chain is a named, ordered middleware sequence. Routes share chains by
// pointer, so two entries use the same chain exactly when their Chain
// fields are equal.
type Chain struct {
	Name       string
	Middleware middleware.Chain
}

// NewChain creates a named chain.
func NewChain(name string, mw ...middleware.Middleware) *Chain {
	return &Chain{Name: name, Middleware: append(middleware.Chain{}, mw...)}
}

// Extend returns a new chain running c's middleware followed by mw.
// c is left unchanged.
func (c *Chain) Extend(name string, mw ...middleware.Middleware) *Chain {
	out := make(middleware.Chain, 0, c.Len()+len(mw))
	if c != nil {
		out = append(out, c.Middleware...)
	}
	return &Chain{Name: name, Middleware: append(out, mw...)}
}

// Len reports the number of middleware in the chain. A nil chain is empty.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Middleware)
}

// Then wraps h with the chain. A nil chain returns h unchanged.
func (c *Chain) Then(h http.Handler) http.Handler {
	if c == nil {
		return h
	}
	return c.Middleware.Then(h)
}

func (c *Chain) String() string {
	if c == nil {
		return "-"
	}
	return c.Name
}
