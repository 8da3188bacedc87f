// Package middleware provides HTTP middleware composition and the
// request-scoped middleware shared by every route.
package middleware

import "net/http"

// Middleware wraps an http.Handler. A middleware may answer the request
// itself, in which case later middleware and the handler do not run.
type Middleware func(http.Handler) http.Handler

// Chain is an ordered middleware sequence. The first element is the
// outermost wrapper and sees the request first.
type Chain []Middleware

// Then wraps h with every middleware in the chain.
func (c Chain) Then(h http.Handler) http.Handler {
	for i := len(c) - 1; i >= 0; i-- {
		h = c[i](h)
	}
	return h
}

// ThenFunc is Then for an http.HandlerFunc.
func (c Chain) ThenFunc(h http.HandlerFunc) http.Handler {
	return c.Then(h)
}

// System accumulates middleware applied around a whole handler tree.
type System interface {
	Use(mw Middleware)
	Apply(h http.Handler) http.Handler
	Chain() Chain
}

type system struct {
	stack Chain
}

// New creates an empty middleware system.
func New() System {
	return &system{stack: Chain{}}
}

// Use appends mw to the stack. Middleware run in the order they were added.
func (s *system) Use(mw Middleware) {
	s.stack = append(s.stack, mw)
}

// Apply wraps h with the accumulated stack.
func (s *system) Apply(h http.Handler) http.Handler {
	return s.stack.Then(h)
}

func (s *system) Chain() Chain {
	out := make(Chain, len(s.stack))
	copy(out, s.stack)
	return out
}
