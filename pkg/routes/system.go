package routes

import "net/http"

// System defines the interface for route registration and HTTP handler building.
// Implementations handle the actual registration and multiplexer construction.
//
// Registration is not safe for concurrent use and is expected to happen once
// at start-up. Registering the same method and pattern twice keeps both
// entries; only the first is dispatched.
type System interface {
	Handle(method, pattern string, chain *Chain, handler http.HandlerFunc)
	Get(pattern string, chain *Chain, handler http.HandlerFunc)
	Use(prefix string, handler http.HandlerFunc)
	RegisterGroup(group Group)
	Routes() []Route
	Mounts() []Mount
	Build() (http.Handler, error)
}
