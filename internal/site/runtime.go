package site

import (
	"log/slog"

	"github.com/JaimeStill/forum/internal/accounts"
)

// Runtime carries the shared services the site is built from.
type Runtime struct {
	Logger   *slog.Logger
	Identity accounts.Identity
	Ready    func() bool
}

// NewRuntime creates a site runtime with a module-scoped logger. A nil
// identity resolves nobody; a nil ready reports ready.
func NewRuntime(logger *slog.Logger, identity accounts.Identity, ready func() bool) *Runtime {
	if identity == nil {
		identity = accounts.Anonymous{}
	}
	if ready == nil {
		ready = func() bool { return true }
	}
	return &Runtime{
		Logger:   logger.With("module", "site"),
		Identity: identity,
		Ready:    ready,
	}
}
