package site

import (
	"net/http"

	"github.com/JaimeStill/forum/internal/accounts"
	"github.com/JaimeStill/forum/internal/config"
	"github.com/JaimeStill/forum/pkg/handlers"
	"github.com/JaimeStill/forum/pkg/routes"
)

func registerRoutes(r routes.System, runtime *Runtime, domain *Domain, cfg *config.Config) error {
	r.Get("/healthz", nil, handleHealthCheck)
	r.Get("/readyz", nil, handleReadinessCheck(runtime.Ready))

	var opts []accounts.Option
	if prefix := cfg.Accounts.APIPrefixValue(); prefix != "" {
		opts = append(opts, accounts.WithAPIPrefix(prefix))
	}

	return accounts.Register(r, cfg.Accounts.Name, domain.Middleware, domain.Controllers, opts...)
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(ready func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	if accounts.IsAPI(r.Context()) {
		handlers.RespondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	http.NotFound(w, r)
}
