package accounts

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/forum/pkg/handlers"
	"github.com/JaimeStill/forum/pkg/middleware"
)

// EnsureLoggedIn returns a gate that answers 401 unless identity reports a
// signed-in user.
func EnsureLoggedIn(identity Identity, logger *slog.Logger) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slug, ok := identity.Current(r); !ok || slug == "" {
				handlers.RespondError(w, logger, http.StatusUnauthorized, ErrNotSignedIn)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
