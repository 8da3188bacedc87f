package accounts

import (
	"context"
	"net/http"
	"strings"

	"github.com/JaimeStill/forum/pkg/middleware"
)

type apiKey struct{}

// MarkAPI returns middleware that flags requests under prefix as API
// requests. Pair it with WithAPIPrefix using the same prefix.
func MarkAPI(prefix string) middleware.Middleware {
	prefix = strings.TrimRight(prefix, "/")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if prefix != "" && (r.URL.Path == prefix || strings.HasPrefix(r.URL.Path, prefix+"/")) {
				r = r.WithContext(context.WithValue(r.Context(), apiKey{}, true))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAPI reports whether the request was marked by MarkAPI.
func IsAPI(ctx context.Context) bool {
	v, _ := ctx.Value(apiKey{}).(bool)
	return v
}
