// Package handlers provides HTTP response utilities shared by page and API
// handlers. These stateless functions standardize response formatting.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// HeaderRedirect carries the redirect target on API responses, which
// answer 200 with the target in the body instead of a 3xx.
const HeaderRedirect = "X-Redirect"

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// Redirect sends the client to target. API requests get a 200 with the
// target in the X-Redirect header and the JSON body; pages get a 302.
func Redirect(w http.ResponseWriter, r *http.Request, target string, api bool) {
	if api {
		w.Header().Set(HeaderRedirect, target)
		RespondJSON(w, http.StatusOK, target)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
