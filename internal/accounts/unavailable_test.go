package accounts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/forum/internal/accounts"
	"github.com/JaimeStill/forum/pkg/logging"
)

func TestUnavailable_Validate(t *testing.T) {
	if err := accounts.UnavailableMiddleware(logging.Discard()).Validate(); err != nil {
		t.Errorf("UnavailableMiddleware().Validate() error = %v", err)
	}
	if err := accounts.UnavailableControllers(logging.Discard()).Validate(); err != nil {
		t.Errorf("UnavailableControllers().Validate() error = %v", err)
	}
}

func TestUnavailable_Responds501(t *testing.T) {
	mw := accounts.UnavailableMiddleware(logging.Discard())
	called := false

	h := mw.EnsureLoggedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

	if w.Code != http.StatusNotImplemented {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotImplemented)
	}
	if called {
		t.Error("unavailable gate passed the request on")
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "ensure_logged_in is not configured" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestUnavailableControllers_Responds501(t *testing.T) {
	c := accounts.UnavailableControllers(logging.Discard())

	w := httptest.NewRecorder()
	c.Accounts.Profile.Get(w, httptest.NewRequest(http.MethodGet, "/user/alice", nil))

	if w.Code != http.StatusNotImplemented {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotImplemented)
	}
}
