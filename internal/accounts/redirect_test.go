package accounts_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/forum/internal/accounts"
	"github.com/JaimeStill/forum/internal/routes"
	"github.com/JaimeStill/forum/pkg/handlers"
	"github.com/JaimeStill/forum/pkg/logging"
)

const headerUser = "X-Test-User"

type fakeIdentity struct {
	users map[int64]string
	err   error
}

func (f fakeIdentity) Current(r *http.Request) (string, bool) {
	slug := r.Header.Get(headerUser)
	return slug, slug != ""
}

func (f fakeIdentity) Lookup(_ context.Context, uid int64) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	slug, ok := f.users[uid]
	return slug, ok, nil
}

func redirectHandler(t *testing.T, identity accounts.Identity) http.Handler {
	t.Helper()
	rd := accounts.NewRedirects("user", identity, logging.Discard())

	app := routes.New(logging.Discard())
	for _, prefix := range []string{"", "/api"} {
		app.Get(prefix+"/me", nil, rd.Me)
		app.Get(prefix+"/me/*", nil, rd.Me)
		app.Get(prefix+"/uid/:uid*", nil, rd.UID)
		app.Get(prefix+"/chats/:roomid?", nil, rd.Chat)
	}

	h, err := app.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return accounts.MarkAPI("/api")(h)
}

func get(h http.Handler, target, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if user != "" {
		req.Header.Set(headerUser, user)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRedirects(t *testing.T) {
	h := redirectHandler(t, fakeIdentity{users: map[int64]string{1: "admin", 7: "jane doe"}})

	tests := []struct {
		name     string
		target   string
		user     string
		status   int
		location string
	}{
		{"me", "/me", "alice", http.StatusFound, "/user/alice"},
		{"me rest", "/me/edit/password", "alice", http.StatusFound, "/user/alice/edit/password"},
		{"me query", "/me/bookmarks?page=2", "alice", http.StatusFound, "/user/alice/bookmarks?page=2"},
		{"me escaped slash", "/me/a%2Fb", "alice", http.StatusFound, "/user/alice/a%2Fb"},
		{"me escaped space", "/me/a%20b", "alice", http.StatusFound, "/user/alice/a%20b"},
		{"uid escaped rest", "/uid/1/a%2Fb", "", http.StatusFound, "/user/admin/a%2Fb"},
		{"me anonymous", "/me", "", http.StatusUnauthorized, ""},
		{"uid", "/uid/1", "", http.StatusFound, "/user/admin"},
		{"uid rest", "/uid/1/topics", "", http.StatusFound, "/user/admin/topics"},
		{"uid escapes slug", "/uid/7", "", http.StatusFound, "/user/jane%20doe"},
		{"uid unknown", "/uid/99", "", http.StatusNotFound, ""},
		{"uid not numeric", "/uid/abc", "", http.StatusNotFound, ""},
		{"uid zero", "/uid/0", "", http.StatusNotFound, ""},
		{"chat", "/chats", "alice", http.StatusFound, "/user/alice/chats"},
		{"chat room", "/chats/42", "alice", http.StatusFound, "/user/alice/chats/42"},
		{"chat invalid room", "/chats/lobby", "alice", http.StatusFound, "/user/alice/chats"},
		{"chat anonymous", "/chats/42", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(h, tt.target, tt.user)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.location != "" {
				if loc := w.Header().Get("Location"); loc != tt.location {
					t.Errorf("Location = %q, want %q", loc, tt.location)
				}
			}
		})
	}
}

func TestRedirects_API(t *testing.T) {
	h := redirectHandler(t, fakeIdentity{})

	w := get(h, "/api/me/settings", "alice")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get(handlers.HeaderRedirect); got != "/user/alice/settings" {
		t.Errorf("%s = %q, want %q", handlers.HeaderRedirect, got, "/user/alice/settings")
	}
	if loc := w.Header().Get("Location"); loc != "" {
		t.Errorf("Location = %q, want none", loc)
	}

	var target string
	if err := json.NewDecoder(w.Body).Decode(&target); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if target != "/user/alice/settings" {
		t.Errorf("body = %q", target)
	}
}

func TestRedirects_LookupError(t *testing.T) {
	h := redirectHandler(t, fakeIdentity{err: errors.New("store offline")})

	if w := get(h, "/uid/1", ""); w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestAnonymous(t *testing.T) {
	var id accounts.Identity = accounts.Anonymous{}

	if _, ok := id.Current(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Error("Current() reported a signed-in user")
	}
	if _, ok, err := id.Lookup(context.Background(), 1); ok || err != nil {
		t.Errorf("Lookup() = ok %v, err %v; want false, nil", ok, err)
	}
}

func TestChangePassword(t *testing.T) {
	w := httptest.NewRecorder()
	accounts.ChangePassword(w, httptest.NewRequest(http.MethodGet, accounts.WellKnownChangePassword, nil))

	if w.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/me/edit/password" {
		t.Errorf("Location = %q, want %q", loc, "/me/edit/password")
	}
}
