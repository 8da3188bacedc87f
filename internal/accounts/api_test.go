package accounts_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/forum/internal/accounts"
)

func TestMarkAPI(t *testing.T) {
	tests := []struct {
		prefix string
		path   string
		api    bool
	}{
		{"/api", "/api", true},
		{"/api", "/api/me", true},
		{"/api/", "/api/user/alice", true},
		{"/api", "/apiary", false},
		{"/api", "/me", false},
		{"", "/api/me", false},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+tt.path, func(t *testing.T) {
			var got bool
			h := accounts.MarkAPI(tt.prefix)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = accounts.IsAPI(r.Context())
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if got != tt.api {
				t.Errorf("IsAPI() = %v, want %v", got, tt.api)
			}
		})
	}
}
