package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/JaimeStill/forum/pkg/middleware"
)

func TestNew(t *testing.T) {
	mw := middleware.New()

	if mw == nil {
		t.Fatal("New() returned nil")
	}
}

func TestSystem_Apply_NoMiddleware(t *testing.T) {
	mw := middleware.New()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("handler"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	mw.Apply(handler).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "handler" {
		t.Errorf("body = %q, want %q", w.Body.String(), "handler")
	}
}

func TestSystem_Use_MiddlewareOrder(t *testing.T) {
	mw := middleware.New()
	var order []string

	mw.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "first-before")
			next.ServeHTTP(w, r)
			order = append(order, "first-after")
		})
	})

	mw.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "second-before")
			next.ServeHTTP(w, r)
			order = append(order, "second-after")
		})
	})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	mw.Apply(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	expected := []string{"first-before", "second-before", "handler", "second-after", "first-after"}
	if !slices.Equal(order, expected) {
		t.Errorf("order = %v, want %v", order, expected)
	}
}

func TestSystem_Chain_ReturnsCopy(t *testing.T) {
	mw := middleware.New()
	mw.Use(func(next http.Handler) http.Handler { return next })

	c := mw.Chain()
	c[0] = nil

	if mw.Chain()[0] == nil {
		t.Error("Chain() exposed the internal stack")
	}
}

func TestChain_ThenFunc(t *testing.T) {
	c := middleware.Chain{
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Test", "value")
				next.ServeHTTP(w, r)
			})
		},
	}

	w := httptest.NewRecorder()
	c.ThenFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Header().Get("X-Test") != "value" {
		t.Error("middleware was not applied")
	}
	if w.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", w.Code, http.StatusAccepted)
	}
}
