package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChain(t *testing.T) {
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("X-Order", name)
				next.ServeHTTP(w, r)
			})
		}
	}

	t.Run("FirstListedRunsOutermost", func(t *testing.T) {
		// Arrange
		h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}), tag("outer"), tag("inner"))
		rec := httptest.NewRecorder()

		// Act
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		// Assert
		order := rec.Header().Values("X-Order")
		if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
			t.Fatalf("unexpected middleware order %v", order)
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected inner handler to run, got status %d", rec.Code)
		}
	})

	t.Run("NoMiddlewares", func(t *testing.T) {
		// Arrange
		h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		rec := httptest.NewRecorder()

		// Act
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		// Assert
		if rec.Code != http.StatusTeapot {
			t.Fatalf("expected handler to run unchanged, got status %d", rec.Code)
		}
	})
}
