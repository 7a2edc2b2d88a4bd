package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
)

func TestGetDetails(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": "OK",
				"result": {
					"rating": 4.8,
					"user_ratings_total": 27,
					"reviews": [
						{"author_name": "Ana", "rating": 5, "text": "Excelente!", "relative_time_description": "há uma semana"}
					]
				}
			}`))
		}))
		defer srv.Close()

		client := NewClient(time.Second, instrument.NewNoop())
		client.baseURL = srv.URL

		// Act
		details, err := client.GetDetails(context.Background(), "place-1", "key-1")

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.Rating != 4.8 || details.UserRatingsTotal != 27 {
			t.Fatalf("unexpected aggregates %+v", details)
		}
		if len(details.Reviews) != 1 || details.Reviews[0].AuthorName != "Ana" {
			t.Fatalf("unexpected reviews %+v", details.Reviews)
		}
		for _, want := range []string{"place_id=place-1", "key=key-1", "language=pt-BR"} {
			if !strings.Contains(gotQuery, want) {
				t.Fatalf("expected query to contain %q, got %q", want, gotQuery)
			}
		}
	})

	t.Run("APIErrorStatus", func(t *testing.T) {
		// Arrange
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED"}`))
		}))
		defer srv.Close()

		client := NewClient(time.Second, instrument.NewNoop())
		client.baseURL = srv.URL

		// Act
		_, err := client.GetDetails(context.Background(), "place-1", "bad-key")

		// Assert
		if err == nil || !strings.Contains(err.Error(), "REQUEST_DENIED") {
			t.Fatalf("expected api status error, got %v", err)
		}
	})

	t.Run("NonSuccessHTTPStatus", func(t *testing.T) {
		// Arrange
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(time.Second, instrument.NewNoop())
		client.baseURL = srv.URL

		// Act
		_, err := client.GetDetails(context.Background(), "place-1", "key-1")

		// Assert
		if err == nil || !strings.Contains(err.Error(), "502") {
			t.Fatalf("expected transport status error, got %v", err)
		}
	})
}
