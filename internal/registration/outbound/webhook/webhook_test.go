package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
)

func TestDeliver(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("unexpected content type %q", ct)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("failed to decode payload: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewClient(5*time.Second, instrument.NewNoop())

		// Act
		err := client.Deliver(context.Background(), srv.URL, map[string]any{"serial_number": 7})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got["serial_number"] != float64(7) {
			t.Fatalf("unexpected payload: %v", got)
		}
	})

	t.Run("NonSuccessStatus", func(t *testing.T) {
		// Arrange
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(5*time.Second, instrument.NewNoop())

		// Act
		err := client.Deliver(context.Background(), srv.URL, map[string]any{})

		// Assert
		if err == nil {
			t.Fatalf("expected error for 500 response")
		}
		if !strings.Contains(err.Error(), "500") {
			t.Fatalf("expected status in error, got %v", err)
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		// Arrange
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()

		client := NewClient(50*time.Millisecond, instrument.NewNoop())

		// Act
		err := client.Deliver(context.Background(), srv.URL, map[string]any{})

		// Assert
		if err == nil {
			t.Fatalf("expected timeout error")
		}
	})
}
