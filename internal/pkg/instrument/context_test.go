package instrument

import (
	"context"
	"testing"
)

func TestCorrelationIDContext(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		// Arrange
		ctx := SetCorrelationID(context.Background(), "abc-123")

		// Act
		got := GetCorrelationID(ctx)

		// Assert
		if got != "abc-123" {
			t.Fatalf("expected abc-123, got %q", got)
		}
	})

	t.Run("EmptyWhenUnset", func(t *testing.T) {
		// Act
		got := GetCorrelationID(context.Background())

		// Assert
		if got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})
}
