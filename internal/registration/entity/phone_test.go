package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
)

func fieldMessage(t *testing.T, err error) string {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected structured error, got %v", err)
	}
	return gerr.Fields()["input_mask_3"]
}

func TestNormalizePhone(t *testing.T) {
	t.Run("Formatted11Digits", func(t *testing.T) {
		// Arrange / Act
		got, err := NormalizePhone("(24) 98841-8058")

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "+55(24)988418058" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("StripsCountryCode", func(t *testing.T) {
		// Arrange / Act
		got, err := NormalizePhone("5524988418058")

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "+55(24)988418058" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("AreaCode55IsNotCountryCode", func(t *testing.T) {
		// Arrange: 11 digits starting with 55 is DDD 55, not +55.
		got, err := NormalizePhone("55988418058")

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "+55(55)988418058" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("LandlineGainsMobilePrefix", func(t *testing.T) {
		// Arrange / Act
		got, err := NormalizePhone("2438418058")

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "+55(24)938418058" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("TooShort", func(t *testing.T) {
		// Arrange / Act
		_, err := NormalizePhone("988418058")

		// Assert
		if err == nil {
			t.Fatalf("expected error for 9 digits")
		}
		if msg := fieldMessage(t, err); !strings.Contains(msg, "9 dígitos") {
			t.Fatalf("expected digit count in message, got %q", msg)
		}
	})

	t.Run("TooLong", func(t *testing.T) {
		// Arrange: 12 digits that do not start with 55.
		_, err := NormalizePhone("124988418058")

		// Assert
		if err == nil {
			t.Fatalf("expected error for 12 digits")
		}
		if msg := fieldMessage(t, err); !strings.Contains(msg, "12 dígitos") {
			t.Fatalf("expected digit count in message, got %q", msg)
		}
	})
}
