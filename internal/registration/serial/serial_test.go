package serial

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

type memStore struct {
	mu      sync.Mutex
	value   int64
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.loadErr
}

func (m *memStore) Save(v int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = v
	m.saves++
	return nil
}

func TestGeneratorNext(t *testing.T) {
	t.Run("StrictIncrement", func(t *testing.T) {
		// Arrange
		gen := NewGenerator(&memStore{value: 41})

		// Act / Assert
		if got := gen.Next(context.Background()); got != 42 {
			t.Fatalf("expected 42, got %d", got)
		}
		if got := gen.Next(context.Background()); got != 43 {
			t.Fatalf("expected 43, got %d", got)
		}
		if got := gen.Current(context.Background()); got != 43 {
			t.Fatalf("expected current 43, got %d", got)
		}
	})

	t.Run("LoadFailureStartsFromZero", func(t *testing.T) {
		// Arrange
		gen := NewGenerator(&memStore{value: 99, loadErr: errors.New("disk error")})

		// Act / Assert
		if got := gen.Next(context.Background()); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("SaveFailureStillHandsOutNumbers", func(t *testing.T) {
		// Arrange
		gen := NewGenerator(&memStore{saveErr: errors.New("disk full")})

		// Act / Assert
		if got := gen.Next(context.Background()); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
		if got := gen.Next(context.Background()); got != 2 {
			t.Fatalf("expected 2, got %d", got)
		}
	})

	t.Run("ConcurrentNumbersAreDistinct", func(t *testing.T) {
		// Arrange
		gen := NewGenerator(&memStore{})
		const n = 100

		results := make(chan int64, n)
		var wg sync.WaitGroup

		// Act
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- gen.Next(context.Background())
			}()
		}
		wg.Wait()
		close(results)

		// Assert
		seen := make(map[int64]bool, n)
		for v := range results {
			if seen[v] {
				t.Fatalf("serial %d issued twice", v)
			}
			seen[v] = true
		}
		if len(seen) != n {
			t.Fatalf("expected %d distinct serials, got %d", n, len(seen))
		}
	})
}

func TestFileStore(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "counter")
		store := NewFileStore(path)

		// Act
		if err := store.Save(123); err != nil {
			t.Fatalf("unexpected save error: %v", err)
		}
		got, err := store.Load()

		// Assert
		if err != nil {
			t.Fatalf("unexpected load error: %v", err)
		}
		if got != 123 {
			t.Fatalf("expected 123, got %d", got)
		}
	})

	t.Run("MissingFileLoadsZero", func(t *testing.T) {
		// Arrange
		store := NewFileStore(filepath.Join(t.TempDir(), "missing"))

		// Act
		got, err := store.Load()

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("CorruptFileLoadsZero", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "counter")
		if err := os.WriteFile(path, []byte("not a number"), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		store := NewFileStore(path)

		// Act
		got, err := store.Load()

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("PersistsAcrossGenerators", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "counter")
		first := NewGenerator(NewFileStore(path))
		for range 3 {
			first.Next(context.Background())
		}

		// Act
		second := NewGenerator(NewFileStore(path))
		got := second.Next(context.Background())

		// Assert
		if got != 4 {
			t.Fatalf("expected counter to resume at 4, got %d", got)
		}
	})
}
