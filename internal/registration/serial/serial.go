// Package serial issues the public registration serial numbers.
//
// Numbers are strictly increasing and gap-free within a single process. The
// counter is guarded by a mutex, not by the database, so deployments with more
// than one replica need an external sequence instead.
package serial

import (
	"context"
	"log/slog"
	"sync"
)

// Store persists the last issued serial value between restarts.
type Store interface {
	// Load returns the last persisted value. Missing or corrupt state loads
	// as zero, not as an error.
	Load() (int64, error)
	// Save persists the value synchronously.
	Save(value int64) error
}

// Generator hands out the next serial number.
type Generator struct {
	store Store

	mu   sync.Mutex
	once sync.Once
	last int64
}

// NewGenerator returns a Generator backed by store. The stored value is read
// lazily, exactly once, on the first Next call.
func NewGenerator(store Store) *Generator {
	return &Generator{store: store}
}

// Next returns the next serial number.
//
// The new value is persisted before returning. A persistence failure is
// logged and the in-memory value is still handed out, so a full disk slows
// nothing down; it only risks serial reuse after a restart.
func (g *Generator) Next(ctx context.Context) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.once.Do(func() {
		v, err := g.store.Load()
		if err != nil {
			slog.ErrorContext(ctx, "failed to load serial counter, starting from zero", "error", err)
			v = 0
		}
		g.last = v
		slog.InfoContext(ctx, "serial counter initialized", "value", g.last)
	})

	g.last++
	if err := g.store.Save(g.last); err != nil {
		slog.ErrorContext(ctx, "failed to persist serial counter", "value", g.last, "error", err)
	}

	return g.last
}

// Current returns the last issued serial number without advancing it.
func (g *Generator) Current(ctx context.Context) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.once.Do(func() {
		v, err := g.store.Load()
		if err != nil {
			slog.ErrorContext(ctx, "failed to load serial counter, starting from zero", "error", err)
			v = 0
		}
		g.last = v
	})

	return g.last
}
