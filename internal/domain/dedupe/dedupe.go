// Package dedupe tracks already-seen dataset keys during ingestion.
//
// The source dataset guarantees one row per (entity, year) pair; the loader
// enforces that guarantee with a Deduper so a malformed export cannot smuggle
// duplicate rows into the immutable in-memory dataset. First row wins.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records seen keys so ingestion keeps at most one row per key.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Size returns the number of recorded keys.
	Size() int
}

// inMemoryDeduper implements Deduper with a plain map. Ingestion is a
// single bounded pass over the CSV, so there is no eviction policy; the set
// lives only for the duration of the load.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewInMemoryDeduper creates a new in-memory deduper.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}
	for _, opt := range opts {
		opt(d)
	}
	if d.seen == nil {
		d.seen = make(map[string]struct{})
	}
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
