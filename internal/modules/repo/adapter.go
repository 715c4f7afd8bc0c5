package repo

import (
	"context"
	"sync"
)

// Adapter is the persistence seam under the store. Adapters only move whole
// snapshots; every business rule (defaults, merge, progress derivation)
// lives in the store so it cannot diverge between backends.
type Adapter interface {
	// Load returns the last saved snapshot, or (nil, nil) when none
	// exists yet and the store should seed.
	Load(ctx context.Context) (*Dataset, error)
	// Save replaces the snapshot. It must either fully succeed or leave
	// the previous snapshot readable.
	Save(ctx context.Context, d *Dataset) error
}

// MemoryAdapter keeps the snapshot in process memory. Used in tests and for
// throwaway environments.
type MemoryAdapter struct {
	mu       sync.Mutex
	snapshot *Dataset
}

func NewMemoryAdapter() *MemoryAdapter { return &MemoryAdapter{} }

func (a *MemoryAdapter) Load(ctx context.Context) (*Dataset, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.snapshot == nil {
		return nil, nil
	}
	return a.snapshot.Clone(), nil
}

func (a *MemoryAdapter) Save(ctx context.Context, d *Dataset) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snapshot = d.Clone()
	return nil
}
