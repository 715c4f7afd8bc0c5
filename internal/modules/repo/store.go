package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cindral-studio/cindral-api/internal/pkg/utils"
	"go.uber.org/zap"
)

type entity interface{ EntityID() string }

// collection binds one Dataset slice to its id prefix, defaults, create
// validation and normalization. The generic helpers below implement the
// CRUD contract once for every collection.
type collection[T entity] struct {
	name     string
	idPrefix string
	prepend  bool // new records go to the front (contact inbox is newest-first)

	items    func(*Dataset) []T
	setItems func(*Dataset, []T)

	defaults  func(now time.Time, d *Dataset) map[string]any
	validate  func(payload map[string]any) error
	normalize func(*T)
}

// Store owns the in-memory dataset and pushes a full snapshot through the
// adapter on every mutation. Readers never observe a half-applied write: a
// mutation is applied to a clone first, saved, and only then swapped in.
type Store struct {
	adapter Adapter
	log     *zap.Logger

	mu   sync.RWMutex
	data *Dataset

	now   func() time.Time
	newID func() string
}

func NewStore(adapter Adapter, log *zap.Logger) *Store {
	return &Store{
		adapter: adapter,
		log:     log,
		data:    new(Dataset),
		now:     time.Now,
		newID:   utils.ShortID,
	}
}

// Open loads the last snapshot or seeds a fresh one on first run.
func (s *Store) Open(ctx context.Context) error {
	d, err := s.adapter.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if d == nil {
		d = Seed()
		if err := s.adapter.Save(ctx, d); err != nil {
			return &PersistenceError{Err: err}
		}
		s.log.Sugar().Infow("seeded dataset",
			"divisions", len(d.Divisions),
			"projects", len(d.Projects),
			"clientProjects", len(d.ClientProjects),
		)
	}
	d.ensureSlices()

	s.mu.Lock()
	s.data = d
	s.mu.Unlock()
	return nil
}

// mutate applies fn to a clone, persists the clone, then swaps it in. On
// any error the previous snapshot stays live.
func (s *Store) mutate(ctx context.Context, fn func(d *Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.adapter.Save(ctx, next); err != nil {
		return &PersistenceError{Err: err}
	}
	s.data = next
	return nil
}

// Export returns a deep copy of the current dataset.
func (s *Store) Export() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Import replaces the whole dataset. The three content collections the
// admin UI cannot recreate from scratch must be present.
func (s *Store) Import(ctx context.Context, d *Dataset) error {
	if d == nil || d.Divisions == nil || d.Projects == nil || d.Team == nil {
		return Validationf("invalid data payload")
	}
	next := d.Clone()
	for i := range next.ClientProjects {
		normalizeClientProject(&next.ClientProjects[i])
	}
	return s.mutate(ctx, func(dst *Dataset) error {
		*dst = *next
		return nil
	})
}

// Reset discards everything and reinstalls the seed dataset.
func (s *Store) Reset(ctx context.Context) (*Dataset, error) {
	seeded := Seed()
	err := s.mutate(ctx, func(dst *Dataset) error {
		*dst = *seeded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeded.Clone(), nil
}

func listIn[T entity](s *Store, c collection[T]) []T {
	s.mu.RLock()
	items := cloneRecords(c.items(s.data))
	s.mu.RUnlock()

	if c.normalize != nil {
		for i := range items {
			c.normalize(&items[i])
		}
	}
	return items
}

func getIn[T entity](s *Store, c collection[T], id string) (T, error) {
	var zero T
	s.mu.RLock()
	items := c.items(s.data)
	idx := indexOf(items, id)
	if idx < 0 {
		s.mu.RUnlock()
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	rec := cloneRecords(items[idx : idx+1])[0]
	s.mu.RUnlock()

	if c.normalize != nil {
		c.normalize(&rec)
	}
	return rec, nil
}

func createIn[T entity](ctx context.Context, s *Store, c collection[T], payload map[string]any) (T, error) {
	var created T
	err := s.mutate(ctx, func(d *Dataset) error {
		if c.validate != nil {
			if err := c.validate(payload); err != nil {
				return err
			}
		}

		merged := map[string]any{}
		if c.defaults != nil {
			for k, v := range c.defaults(s.now(), d) {
				merged[k] = v
			}
		}
		for k, v := range payload {
			merged[k] = v
		}
		if str(merged["id"]) == "" {
			merged["id"] = c.idPrefix + s.newID()
		}

		rec, err := decodeRecord[T](merged)
		if err != nil {
			return Validationf("invalid %s payload: %v", c.name, err)
		}
		if c.normalize != nil {
			c.normalize(&rec)
		}

		items := c.items(d)
		if indexOf(items, rec.EntityID()) >= 0 {
			return Validationf("%s id %q already exists", c.name, rec.EntityID())
		}
		if c.prepend {
			items = append([]T{rec}, items...)
		} else {
			items = append(items, rec)
		}
		c.setItems(d, items)
		created = rec
		return nil
	})
	return created, err
}

func updateIn[T entity](ctx context.Context, s *Store, c collection[T], id string, patch map[string]any) (T, error) {
	var updated T
	err := s.mutate(ctx, func(d *Dataset) error {
		items := c.items(d)
		idx := indexOf(items, id)
		if idx < 0 {
			return fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
		}

		// Shallow merge: patch fields win, everything else survives, and
		// the id can never be patched away.
		cur, err := toMap(items[idx])
		if err != nil {
			return err
		}
		for k, v := range patch {
			cur[k] = v
		}
		cur["id"] = id

		rec, err := decodeRecord[T](cur)
		if err != nil {
			return Validationf("invalid %s patch: %v", c.name, err)
		}
		if c.normalize != nil {
			c.normalize(&rec)
		}
		items[idx] = rec
		c.setItems(d, items)
		updated = rec
		return nil
	})
	return updated, err
}

// deleteIn removes the record when present. Deleting an unknown id is a
// no-op, not an error.
func deleteIn[T entity](ctx context.Context, s *Store, c collection[T], id string) error {
	return s.mutate(ctx, func(d *Dataset) error {
		items := c.items(d)
		next := make([]T, 0, len(items))
		for _, it := range items {
			if it.EntityID() != id {
				next = append(next, it)
			}
		}
		c.setItems(d, next)
		return nil
	})
}

func indexOf[T entity](items []T, id string) int {
	for i, it := range items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

func cloneRecords[T any](in []T) []T {
	out := make([]T, 0, len(in))
	raw, err := json.Marshal(in)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return out
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeRecord[T any](m map[string]any) (T, error) {
	var rec T
	raw, err := json.Marshal(m)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
