// Package memstore is a small generic keyed table used by the in-memory
// implementations of the domain stores.
package memstore

import (
	"sync"

	"github.com/google/uuid"

	"workwise/internal/apperr"
)

type Keyed interface {
	Key() string
	WithKey(id string)
}

// Table keeps rows in insertion order. Rows are values; callers get copies.
type Table[T any, P interface {
	*T
	Keyed
}] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func New[T any, P interface {
	*T
	Keyed
}]() *Table[T, P] {
	return &Table[T, P]{rows: make(map[string]T)}
}

// Insert stores row, assigning a uuid when it has no key, and returns the
// stored copy.
func (t *Table[T, P]) Insert(row T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := P(&row)
	if p.Key() == "" {
		p.WithKey(uuid.NewString())
	}
	if _, exists := t.rows[p.Key()]; !exists {
		t.order = append(t.order, p.Key())
	}
	t.rows[p.Key()] = row
	return row
}

func (t *Table[T, P]) Get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, apperr.ErrNotFound
	}
	return row, nil
}

// List returns the rows accepted by keep (all rows when keep is nil).
func (t *Table[T, P]) List(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// Find returns the first row accepted by keep.
func (t *Table[T, P]) Find(keep func(T) bool) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if row := t.rows[id]; keep(row) {
			return row, nil
		}
	}
	var zero T
	return zero, apperr.ErrNotFound
}

func (t *Table[T, P]) Count(keep func(T) bool) int {
	return len(t.List(keep))
}

// Update applies fn to a copy of the row and stores it when fn succeeds.
// The key cannot be changed.
func (t *Table[T, P]) Update(id string, fn func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, apperr.ErrNotFound
	}
	if err := fn(&row); err != nil {
		var zero T
		return zero, err
	}
	P(&row).WithKey(id)
	t.rows[id] = row
	return row, nil
}

func (t *Table[T, P]) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}
