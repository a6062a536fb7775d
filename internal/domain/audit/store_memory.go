package audit

import (
	"context"
	"slices"

	"workwise/internal/platform/memstore"
)

type MemoryStore struct {
	rows *memstore.Table[Event, *Event]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: memstore.New[Event]()}
}

func (s *MemoryStore) Insert(ctx context.Context, e Event) error {
	s.rows.Insert(e)
	return nil
}

func (s *MemoryStore) Count(ctx context.Context, filter Filter) (int, error) {
	return len(s.rows.List(filter.Match)), nil
}

// List returns newest first; insertion order breaks timestamp ties.
func (s *MemoryStore) List(ctx context.Context, filter Filter, includeDetails bool, limit, offset int) ([]Event, error) {
	rows := s.rows.List(filter.Match)
	slices.Reverse(rows)
	slices.SortStableFunc(rows, func(a, b Event) int { return b.CreatedAt.Compare(a.CreatedAt) })
	if offset >= len(rows) {
		return []Event{}, nil
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	if !includeDetails {
		for i := range rows {
			rows[i].Before, rows[i].After = nil, nil
		}
	}
	return rows, nil
}
