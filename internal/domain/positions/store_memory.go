package positions

import (
	"context"
	"time"

	"workwise/internal/platform/memstore"
)

type MemoryStore struct {
	rows *memstore.Table[Position, *Position]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: memstore.New[Position]()}
}

func (s *MemoryStore) List(ctx context.Context) ([]Position, error) {
	return s.rows.List(nil), nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Position, error) {
	return s.rows.Get(id)
}

func (s *MemoryStore) Create(ctx context.Context, p Position) (Position, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return s.rows.Insert(p), nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, p Position) (Position, error) {
	return s.rows.Update(id, func(cur *Position) error {
		cur.Name = p.Name
		cur.Description = p.Description
		cur.Department = p.Department
		cur.BaseSalary = p.BaseSalary
		return nil
	})
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	return s.rows.Delete(id)
}
