package evaluations

import (
	"context"
	"time"

	"workwise/internal/platform/memstore"
)

type MemoryStore struct {
	rows *memstore.Table[Evaluation, *Evaluation]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: memstore.New[Evaluation]()}
}

func (s *MemoryStore) List(ctx context.Context, employeeID string) ([]Evaluation, error) {
	return s.rows.List(func(e Evaluation) bool {
		return employeeID == "" || e.EmployeeID == employeeID
	}), nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Evaluation, error) {
	return s.rows.Get(id)
}

func (s *MemoryStore) Create(ctx context.Context, e Evaluation) (Evaluation, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return s.rows.Insert(e), nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, e Evaluation) (Evaluation, error) {
	return s.rows.Update(id, func(cur *Evaluation) error {
		created := cur.CreatedAt
		*cur = e
		cur.CreatedAt = created
		return nil
	})
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	return s.rows.Delete(id)
}
