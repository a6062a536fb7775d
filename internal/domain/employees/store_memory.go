package employees

import (
	"context"
	"strings"
	"time"

	"workwise/internal/apperr"
	"workwise/internal/platform/memstore"
)

type MemoryStore struct {
	rows *memstore.Table[Employee, *Employee]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: memstore.New[Employee]()}
}

func (s *MemoryStore) List(ctx context.Context) ([]Employee, error) {
	return s.rows.List(nil), nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Employee, error) {
	return s.rows.Get(id)
}

func (s *MemoryStore) GetByUserID(ctx context.Context, userID string) (Employee, error) {
	if userID == "" {
		return Employee{}, apperr.ErrNotFound
	}
	return s.rows.Find(func(e Employee) bool { return e.UserID == userID })
}

func (s *MemoryStore) emailTaken(email, exceptID string) bool {
	_, err := s.rows.Find(func(e Employee) bool {
		return e.ID != exceptID && strings.EqualFold(e.Email, email)
	})
	return err == nil
}

func (s *MemoryStore) Create(ctx context.Context, e Employee) (Employee, error) {
	if s.emailTaken(e.Email, "") {
		return Employee{}, apperr.ErrConflict
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return s.rows.Insert(e), nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, e Employee) (Employee, error) {
	if _, err := s.rows.Get(id); err != nil {
		return Employee{}, err
	}
	if s.emailTaken(e.Email, id) {
		return Employee{}, apperr.ErrConflict
	}
	return s.rows.Update(id, func(cur *Employee) error {
		userID, created := cur.UserID, cur.CreatedAt
		*cur = e
		cur.UserID, cur.CreatedAt = userID, created
		return nil
	})
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	return s.rows.Delete(id)
}

func (s *MemoryStore) LinkUser(ctx context.Context, employeeID, userID string) error {
	_, err := s.rows.Update(employeeID, func(cur *Employee) error {
		cur.UserID = userID
		return nil
	})
	return err
}

func (s *MemoryStore) CountByPosition(ctx context.Context) (map[string]int, error) {
	out := map[string]int{}
	for _, e := range s.rows.List(nil) {
		if e.PositionID != "" {
			out[e.PositionID]++
		}
	}
	return out, nil
}
