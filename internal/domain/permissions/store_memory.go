package permissions

import (
	"context"
	"slices"
	"time"

	"workwise/internal/apperr"
	"workwise/internal/platform/memstore"
)

type MemoryStore struct {
	rows *memstore.Table[Request, *Request]
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: memstore.New[Request](), now: time.Now}
}

func (s *MemoryStore) List(ctx context.Context, employeeID string) ([]Request, error) {
	rows := s.rows.List(func(r Request) bool {
		return employeeID == "" || r.EmployeeID == employeeID
	})
	slices.SortStableFunc(rows, func(a, b Request) int {
		switch {
		case a.SubmittedDate > b.SubmittedDate:
			return -1
		case a.SubmittedDate < b.SubmittedDate:
			return 1
		}
		return 0
	})
	return rows, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Request, error) {
	return s.rows.Get(id)
}

func (s *MemoryStore) Create(ctx context.Context, r Request) (Request, error) {
	if r.SubmittedDate == "" {
		r.SubmittedDate = s.now().UTC().Format(time.DateOnly)
	}
	return s.rows.Insert(r), nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, r Request) (Request, error) {
	return s.rows.Update(id, func(cur *Request) error {
		if cur.Status != StatusPending {
			return apperr.ErrInvalidState
		}
		cur.EmployeeID = r.EmployeeID
		cur.EmployeeName = r.EmployeeName
		cur.Type = r.Type
		cur.StartDate = r.StartDate
		cur.EndDate = r.EndDate
		cur.Days = r.Days
		cur.Reason = r.Reason
		return nil
	})
}

func (s *MemoryStore) Decide(ctx context.Context, id, status, comments, decidedBy string, at time.Time) (Request, error) {
	return s.rows.Update(id, func(cur *Request) error {
		if cur.Status != StatusPending {
			return apperr.ErrInvalidState
		}
		cur.Status = status
		cur.Comments = comments
		cur.DecidedBy = decidedBy
		cur.DecidedAt = &at
		return nil
	})
}
