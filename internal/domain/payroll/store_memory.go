package payroll

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"workwise/internal/apperr"
	"workwise/internal/platform/memstore"
)

type MemoryStore struct {
	rows *memstore.Table[Payroll, *Payroll]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: memstore.New[Payroll]()}
}

func detach(p Payroll) Payroll {
	p.Adjustments = slices.Clone(p.Adjustments)
	return p
}

func (s *MemoryStore) List(ctx context.Context, employeeID string) ([]Payroll, error) {
	rows := s.rows.List(func(p Payroll) bool {
		return employeeID == "" || p.EmployeeID == employeeID
	})
	for i := range rows {
		rows[i] = detach(rows[i])
	}
	slices.SortStableFunc(rows, func(a, b Payroll) int {
		switch {
		case a.PaymentDate > b.PaymentDate:
			return -1
		case a.PaymentDate < b.PaymentDate:
			return 1
		}
		return 0
	})
	return rows, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Payroll, error) {
	p, err := s.rows.Get(id)
	if err != nil {
		return Payroll{}, err
	}
	return detach(p), nil
}

func (s *MemoryStore) Create(ctx context.Context, p Payroll) (Payroll, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.Adjustments = nil
	return detach(s.rows.Insert(p)), nil
}

func (s *MemoryStore) AddAdjustment(ctx context.Context, payrollID string, a Adjustment) (Adjustment, error) {
	a.ID = uuid.NewString()
	_, err := s.rows.Update(payrollID, func(cur *Payroll) error {
		cur.Adjustments = append(slices.Clone(cur.Adjustments), a)
		return nil
	})
	if err != nil {
		return Adjustment{}, err
	}
	return a, nil
}

func (s *MemoryStore) RemoveAdjustment(ctx context.Context, payrollID, adjustmentID string) error {
	_, err := s.rows.Update(payrollID, func(cur *Payroll) error {
		i := slices.IndexFunc(cur.Adjustments, func(a Adjustment) bool { return a.ID == adjustmentID })
		if i < 0 {
			return apperr.ErrNotFound
		}
		cur.Adjustments = slices.Delete(slices.Clone(cur.Adjustments), i, i+1)
		return nil
	})
	return err
}
