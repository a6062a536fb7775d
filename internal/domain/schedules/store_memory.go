package schedules

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"workwise/internal/platform/memstore"
)

type MemoryStore struct {
	rows *memstore.Table[Schedule, *Schedule]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: memstore.New[Schedule]()}
}

func withEnd(s Schedule) Schedule {
	s.EndTime = EndTime(s.StartTime, s.TotalHours)
	s.Assignments = slices.Clone(s.Assignments)
	return s
}

func (s *MemoryStore) List(ctx context.Context) ([]Schedule, error) {
	rows := s.rows.List(nil)
	for i := range rows {
		rows[i] = withEnd(rows[i])
	}
	return rows, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Schedule, error) {
	sc, err := s.rows.Get(id)
	if err != nil {
		return Schedule{}, err
	}
	return withEnd(sc), nil
}

func (s *MemoryStore) Create(ctx context.Context, sc Schedule) (Schedule, error) {
	if sc.CreatedAt.IsZero() {
		sc.CreatedAt = time.Now().UTC()
	}
	sc.Assignments = nil
	return withEnd(s.rows.Insert(sc)), nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, sc Schedule) (Schedule, error) {
	updated, err := s.rows.Update(id, func(cur *Schedule) error {
		cur.Name = sc.Name
		cur.StartTime = sc.StartTime
		cur.TotalHours = sc.TotalHours
		cur.DeductHours = sc.DeductHours
		cur.Days = sc.Days
		return nil
	})
	if err != nil {
		return Schedule{}, err
	}
	return withEnd(updated), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	return s.rows.Delete(id)
}

func (s *MemoryStore) Assign(ctx context.Context, a Assignment) (Assignment, error) {
	a.ID = uuid.NewString()
	_, err := s.rows.Update(a.ScheduleID, func(cur *Schedule) error {
		cur.Assignments = append(slices.Clone(cur.Assignments), a)
		return nil
	})
	if err != nil {
		return Assignment{}, err
	}
	return a, nil
}

func (s *MemoryStore) ListForEmployee(ctx context.Context, employeeID string) ([]Shift, error) {
	out := []Shift{}
	for _, sc := range s.rows.List(nil) {
		for _, a := range sc.Assignments {
			if a.EmployeeID != employeeID {
				continue
			}
			out = append(out, Shift{
				Assignment:   a,
				ScheduleName: sc.Name,
				StartTime:    sc.StartTime,
				EndTime:      EndTime(sc.StartTime, sc.TotalHours),
			})
		}
	}
	slices.SortStableFunc(out, func(a, b Shift) int {
		switch {
		case a.Date == b.Date:
			return 0
		case a.Date == "":
			return 1
		case b.Date == "":
			return -1
		case a.Date < b.Date:
			return -1
		}
		return 1
	})
	return out, nil
}
