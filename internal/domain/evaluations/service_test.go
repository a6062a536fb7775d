package evaluations

import (
	"context"
	"errors"
	"testing"

	"workwise/internal/apperr"
	"workwise/internal/domain/employees"
	"workwise/internal/listing"
)

type fakeDirectory map[string]employees.Employee

func (f fakeDirectory) Get(_ context.Context, id string) (employees.Employee, error) {
	e, ok := f[id]
	if !ok {
		return employees.Employee{}, apperr.ErrNotFound
	}
	return e, nil
}

var directory = fakeDirectory{
	"e1": {ID: "e1", Name: "Ana", Lastname: "Ramirez", Position: "UX Designer"},
	"e2": {ID: "e2", Name: "Laura", Lastname: "Torres", Position: "Project Manager"},
}

func TestCreateFillsEmployee(t *testing.T) {
	svc := NewService(NewMemoryStore(), directory)
	ev, err := svc.Create(context.Background(), Input{EmployeeID: "e1", Date: "2025-04-05", Score: 4.5, Status: "Completed"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ev.EmployeeName != "Ana Ramirez" || ev.Position != "UX Designer" || ev.Status != StatusCompleted {
		t.Fatalf("unexpected evaluation: %+v", ev)
	}
}

func TestScoreRules(t *testing.T) {
	svc := NewService(NewMemoryStore(), directory)
	ctx := context.Background()

	tests := []struct {
		name string
		in   Input
	}{
		{name: "completed without score", in: Input{EmployeeID: "e1", Date: "2025-04-05", Status: StatusCompleted}},
		{name: "pending with score", in: Input{EmployeeID: "e1", Date: "2025-04-05", Score: 3}},
		{name: "score above five", in: Input{EmployeeID: "e1", Date: "2025-04-05", Score: 6, Status: StatusCompleted}},
		{name: "bad date", in: Input{EmployeeID: "e1", Date: "05/04/2025"}},
		{name: "unknown employee", in: Input{EmployeeID: "nobody", Date: "2025-04-05"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.in); !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestForEmployeeAndDelete(t *testing.T) {
	svc := NewService(NewMemoryStore(), directory)
	ctx := context.Background()
	a, _ := svc.Create(ctx, Input{EmployeeID: "e1", Date: "2025-04-05", Score: 4.5, Status: StatusCompleted})
	_, _ = svc.Create(ctx, Input{EmployeeID: "e2", Date: "2025-05-20"})
	_, _ = svc.Create(ctx, Input{EmployeeID: "e1", Date: "2025-06-01"})

	mine, err := svc.ForEmployee(ctx, "e1")
	if err != nil || len(mine) != 2 {
		t.Fatalf("expected 2 evaluations, got %d %v", len(mine), err)
	}
	if none, _ := svc.ForEmployee(ctx, ""); len(none) != 0 {
		t.Fatal("unlinked user must see no evaluations")
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, a.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	all, _ := svc.List(ctx)
	sorted := Table.Apply(all, listing.Query{SortKey: "employeeName"})
	if len(sorted) != 2 || sorted[0].EmployeeName != "Ana Ramirez" {
		t.Fatalf("unexpected order: %+v", sorted)
	}
}
