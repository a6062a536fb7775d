package schedules

import (
	"context"
	"errors"
	"testing"

	"workwise/internal/apperr"
)

type fakeEmployees map[string]bool

func (f fakeEmployees) Exists(_ context.Context, id string) (bool, error) { return f[id], nil }

func TestEndTime(t *testing.T) {
	tests := []struct {
		start string
		hours float64
		want  string
	}{
		{start: "08:00", hours: 8, want: "16:00"},
		{start: "22:00", hours: 8, want: "06:00"},
		{start: "09:30", hours: 8.5, want: "18:00"},
		{start: "00:00", hours: 24, want: "00:00"},
		{start: "bad", hours: 8, want: ""},
		{start: "08:00", hours: 0, want: ""},
	}
	for _, tc := range tests {
		if got := EndTime(tc.start, tc.hours); got != tc.want {
			t.Fatalf("EndTime(%q, %v) = %q, want %q", tc.start, tc.hours, got, tc.want)
		}
	}
}

func TestCreateAndUpdate(t *testing.T) {
	svc := NewService(NewMemoryStore(), fakeEmployees{})
	ctx := context.Background()

	sc, err := svc.Create(ctx, Input{Name: "Night shift", StartTime: "22:00", TotalHours: 8, DeductHours: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sc.EndTime != "06:00" || sc.WorkedHours() != 7 {
		t.Fatalf("unexpected derived fields: %+v", sc)
	}

	sc, err = svc.Update(ctx, sc.ID, Input{Name: "Night shift", StartTime: "21:00", TotalHours: 8})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if sc.EndTime != "05:00" {
		t.Fatalf("end time not recomputed: %q", sc.EndTime)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)
	_, err := svc.Create(context.Background(), Input{Name: "X", StartTime: "8am", TotalHours: 4, DeductHours: 4})
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	got := map[string]bool{}
	for _, f := range verr.Fields {
		got[f.Field] = true
	}
	for _, field := range []string{"name", "startTime", "deductHours"} {
		if !got[field] {
			t.Fatalf("missing issue for %s: %+v", field, verr.Fields)
		}
	}
}

func TestAssign(t *testing.T) {
	svc := NewService(NewMemoryStore(), fakeEmployees{"emp-1": true})
	ctx := context.Background()
	sc, _ := svc.Create(ctx, Input{Name: "Morning shift", StartTime: "08:00", TotalHours: 8})

	if _, err := svc.Assign(ctx, sc.ID, AssignInput{EmployeeID: "emp-1", Date: "2025-05-13", Location: "Main Office"}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := svc.Assign(ctx, sc.ID, AssignInput{EmployeeID: "emp-1", Location: "Remote", ShiftType: "half-day"}); err != nil {
		t.Fatalf("assign undated: %v", err)
	}
	if _, err := svc.Assign(ctx, sc.ID, AssignInput{EmployeeID: "ghost"}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for unknown employee, got %v", err)
	}
	if _, err := svc.Assign(ctx, "missing", AssignInput{EmployeeID: "emp-1"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Assign(ctx, sc.ID, AssignInput{EmployeeID: "emp-1", Date: "13/05/2025"}); !apperr.IsValidation(err) {
		t.Fatalf("expected date validation error, got %v", err)
	}

	shifts, err := svc.ForEmployee(ctx, "emp-1")
	if err != nil {
		t.Fatalf("for employee: %v", err)
	}
	if len(shifts) != 2 || shifts[0].Date != "2025-05-13" || shifts[1].ShiftType != ShiftHalfDay {
		t.Fatalf("unexpected shifts: %+v", shifts)
	}
	if shifts[0].ScheduleName != "Morning shift" || shifts[0].EndTime != "16:00" || shifts[0].Status != AssignmentScheduled {
		t.Fatalf("unexpected shift detail: %+v", shifts[0])
	}

	got, _ := svc.Get(ctx, sc.ID)
	if len(got.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got.Assignments))
	}
}
