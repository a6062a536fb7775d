package reports

import (
	"context"
	"errors"
	"testing"

	"workwise/internal/domain/employees"
	"workwise/internal/domain/evaluations"
	"workwise/internal/domain/payroll"
	"workwise/internal/domain/permissions"
	"workwise/internal/domain/positions"
	"workwise/internal/domain/schedules"
)

type fakeEmployees []employees.Employee

func (f fakeEmployees) List(context.Context) ([]employees.Employee, error) { return f, nil }

type fakePositions []positions.Position

func (f fakePositions) List(context.Context) ([]positions.Position, error) { return f, nil }

type fakeSchedules struct {
	all    []schedules.Schedule
	shifts []schedules.Shift
}

func (f fakeSchedules) List(context.Context) ([]schedules.Schedule, error) { return f.all, nil }
func (f fakeSchedules) ForEmployee(context.Context, string) ([]schedules.Shift, error) {
	return f.shifts, nil
}

type fakeEvaluations []evaluations.Evaluation

func (f fakeEvaluations) List(context.Context) ([]evaluations.Evaluation, error) { return f, nil }
func (f fakeEvaluations) ForEmployee(context.Context, string) ([]evaluations.Evaluation, error) {
	return f, nil
}

type fakePayrolls struct {
	rows []payroll.Payroll
	err  error
}

func (f fakePayrolls) ForEmployee(context.Context, string) ([]payroll.Payroll, error) {
	return f.rows, f.err
}

type fakePermissions []permissions.Request

func (f fakePermissions) List(context.Context) ([]permissions.Request, error) { return f, nil }
func (f fakePermissions) ForEmployee(context.Context, string) ([]permissions.Request, error) {
	return f, nil
}

func newTestService() *Service {
	return &Service{
		Employees: fakeEmployees{
			{ID: "e1", Status: employees.StatusActive},
			{ID: "e2", Status: employees.StatusVacation},
			{ID: "e3", Status: employees.StatusActive},
		},
		Positions: fakePositions{{ID: "p1"}, {ID: "p2"}},
		Schedules: fakeSchedules{all: []schedules.Schedule{{ID: "s1"}}, shifts: []schedules.Shift{{}, {}}},
		Evaluations: fakeEvaluations{
			{Status: evaluations.StatusCompleted, Score: 4.8},
			{Status: evaluations.StatusCompleted, Score: 4.2},
			{Status: evaluations.StatusPending},
		},
		Payrolls: fakePayrolls{rows: []payroll.Payroll{{PaymentDate: "2025-05-15"}, {PaymentDate: "2025-04-30"}}},
		Permissions: fakePermissions{
			{Status: permissions.StatusPending},
			{Status: permissions.StatusApproved},
		},
	}
}

func TestAdminSummary(t *testing.T) {
	got, err := newTestService().Admin(context.Background())
	if err != nil {
		t.Fatalf("admin: %v", err)
	}
	want := AdminSummary{Employees: 3, ActiveEmployees: 2, Roles: 2, Schedules: 1, PendingPermissions: 1, PendingEvaluations: 1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEmployeeSummary(t *testing.T) {
	got, err := newTestService().Employee(context.Background(), employees.Employee{ID: "e1"})
	if err != nil {
		t.Fatalf("employee: %v", err)
	}
	if got.Shifts != 2 || got.PendingRequests != 1 || got.AverageScore != 4.5 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if got.LatestPayroll == nil || got.LatestPayroll.PaymentDate != "2025-05-15" {
		t.Fatalf("unexpected latest payroll: %+v", got.LatestPayroll)
	}
}

func TestEmployeeSummaryPropagatesErrors(t *testing.T) {
	svc := newTestService()
	boom := errors.New("boom")
	svc.Payrolls = fakePayrolls{err: boom}
	if _, err := svc.Employee(context.Background(), employees.Employee{ID: "e1"}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
