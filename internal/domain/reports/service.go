package reports

import (
	"context"

	"workwise/internal/domain/employees"
	"workwise/internal/domain/evaluations"
	"workwise/internal/domain/payroll"
	"workwise/internal/domain/permissions"
	"workwise/internal/domain/positions"
	"workwise/internal/domain/schedules"
)

type EmployeeSource interface {
	List(ctx context.Context) ([]employees.Employee, error)
}

type PositionSource interface {
	List(ctx context.Context) ([]positions.Position, error)
}

type ScheduleSource interface {
	List(ctx context.Context) ([]schedules.Schedule, error)
	ForEmployee(ctx context.Context, employeeID string) ([]schedules.Shift, error)
}

type EvaluationSource interface {
	List(ctx context.Context) ([]evaluations.Evaluation, error)
	ForEmployee(ctx context.Context, employeeID string) ([]evaluations.Evaluation, error)
}

type PayrollSource interface {
	ForEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error)
}

type PermissionSource interface {
	List(ctx context.Context) ([]permissions.Request, error)
	ForEmployee(ctx context.Context, employeeID string) ([]permissions.Request, error)
}

// Service builds the dashboard summaries from the domain services.
type Service struct {
	Employees   EmployeeSource
	Positions   PositionSource
	Schedules   ScheduleSource
	Evaluations EvaluationSource
	Payrolls    PayrollSource
	Permissions PermissionSource
}

type AdminSummary struct {
	Employees          int `json:"employees"`
	ActiveEmployees    int `json:"activeEmployees"`
	Roles              int `json:"roles"`
	Schedules          int `json:"schedules"`
	PendingPermissions int `json:"pendingPermissions"`
	PendingEvaluations int `json:"pendingEvaluations"`
}

type EmployeeSummary struct {
	Employee        employees.Employee `json:"employee"`
	Shifts          int                `json:"shifts"`
	PendingRequests int                `json:"pendingRequests"`
	AverageScore    float64            `json:"averageScore"`
	LatestPayroll   *payroll.Payroll   `json:"latestPayroll,omitempty"`
}

func (s *Service) Admin(ctx context.Context) (AdminSummary, error) {
	var out AdminSummary

	emps, err := s.Employees.List(ctx)
	if err != nil {
		return AdminSummary{}, err
	}
	out.Employees = len(emps)
	for _, e := range emps {
		if e.Status == employees.StatusActive {
			out.ActiveEmployees++
		}
	}

	roles, err := s.Positions.List(ctx)
	if err != nil {
		return AdminSummary{}, err
	}
	out.Roles = len(roles)

	scheds, err := s.Schedules.List(ctx)
	if err != nil {
		return AdminSummary{}, err
	}
	out.Schedules = len(scheds)

	reqs, err := s.Permissions.List(ctx)
	if err != nil {
		return AdminSummary{}, err
	}
	for _, r := range reqs {
		if r.Status == permissions.StatusPending {
			out.PendingPermissions++
		}
	}

	evals, err := s.Evaluations.List(ctx)
	if err != nil {
		return AdminSummary{}, err
	}
	for _, e := range evals {
		if e.Status == evaluations.StatusPending {
			out.PendingEvaluations++
		}
	}
	return out, nil
}

// Employee summarizes the records of one employee. Payrolls are listed newest
// first, so the first one is the latest.
func (s *Service) Employee(ctx context.Context, emp employees.Employee) (EmployeeSummary, error) {
	out := EmployeeSummary{Employee: emp}

	shifts, err := s.Schedules.ForEmployee(ctx, emp.ID)
	if err != nil {
		return EmployeeSummary{}, err
	}
	out.Shifts = len(shifts)

	reqs, err := s.Permissions.ForEmployee(ctx, emp.ID)
	if err != nil {
		return EmployeeSummary{}, err
	}
	for _, r := range reqs {
		if r.Status == permissions.StatusPending {
			out.PendingRequests++
		}
	}

	evals, err := s.Evaluations.ForEmployee(ctx, emp.ID)
	if err != nil {
		return EmployeeSummary{}, err
	}
	var sum float64
	var scored int
	for _, e := range evals {
		if e.Status == evaluations.StatusCompleted {
			sum += e.Score
			scored++
		}
	}
	if scored > 0 {
		out.AverageScore = sum / float64(scored)
	}

	pays, err := s.Payrolls.ForEmployee(ctx, emp.ID)
	if err != nil {
		return EmployeeSummary{}, err
	}
	if len(pays) > 0 {
		latest := pays[0]
		out.LatestPayroll = &latest
	}
	return out, nil
}
