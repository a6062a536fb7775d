package server

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"workwise/internal/domain/auth"
	"workwise/internal/domain/employees"
	"workwise/internal/domain/evaluations"
	"workwise/internal/domain/payroll"
	"workwise/internal/domain/permissions"
	"workwise/internal/domain/positions"
	"workwise/internal/domain/schedules"
)

// Demo accounts. The employee login is linked to the first sample employee.
const (
	DemoAdminUser    = "admin"
	DemoEmployeeUser = "employee"
)

// seed loads the demo accounts and sample records. Accounts are ensured on
// every start; records only go into an empty employee table.
func seed(ctx context.Context, st stores, users *auth.Service, log zerolog.Logger) error {
	if _, err := users.EnsureUser(ctx, DemoAdminUser, DemoAdminUser, "Administrator", auth.RoleAdmin, ""); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	existing, err := st.Employees.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list employees: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Int("employees", len(existing)).Msg("sample data already present")
		return nil
	}

	positionIDs := map[string]string{}
	for _, p := range positions.Samples {
		created, err := st.Positions.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("seed position %s: %w", p.Name, err)
		}
		positionIDs[p.Name] = created.ID
	}

	byEmail := map[string]employees.Employee{}
	var first employees.Employee
	for i, sample := range employees.Samples {
		e := sample.Employee
		e.PositionID = positionIDs[sample.PositionName]
		e.Position = sample.PositionName
		created, err := st.Employees.Create(ctx, e)
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", e.Email, err)
		}
		byEmail[created.Email] = created
		if i == 0 {
			first = created
		}
	}

	userID, err := users.EnsureUser(ctx, DemoEmployeeUser, DemoEmployeeUser, first.FullName(), auth.RoleEmployee, first.ID)
	if err != nil {
		return fmt.Errorf("seed employee login: %w", err)
	}
	if err := st.Employees.LinkUser(ctx, first.ID, userID); err != nil {
		return fmt.Errorf("seed employee link: %w", err)
	}

	for i, s := range schedules.Samples {
		created, err := st.Schedules.Create(ctx, s)
		if err != nil {
			return fmt.Errorf("seed schedule %s: %w", s.Name, err)
		}
		if i == 0 {
			a := schedules.Assignment{ScheduleID: created.ID, EmployeeID: first.ID, Location: "Main office", ShiftType: "regular", Status: schedules.AssignmentScheduled}
			if _, err := st.Schedules.Assign(ctx, a); err != nil {
				return fmt.Errorf("seed assignment: %w", err)
			}
		}
	}

	for _, sample := range evaluations.Samples {
		emp, ok := byEmail[sample.EmployeeEmail]
		if !ok {
			continue
		}
		e := sample.Evaluation
		e.EmployeeID, e.EmployeeName = emp.ID, emp.FullName()
		if _, err := st.Evaluations.Create(ctx, e); err != nil {
			return fmt.Errorf("seed evaluation: %w", err)
		}
	}

	for _, sample := range permissions.Samples {
		emp, ok := byEmail[sample.EmployeeEmail]
		if !ok {
			continue
		}
		r := sample.Request
		r.EmployeeID, r.EmployeeName = emp.ID, emp.FullName()
		if _, err := st.Permissions.Create(ctx, r); err != nil {
			return fmt.Errorf("seed permission: %w", err)
		}
	}

	for _, p := range payroll.Samples {
		p.EmployeeID, p.EmployeeName = first.ID, first.FullName()
		if _, err := st.Payrolls.Create(ctx, p); err != nil {
			return fmt.Errorf("seed payroll: %w", err)
		}
	}

	log.Info().Int("employees", len(byEmail)).Msg("sample data loaded")
	return nil
}
