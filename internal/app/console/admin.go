package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"workwise/internal/apperr"
	"workwise/internal/client/guard"
	"workwise/internal/client/notify"
	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/employees"
	"workwise/internal/domain/evaluations"
	"workwise/internal/domain/payroll"
	"workwise/internal/domain/permissions"
	"workwise/internal/domain/positions"
	"workwise/internal/domain/schedules"
	"workwise/internal/listing"
)

func (a *App) adminDashboard(ctx context.Context, _ guard.Params) error {
	fmt.Fprintln(a.Out, "\n== Dashboard ==")
	if sum, err := a.API.Dashboard(ctx); err == nil {
		renderFields(a.Out,
			"Employees", fmt.Sprintf("%d (%d active)", sum.Employees, sum.ActiveEmployees),
			"Roles", strconv.Itoa(sum.Roles),
			"Schedules", strconv.Itoa(sum.Schedules),
			"Pending requests", strconv.Itoa(sum.PendingPermissions),
			"Pending evaluations", strconv.Itoa(sum.PendingEvaluations),
		)
	}
	fmt.Fprintln(a.Out, "Type menu to see the sections.")
	return a.loop(ctx, "dashboard", nil, nil)
}

func (a *App) newCommand(usage, path string) commands {
	return commands{"new": {usage: usage, run: func(context.Context, []string) error {
		a.Go(path)
		return nil
	}}}
}

func (a *App) employeeList(ctx context.Context, _ guard.Params) error {
	t := employees.TableWithActions(
		func(_ context.Context, e employees.Employee) error {
			a.Go("/admin/employees/" + e.ID + "/edit")
			return nil
		},
		func(ctx context.Context, e employees.Employee) error {
			if err := a.API.Employees.Delete(ctx, e.ID); err != nil {
				return err
			}
			a.notify(notify.Success, "Employee deleted", e.FullName())
			return nil
		},
	)
	t.Actions = append([]listing.Action[employees.Employee]{{
		Name:  "view",
		Label: "Show details",
		Run: func(_ context.Context, e employees.Employee) error {
			a.Go("/admin/employees/" + e.ID)
			return nil
		},
	}}, t.Actions...)

	return runList(ctx, a, listScreen[employees.Employee]{
		title:  "Employees",
		table:  t,
		fetch:  func(ctx context.Context) ([]employees.Employee, error) { return a.API.Employees.List(ctx, listing.Query{}) },
		extra:  a.newCommand("new                add an employee", "/admin/employees/new"),
		export: a.API.ExportEmployees,
	})
}

func (a *App) employeeDetail(ctx context.Context, p guard.Params) error {
	e, err := a.API.Employees.Get(ctx, p["id"])
	if err != nil {
		a.Go("/admin/employees")
		return nil
	}
	fmt.Fprintf(a.Out, "\n== %s ==\n", e.FullName())
	renderFields(a.Out,
		"Email", e.Email,
		"Phone", e.Phone,
		"Address", e.Address,
		"Company", e.Company,
		"Role", e.Position,
		"Department", e.Department,
		"Status", employees.StatusLabels[e.Status],
	)
	cmds := commands{
		"edit": {usage: "edit               edit this employee", run: func(context.Context, []string) error {
			a.Go("/admin/employees/" + e.ID + "/edit")
			return nil
		}},
		"schedules": {usage: "schedules          shifts of this employee", run: func(ctx context.Context, _ []string) error {
			shifts, err := a.API.EmployeeSchedules(ctx, e.ID, listing.Query{SortKey: "date"})
			renderTable(a.Out, schedules.ShiftTable, listing.Resolved(shifts, err), listing.Query{SortKey: "date"})
			return nil
		}},
		"evaluations": {usage: "evaluations        evaluations of this employee", run: func(ctx context.Context, _ []string) error {
			rows, err := a.API.EmployeeEvaluations(ctx, e.ID, listing.Query{})
			renderTable(a.Out, evaluations.Table, listing.Resolved(rows, err), listing.Query{})
			return nil
		}},
		"payroll": {usage: "payroll            payroll history of this employee", run: func(ctx context.Context, _ []string) error {
			rows, err := a.API.EmployeePayrolls(ctx, e.ID, listing.Query{})
			renderTable(a.Out, payroll.Table, listing.Resolved(rows, err), listing.Query{})
			return nil
		}},
		"back": {usage: "back               return to the list", run: func(context.Context, []string) error {
			a.Go("/admin/employees")
			return nil
		}},
	}
	return a.loop(ctx, "employee", cmds, nil)
}

func (a *App) employeeCreate(ctx context.Context, _ guard.Params) error {
	var in employees.Input
	fmt.Fprintln(a.Out, "\n== New employee ==")
	return a.submit("/admin/employees", func() error {
		if err := a.employeeForm(ctx, &in, true); err != nil {
			return err
		}
		e, err := a.API.Employees.Create(ctx, in)
		if err == nil {
			a.notify(notify.Success, "Employee created", e.FullName())
		}
		return err
	})
}

func (a *App) employeeEdit(ctx context.Context, p guard.Params) error {
	e, err := a.API.Employees.Get(ctx, p["id"])
	if err != nil {
		a.Go("/admin/employees")
		return nil
	}
	in := employees.Input{
		Name: e.Name, Lastname: e.Lastname, Email: e.Email, Phone: e.Phone,
		Address: e.Address, Company: e.Company, PositionID: e.PositionID, Status: e.Status,
	}
	fmt.Fprintf(a.Out, "\n== Edit %s ==\n", e.FullName())
	return a.submit("/admin/employees", func() error {
		if err := a.employeeForm(ctx, &in, false); err != nil {
			return err
		}
		_, err := a.API.Employees.Update(ctx, e.ID, in)
		if err == nil {
			a.notify(notify.Success, "Employee updated", "")
		}
		return err
	})
}

func (a *App) roleList(ctx context.Context, _ guard.Params) error {
	t := positions.Table
	t.Actions = []listing.Action[positions.Position]{
		{Name: "edit", Label: "Edit", Run: func(_ context.Context, p positions.Position) error {
			a.Go("/admin/roles/" + p.ID + "/edit")
			return nil
		}},
		{
			Name:        "delete",
			Label:       "Delete",
			Destructive: true,
			Prompt: func(p positions.Position) string {
				return "Delete the role " + p.Name + "? This cannot be undone."
			},
			Run: func(ctx context.Context, p positions.Position) error {
				if err := a.API.Roles.Delete(ctx, p.ID); err != nil {
					return err
				}
				a.notify(notify.Success, "Role deleted", p.Name)
				return nil
			},
		},
	}
	return runList(ctx, a, listScreen[positions.Position]{
		title: "Roles",
		table: t,
		fetch: func(ctx context.Context) ([]positions.Position, error) { return a.API.Roles.List(ctx, listing.Query{}) },
		extra: a.newCommand("new                add a role", "/admin/roles/new"),
	})
}

func (a *App) roleCreate(ctx context.Context, _ guard.Params) error {
	var in positions.Input
	fmt.Fprintln(a.Out, "\n== New role ==")
	return a.submit("/admin/roles", func() error {
		if err := a.roleForm(&in); err != nil {
			return err
		}
		_, err := a.API.Roles.Create(ctx, in)
		if err == nil {
			a.notify(notify.Success, "Role created", in.Name)
		}
		return err
	})
}

func (a *App) roleEdit(ctx context.Context, p guard.Params) error {
	role, err := a.API.Roles.Get(ctx, p["id"])
	if err != nil {
		a.Go("/admin/roles")
		return nil
	}
	in := positions.Input{Name: role.Name, Description: role.Description, Department: role.Department, BaseSalary: role.BaseSalary}
	fmt.Fprintf(a.Out, "\n== Edit %s ==\n", role.Name)
	return a.submit("/admin/roles", func() error {
		if err := a.roleForm(&in); err != nil {
			return err
		}
		_, err := a.API.Roles.Update(ctx, role.ID, in)
		if err == nil {
			a.notify(notify.Success, "Role updated", in.Name)
		}
		return err
	})
}

func (a *App) scheduleList(ctx context.Context, _ guard.Params) error {
	t := schedules.Table
	t.Actions = []listing.Action[schedules.Schedule]{
		{Name: "edit", Label: "Edit", Run: func(_ context.Context, s schedules.Schedule) error {
			a.Go("/admin/schedules/" + s.ID + "/edit")
			return nil
		}},
		{Name: "assign", Label: "Assign to an employee", Run: func(_ context.Context, s schedules.Schedule) error {
			a.Go("/admin/schedules/" + s.ID + "/assign")
			return nil
		}},
		{
			Name:        "delete",
			Label:       "Delete",
			Destructive: true,
			Prompt: func(s schedules.Schedule) string {
				return "Delete the schedule " + s.Name + " and its assignments?"
			},
			Run: func(ctx context.Context, s schedules.Schedule) error {
				if err := a.API.Schedules.Delete(ctx, s.ID); err != nil {
					return err
				}
				a.notify(notify.Success, "Schedule deleted", s.Name)
				return nil
			},
		},
	}
	return runList(ctx, a, listScreen[schedules.Schedule]{
		title: "Schedules",
		table: t,
		fetch: func(ctx context.Context) ([]schedules.Schedule, error) { return a.API.Schedules.List(ctx, listing.Query{}) },
		extra: a.newCommand("new                add a schedule", "/admin/schedules/new"),
	})
}

func (a *App) scheduleCreate(ctx context.Context, _ guard.Params) error {
	var in schedules.Input
	fmt.Fprintln(a.Out, "\n== New schedule ==")
	return a.submit("/admin/schedules", func() error {
		if err := a.scheduleForm(&in); err != nil {
			return err
		}
		_, err := a.API.Schedules.Create(ctx, in)
		if err == nil {
			a.notify(notify.Success, "Schedule created", in.Name)
		}
		return err
	})
}

func (a *App) scheduleEdit(ctx context.Context, p guard.Params) error {
	s, err := a.API.Schedules.Get(ctx, p["id"])
	if err != nil {
		a.Go("/admin/schedules")
		return nil
	}
	in := schedules.Input{Name: s.Name, StartTime: s.StartTime, TotalHours: s.TotalHours, DeductHours: s.DeductHours, Days: s.Days}
	fmt.Fprintf(a.Out, "\n== Edit %s ==\n", s.Name)
	return a.submit("/admin/schedules", func() error {
		if err := a.scheduleForm(&in); err != nil {
			return err
		}
		_, err := a.API.Schedules.Update(ctx, s.ID, in)
		if err == nil {
			a.notify(notify.Success, "Schedule updated", in.Name)
		}
		return err
	})
}

func (a *App) scheduleAssign(ctx context.Context, p guard.Params) error {
	s, err := a.API.Schedules.Get(ctx, p["id"])
	if err != nil {
		a.Go("/admin/schedules")
		return nil
	}
	var in schedules.AssignInput
	fmt.Fprintf(a.Out, "\n== Assign %s (%s - %s) ==\n", s.Name, s.StartTime, s.EndTime)
	return a.submit("/admin/schedules", func() error {
		if err := a.assignForm(ctx, &in); err != nil {
			return err
		}
		_, err := a.API.AssignSchedule(ctx, s.ID, in)
		if err == nil {
			a.notify(notify.Success, "Schedule assigned", s.Name)
		}
		return err
	})
}

func (a *App) evaluationList(ctx context.Context, _ guard.Params) error {
	t := evaluations.Table
	t.Actions = []listing.Action[evaluations.Evaluation]{
		{Name: "edit", Label: "Edit", Run: func(_ context.Context, e evaluations.Evaluation) error {
			a.Go("/admin/evaluations/" + e.ID + "/edit")
			return nil
		}},
		{
			Name:        "delete",
			Label:       "Delete",
			Destructive: true,
			Prompt: func(e evaluations.Evaluation) string {
				return "Delete the evaluation of " + e.EmployeeName + " from " + e.Date + "?"
			},
			Run: func(ctx context.Context, e evaluations.Evaluation) error {
				if err := a.API.Evaluations.Delete(ctx, e.ID); err != nil {
					return err
				}
				a.notify(notify.Success, "Evaluation deleted", "")
				return nil
			},
		},
	}
	return runList(ctx, a, listScreen[evaluations.Evaluation]{
		title: "Evaluations",
		table: t,
		fetch: func(ctx context.Context) ([]evaluations.Evaluation, error) {
			return a.API.Evaluations.List(ctx, listing.Query{})
		},
		extra: a.newCommand("new                record an evaluation", "/admin/evaluations/new"),
	})
}

func (a *App) evaluationCreate(ctx context.Context, _ guard.Params) error {
	var in evaluations.Input
	fmt.Fprintln(a.Out, "\n== New evaluation ==")
	return a.submit("/admin/evaluations", func() error {
		if err := a.evaluationForm(ctx, &in); err != nil {
			return err
		}
		_, err := a.API.Evaluations.Create(ctx, in)
		if err == nil {
			a.notify(notify.Success, "Evaluation saved", "")
		}
		return err
	})
}

func (a *App) evaluationEdit(ctx context.Context, p guard.Params) error {
	e, err := a.API.Evaluations.Get(ctx, p["id"])
	if err != nil {
		a.Go("/admin/evaluations")
		return nil
	}
	in := evaluations.Input{EmployeeID: e.EmployeeID, Evaluator: e.Evaluator, Date: e.Date, Score: e.Score, Status: e.Status, Comments: e.Comments}
	fmt.Fprintf(a.Out, "\n== Edit evaluation of %s ==\n", e.EmployeeName)
	return a.submit("/admin/evaluations", func() error {
		if err := a.evaluationForm(ctx, &in); err != nil {
			return err
		}
		_, err := a.API.Evaluations.Update(ctx, e.ID, in)
		if err == nil {
			a.notify(notify.Success, "Evaluation updated", "")
		}
		return err
	})
}

func (a *App) payrollList(ctx context.Context, _ guard.Params) error {
	t := payroll.Table
	t.Actions = []listing.Action[payroll.Payroll]{
		{Name: "view", Label: "Show details", Run: func(_ context.Context, p payroll.Payroll) error {
			a.Go("/admin/payroll/" + p.ID)
			return nil
		}},
	}
	return runList(ctx, a, listScreen[payroll.Payroll]{
		title: "Payroll",
		table: t,
		fetch: func(ctx context.Context) ([]payroll.Payroll, error) { return a.API.Payrolls.List(ctx, listing.Query{}) },
		extra: a.newCommand("new                record a payroll", "/admin/payroll/new"),
	})
}

func (a *App) payrollCreate(ctx context.Context, _ guard.Params) error {
	var in payroll.Input
	fmt.Fprintln(a.Out, "\n== New payroll ==")
	return a.submit("/admin/payroll", func() error {
		if err := a.payrollForm(ctx, &in); err != nil {
			return err
		}
		_, err := a.API.Payrolls.Create(ctx, in)
		if err == nil {
			a.notify(notify.Success, "Payroll recorded", in.PayPeriod)
		}
		return err
	})
}

func (a *App) payrollDetail(ctx context.Context, p guard.Params) error {
	back := "/admin/payroll"
	if s, ok := a.Sessions.Load(); ok && s.Role != auth.RoleAdmin {
		back = "/employee/payroll"
	}
	var current payroll.Payroll
	load := func(ctx context.Context) error {
		got, err := a.API.Payrolls.Get(ctx, p["id"])
		if err != nil {
			return err
		}
		current = got
		a.showPayroll(current)
		return nil
	}
	if err := load(ctx); err != nil {
		a.Go(back)
		return nil
	}

	cmds := commands{
		"payslip": {usage: "payslip [file]     download the payslip PDF", run: func(ctx context.Context, args []string) error {
			return a.downloadPayslip(ctx, current, args)
		}},
		"back": {usage: "back               return to the list", run: func(context.Context, []string) error {
			a.Go(back)
			return nil
		}},
	}
	if back == "/admin/payroll" {
		cmds["adjust"] = command{usage: "adjust             add an adjustment", run: func(ctx context.Context, _ []string) error {
			var in payroll.AdjustmentInput
			if err := a.adjustmentForm(&in); err != nil {
				return err
			}
			if _, err := a.API.AddAdjustment(ctx, current.ID, in); err != nil {
				return err
			}
			a.notify(notify.Success, "Adjustment added", in.Description)
			return load(ctx)
		}}
		cmds["unadjust"] = command{usage: "unadjust <#>       remove an adjustment", run: func(ctx context.Context, args []string) error {
			adj, err := pick(current.Adjustments, args)
			if err != nil {
				return err
			}
			if !a.Prompt.Confirm("Remove the adjustment " + adj.Description + "?") {
				return listing.ErrCancelled
			}
			if err := a.API.RemoveAdjustment(ctx, current.ID, adj.ID); err != nil {
				return err
			}
			a.notify(notify.Success, "Adjustment removed", adj.Description)
			return load(ctx)
		}}
	}
	return a.loop(ctx, "payroll", cmds, nil)
}

func (a *App) showPayroll(p payroll.Payroll) {
	fmt.Fprintf(a.Out, "\n== %s, %s ==\n", p.EmployeeName, p.PayPeriod)
	renderFields(a.Out,
		"Payment date", p.PaymentDate,
		"Hours worked", strconv.FormatFloat(p.HoursWorked, 'f', -1, 64),
		"Base salary", payroll.Money(p.BaseSalary),
		"Overtime", payroll.Money(p.Overtime),
		"Bonus", payroll.Money(p.Bonus),
		"Gross pay", payroll.Money(p.GrossPay),
		"Taxes", payroll.Money(p.Taxes),
		"Insurance", payroll.Money(p.Insurance),
		"Other deductions", payroll.Money(p.OtherDeductions),
		"Total deductions", payroll.Money(p.TotalDeductions),
		"Net pay", payroll.Money(p.NetPay),
	)
	if len(p.Adjustments) == 0 {
		return
	}
	fmt.Fprintln(a.Out, "Adjustments:")
	for i, adj := range p.Adjustments {
		fmt.Fprintf(a.Out, "  %d) %s %s\n", i+1, adj.Description, payroll.Money(adj.Amount))
	}
	fmt.Fprintf(a.Out, "  Total %s\n", payroll.Money(p.AdjustmentsTotal()))
}

func (a *App) downloadPayslip(ctx context.Context, p payroll.Payroll, args []string) error {
	path := "payslip-" + p.ID + ".pdf"
	if len(args) > 0 {
		path = args[0]
	}
	err := exportTo(path, func(w io.Writer) error { return a.API.Payslip(ctx, p.ID, w) })
	if err != nil {
		return err
	}
	a.notify(notify.Success, "Payslip saved", path)
	return nil
}

func (a *App) permissionList(ctx context.Context, _ guard.Params) error {
	decide := func(approve bool) func(ctx context.Context, r permissions.Request) error {
		return func(ctx context.Context, r permissions.Request) error {
			comments, err := a.Prompt.Ask("Comments")
			if err != nil {
				return err
			}
			d := permissions.Decision{Comments: comments}
			if approve {
				_, err = a.API.ApprovePermission(ctx, r.ID, d)
			} else {
				_, err = a.API.RejectPermission(ctx, r.ID, d)
			}
			if err != nil {
				return err
			}
			title := "Request rejected"
			if approve {
				title = "Request approved"
			}
			a.notify(notify.Success, title, r.EmployeeName)
			return nil
		}
	}
	t := permissions.Table
	t.Actions = []listing.Action[permissions.Request]{
		{Name: "approve", Label: "Approve a pending request", Run: decide(true)},
		{
			Name:        "reject",
			Label:       "Reject a pending request",
			Destructive: true,
			Prompt: func(r permissions.Request) string {
				return "Reject the request of " + r.EmployeeName + " (" + r.StartDate + " to " + r.EndDate + ")?"
			},
			Run: decide(false),
		},
	}
	return runList(ctx, a, listScreen[permissions.Request]{
		title: "Permission requests",
		table: t,
		fetch: func(ctx context.Context) ([]permissions.Request, error) {
			return a.API.Permissions.List(ctx, listing.Query{})
		},
	})
}

func (a *App) auditList(ctx context.Context, _ guard.Params) error {
	return runList(ctx, a, listScreen[audit.Event]{
		title: "Audit trail",
		table: audit.Table,
		fetch: func(ctx context.Context) ([]audit.Event, error) {
			page, err := a.API.Audit(ctx, audit.MaxLimit, 0)
			return page.Events, err
		},
	})
}

// submit runs attempt until it succeeds or the user gives up after a
// validation error, then returns to back.
func (a *App) submit(back string, attempt func() error) error {
	for {
		err := attempt()
		if err == nil || errors.Is(err, io.EOF) {
			a.Go(back)
			return err
		}
		a.report(err)
		if !apperr.IsValidation(err) || !a.Prompt.Confirm("Try again?") {
			a.Go(back)
			return nil
		}
	}
}
