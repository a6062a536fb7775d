package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"workwise/internal/apperr"
	"workwise/internal/client/authn"
	"workwise/internal/client/guard"
	"workwise/internal/domain/auth"
)

func (a *App) routes() {
	r := a.Router
	r.Public(auth.EntryPage, a.loginView)
	r.Public("/login", a.loginView)

	admin := r.Protected(auth.RoleAdmin)
	admin.Handle("/admin/dashboard", a.adminDashboard)
	admin.Handle("/admin/employees", a.employeeList)
	admin.Handle("/admin/employees/new", a.employeeCreate)
	admin.Handle("/admin/employees/{id}", a.employeeDetail)
	admin.Handle("/admin/employees/{id}/edit", a.employeeEdit)
	admin.Handle("/admin/roles", a.roleList)
	admin.Handle("/admin/roles/new", a.roleCreate)
	admin.Handle("/admin/roles/{id}/edit", a.roleEdit)
	admin.Handle("/admin/schedules", a.scheduleList)
	admin.Handle("/admin/schedules/new", a.scheduleCreate)
	admin.Handle("/admin/schedules/{id}/edit", a.scheduleEdit)
	admin.Handle("/admin/schedules/{id}/assign", a.scheduleAssign)
	admin.Handle("/admin/evaluations", a.evaluationList)
	admin.Handle("/admin/evaluations/new", a.evaluationCreate)
	admin.Handle("/admin/evaluations/{id}/edit", a.evaluationEdit)
	admin.Handle("/admin/payroll", a.payrollList)
	admin.Handle("/admin/payroll/new", a.payrollCreate)
	admin.Handle("/admin/payroll/{id}", a.payrollDetail)
	admin.Handle("/admin/permissions", a.permissionList)
	admin.Handle("/admin/audit", a.auditList)

	employee := r.Protected(auth.RoleEmployee)
	employee.Handle("/employee/profile", a.employeeProfile)
	employee.Handle("/employee/schedule", a.mySchedule)
	employee.Handle("/employee/evaluations", a.myEvaluations)
	employee.Handle("/employee/payroll", a.myPayroll)
	employee.Handle("/employee/payroll/{id}", a.payrollDetail)
	employee.Handle("/employee/permissions", a.myPermissions)
	employee.Handle("/employee/permissions/new", a.permissionCreate)
	employee.Handle("/employee/security", a.security)

	r.NotFound(a.notFound)
}

func (a *App) loginView(ctx context.Context, _ guard.Params) error {
	fmt.Fprintln(a.Out, "\n== Workwise HR: sign in ==")
	fmt.Fprintln(a.Out, "Leave the username empty and press enter twice to quit.")
	for {
		username, err := a.Prompt.Ask("Username")
		if err != nil {
			return err
		}
		if strings.EqualFold(username, "quit") {
			a.quit = true
			return nil
		}
		password, err := a.Prompt.Secret("Password")
		if err != nil {
			return err
		}
		if username == "" && password == "" {
			a.quit = true
			return nil
		}
		_, err = a.Auth.Login(ctx, username, password)
		if errors.Is(err, apperr.ErrMFARequired) {
			code, askErr := a.Prompt.Ask("One-time code")
			if askErr != nil {
				return askErr
			}
			_, err = a.Auth.Login(ctx, username, password, authn.WithOTP(code))
		}
		if err == nil {
			return nil
		}
	}
}

func (a *App) notFound(ctx context.Context, _ guard.Params) error {
	fmt.Fprintln(a.Out, "\n== 404 ==")
	fmt.Fprintln(a.Out, "Page not found. Type menu to see where you can go.")
	cmds := commands{
		"home": {usage: "home               go to your start page", run: func(context.Context, []string) error {
			a.Go(a.home())
			return nil
		}},
	}
	err := a.loop(ctx, "404", cmds, nil)
	if errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
