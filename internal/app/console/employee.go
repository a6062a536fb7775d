package console

import (
	"context"
	"fmt"
	"strconv"

	"workwise/internal/client/guard"
	"workwise/internal/client/notify"
	"workwise/internal/domain/employees"
	"workwise/internal/domain/evaluations"
	"workwise/internal/domain/payroll"
	"workwise/internal/domain/permissions"
	"workwise/internal/domain/schedules"
	"workwise/internal/listing"
)

func (a *App) employeeProfile(ctx context.Context, _ guard.Params) error {
	fmt.Fprintln(a.Out, "\n== My profile ==")
	if sum, err := a.API.MySummary(ctx); err == nil {
		e := sum.Employee
		pairs := []string{
			"Name", e.FullName(),
			"Email", e.Email,
			"Phone", e.Phone,
			"Address", e.Address,
			"Company", e.Company,
			"Role", e.Position,
			"Department", e.Department,
			"Status", employees.StatusLabels[e.Status],
			"Assigned shifts", strconv.Itoa(sum.Shifts),
			"Pending requests", strconv.Itoa(sum.PendingRequests),
		}
		if sum.AverageScore > 0 {
			pairs = append(pairs, "Average score", strconv.FormatFloat(sum.AverageScore, 'f', 1, 64)+"/5")
		}
		if sum.LatestPayroll != nil {
			pairs = append(pairs, "Latest net pay", payroll.Money(sum.LatestPayroll.NetPay)+" ("+sum.LatestPayroll.PayPeriod+")")
		}
		renderFields(a.Out, pairs...)
	}
	fmt.Fprintln(a.Out, "Type menu to see the sections.")
	return a.loop(ctx, "profile", nil, nil)
}

func (a *App) mySchedule(ctx context.Context, _ guard.Params) error {
	return runList(ctx, a, listScreen[schedules.Shift]{
		title: "My schedule",
		table: schedules.ShiftTable,
		fetch: func(ctx context.Context) ([]schedules.Shift, error) { return a.API.MySchedules(ctx, listing.Query{}) },
	})
}

func (a *App) myEvaluations(ctx context.Context, _ guard.Params) error {
	return runList(ctx, a, listScreen[evaluations.Evaluation]{
		title: "My evaluations",
		table: evaluations.Table,
		fetch: func(ctx context.Context) ([]evaluations.Evaluation, error) {
			return a.API.MyEvaluations(ctx, listing.Query{})
		},
	})
}

func (a *App) myPayroll(ctx context.Context, _ guard.Params) error {
	t := payroll.Table
	t.Actions = []listing.Action[payroll.Payroll]{
		{Name: "view", Label: "Show details", Run: func(_ context.Context, p payroll.Payroll) error {
			a.Go("/employee/payroll/" + p.ID)
			return nil
		}},
		{Name: "payslip", Label: "Download the payslip PDF", Run: func(ctx context.Context, p payroll.Payroll) error {
			return a.downloadPayslip(ctx, p, nil)
		}},
	}
	return runList(ctx, a, listScreen[payroll.Payroll]{
		title: "My payroll",
		table: t,
		fetch: func(ctx context.Context) ([]payroll.Payroll, error) { return a.API.MyPayrolls(ctx, listing.Query{}) },
	})
}

func (a *App) myPermissions(ctx context.Context, _ guard.Params) error {
	return runList(ctx, a, listScreen[permissions.Request]{
		title: "My permission requests",
		table: permissions.Table,
		fetch: func(ctx context.Context) ([]permissions.Request, error) {
			return a.API.MyPermissions(ctx, listing.Query{})
		},
		extra: a.newCommand("new                file a new request", "/employee/permissions/new"),
	})
}

func (a *App) permissionCreate(ctx context.Context, _ guard.Params) error {
	var in permissions.Input
	fmt.Fprintln(a.Out, "\n== New permission request ==")
	return a.submit("/employee/permissions", func() error {
		if err := a.permissionForm(&in); err != nil {
			return err
		}
		_, err := a.API.Permissions.Create(ctx, in)
		if err == nil {
			a.notify(notify.Success, "Request submitted", "Your request is pending approval")
		}
		return err
	})
}

func (a *App) security(ctx context.Context, _ guard.Params) error {
	fmt.Fprintln(a.Out, "\n== Security ==")
	fmt.Fprintln(a.Out, "Two-factor sign in uses a one-time code from an authenticator app.")
	cmds := commands{
		"mfa": {usage: "mfa                enable two-factor sign in", run: func(ctx context.Context, _ []string) error {
			setup, err := a.API.SetupMFA(ctx)
			if err != nil {
				return err
			}
			renderFields(a.Out, "Secret", setup.Secret, "URL", setup.URL)
			code, err := a.Prompt.Ask("Code from the app")
			if err != nil {
				return err
			}
			if err := a.API.EnableMFA(ctx, code); err != nil {
				return err
			}
			a.notify(notify.Success, "Two-factor sign in enabled", "")
			return nil
		}},
	}
	return a.loop(ctx, "security", cmds, nil)
}
