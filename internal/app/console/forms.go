package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"workwise/internal/apperr"
	"workwise/internal/domain/employees"
	"workwise/internal/domain/evaluations"
	"workwise/internal/domain/payroll"
	"workwise/internal/domain/permissions"
	"workwise/internal/domain/positions"
	"workwise/internal/domain/schedules"
	"workwise/internal/listing"
)

// form collects answers into a draft. Parse failures are gathered as field
// issues so the whole form is reported at once.
type form struct {
	p    *Prompter
	err  error
	verr apperr.ValidationError
}

func (f *form) text(label string, dst *string) {
	if f.err != nil {
		return
	}
	v, err := f.p.AskDefault(label, *dst)
	if err != nil {
		f.err = err
		return
	}
	*dst = v
}

func (f *form) number(field, label string, dst *float64) {
	if f.err != nil {
		return
	}
	current := ""
	if *dst != 0 {
		current = strconv.FormatFloat(*dst, 'f', -1, 64)
	}
	v, err := f.p.AskDefault(label, current)
	if err != nil {
		f.err = err
		return
	}
	if v == "" {
		*dst = 0
		return
	}
	n, err := strconv.ParseFloat(strings.TrimPrefix(v, "$"), 64)
	if err != nil {
		f.verr.Add(field, "must be a number")
		return
	}
	*dst = n
}

func (f *form) done() error {
	if f.err != nil {
		return f.err
	}
	return f.verr.OrNil()
}

// choose lists options and returns the id of the picked one. An empty answer
// keeps current.
func (a *App) choose(label string, ids, names []string, current string) (string, error) {
	for i, name := range names {
		fmt.Fprintf(a.Out, "  %d) %s\n", i+1, name)
	}
	answer, err := a.Prompt.Ask(label + " #")
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(ids) {
		return current, nil
	}
	return ids[n-1], nil
}

func (a *App) chooseEmployee(ctx context.Context, current string) (string, error) {
	list, err := a.API.Employees.List(ctx, listing.Query{SortKey: "name"})
	if err != nil {
		return "", err
	}
	ids := make([]string, len(list))
	names := make([]string, len(list))
	for i, e := range list {
		ids[i], names[i] = e.ID, e.FullName()+" ("+e.Position+")"
	}
	return a.choose("Employee", ids, names, current)
}

func (a *App) chooseRole(ctx context.Context, current string) (string, error) {
	list, err := a.API.Roles.List(ctx, listing.Query{SortKey: "name"})
	if err != nil {
		return "", err
	}
	ids := make([]string, len(list))
	names := make([]string, len(list))
	for i, p := range list {
		ids[i], names[i] = p.ID, p.Name
	}
	return a.choose("Role", ids, names, current)
}

func (a *App) employeeForm(ctx context.Context, in *employees.Input, create bool) error {
	f := &form{p: a.Prompt}
	f.text("First name", &in.Name)
	f.text("Last name", &in.Lastname)
	f.text("Email", &in.Email)
	f.text("Phone", &in.Phone)
	f.text("Address", &in.Address)
	f.text("Company", &in.Company)
	if f.err == nil {
		in.PositionID, f.err = a.chooseRole(ctx, in.PositionID)
	}
	if in.Status == "" {
		in.Status = employees.StatusActive
	}
	f.text("Status (active, inactive, vacation, leave)", &in.Status)
	if create {
		f.text("Initial password (blank for none)", &in.Password)
	}
	return f.done()
}

func (a *App) roleForm(in *positions.Input) error {
	f := &form{p: a.Prompt}
	f.text("Name", &in.Name)
	f.text("Description", &in.Description)
	f.text("Department", &in.Department)
	f.number("baseSalary", "Base salary", &in.BaseSalary)
	return f.done()
}

func (a *App) scheduleForm(in *schedules.Input) error {
	f := &form{p: a.Prompt}
	f.text("Name", &in.Name)
	f.text("Start time (HH:MM)", &in.StartTime)
	f.number("totalHours", "Total hours", &in.TotalHours)
	f.number("deductHours", "Break hours", &in.DeductHours)
	f.text("Days", &in.Days)
	if err := f.done(); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Shift ends at %s\n", schedules.EndTime(in.StartTime, in.TotalHours))
	return nil
}

func (a *App) assignForm(ctx context.Context, in *schedules.AssignInput) error {
	id, err := a.chooseEmployee(ctx, in.EmployeeID)
	if err != nil {
		return err
	}
	in.EmployeeID = id
	if in.ShiftType == "" {
		in.ShiftType = schedules.ShiftRegular
	}
	f := &form{p: a.Prompt}
	f.text("Date (YYYY-MM-DD, blank for recurring)", &in.Date)
	f.text("Location", &in.Location)
	f.text("Shift type (regular, half-day)", &in.ShiftType)
	return f.done()
}

func (a *App) evaluationForm(ctx context.Context, in *evaluations.Input) error {
	id, err := a.chooseEmployee(ctx, in.EmployeeID)
	if err != nil {
		return err
	}
	in.EmployeeID = id
	if in.Status == "" {
		in.Status = evaluations.StatusPending
	}
	f := &form{p: a.Prompt}
	f.text("Evaluator", &in.Evaluator)
	f.text("Date (YYYY-MM-DD)", &in.Date)
	f.text("Status (pending, completed)", &in.Status)
	f.number("score", "Score (0-5)", &in.Score)
	f.text("Comments", &in.Comments)
	return f.done()
}

func (a *App) payrollForm(ctx context.Context, in *payroll.Input) error {
	id, err := a.chooseEmployee(ctx, in.EmployeeID)
	if err != nil {
		return err
	}
	in.EmployeeID = id
	f := &form{p: a.Prompt}
	f.text("Pay period", &in.PayPeriod)
	f.text("Payment date (YYYY-MM-DD)", &in.PaymentDate)
	f.number("baseSalary", "Base salary", &in.BaseSalary)
	f.number("overtime", "Overtime", &in.Overtime)
	f.number("bonus", "Bonus", &in.Bonus)
	f.number("grossPay", "Gross pay", &in.GrossPay)
	f.number("taxes", "Taxes", &in.Taxes)
	f.number("insurance", "Insurance", &in.Insurance)
	f.number("otherDeductions", "Other deductions", &in.OtherDeductions)
	f.number("totalDeductions", "Total deductions", &in.TotalDeductions)
	f.number("netPay", "Net pay", &in.NetPay)
	f.number("hoursWorked", "Hours worked", &in.HoursWorked)
	return f.done()
}

func (a *App) adjustmentForm(in *payroll.AdjustmentInput) error {
	f := &form{p: a.Prompt}
	f.text("Description", &in.Description)
	f.number("amount", "Amount (negative to deduct)", &in.Amount)
	return f.done()
}

func (a *App) permissionForm(in *permissions.Input) error {
	if in.Type == "" {
		in.Type = permissions.TypeVacation
	}
	f := &form{p: a.Prompt}
	f.text("Type (vacation, permission, leave)", &in.Type)
	f.text("Start date (YYYY-MM-DD)", &in.StartDate)
	f.text("End date (YYYY-MM-DD)", &in.EndDate)
	f.number("days", "Days", &in.Days)
	f.text("Reason", &in.Reason)
	return f.done()
}
