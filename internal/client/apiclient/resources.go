package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/employees"
	"workwise/internal/domain/evaluations"
	"workwise/internal/domain/payroll"
	"workwise/internal/domain/permissions"
	"workwise/internal/domain/positions"
	"workwise/internal/domain/reports"
	"workwise/internal/domain/schedules"
	"workwise/internal/listing"
)

// Resource is the CRUD surface of one entity collection.
type Resource[T, In any] struct {
	c    *Client
	path string
}

func NewResource[T, In any](c *Client, path string) Resource[T, In] {
	return Resource[T, In]{c: c, path: path}
}

// List passes q to the server, which applies search and sort before
// responding.
func (r Resource[T, In]) List(ctx context.Context, q listing.Query) ([]T, error) {
	var out []T
	if err := r.c.Do(ctx, http.MethodGet, r.path, nil, &out, WithQuery(q.Values())); err != nil {
		return nil, err
	}
	return out, nil
}

func (r Resource[T, In]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.c.Do(ctx, http.MethodGet, r.path+"/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (r Resource[T, In]) Create(ctx context.Context, in In) (T, error) {
	var out T
	err := r.c.Do(ctx, http.MethodPost, r.path, in, &out)
	return out, err
}

func (r Resource[T, In]) Update(ctx context.Context, id string, in In) (T, error) {
	var out T
	err := r.c.Do(ctx, http.MethodPut, r.path+"/"+url.PathEscape(id), in, &out)
	return out, err
}

func (r Resource[T, In]) Delete(ctx context.Context, id string) error {
	return r.c.Do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil)
}

// API groups the resource clients with the entity specific queries.
type API struct {
	Client      *Client
	Employees   Resource[employees.Employee, employees.Input]
	Roles       Resource[positions.Position, positions.Input]
	Schedules   Resource[schedules.Schedule, schedules.Input]
	Evaluations Resource[evaluations.Evaluation, evaluations.Input]
	Payrolls    Resource[payroll.Payroll, payroll.Input]
	Permissions Resource[permissions.Request, permissions.Input]
}

func NewAPI(c *Client) *API {
	return &API{
		Client:      c,
		Employees:   NewResource[employees.Employee, employees.Input](c, "/employees"),
		Roles:       NewResource[positions.Position, positions.Input](c, "/roles"),
		Schedules:   NewResource[schedules.Schedule, schedules.Input](c, "/schedules"),
		Evaluations: NewResource[evaluations.Evaluation, evaluations.Input](c, "/evaluations"),
		Payrolls:    NewResource[payroll.Payroll, payroll.Input](c, "/payrolls"),
		Permissions: NewResource[permissions.Request, permissions.Input](c, "/permissions"),
	}
}

func get[T any](ctx context.Context, c *Client, path string, q listing.Query) ([]T, error) {
	var out []T
	if err := c.Do(ctx, http.MethodGet, path, nil, &out, WithQuery(q.Values())); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) Me(ctx context.Context) (auth.Identity, error) {
	var out auth.Identity
	err := a.Client.Do(ctx, http.MethodGet, "/me", nil, &out)
	return out, err
}

func (a *API) MyProfile(ctx context.Context) (employees.Employee, error) {
	var out employees.Employee
	err := a.Client.Do(ctx, http.MethodGet, "/employees/me", nil, &out)
	return out, err
}

func (a *API) MySummary(ctx context.Context) (reports.EmployeeSummary, error) {
	var out reports.EmployeeSummary
	err := a.Client.Do(ctx, http.MethodGet, "/employees/me/summary", nil, &out)
	return out, err
}

func (a *API) MySchedules(ctx context.Context, q listing.Query) ([]schedules.Shift, error) {
	return get[schedules.Shift](ctx, a.Client, "/employees/me/schedules", q)
}

func (a *API) MyEvaluations(ctx context.Context, q listing.Query) ([]evaluations.Evaluation, error) {
	return get[evaluations.Evaluation](ctx, a.Client, "/employees/me/evaluations", q)
}

func (a *API) MyPayrolls(ctx context.Context, q listing.Query) ([]payroll.Payroll, error) {
	return get[payroll.Payroll](ctx, a.Client, "/employees/me/payrolls", q)
}

func (a *API) MyPermissions(ctx context.Context, q listing.Query) ([]permissions.Request, error) {
	return get[permissions.Request](ctx, a.Client, "/employees/me/permissions", q)
}

func (a *API) EmployeeSchedules(ctx context.Context, employeeID string, q listing.Query) ([]schedules.Shift, error) {
	return get[schedules.Shift](ctx, a.Client, "/employees/"+url.PathEscape(employeeID)+"/schedules", q)
}

func (a *API) EmployeeEvaluations(ctx context.Context, employeeID string, q listing.Query) ([]evaluations.Evaluation, error) {
	return get[evaluations.Evaluation](ctx, a.Client, "/employees/"+url.PathEscape(employeeID)+"/evaluations", q)
}

func (a *API) EmployeePayrolls(ctx context.Context, employeeID string, q listing.Query) ([]payroll.Payroll, error) {
	return get[payroll.Payroll](ctx, a.Client, "/employees/"+url.PathEscape(employeeID)+"/payrolls", q)
}

func (a *API) AssignSchedule(ctx context.Context, scheduleID string, in schedules.AssignInput) (schedules.Assignment, error) {
	var out schedules.Assignment
	err := a.Client.Do(ctx, http.MethodPost, "/schedules/"+url.PathEscape(scheduleID)+"/assign", in, &out)
	return out, err
}

func (a *API) ApprovePermission(ctx context.Context, id string, d permissions.Decision) (permissions.Request, error) {
	var out permissions.Request
	err := a.Client.Do(ctx, http.MethodPut, "/permissions/"+url.PathEscape(id)+"/approve", d, &out)
	return out, err
}

func (a *API) RejectPermission(ctx context.Context, id string, d permissions.Decision) (permissions.Request, error) {
	var out permissions.Request
	err := a.Client.Do(ctx, http.MethodPut, "/permissions/"+url.PathEscape(id)+"/reject", d, &out)
	return out, err
}

func (a *API) AddAdjustment(ctx context.Context, payrollID string, in payroll.AdjustmentInput) (payroll.Adjustment, error) {
	var out payroll.Adjustment
	err := a.Client.Do(ctx, http.MethodPost, "/payrolls/"+url.PathEscape(payrollID)+"/adjustments", in, &out)
	return out, err
}

func (a *API) RemoveAdjustment(ctx context.Context, payrollID, adjustmentID string) error {
	return a.Client.Do(ctx, http.MethodDelete, "/payrolls/"+url.PathEscape(payrollID)+"/adjustments/"+url.PathEscape(adjustmentID), nil, nil)
}

func (a *API) Payslip(ctx context.Context, payrollID string, w io.Writer) error {
	return a.Client.Download(ctx, "/payrolls/"+url.PathEscape(payrollID)+"/payslip.pdf", w)
}

func (a *API) ExportEmployees(ctx context.Context, q listing.Query, w io.Writer) error {
	return a.Client.Download(ctx, "/employees/export.xlsx", w, WithQuery(q.Values()))
}

func (a *API) Dashboard(ctx context.Context) (reports.AdminSummary, error) {
	var out reports.AdminSummary
	err := a.Client.Do(ctx, http.MethodGet, "/dashboard", nil, &out)
	return out, err
}

func (a *API) Audit(ctx context.Context, limit, offset int) (audit.Page, error) {
	var out audit.Page
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	err := a.Client.Do(ctx, http.MethodGet, "/audit", nil, &out, WithQuery(q))
	return out, err
}

type MFASetup struct {
	Secret string `json:"secret"`
	URL    string `json:"otpauthUrl"`
}

func (a *API) SetupMFA(ctx context.Context) (MFASetup, error) {
	var out MFASetup
	err := a.Client.Do(ctx, http.MethodPost, "/auth/mfa/setup", struct{}{}, &out)
	return out, err
}

func (a *API) EnableMFA(ctx context.Context, code string) error {
	return a.Client.Do(ctx, http.MethodPost, "/auth/mfa/enable", map[string]string{"code": code}, nil)
}
