package payrollhandler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/employees"
	"workwise/internal/domain/payroll"
	"workwise/internal/domain/positions"
)

type fixture struct {
	router http.Handler
	mine   payroll.Payroll
	theirs payroll.Payroll
}

func withRole(role auth.Role, userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.WithUser(r.Context(), auth.UserContext{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newFixture(t *testing.T, role auth.Role) *fixture {
	t.Helper()
	ctx := context.Background()
	empStore := employees.NewMemoryStore()
	self, _ := empStore.Create(ctx, employees.Employee{Name: "John", Lastname: "Doe", Email: "john@example.com"})
	other, _ := empStore.Create(ctx, employees.Employee{Name: "Jane", Lastname: "Smith", Email: "jane@example.com"})
	_ = empStore.LinkUser(ctx, self.ID, "u-employee")
	empSvc := employees.NewService(empStore, positions.NewMemoryStore(), nil)

	store := payroll.NewMemoryStore()
	mine, _ := store.Create(ctx, payroll.Payroll{EmployeeID: self.ID, EmployeeName: self.FullName(), PayPeriod: "May 2025", PaymentDate: "2025-05-31", NetPay: 3000})
	theirs, _ := store.Create(ctx, payroll.Payroll{EmployeeID: other.ID, EmployeeName: other.FullName(), PayPeriod: "May 2025", PaymentDate: "2025-05-31", NetPay: 3200})

	userID := "u-admin"
	if role == auth.RoleEmployee {
		userID = "u-employee"
	}
	r := chi.NewRouter()
	r.Use(withRole(role, userID))
	NewHandler(payroll.NewService(store, empSvc), empSvc, audit.New(audit.NewMemoryStore())).RegisterRoutes(r)
	return &fixture{router: r, mine: mine, theirs: theirs}
}

func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestEmployeeSeesOnlyOwnPayroll(t *testing.T) {
	f := newFixture(t, auth.RoleEmployee)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"own record", "/payrolls/" + f.mine.ID, http.StatusOK},
		{"other record", "/payrolls/" + f.theirs.ID, http.StatusNotFound},
		{"own payslip", "/payrolls/" + f.mine.ID + "/payslip.pdf", http.StatusOK},
		{"other payslip", "/payrolls/" + f.theirs.ID + "/payslip.pdf", http.StatusNotFound},
		{"admin list", "/payrolls", http.StatusForbidden},
		{"mine", "/employees/me/payrolls", http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(http.MethodGet, tc.path, nil)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestPayslipIsPDF(t *testing.T) {
	f := newFixture(t, auth.RoleAdmin)
	rec := f.do(http.MethodGet, "/payrolls/"+f.theirs.ID+"/payslip.pdf", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("body is not a pdf")
	}
}

func TestAdjustments(t *testing.T) {
	f := newFixture(t, auth.RoleAdmin)

	rec := f.do(http.MethodPost, "/payrolls/"+f.mine.ID+"/adjustments", payroll.AdjustmentInput{Description: "Travel refund", Amount: 45.5})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: %d %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data payroll.Adjustment `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil || env.Data.ID == "" {
		t.Fatalf("decode adjustment: %v", err)
	}

	rec = f.do(http.MethodPost, "/payrolls/"+f.mine.ID+"/adjustments", payroll.AdjustmentInput{Description: "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid adjustment: expected 400, got %d", rec.Code)
	}

	rec = f.do(http.MethodDelete, "/payrolls/"+f.mine.ID+"/adjustments/"+env.Data.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("remove: %d %s", rec.Code, rec.Body.String())
	}
}
