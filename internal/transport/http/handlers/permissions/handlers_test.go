package permissionshandler

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
	"workwise/internal/domain/permissions"
	"workwise/internal/domain/positions"
)

type fixture struct {
	router   http.Handler
	audit    *audit.Service
	self     employees.Employee
	other    employees.Employee
	requests *permissions.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	empStore := employees.NewMemoryStore()
	self, _ := empStore.Create(ctx, employees.Employee{Name: "John", Lastname: "Doe", Email: "john@example.com"})
	other, _ := empStore.Create(ctx, employees.Employee{Name: "Jane", Lastname: "Smith", Email: "jane@example.com"})
	if err := empStore.LinkUser(ctx, self.ID, "u-employee"); err != nil {
		t.Fatalf("link: %v", err)
	}
	empSvc := employees.NewService(empStore, positions.NewMemoryStore(), nil)
	reqSvc := permissions.NewService(permissions.NewMemoryStore(), empSvc)
	auditSvc := audit.New(audit.NewMemoryStore())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			var user auth.UserContext
			switch req.Header.Get("X-Test-Role") {
			case "admin":
				user = auth.UserContext{UserID: "u-admin", Role: auth.RoleAdmin}
			case "employee":
				user = auth.UserContext{UserID: "u-employee", Role: auth.RoleEmployee}
			default:
				next.ServeHTTP(w, req)
				return
			}
			next.ServeHTTP(w, req.WithContext(auth.WithUser(req.Context(), user)))
		})
	})
	NewHandler(reqSvc, empSvc, auditSvc).RegisterRoutes(r)
	return &fixture{router: r, audit: auditSvc, self: self, other: other, requests: reqSvc}
}

func (f *fixture) do(t *testing.T, role, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	var env struct {
		Data map[string]any `json:"data"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env.Data
}

func validInput(employeeID string) permissions.Input {
	return permissions.Input{
		EmployeeID: employeeID,
		Type:       permissions.TypeVacation,
		StartDate:  "2025-08-01",
		EndDate:    "2025-08-05",
		Days:       5,
		Reason:     "Summer trip",
	}
}

func TestEmployeeFilesForSelf(t *testing.T) {
	f := newFixture(t)
	rec, data := f.do(t, "employee", http.MethodPost, "/permissions", validInput(f.other.ID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if data["employeeId"] != f.self.ID || data["status"] != permissions.StatusPending {
		t.Fatalf("request not filed for self: %v", data)
	}

	rec, _ = f.do(t, "employee", http.MethodGet, "/employees/me/permissions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("mine: %d", rec.Code)
	}
}

func TestAdminFilesForAnyone(t *testing.T) {
	f := newFixture(t)
	rec, data := f.do(t, "admin", http.MethodPost, "/permissions", validInput(f.other.ID))
	if rec.Code != http.StatusCreated || data["employeeId"] != f.other.ID {
		t.Fatalf("admin create: %d %v", rec.Code, data)
	}
}

func TestDecisionsAreAdminOnlyAndAudited(t *testing.T) {
	f := newFixture(t)
	_, data := f.do(t, "employee", http.MethodPost, "/permissions", validInput(""))
	id, _ := data["id"].(string)

	tests := []struct {
		name   string
		role   string
		path   string
		status int
	}{
		{"anonymous", "", "/permissions/" + id + "/approve", http.StatusUnauthorized},
		{"employee", "employee", "/permissions/" + id + "/approve", http.StatusForbidden},
		{"admin approves", "admin", "/permissions/" + id + "/approve", http.StatusOK},
		{"unknown id", "admin", "/permissions/missing/reject", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := f.do(t, tc.role, http.MethodPut, tc.path, permissions.Decision{Comments: "ok"})
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
		})
	}

	got, err := f.requests.Get(context.Background(), id)
	if err != nil || got.Status != permissions.StatusApproved || got.DecidedBy != "u-admin" {
		t.Fatalf("decision not stored: %+v %v", got, err)
	}
	page, _ := f.audit.List(context.Background(), audit.Filter{Action: audit.ActionApprove}, false, 10, 0)
	if page.Total != 1 || page.Events[0].ActorID != "u-admin" {
		t.Fatalf("approval not audited: %+v", page)
	}
}

func TestValidationDetails(t *testing.T) {
	f := newFixture(t)
	rec, _ := f.do(t, "admin", http.MethodPost, "/permissions", permissions.Input{EmployeeID: f.other.ID})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("validation_error")) {
		t.Fatalf("expected validation error code: %s", rec.Body.String())
	}
}
