package payroll

import (
	"context"
	"errors"
	"testing"

	"workwise/internal/apperr"
	"workwise/internal/domain/employees"
)

type fakeDirectory map[string]employees.Employee

func (f fakeDirectory) Get(_ context.Context, id string) (employees.Employee, error) {
	e, ok := f[id]
	if !ok {
		return employees.Employee{}, apperr.ErrNotFound
	}
	return e, nil
}

func newTestService() *Service {
	return NewService(NewMemoryStore(), fakeDirectory{
		"e1": {ID: "e1", Name: "John", Lastname: "Doe"},
		"e2": {ID: "e2", Name: "Jane", Lastname: "Smith"},
	})
}

func input(employeeID, date string) Input {
	in := Input{EmployeeID: employeeID, PayPeriod: "May 2025", PaymentDate: date}
	s := stub("", "")
	in.BaseSalary, in.GrossPay, in.NetPay, in.TotalDeductions = s.BaseSalary, s.GrossPay, s.NetPay, s.TotalDeductions
	return in
}

func TestCreateStoresAmountsAsGiven(t *testing.T) {
	svc := newTestService()
	in := input("e1", "2025-05-15")
	in.NetPay = 1
	p, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.EmployeeName != "John Doe" || p.NetPay != 1 || p.GrossPay != 4100 {
		t.Fatalf("unexpected payroll: %+v", p)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	bad := input("e1", "15/05/2025")
	if _, err := svc.Create(ctx, bad); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for date, got %v", err)
	}
	neg := input("e1", "2025-05-15")
	neg.Taxes = -5
	if _, err := svc.Create(ctx, neg); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for taxes, got %v", err)
	}
	if _, err := svc.Create(ctx, input("ghost", "2025-05-15")); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for employee, got %v", err)
	}
}

func TestForEmployeeNewestFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	for _, d := range []string{"2025-04-15", "2025-05-15", "2025-03-31"} {
		if _, err := svc.Create(ctx, input("e1", d)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	_, _ = svc.Create(ctx, input("e2", "2025-06-01"))

	mine, err := svc.ForEmployee(ctx, "e1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 3 || mine[0].PaymentDate != "2025-05-15" || mine[2].PaymentDate != "2025-03-31" {
		t.Fatalf("unexpected history: %+v", mine)
	}
}

func TestAdjustments(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p, _ := svc.Create(ctx, input("e1", "2025-05-15"))

	if _, err := svc.AddAdjustment(ctx, p.ID, AdjustmentInput{Description: "x", Amount: 10}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	bonus, err := svc.AddAdjustment(ctx, p.ID, AdjustmentInput{Description: "Referral bonus", Amount: 250})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddAdjustment(ctx, p.ID, AdjustmentInput{Description: "Uniform", Amount: -40}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, _ := svc.Get(ctx, p.ID)
	if len(got.Adjustments) != 2 || got.AdjustmentsTotal() != 210 {
		t.Fatalf("unexpected adjustments: %+v", got.Adjustments)
	}

	if err := svc.RemoveAdjustment(ctx, p.ID, bonus.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.RemoveAdjustment(ctx, p.ID, bonus.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.AddAdjustment(ctx, "missing", AdjustmentInput{Description: "Bonus", Amount: 1}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetForEmployee(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p, _ := svc.Create(ctx, input("e1", "2025-05-15"))

	if _, err := svc.GetForEmployee(ctx, p.ID, "e1"); err != nil {
		t.Fatalf("own payroll: %v", err)
	}
	if _, err := svc.GetForEmployee(ctx, p.ID, "e2"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found for another employee, got %v", err)
	}
}

func TestMoney(t *testing.T) {
	if got := Money(3116); got != "$3116.00" {
		t.Fatalf("got %q", got)
	}
	if got := Money(-40.5); got != "-$40.50" {
		t.Fatalf("got %q", got)
	}
}
