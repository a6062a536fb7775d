package payroll

import (
	"context"

	"workwise/internal/domain/employees"
)

type StoreAPI interface {
	List(ctx context.Context, employeeID string) ([]Payroll, error)
	Get(ctx context.Context, id string) (Payroll, error)
	Create(ctx context.Context, p Payroll) (Payroll, error)
	AddAdjustment(ctx context.Context, payrollID string, a Adjustment) (Adjustment, error)
	RemoveAdjustment(ctx context.Context, payrollID, adjustmentID string) error
}

type EmployeeDirectory interface {
	Get(ctx context.Context, id string) (employees.Employee, error)
}
