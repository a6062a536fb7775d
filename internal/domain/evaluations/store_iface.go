package evaluations

import (
	"context"

	"workwise/internal/domain/employees"
)

type StoreAPI interface {
	List(ctx context.Context, employeeID string) ([]Evaluation, error)
	Get(ctx context.Context, id string) (Evaluation, error)
	Create(ctx context.Context, e Evaluation) (Evaluation, error)
	Update(ctx context.Context, id string, e Evaluation) (Evaluation, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeDirectory interface {
	Get(ctx context.Context, id string) (employees.Employee, error)
}
