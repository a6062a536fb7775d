package permissions

import (
	"context"
	"time"

	"workwise/internal/domain/employees"
)

type StoreAPI interface {
	List(ctx context.Context, employeeID string) ([]Request, error)
	Get(ctx context.Context, id string) (Request, error)
	Create(ctx context.Context, r Request) (Request, error)
	// Update rewrites a pending request; any other status is ErrInvalidState.
	Update(ctx context.Context, id string, r Request) (Request, error)
	// Decide moves a pending request to status; any other status is ErrInvalidState.
	Decide(ctx context.Context, id, status, comments, decidedBy string, at time.Time) (Request, error)
}

type EmployeeDirectory interface {
	Get(ctx context.Context, id string) (employees.Employee, error)
}
