package schedules

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]Schedule, error)
	Get(ctx context.Context, id string) (Schedule, error)
	Create(ctx context.Context, s Schedule) (Schedule, error)
	Update(ctx context.Context, id string, s Schedule) (Schedule, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, a Assignment) (Assignment, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]Shift, error)
}

// EmployeeLookup confirms an assignment target exists.
type EmployeeLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}
