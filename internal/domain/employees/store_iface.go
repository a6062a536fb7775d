package employees

import (
	"context"

	"workwise/internal/domain/auth"
	"workwise/internal/domain/positions"
)

type StoreAPI interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, id string, e Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	LinkUser(ctx context.Context, employeeID, userID string) error
	CountByPosition(ctx context.Context) (map[string]int, error)
}

type PositionLookup interface {
	Get(ctx context.Context, id string) (positions.Position, error)
}

// AccountProvisioner creates the login of a new employee.
type AccountProvisioner interface {
	EnsureUser(ctx context.Context, username, password, displayName string, role auth.Role, employeeID string) (string, error)
}
