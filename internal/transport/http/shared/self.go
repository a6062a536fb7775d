package shared

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"workwise/internal/apperr"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/employees"
)

// SelfLookup finds the employee record linked to a login.
type SelfLookup interface {
	ForUser(ctx context.Context, userID string) (employees.Employee, error)
}

// CurrentEmployee resolves the caller's own employee record. A login with no
// linked employee gets ErrNotFound.
func CurrentEmployee(r *http.Request, lookup SelfLookup) (employees.Employee, error) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		return employees.Employee{}, apperr.ErrUnauthorized
	}
	emp, err := lookup.ForUser(r.Context(), user.UserID)
	if errors.Is(err, apperr.ErrNotFound) {
		return employees.Employee{}, fmt.Errorf("%w: no employee record for this account", apperr.ErrNotFound)
	}
	return emp, err
}
