package server

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/employees"
	"workwise/internal/domain/evaluations"
	"workwise/internal/domain/payroll"
	"workwise/internal/domain/permissions"
	"workwise/internal/domain/positions"
	"workwise/internal/domain/schedules"
)

// stores is the persistence layer of every domain, backed either by Postgres
// or by process memory.
type stores struct {
	Users       auth.StoreAPI
	Employees   employees.StoreAPI
	Positions   positions.StoreAPI
	Schedules   schedules.StoreAPI
	Evaluations evaluations.StoreAPI
	Payrolls    payroll.StoreAPI
	Permissions permissions.StoreAPI
	Audit       audit.StoreAPI
}

func postgresStores(pool *pgxpool.Pool) stores {
	return stores{
		Users:       auth.NewStore(pool),
		Employees:   employees.NewStore(pool),
		Positions:   positions.NewStore(pool),
		Schedules:   schedules.NewStore(pool),
		Evaluations: evaluations.NewStore(pool),
		Payrolls:    payroll.NewStore(pool),
		Permissions: permissions.NewStore(pool),
		Audit:       audit.NewStore(pool),
	}
}

func memoryStores() stores {
	return stores{
		Users:       auth.NewMemoryStore(),
		Employees:   employees.NewMemoryStore(),
		Positions:   positions.NewMemoryStore(),
		Schedules:   schedules.NewMemoryStore(),
		Evaluations: evaluations.NewMemoryStore(),
		Payrolls:    payroll.NewMemoryStore(),
		Permissions: permissions.NewMemoryStore(),
		Audit:       audit.NewMemoryStore(),
	}
}
