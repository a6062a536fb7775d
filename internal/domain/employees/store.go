package employees

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"workwise/internal/apperr"
	"workwise/internal/platform/db"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const employeeColumns = `e.id, e.name, e.lastname, e.email, e.phone, e.address, e.company,
  COALESCE(e.position_id::text, ''), COALESCE(p.name, ''), COALESCE(NULLIF(e.department, ''), p.department, ''),
  e.status, COALESCE((SELECT u.id::text FROM users u WHERE u.employee_id = e.id LIMIT 1), ''), e.created_at`

const employeeFrom = ` FROM employees e LEFT JOIN positions p ON p.id = e.position_id`

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	err := row.Scan(&e.ID, &e.Name, &e.Lastname, &e.Email, &e.Phone, &e.Address, &e.Company,
		&e.PositionID, &e.Position, &e.Department, &e.Status, &e.UserID, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, apperr.ErrNotFound
	}
	return e, err
}

func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+employeeColumns+employeeFrom+` ORDER BY e.created_at, e.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	if !db.ValidID(id) {
		return Employee{}, apperr.ErrNotFound
	}
	return scanEmployee(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+employeeFrom+` WHERE e.id = $1`, id))
}

func (s *Store) GetByUserID(ctx context.Context, userID string) (Employee, error) {
	if !db.ValidID(userID) {
		return Employee{}, apperr.ErrNotFound
	}
	return scanEmployee(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+employeeFrom+`
    JOIN users lu ON lu.employee_id = e.id
    WHERE lu.id = $1`, userID))
}

func (s *Store) Create(ctx context.Context, e Employee) (Employee, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, lastname, email, phone, address, company, position_id, department, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, e.Name, e.Lastname, e.Email, e.Phone, e.Address, e.Company, nullIfEmpty(e.PositionID), e.Department, e.Status).Scan(&id)
	if uniqueViolation(err) {
		return Employee{}, apperr.ErrConflict
	}
	if err != nil {
		return Employee{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Update(ctx context.Context, id string, e Employee) (Employee, error) {
	if !db.ValidID(id) {
		return Employee{}, apperr.ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $1, lastname = $2, email = $3, phone = $4, address = $5, company = $6,
        position_id = $7, department = $8, status = $9
    WHERE id = $10
  `, e.Name, e.Lastname, e.Email, e.Phone, e.Address, e.Company, nullIfEmpty(e.PositionID), e.Department, e.Status, id)
	if uniqueViolation(err) {
		return Employee{}, apperr.ErrConflict
	}
	if err != nil {
		return Employee{}, err
	}
	if tag.RowsAffected() == 0 {
		return Employee{}, apperr.ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if !db.ValidID(id) {
		return apperr.ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Store) LinkUser(ctx context.Context, employeeID, userID string) error {
	_, err := s.DB.Exec(ctx, `UPDATE users SET employee_id = $1 WHERE id = $2`, employeeID, userID)
	return err
}

func (s *Store) CountByPosition(ctx context.Context) (map[string]int, error) {
	rows, err := s.DB.Query(ctx, `SELECT position_id::text, COUNT(1) FROM employees WHERE position_id IS NOT NULL GROUP BY position_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
