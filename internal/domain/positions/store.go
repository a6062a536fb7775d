package positions

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

const positionColumns = `p.id, p.name, p.description, p.department, p.base_salary,
  (SELECT COUNT(1) FROM employees e WHERE e.position_id = p.id), p.created_at`

func scanPosition(row pgx.Row) (Position, error) {
	var p Position
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Department, &p.BaseSalary, &p.EmployeeCount, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Position{}, apperr.ErrNotFound
	}
	return p, err
}

func (s *Store) List(ctx context.Context) ([]Position, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+positionColumns+` FROM positions p ORDER BY p.created_at, p.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Position, error) {
	if !db.ValidID(id) {
		return Position{}, apperr.ErrNotFound
	}
	return scanPosition(s.DB.QueryRow(ctx, `SELECT `+positionColumns+` FROM positions p WHERE p.id = $1`, id))
}

func (s *Store) Create(ctx context.Context, p Position) (Position, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO positions (name, description, department, base_salary)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, p.Name, p.Description, p.Department, p.BaseSalary).Scan(&id)
	if err != nil {
		return Position{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Update(ctx context.Context, id string, p Position) (Position, error) {
	if !db.ValidID(id) {
		return Position{}, apperr.ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE positions SET name = $1, description = $2, department = $3, base_salary = $4
    WHERE id = $5
  `, p.Name, p.Description, p.Department, p.BaseSalary, id)
	if err != nil {
		return Position{}, err
	}
	if tag.RowsAffected() == 0 {
		return Position{}, apperr.ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if !db.ValidID(id) {
		return apperr.ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
