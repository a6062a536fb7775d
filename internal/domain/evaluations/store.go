package evaluations

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

const evaluationSelect = `SELECT v.id, v.employee_id, e.name || ' ' || e.lastname, COALESCE(p.name, ''),
  v.evaluator, to_char(v.eval_date, 'YYYY-MM-DD'), v.score, v.status, v.comments, v.created_at
  FROM evaluations v
  JOIN employees e ON e.id = v.employee_id
  LEFT JOIN positions p ON p.id = e.position_id`

func scanEvaluation(row pgx.Row) (Evaluation, error) {
	var e Evaluation
	err := row.Scan(&e.ID, &e.EmployeeID, &e.EmployeeName, &e.Position, &e.Evaluator, &e.Date, &e.Score, &e.Status, &e.Comments, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Evaluation{}, apperr.ErrNotFound
	}
	return e, err
}

// List returns all evaluations, or those of one employee when employeeID is set.
func (s *Store) List(ctx context.Context, employeeID string) ([]Evaluation, error) {
	query := evaluationSelect
	args := []any{}
	if employeeID != "" {
		if !db.ValidID(employeeID) {
			return []Evaluation{}, nil
		}
		query += ` WHERE v.employee_id = $1`
		args = append(args, employeeID)
	}
	query += ` ORDER BY v.eval_date DESC, v.created_at`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Evaluation{}
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Evaluation, error) {
	if !db.ValidID(id) {
		return Evaluation{}, apperr.ErrNotFound
	}
	return scanEvaluation(s.DB.QueryRow(ctx, evaluationSelect+` WHERE v.id = $1`, id))
}

func (s *Store) Create(ctx context.Context, e Evaluation) (Evaluation, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO evaluations (employee_id, evaluator, eval_date, score, status, comments)
    VALUES ($1,$2,$3::date,$4,$5,$6)
    RETURNING id
  `, e.EmployeeID, e.Evaluator, e.Date, e.Score, e.Status, e.Comments).Scan(&id)
	if err != nil {
		return Evaluation{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Update(ctx context.Context, id string, e Evaluation) (Evaluation, error) {
	if !db.ValidID(id) {
		return Evaluation{}, apperr.ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE evaluations
    SET employee_id = $1, evaluator = $2, eval_date = $3::date, score = $4, status = $5, comments = $6
    WHERE id = $7
  `, e.EmployeeID, e.Evaluator, e.Date, e.Score, e.Status, e.Comments, id)
	if err != nil {
		return Evaluation{}, err
	}
	if tag.RowsAffected() == 0 {
		return Evaluation{}, apperr.ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if !db.ValidID(id) {
		return apperr.ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, `DELETE FROM evaluations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
