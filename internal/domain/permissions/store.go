package permissions

import (
	"context"
	"errors"
	"time"

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

const requestSelect = `SELECT r.id, r.employee_id, e.name || ' ' || e.lastname, r.type,
  to_char(r.start_date, 'YYYY-MM-DD'), to_char(r.end_date, 'YYYY-MM-DD'), r.days, r.reason,
  r.status, r.comments, to_char(r.submitted_at, 'YYYY-MM-DD'), r.decided_at, COALESCE(r.decided_by::text, '')
  FROM permission_requests r
  JOIN employees e ON e.id = r.employee_id`

func scanRequest(row pgx.Row) (Request, error) {
	var r Request
	err := row.Scan(&r.ID, &r.EmployeeID, &r.EmployeeName, &r.Type, &r.StartDate, &r.EndDate,
		&r.Days, &r.Reason, &r.Status, &r.Comments, &r.SubmittedDate, &r.DecidedAt, &r.DecidedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, apperr.ErrNotFound
	}
	return r, err
}

func (s *Store) List(ctx context.Context, employeeID string) ([]Request, error) {
	query := requestSelect
	args := []any{}
	if employeeID != "" {
		if !db.ValidID(employeeID) {
			return []Request{}, nil
		}
		query += ` WHERE r.employee_id = $1`
		args = append(args, employeeID)
	}
	query += ` ORDER BY r.submitted_at DESC`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Request{}
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Request, error) {
	if !db.ValidID(id) {
		return Request{}, apperr.ErrNotFound
	}
	return scanRequest(s.DB.QueryRow(ctx, requestSelect+` WHERE r.id = $1`, id))
}

func (s *Store) Create(ctx context.Context, r Request) (Request, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO permission_requests (employee_id, type, start_date, end_date, days, reason, status, comments)
    VALUES ($1,$2,$3::date,$4::date,$5,$6,$7,$8)
    RETURNING id
  `, r.EmployeeID, r.Type, r.StartDate, r.EndDate, r.Days, r.Reason, r.Status, r.Comments).Scan(&id)
	if err != nil {
		return Request{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Update(ctx context.Context, id string, r Request) (Request, error) {
	if !db.ValidID(id) {
		return Request{}, apperr.ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE permission_requests
    SET employee_id = $1, type = $2, start_date = $3::date, end_date = $4::date, days = $5, reason = $6
    WHERE id = $7 AND status = 'pending'
  `, r.EmployeeID, r.Type, r.StartDate, r.EndDate, r.Days, r.Reason, id)
	if err != nil {
		return Request{}, err
	}
	if tag.RowsAffected() == 0 {
		return Request{}, s.missOrState(ctx, id)
	}
	return s.Get(ctx, id)
}

func (s *Store) Decide(ctx context.Context, id, status, comments, decidedBy string, at time.Time) (Request, error) {
	if !db.ValidID(id) {
		return Request{}, apperr.ErrNotFound
	}
	var by any
	if db.ValidID(decidedBy) {
		by = decidedBy
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE permission_requests
    SET status = $1, comments = $2, decided_by = $3, decided_at = $4
    WHERE id = $5 AND status = 'pending'
  `, status, comments, by, at, id)
	if err != nil {
		return Request{}, err
	}
	if tag.RowsAffected() == 0 {
		return Request{}, s.missOrState(ctx, id)
	}
	return s.Get(ctx, id)
}

// missOrState explains a conditional update that touched no row.
func (s *Store) missOrState(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return apperr.ErrInvalidState
}
