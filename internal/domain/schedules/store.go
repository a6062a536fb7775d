package schedules

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

const scheduleColumns = `id, name, start_time, total_hours, deduct_hours, days, created_at`

func scanSchedule(row pgx.Row) (Schedule, error) {
	var s Schedule
	err := row.Scan(&s.ID, &s.Name, &s.StartTime, &s.TotalHours, &s.DeductHours, &s.Days, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Schedule{}, apperr.ErrNotFound
	}
	s.EndTime = EndTime(s.StartTime, s.TotalHours)
	return s, err
}

func (s *Store) List(ctx context.Context) ([]Schedule, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+scheduleColumns+` FROM schedules ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Schedule
	for rows.Next() {
		sc, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	assignments, err := s.assignments(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Assignments = assignments[out[i].ID]
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (Schedule, error) {
	if !db.ValidID(id) {
		return Schedule{}, apperr.ErrNotFound
	}
	sc, err := scanSchedule(s.DB.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id))
	if err != nil {
		return Schedule{}, err
	}
	assignments, err := s.assignments(ctx, id)
	if err != nil {
		return Schedule{}, err
	}
	sc.Assignments = assignments[id]
	return sc, nil
}

func (s *Store) assignments(ctx context.Context, scheduleID string) (map[string][]Assignment, error) {
	query := `SELECT id, schedule_id, employee_id, COALESCE(to_char(work_date, 'YYYY-MM-DD'), ''), location, shift_type, status
    FROM schedule_assignments`
	args := []any{}
	if scheduleID != "" {
		query += ` WHERE schedule_id = $1`
		args = append(args, scheduleID)
	}
	query += ` ORDER BY created_at`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]Assignment{}
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.ScheduleID, &a.EmployeeID, &a.Date, &a.Location, &a.ShiftType, &a.Status); err != nil {
			return nil, err
		}
		out[a.ScheduleID] = append(out[a.ScheduleID], a)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, sc Schedule) (Schedule, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO schedules (name, start_time, total_hours, deduct_hours, days)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, sc.Name, sc.StartTime, sc.TotalHours, sc.DeductHours, sc.Days).Scan(&id)
	if err != nil {
		return Schedule{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Update(ctx context.Context, id string, sc Schedule) (Schedule, error) {
	if !db.ValidID(id) {
		return Schedule{}, apperr.ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE schedules SET name = $1, start_time = $2, total_hours = $3, deduct_hours = $4, days = $5
    WHERE id = $6
  `, sc.Name, sc.StartTime, sc.TotalHours, sc.DeductHours, sc.Days, id)
	if err != nil {
		return Schedule{}, err
	}
	if tag.RowsAffected() == 0 {
		return Schedule{}, apperr.ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if !db.ValidID(id) {
		return apperr.ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Store) Assign(ctx context.Context, a Assignment) (Assignment, error) {
	if !db.ValidID(a.ScheduleID) || !db.ValidID(a.EmployeeID) {
		return Assignment{}, apperr.ErrNotFound
	}
	var workDate any
	if a.Date != "" {
		workDate = a.Date
	}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO schedule_assignments (schedule_id, employee_id, work_date, location, shift_type, status)
    VALUES ($1,$2,$3::date,$4,$5,$6)
    RETURNING id
  `, a.ScheduleID, a.EmployeeID, workDate, a.Location, a.ShiftType, a.Status).Scan(&a.ID)
	return a, err
}

func (s *Store) ListForEmployee(ctx context.Context, employeeID string) ([]Shift, error) {
	if !db.ValidID(employeeID) {
		return []Shift{}, nil
	}
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.schedule_id, a.employee_id, COALESCE(to_char(a.work_date, 'YYYY-MM-DD'), ''), a.location, a.shift_type, a.status,
           s.name, s.start_time, s.total_hours
    FROM schedule_assignments a
    JOIN schedules s ON s.id = a.schedule_id
    WHERE a.employee_id = $1
    ORDER BY a.work_date NULLS LAST, a.created_at
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Shift{}
	for rows.Next() {
		var sh Shift
		var total float64
		if err := rows.Scan(&sh.ID, &sh.ScheduleID, &sh.EmployeeID, &sh.Date, &sh.Location, &sh.ShiftType, &sh.Status,
			&sh.ScheduleName, &sh.StartTime, &total); err != nil {
			return nil, err
		}
		sh.EndTime = EndTime(sh.StartTime, total)
		out = append(out, sh)
	}
	return out, rows.Err()
}
