package payroll

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

const payrollSelect = `SELECT p.id, p.employee_id, e.name || ' ' || e.lastname, p.pay_period,
  to_char(p.payment_date, 'YYYY-MM-DD'), p.base_salary, p.overtime, p.bonus, p.gross_pay,
  p.taxes, p.insurance, p.other_deductions, p.total_deductions, p.net_pay, p.hours_worked, p.created_at
  FROM payrolls p
  JOIN employees e ON e.id = p.employee_id`

func scanPayroll(row pgx.Row) (Payroll, error) {
	var p Payroll
	err := row.Scan(&p.ID, &p.EmployeeID, &p.EmployeeName, &p.PayPeriod, &p.PaymentDate,
		&p.BaseSalary, &p.Overtime, &p.Bonus, &p.GrossPay, &p.Taxes, &p.Insurance,
		&p.OtherDeductions, &p.TotalDeductions, &p.NetPay, &p.HoursWorked, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Payroll{}, apperr.ErrNotFound
	}
	return p, err
}

func (s *Store) List(ctx context.Context, employeeID string) ([]Payroll, error) {
	query := payrollSelect
	args := []any{}
	if employeeID != "" {
		if !db.ValidID(employeeID) {
			return []Payroll{}, nil
		}
		query += ` WHERE p.employee_id = $1`
		args = append(args, employeeID)
	}
	query += ` ORDER BY p.payment_date DESC`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Payroll{}
	index := map[string]int{}
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	adjRows, err := s.DB.Query(ctx, `
    SELECT payroll_id, id, description, amount
    FROM payroll_adjustments
    WHERE payroll_id = ANY($1::uuid[])
    ORDER BY created_at
  `, ids)
	if err != nil {
		return nil, err
	}
	defer adjRows.Close()
	for adjRows.Next() {
		var payrollID string
		var a Adjustment
		if err := adjRows.Scan(&payrollID, &a.ID, &a.Description, &a.Amount); err != nil {
			return nil, err
		}
		if i, ok := index[payrollID]; ok {
			out[i].Adjustments = append(out[i].Adjustments, a)
		}
	}
	return out, adjRows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Payroll, error) {
	if !db.ValidID(id) {
		return Payroll{}, apperr.ErrNotFound
	}
	p, err := scanPayroll(s.DB.QueryRow(ctx, payrollSelect+` WHERE p.id = $1`, id))
	if err != nil {
		return Payroll{}, err
	}
	rows, err := s.DB.Query(ctx, `
    SELECT id, description, amount FROM payroll_adjustments
    WHERE payroll_id = $1 ORDER BY created_at
  `, id)
	if err != nil {
		return Payroll{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var a Adjustment
		if err := rows.Scan(&a.ID, &a.Description, &a.Amount); err != nil {
			return Payroll{}, err
		}
		p.Adjustments = append(p.Adjustments, a)
	}
	return p, rows.Err()
}

func (s *Store) Create(ctx context.Context, p Payroll) (Payroll, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payrolls (employee_id, pay_period, payment_date, base_salary, overtime, bonus,
      gross_pay, taxes, insurance, other_deductions, total_deductions, net_pay, hours_worked)
    VALUES ($1,$2,$3::date,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING id
  `, p.EmployeeID, p.PayPeriod, p.PaymentDate, p.BaseSalary, p.Overtime, p.Bonus,
		p.GrossPay, p.Taxes, p.Insurance, p.OtherDeductions, p.TotalDeductions, p.NetPay, p.HoursWorked).Scan(&id)
	if err != nil {
		return Payroll{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) AddAdjustment(ctx context.Context, payrollID string, a Adjustment) (Adjustment, error) {
	if !db.ValidID(payrollID) {
		return Adjustment{}, apperr.ErrNotFound
	}
	var exists bool
	if err := s.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payrolls WHERE id = $1)`, payrollID).Scan(&exists); err != nil {
		return Adjustment{}, err
	}
	if !exists {
		return Adjustment{}, apperr.ErrNotFound
	}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_adjustments (payroll_id, description, amount)
    VALUES ($1,$2,$3)
    RETURNING id
  `, payrollID, a.Description, a.Amount).Scan(&a.ID)
	if err != nil {
		return Adjustment{}, err
	}
	return a, nil
}

func (s *Store) RemoveAdjustment(ctx context.Context, payrollID, adjustmentID string) error {
	if !db.ValidID(payrollID) || !db.ValidID(adjustmentID) {
		return apperr.ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, `DELETE FROM payroll_adjustments WHERE id = $1 AND payroll_id = $2`, adjustmentID, payrollID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
