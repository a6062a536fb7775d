package payroll

import (
	"context"
	"errors"
	"strings"

	"workwise/internal/apperr"
	"workwise/internal/platform/validate"
)

type Service struct {
	Store     StoreAPI
	Employees EmployeeDirectory
}

func NewService(store StoreAPI, employees EmployeeDirectory) *Service {
	return &Service{Store: store, Employees: employees}
}

func (s *Service) List(ctx context.Context) ([]Payroll, error) {
	return s.Store.List(ctx, "")
}

func (s *Service) ForEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	if employeeID == "" {
		return []Payroll{}, nil
	}
	return s.Store.List(ctx, employeeID)
}

func (s *Service) Get(ctx context.Context, id string) (Payroll, error) {
	return s.Store.Get(ctx, id)
}

// GetForEmployee returns the payroll only when it belongs to employeeID.
// Someone else's payroll reads as not found.
func (s *Service) GetForEmployee(ctx context.Context, id, employeeID string) (Payroll, error) {
	p, err := s.Store.Get(ctx, id)
	if err != nil {
		return Payroll{}, err
	}
	if employeeID == "" || p.EmployeeID != employeeID {
		return Payroll{}, apperr.ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Payroll, error) {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.PayPeriod = strings.TrimSpace(in.PayPeriod)
	in.PaymentDate = strings.TrimSpace(in.PaymentDate)
	if err := validate.Struct(in); err != nil {
		return Payroll{}, err
	}
	p := in.Payroll()
	if s.Employees != nil {
		emp, err := s.Employees.Get(ctx, in.EmployeeID)
		if errors.Is(err, apperr.ErrNotFound) {
			verr := &apperr.ValidationError{}
			verr.Add("employeeId", "must reference an existing employee")
			return Payroll{}, verr
		}
		if err != nil {
			return Payroll{}, err
		}
		p.EmployeeName = emp.FullName()
	}
	return s.Store.Create(ctx, p)
}

func (s *Service) AddAdjustment(ctx context.Context, payrollID string, in AdjustmentInput) (Adjustment, error) {
	in.Description = strings.TrimSpace(in.Description)
	if err := validate.Struct(in); err != nil {
		return Adjustment{}, err
	}
	return s.Store.AddAdjustment(ctx, payrollID, Adjustment{Description: in.Description, Amount: in.Amount})
}

func (s *Service) RemoveAdjustment(ctx context.Context, payrollID, adjustmentID string) error {
	return s.Store.RemoveAdjustment(ctx, payrollID, adjustmentID)
}
