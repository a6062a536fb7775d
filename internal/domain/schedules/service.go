package schedules

import (
	"context"
	"errors"
	"strings"

	"workwise/internal/apperr"
	"workwise/internal/platform/validate"
)

type Service struct {
	Store     StoreAPI
	Employees EmployeeLookup
}

func NewService(store StoreAPI, employees EmployeeLookup) *Service {
	return &Service{Store: store, Employees: employees}
}

func (s *Service) List(ctx context.Context) ([]Schedule, error) {
	return s.Store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Schedule, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Schedule, error) {
	sc, err := prepare(in)
	if err != nil {
		return Schedule{}, err
	}
	return s.Store.Create(ctx, sc)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Schedule, error) {
	sc, err := prepare(in)
	if err != nil {
		return Schedule{}, err
	}
	return s.Store.Update(ctx, id, sc)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

func (s *Service) Assign(ctx context.Context, scheduleID string, in AssignInput) (Assignment, error) {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.Date = strings.TrimSpace(in.Date)
	in.ShiftType = strings.ToLower(strings.TrimSpace(in.ShiftType))
	if err := validate.Struct(in); err != nil {
		return Assignment{}, err
	}
	if _, err := s.Store.Get(ctx, scheduleID); err != nil {
		return Assignment{}, err
	}
	if s.Employees != nil {
		ok, err := s.Employees.Exists(ctx, in.EmployeeID)
		if err != nil {
			return Assignment{}, err
		}
		if !ok {
			verr := &apperr.ValidationError{}
			verr.Add("employeeId", "must reference an existing employee")
			return Assignment{}, verr
		}
	}
	a := Assignment{
		ScheduleID: scheduleID,
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		Location:   strings.TrimSpace(in.Location),
		ShiftType:  in.ShiftType,
		Status:     AssignmentScheduled,
	}
	if a.ShiftType == "" {
		a.ShiftType = ShiftRegular
	}
	return s.Store.Assign(ctx, a)
}

func (s *Service) ForEmployee(ctx context.Context, employeeID string) ([]Shift, error) {
	return s.Store.ListForEmployee(ctx, employeeID)
}

func prepare(in Input) (Schedule, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.Days = strings.TrimSpace(in.Days)
	verr := &apperr.ValidationError{}
	if err := validate.Struct(in); err != nil && !errors.As(err, &verr) {
		return Schedule{}, err
	}
	if in.DeductHours >= in.TotalHours && in.TotalHours > 0 {
		verr.Add("deductHours", "must be less than totalHours")
	}
	if err := verr.OrNil(); err != nil {
		return Schedule{}, err
	}
	return Schedule{
		Name:        in.Name,
		StartTime:   in.StartTime,
		TotalHours:  in.TotalHours,
		DeductHours: in.DeductHours,
		Days:        in.Days,
	}, nil
}
