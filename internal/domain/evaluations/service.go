package evaluations

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

func (s *Service) List(ctx context.Context) ([]Evaluation, error) {
	return s.Store.List(ctx, "")
}

func (s *Service) ForEmployee(ctx context.Context, employeeID string) ([]Evaluation, error) {
	if employeeID == "" {
		return []Evaluation{}, nil
	}
	return s.Store.List(ctx, employeeID)
}

func (s *Service) Get(ctx context.Context, id string) (Evaluation, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Evaluation, error) {
	e, err := s.prepare(ctx, in)
	if err != nil {
		return Evaluation{}, err
	}
	return s.Store.Create(ctx, e)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Evaluation, error) {
	e, err := s.prepare(ctx, in)
	if err != nil {
		return Evaluation{}, err
	}
	return s.Store.Update(ctx, id, e)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

// prepare validates the payload. A completed evaluation needs a score; a
// pending one has none yet.
func (s *Service) prepare(ctx context.Context, in Input) (Evaluation, error) {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.Evaluator = strings.TrimSpace(in.Evaluator)
	in.Date = strings.TrimSpace(in.Date)
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
	in.Comments = strings.TrimSpace(in.Comments)
	if in.Status == "" {
		in.Status = StatusPending
	}

	verr := &apperr.ValidationError{}
	if err := validate.Struct(in); err != nil && !errors.As(err, &verr) {
		return Evaluation{}, err
	}
	if in.Status == StatusCompleted && in.Score <= 0 {
		verr.Add("score", "is required for completed evaluations")
	}
	if in.Status == StatusPending && in.Score != 0 {
		verr.Add("score", "must be empty while the evaluation is pending")
	}
	if err := verr.OrNil(); err != nil {
		return Evaluation{}, err
	}

	e := Evaluation{
		EmployeeID: in.EmployeeID,
		Evaluator:  in.Evaluator,
		Date:       in.Date,
		Score:      in.Score,
		Status:     in.Status,
		Comments:   in.Comments,
	}
	if s.Employees == nil {
		return e, nil
	}
	emp, err := s.Employees.Get(ctx, in.EmployeeID)
	if errors.Is(err, apperr.ErrNotFound) {
		verr.Add("employeeId", "must reference an existing employee")
		return Evaluation{}, verr
	}
	if err != nil {
		return Evaluation{}, err
	}
	e.EmployeeName = emp.FullName()
	e.Position = emp.Position
	return e, nil
}
