package permissions

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"workwise/internal/apperr"
	"workwise/internal/platform/validate"
)

type Service struct {
	Store     StoreAPI
	Employees EmployeeDirectory
	Now       func() time.Time
}

func NewService(store StoreAPI, employees EmployeeDirectory) *Service {
	return &Service{Store: store, Employees: employees, Now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Request, error) {
	return s.Store.List(ctx, "")
}

func (s *Service) ForEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	if employeeID == "" {
		return []Request{}, nil
	}
	return s.Store.List(ctx, employeeID)
}

func (s *Service) Get(ctx context.Context, id string) (Request, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Request, error) {
	r, err := s.prepare(ctx, in)
	if err != nil {
		return Request{}, err
	}
	r.Status = StatusPending
	return s.Store.Create(ctx, r)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Request, error) {
	r, err := s.prepare(ctx, in)
	if err != nil {
		return Request{}, err
	}
	return s.Store.Update(ctx, id, r)
}

func (s *Service) Approve(ctx context.Context, id, decidedBy string, d Decision) (Request, error) {
	return s.decide(ctx, id, StatusApproved, decidedBy, d)
}

func (s *Service) Reject(ctx context.Context, id, decidedBy string, d Decision) (Request, error) {
	return s.decide(ctx, id, StatusRejected, decidedBy, d)
}

func (s *Service) decide(ctx context.Context, id, status, decidedBy string, d Decision) (Request, error) {
	d.Comments = strings.TrimSpace(d.Comments)
	if err := validate.Struct(d); err != nil {
		return Request{}, err
	}
	return s.Store.Decide(ctx, id, status, d.Comments, decidedBy, s.now())
}

// PendingCount is the number of requests waiting for a decision.
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	all, err := s.Store.List(ctx, "")
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range all {
		if r.Status == StatusPending {
			n++
		}
	}
	return n, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s *Service) prepare(ctx context.Context, in Input) (Request, error) {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = strings.TrimSpace(in.EndDate)
	in.Reason = strings.TrimSpace(in.Reason)

	verr := &apperr.ValidationError{}
	if err := validate.Struct(in); err != nil && !errors.As(err, &verr) {
		return Request{}, err
	}
	if in.Days > 0 && math.Mod(in.Days*2, 1) != 0 {
		verr.Add("days", "must be a multiple of 0.5")
	}
	start, startErr := time.Parse(time.DateOnly, in.StartDate)
	end, endErr := time.Parse(time.DateOnly, in.EndDate)
	if startErr == nil && endErr == nil && end.Before(start) {
		verr.Add("endDate", "must not be before startDate")
	}
	if err := verr.OrNil(); err != nil {
		return Request{}, err
	}

	r := Request{
		EmployeeID: in.EmployeeID,
		Type:       in.Type,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Days:       in.Days,
		Reason:     in.Reason,
	}
	if s.Employees == nil {
		return r, nil
	}
	emp, err := s.Employees.Get(ctx, in.EmployeeID)
	if errors.Is(err, apperr.ErrNotFound) {
		verr.Add("employeeId", "must reference an existing employee")
		return Request{}, verr
	}
	if err != nil {
		return Request{}, err
	}
	r.EmployeeName = emp.FullName()
	return r, nil
}
