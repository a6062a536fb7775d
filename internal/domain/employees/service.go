package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"workwise/internal/apperr"
	"workwise/internal/domain/auth"
	"workwise/internal/platform/validate"
)

type Service struct {
	Store     StoreAPI
	Positions PositionLookup
	Accounts  AccountProvisioner
}

func NewService(store StoreAPI, positions PositionLookup, accounts AccountProvisioner) *Service {
	return &Service{Store: store, Positions: positions, Accounts: accounts}
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.Store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	return s.Store.Get(ctx, id)
}

// ForUser returns the employee record linked to a login.
func (s *Service) ForUser(ctx context.Context, userID string) (Employee, error) {
	return s.Store.GetByUserID(ctx, userID)
}

func (s *Service) CountByPosition(ctx context.Context) (map[string]int, error) {
	return s.Store.CountByPosition(ctx)
}

// Create stores a new employee and, when a password is supplied, provisions
// an employee login keyed by the email address.
func (s *Service) Create(ctx context.Context, in Input) (Employee, error) {
	in = normalize(in)
	emp, err := s.prepare(ctx, in)
	if err != nil {
		return Employee{}, err
	}
	created, err := s.Store.Create(ctx, emp)
	if err != nil {
		return Employee{}, err
	}

	if in.Password == "" || s.Accounts == nil {
		return created, nil
	}
	userID, err := s.Accounts.EnsureUser(ctx, created.Email, in.Password, created.FullName(), auth.RoleEmployee, created.ID)
	if err != nil {
		return created, fmt.Errorf("provision login for %s: %w", created.Email, err)
	}
	if err := s.Store.LinkUser(ctx, created.ID, userID); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("employeeId", created.ID).Msg("link employee login failed")
		return created, nil
	}
	created.UserID = userID
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Employee, error) {
	in = normalize(in)
	in.Password = ""
	emp, err := s.prepare(ctx, in)
	if err != nil {
		return Employee{}, err
	}
	return s.Store.Update(ctx, id, emp)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

func (s *Service) prepare(ctx context.Context, in Input) (Employee, error) {
	if err := validate.Struct(in); err != nil {
		return Employee{}, err
	}
	emp := in.Employee()
	if emp.Status == "" {
		emp.Status = StatusActive
	}
	if s.Positions == nil {
		return emp, nil
	}
	pos, err := s.Positions.Get(ctx, in.PositionID)
	if errors.Is(err, apperr.ErrNotFound) {
		verr := &apperr.ValidationError{}
		verr.Add("positionId", "must reference an existing role")
		return Employee{}, verr
	}
	if err != nil {
		return Employee{}, err
	}
	emp.Position = pos.Name
	emp.Department = pos.Department
	return emp, nil
}

func normalize(in Input) Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Lastname = strings.TrimSpace(in.Lastname)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Company = strings.TrimSpace(in.Company)
	in.PositionID = strings.TrimSpace(in.PositionID)
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
	return in
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Store.Get(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}
