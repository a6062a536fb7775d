package positions

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"workwise/internal/platform/validate"
)

type Service struct {
	Store StoreAPI
	// Headcount, when set, overrides the stored employee counts.
	Headcount Headcounter
}

func NewService(store StoreAPI, headcount Headcounter) *Service {
	return &Service{Store: store, Headcount: headcount}
}

func (s *Service) List(ctx context.Context) ([]Position, error) {
	items, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.Headcount == nil {
		return items, nil
	}
	counts, err := s.Headcount.CountByPosition(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("position headcount failed")
		return items, nil
	}
	for i := range items {
		items[i].EmployeeCount = counts[items[i].ID]
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (Position, error) {
	p, err := s.Store.Get(ctx, id)
	if err != nil {
		return Position{}, err
	}
	if s.Headcount != nil {
		if counts, err := s.Headcount.CountByPosition(ctx); err == nil {
			p.EmployeeCount = counts[p.ID]
		}
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Position, error) {
	in = normalize(in)
	if err := validate.Struct(in); err != nil {
		return Position{}, err
	}
	return s.Store.Create(ctx, in.Position())
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Position, error) {
	in = normalize(in)
	if err := validate.Struct(in); err != nil {
		return Position{}, err
	}
	return s.Store.Update(ctx, id, in.Position())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

func normalize(in Input) Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Department = strings.TrimSpace(in.Department)
	return in
}
