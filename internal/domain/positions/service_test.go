package positions

import (
	"context"
	"errors"
	"testing"

	"workwise/internal/apperr"
	"workwise/internal/listing"
)

type fakeHeadcount map[string]int

func (f fakeHeadcount) CountByPosition(context.Context) (map[string]int, error) { return f, nil }

func TestServiceCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), nil)

	created, err := svc.Create(ctx, Input{Name: "  QA Engineer ", Description: "Tests releases", Department: "Engineering", BaseSalary: 70000})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Name != "QA Engineer" {
		t.Fatalf("unexpected position: %+v", created)
	}

	updated, err := svc.Update(ctx, created.ID, Input{Name: "QA Lead", Description: "Leads testing", BaseSalary: 80000})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "QA Lead" || updated.BaseSalary != 80000 {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceValidation(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)
	_, err := svc.Create(context.Background(), Input{Name: "X", Description: "abc", BaseSalary: 0})
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	for _, want := range []string{"name", "description", "baseSalary"} {
		if !fields[want] {
			t.Fatalf("expected issue for %s, got %+v", want, verr.Fields)
		}
	}
}

func TestServiceHeadcount(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, p := range Samples {
		_, _ = store.Create(ctx, p)
	}
	items, _ := store.List(ctx)
	svc := NewService(store, fakeHeadcount{items[0].ID: 3})

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].EmployeeCount != 3 || list[1].EmployeeCount != 0 {
		t.Fatalf("unexpected counts: %d %d", list[0].EmployeeCount, list[1].EmployeeCount)
	}

	sorted := Table.Apply(list, listing.Query{SortKey: "baseSalary", Direction: listing.Desc})
	if sorted[0].Name != "Product Manager" || sorted[len(sorted)-1].Name != "HR Coordinator" {
		t.Fatalf("unexpected order: %s .. %s", sorted[0].Name, sorted[len(sorted)-1].Name)
	}
}
