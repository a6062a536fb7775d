package listing

import (
	"context"
	"errors"
	"testing"

	"workwise/internal/apperr"
)

func TestTrigger(t *testing.T) {
	var deleted, viewed []int
	table := peopleTable
	table.Actions = []Action[person]{
		{Name: "view", Run: func(_ context.Context, p person) error { viewed = append(viewed, p.ID); return nil }},
		{
			Name:        "delete",
			Destructive: true,
			Prompt:      func(p person) string { return "Delete " + p.Name + "?" },
			Run:         func(_ context.Context, p person) error { deleted = append(deleted, p.ID); return nil },
		},
	}
	ctx := context.Background()

	if err := table.Trigger(ctx, "view", people[0], nil); err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(viewed) != 1 {
		t.Fatal("non destructive action should run without confirmation")
	}

	var asked string
	deny := ConfirmFunc(func(prompt string) bool { asked = prompt; return false })
	if err := table.Trigger(ctx, "delete", people[1], deny); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected cancelled, got %v", err)
	}
	if asked != "Delete Jane Smith?" {
		t.Fatalf("unexpected prompt %q", asked)
	}
	if err := table.Trigger(ctx, "delete", people[1], nil); !errors.Is(err, ErrCancelled) {
		t.Fatalf("nil confirmer must not approve, got %v", err)
	}
	if len(deleted) != 0 {
		t.Fatal("destructive action ran without confirmation")
	}

	allow := ConfirmFunc(func(string) bool { return true })
	if err := table.Trigger(ctx, "delete", people[1], allow); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(deleted) != 1 || deleted[0] != 2 {
		t.Fatalf("expected exactly row 2 deleted, got %v", deleted)
	}

	if err := table.Trigger(ctx, "archive", people[0], allow); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
