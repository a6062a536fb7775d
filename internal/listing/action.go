package listing

import (
	"context"
	"errors"
	"fmt"

	"workwise/internal/apperr"
)

// ErrCancelled is returned when a destructive action was not confirmed.
var ErrCancelled = errors.New("action cancelled")

type Action[T any] struct {
	Name        string
	Label       string
	Destructive bool
	// Prompt builds the confirmation question for destructive actions.
	Prompt func(T) string
	Run    func(ctx context.Context, row T) error
}

type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

func (t Table[T]) Action(name string) (Action[T], bool) {
	for _, a := range t.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action[T]{}, false
}

// Trigger runs the named action against exactly one row. Destructive actions
// run only after confirm approves; a nil confirm never approves.
func (t Table[T]) Trigger(ctx context.Context, name string, row T, confirm Confirmer) error {
	action, ok := t.Action(name)
	if !ok || action.Run == nil {
		return fmt.Errorf("%w: action %q", apperr.ErrNotFound, name)
	}
	if action.Destructive {
		prompt := "Are you sure?"
		if action.Prompt != nil {
			prompt = action.Prompt(row)
		}
		if confirm == nil || !confirm.Confirm(prompt) {
			return ErrCancelled
		}
	}
	return action.Run(ctx, row)
}
