package listing

import (
	"context"
	"sync"
)

type State int

const (
	Loading State = iota
	Ready
	Empty
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// EmptyMessage is shown for a list with no rows. It is not an error.
const EmptyMessage = "No records found"

type View[T any] struct {
	State State
	Rows  []T
	Err   error
}

// Resolved classifies the outcome of a fetch.
func Resolved[T any](rows []T, err error) View[T] {
	switch {
	case err != nil:
		return View[T]{State: Failed, Err: err}
	case len(rows) == 0:
		return View[T]{State: Empty}
	}
	return View[T]{State: Ready, Rows: rows}
}

// Present applies q to a resolved view. A search that matches nothing turns
// Ready into Empty; Loading and Failed pass through.
func (t Table[T]) Present(v View[T], q Query) View[T] {
	if v.State != Ready {
		return v
	}
	return Resolved(t.Apply(v.Rows, q), nil)
}

type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Loader owns one list's snapshot. Every fetch takes a ticket; a result
// arriving after a newer fetch started is dropped.
type Loader[T any] struct {
	fetch FetchFunc[T]

	mu   sync.Mutex
	seq  uint64
	view View[T]
}

func NewLoader[T any](fetch FetchFunc[T]) *Loader[T] {
	return &Loader[T]{fetch: fetch, view: View[T]{State: Loading}}
}

// Begin marks the list as loading and returns the ticket of the new fetch.
func (l *Loader[T]) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.view = View[T]{State: Loading}
	return l.seq
}

// Resolve stores the result of fetch ticket. It reports false, leaving the
// view untouched, when ticket has been superseded.
func (l *Loader[T]) Resolve(ticket uint64, rows []T, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ticket != l.seq {
		return false
	}
	l.view = Resolved(rows, err)
	return true
}

// Load runs a full fetch cycle and returns the current view.
func (l *Loader[T]) Load(ctx context.Context) View[T] {
	ticket := l.Begin()
	rows, err := l.fetch(ctx)
	l.Resolve(ticket, rows, err)
	return l.View()
}

func (l *Loader[T]) View() View[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.view
}
