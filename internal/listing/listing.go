// Package listing implements the shared search, sort and row-action behavior
// of every resource list. The server applies it before responding and the
// console applies it again on the fetched snapshot, so both observe the same
// ordering.
package listing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func (d Direction) Toggle() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// ParseDirection maps anything other than "desc" to Asc.
func ParseDirection(raw string) Direction {
	if strings.EqualFold(strings.TrimSpace(raw), string(Desc)) {
		return Desc
	}
	return Asc
}

type Query struct {
	Search    string
	SortKey   string
	Direction Direction
}

// ClickHeader toggles the direction when key is already the sort column and
// starts ascending on a new column.
func (q *Query) ClickHeader(key string) {
	if q.SortKey == key {
		q.Direction = q.Direction.Toggle()
		return
	}
	q.SortKey = key
	q.Direction = Asc
}

type Column[T any] struct {
	Key   string
	Label string
	// Cell renders the column as text. It is also what search matches.
	Cell     func(T) string
	Sortable bool
	// SortValue overrides Cell for ordering; numbers and times compare by
	// value, everything else as case-folded text.
	SortValue func(T) any
}

type Table[T any] struct {
	Columns    []Column[T]
	SearchKeys []string
	Actions    []Action[T]
}

func (t Table[T]) Column(key string) (Column[T], bool) {
	for _, c := range t.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

// Apply filters rows by q.Search and sorts the result by q.SortKey. The
// input is never modified; the result is always a fresh slice.
func (t Table[T]) Apply(rows []T, q Query) []T {
	out := t.Filter(rows, q.Search)
	return t.sortInPlace(out, q.SortKey, q.Direction)
}

// Filter keeps rows whose searchable text contains term, case-insensitively.
// The term is matched as typed, spaces included. A blank term keeps every
// row in order.
func (t Table[T]) Filter(rows []T, term string) []T {
	if strings.TrimSpace(term) == "" || len(t.SearchKeys) == 0 {
		return slices.Clone(rows)
	}
	term = strings.ToLower(term)
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(t.searchText(row)), term) {
			out = append(out, row)
		}
	}
	return out
}

// Sort returns a sorted copy. Unknown or non-sortable keys leave the order
// unchanged.
func (t Table[T]) Sort(rows []T, key string, dir Direction) []T {
	return t.sortInPlace(slices.Clone(rows), key, dir)
}

func (t Table[T]) sortInPlace(rows []T, key string, dir Direction) []T {
	col, ok := t.Column(key)
	if !ok || !col.Sortable {
		return rows
	}
	value := col.SortValue
	if value == nil {
		value = func(row T) any { return cellText(col, row) }
	}
	slices.SortStableFunc(rows, func(a, b T) int {
		c := compareValues(value(a), value(b))
		if dir == Desc {
			return -c
		}
		return c
	})
	return rows
}

func (t Table[T]) searchText(row T) string {
	parts := make([]string, 0, len(t.SearchKeys))
	for _, key := range t.SearchKeys {
		col, ok := t.Column(key)
		if !ok {
			continue
		}
		parts = append(parts, cellText(col, row))
	}
	return strings.Join(parts, " ")
}

func cellText[T any](col Column[T], row T) string {
	if col.Cell == nil {
		return ""
	}
	return col.Cell(row)
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return cmp.Compare(av, bv)
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return cmp.Compare(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(strings.ToLower(av), strings.ToLower(bv))
		}
	}
	return cmp.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}
