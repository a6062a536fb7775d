package listing

import (
	"context"
	"errors"
	"testing"
)

func TestResolved(t *testing.T) {
	if v := Resolved[person](nil, errors.New("boom")); v.State != Failed || v.Err == nil {
		t.Fatalf("expected failed, got %+v", v)
	}
	if v := Resolved[person](nil, nil); v.State != Empty {
		t.Fatalf("expected empty, got %v", v.State)
	}
	if v := Resolved(people, nil); v.State != Ready || len(v.Rows) != 5 {
		t.Fatalf("expected ready, got %v", v.State)
	}
}

func TestPresent(t *testing.T) {
	ready := Resolved(people, nil)
	if v := peopleTable.Present(ready, Query{Search: "nobody"}); v.State != Empty || v.Err != nil {
		t.Fatalf("no match should be empty, not an error: %+v", v)
	}
	if v := peopleTable.Present(ready, Query{Search: "jane"}); v.State != Ready || len(v.Rows) != 1 {
		t.Fatalf("unexpected view: %+v", v)
	}
	loading := View[person]{State: Loading}
	if v := peopleTable.Present(loading, Query{}); v.State != Loading {
		t.Fatalf("loading must pass through, got %v", v.State)
	}
}

func TestLoaderDiscardsStaleResults(t *testing.T) {
	l := NewLoader[person](nil)
	if l.View().State != Loading {
		t.Fatal("new loader starts loading")
	}

	first := l.Begin()
	second := l.Begin()

	if !l.Resolve(second, people[:1], nil) {
		t.Fatal("latest ticket must be accepted")
	}
	if l.Resolve(first, people, nil) {
		t.Fatal("superseded ticket must be discarded")
	}
	v := l.View()
	if v.State != Ready || len(v.Rows) != 1 || v.Rows[0].ID != 1 {
		t.Fatalf("stale result leaked into view: %+v", v)
	}
}

func TestLoaderLoad(t *testing.T) {
	calls := 0
	l := NewLoader(func(ctx context.Context) ([]person, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("network error")
		}
		return people, nil
	})
	if v := l.Load(context.Background()); v.State != Failed {
		t.Fatalf("expected failure, got %v", v.State)
	}
	if v := l.Load(context.Background()); v.State != Ready || len(v.Rows) != len(people) {
		t.Fatalf("expected ready, got %+v", v)
	}
}
