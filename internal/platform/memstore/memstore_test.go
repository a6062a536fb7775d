package memstore

import (
	"errors"
	"testing"

	"workwise/internal/apperr"
)

type item struct {
	ID   string
	Name string
}

func (i item) Key() string         { return i.ID }
func (i *item) WithKey(id string) { i.ID = id }

func TestTable(t *testing.T) {
	tbl := New[item]()
	a := tbl.Insert(item{Name: "a"})
	b := tbl.Insert(item{ID: "fixed", Name: "b"})
	tbl.Insert(item{Name: "c"})

	if a.ID == "" || b.ID != "fixed" {
		t.Fatalf("unexpected ids: %q %q", a.ID, b.ID)
	}
	rows := tbl.List(nil)
	if len(rows) != 3 || rows[0].Name != "a" || rows[2].Name != "c" {
		t.Fatalf("insertion order lost: %+v", rows)
	}

	updated, err := tbl.Update("fixed", func(i *item) error {
		i.Name = "bb"
		i.ID = "hijack"
		return nil
	})
	if err != nil || updated.ID != "fixed" || updated.Name != "bb" {
		t.Fatalf("update: %+v %v", updated, err)
	}

	boom := errors.New("boom")
	if _, err := tbl.Update("fixed", func(i *item) error { i.Name = "lost"; return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if got, _ := tbl.Get("fixed"); got.Name != "bb" {
		t.Fatalf("failed update must not persist, got %q", got.Name)
	}

	if err := tbl.Delete("fixed"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := tbl.Get("fixed"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := tbl.Delete("fixed"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if n := tbl.Count(func(i item) bool { return i.Name == "c" }); n != 1 {
		t.Fatalf("count = %d", n)
	}
	if _, err := tbl.Find(func(i item) bool { return i.Name == "zzz" }); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("find: %v", err)
	}
}
