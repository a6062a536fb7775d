package listing

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/employees?q=+john+&sort=name&dir=DESC", nil)
	q := ParseQuery(r)
	if q.Search != " john " || q.SortKey != "name" || q.Direction != Desc {
		t.Fatalf("unexpected query: %+v", q)
	}
	r = httptest.NewRequest("GET", "/employees?dir=sideways", nil)
	if q := ParseQuery(r); q.Direction != Asc || q.SortKey != "" {
		t.Fatalf("unexpected defaults: %+v", q)
	}
}

func TestQueryValuesRoundTrip(t *testing.T) {
	q := Query{Search: "eng", SortKey: "salary", Direction: Desc}
	if got := QueryFromValues(q.Values()); got != q {
		t.Fatalf("got %+v, want %+v", got, q)
	}
	if enc := (Query{Search: "  "}).Values().Encode(); enc != "" {
		t.Fatalf("empty query should encode to nothing, got %q", enc)
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	rows := peopleTable.Apply(people, Query{SortKey: "name"})
	if err := WriteXLSX(&buf, "Employees", peopleTable, rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	header, _ := f.GetCellValue("Employees", "A1")
	if header != "Name" {
		t.Fatalf("header = %q", header)
	}
	first, _ := f.GetCellValue("Employees", "A2")
	if first != "Jane Smith" {
		t.Fatalf("first row = %q", first)
	}
	salary, _ := f.GetCellValue("Employees", "C6")
	if salary != "80000" {
		t.Fatalf("last salary = %q", salary)
	}
}
