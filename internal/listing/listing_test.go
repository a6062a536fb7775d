package listing

import (
	"slices"
	"strconv"
	"testing"
)

type person struct {
	ID     int
	Name   string
	Dept   string
	Salary float64
}

var people = []person{
	{ID: 1, Name: "John Doe", Dept: "Engineering", Salary: 85000},
	{ID: 2, Name: "Jane Smith", Dept: "Marketing", Salary: 75000},
	{ID: 3, Name: "Robert Johnson", Dept: "Finance", Salary: 80000},
	{ID: 4, Name: "Mary Williams", Dept: "Engineering", Salary: 75000},
	{ID: 5, Name: "Michael Brown", Dept: "Operations", Salary: 95000},
}

var peopleTable = Table[person]{
	Columns: []Column[person]{
		{Key: "name", Label: "Name", Cell: func(p person) string { return p.Name }, Sortable: true},
		{Key: "dept", Label: "Department", Cell: func(p person) string { return p.Dept }, Sortable: true},
		{Key: "salary", Label: "Salary", Cell: func(p person) string { return strconv.FormatFloat(p.Salary, 'f', 0, 64) }, Sortable: true, SortValue: func(p person) any { return p.Salary }},
		{Key: "id", Label: "ID", Cell: func(p person) string { return strconv.Itoa(p.ID) }},
	},
	SearchKeys: []string{"name", "dept"},
}

func ids(rows []person) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []int
	}{
		{name: "empty term keeps order", term: "", want: []int{1, 2, 3, 4, 5}},
		{name: "whitespace term", term: "   ", want: []int{1, 2, 3, 4, 5}},
		{name: "unique match", term: "robert", want: []int{3}},
		{name: "case insensitive", term: "ENGINEERING", want: []int{1, 4}},
		{name: "substring", term: "mi", want: []int{2, 5}},
		{name: "leading space is part of the term", term: " doe", want: []int{1}},
		{name: "trailing space is part of the term", term: "john ", want: []int{1}},
		{name: "space does not match a word start", term: " robert", want: []int{}},
		{name: "no match", term: "zzz", want: []int{}},
		{name: "non searchable column ignored", term: "85000", want: []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(peopleTable.Filter(people, tc.term))
			if !slices.Equal(got, tc.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tc.term, got, tc.want)
			}
		})
	}
}

func TestFilterReturnsFreshSlice(t *testing.T) {
	got := peopleTable.Filter(people, "")
	got[0].Name = "changed"
	if people[0].Name != "John Doe" {
		t.Fatal("filter result must not alias the source")
	}
}

func TestSortStableAndNonMutating(t *testing.T) {
	source := slices.Clone(people)

	asc := peopleTable.Sort(people, "salary", Asc)
	if want := []int{2, 4, 3, 1, 5}; !slices.Equal(ids(asc), want) {
		t.Fatalf("asc = %v, want %v", ids(asc), want)
	}
	desc := peopleTable.Sort(people, "salary", Desc)
	if want := []int{5, 1, 3, 2, 4}; !slices.Equal(ids(desc), want) {
		t.Fatalf("desc = %v, want %v", ids(desc), want)
	}
	again := peopleTable.Sort(peopleTable.Sort(people, "salary", Asc), "salary", Asc)
	if !slices.Equal(ids(again), ids(asc)) {
		t.Fatalf("sorting twice changed tie order: %v", ids(again))
	}
	if !slices.Equal(ids(people), ids(source)) {
		t.Fatalf("source mutated: %v", ids(people))
	}
}

func TestSortTextCaseInsensitive(t *testing.T) {
	rows := []person{{ID: 1, Name: "bob"}, {ID: 2, Name: "Alice"}, {ID: 3, Name: "carl"}}
	got := peopleTable.Sort(rows, "name", Asc)
	if want := []int{2, 1, 3}; !slices.Equal(ids(got), want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
}

func TestSortIgnoresUnsortableKeys(t *testing.T) {
	for _, key := range []string{"id", "missing", ""} {
		got := peopleTable.Sort(people, key, Desc)
		if !slices.Equal(ids(got), []int{1, 2, 3, 4, 5}) {
			t.Fatalf("key %q reordered rows: %v", key, ids(got))
		}
	}
}

func TestApply(t *testing.T) {
	got := peopleTable.Apply(people, Query{Search: "engineering", SortKey: "name", Direction: Desc})
	if want := []int{4, 1}; !slices.Equal(ids(got), want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
}

func TestClickHeader(t *testing.T) {
	var q Query
	q.ClickHeader("name")
	if q.SortKey != "name" || q.Direction != Asc {
		t.Fatalf("first click: %+v", q)
	}
	q.ClickHeader("name")
	if q.Direction != Desc {
		t.Fatalf("second click: %+v", q)
	}
	q.ClickHeader("name")
	if q.Direction != Asc {
		t.Fatalf("third click: %+v", q)
	}
	q.ClickHeader("dept")
	q.ClickHeader("dept")
	q.ClickHeader("salary")
	if q.SortKey != "salary" || q.Direction != Asc {
		t.Fatalf("new column should reset to asc: %+v", q)
	}
}
