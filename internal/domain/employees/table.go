package employees

import (
	"context"

	"workwise/internal/listing"
)

var Table = listing.Table[Employee]{
	Columns: []listing.Column[Employee]{
		{Key: "name", Label: "Name", Cell: Employee.FullName, Sortable: true},
		{Key: "email", Label: "Email", Cell: func(e Employee) string { return e.Email }, Sortable: true},
		{Key: "phone", Label: "Phone", Cell: func(e Employee) string { return e.Phone }},
		{Key: "position", Label: "Position", Cell: func(e Employee) string { return e.Position }, Sortable: true},
		{Key: "department", Label: "Department", Cell: func(e Employee) string { return e.Department }, Sortable: true},
		{Key: "status", Label: "Status", Cell: statusLabel, Sortable: true},
	},
	SearchKeys: []string{"name", "email", "position", "department"},
}

func statusLabel(e Employee) string {
	if label, ok := StatusLabels[e.Status]; ok {
		return label
	}
	return e.Status
}

// TableWithActions returns Table with the row actions of the admin list.
func TableWithActions(edit, remove func(ctx context.Context, e Employee) error) listing.Table[Employee] {
	t := Table
	t.Actions = []listing.Action[Employee]{
		{Name: "edit", Label: "Edit", Run: edit},
		{
			Name:        "delete",
			Label:       "Delete",
			Destructive: true,
			Prompt: func(e Employee) string {
				return "This will permanently delete " + e.FullName() + "'s record and cannot be undone. Continue?"
			},
			Run: remove,
		},
	}
	return t
}
