package positions

import (
	"strconv"

	"workwise/internal/listing"
)

var Table = listing.Table[Position]{
	Columns: []listing.Column[Position]{
		{Key: "name", Label: "Role", Cell: func(p Position) string { return p.Name }, Sortable: true},
		{Key: "department", Label: "Department", Cell: func(p Position) string { return p.Department }, Sortable: true},
		{Key: "description", Label: "Description", Cell: func(p Position) string { return p.Description }},
		{
			Key:       "baseSalary",
			Label:     "Base Salary",
			Cell:      func(p Position) string { return "$" + strconv.FormatFloat(p.BaseSalary, 'f', 2, 64) },
			Sortable:  true,
			SortValue: func(p Position) any { return p.BaseSalary },
		},
		{
			Key:       "employeeCount",
			Label:     "Employees",
			Cell:      func(p Position) string { return strconv.Itoa(p.EmployeeCount) },
			Sortable:  true,
			SortValue: func(p Position) any { return p.EmployeeCount },
		},
	},
	SearchKeys: []string{"name", "department", "description"},
}
