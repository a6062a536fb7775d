package permissions

import (
	"strconv"

	"workwise/internal/listing"
)

func label(m map[string]string, key string) string {
	if l, ok := m[key]; ok {
		return l
	}
	return key
}

var Table = listing.Table[Request]{
	Columns: []listing.Column[Request]{
		{Key: "employeeName", Label: "Employee", Cell: func(r Request) string { return r.EmployeeName }, Sortable: true},
		{Key: "type", Label: "Type", Cell: func(r Request) string { return label(TypeLabels, r.Type) }, Sortable: true},
		{Key: "startDate", Label: "Start", Cell: func(r Request) string { return r.StartDate }, Sortable: true},
		{Key: "endDate", Label: "End", Cell: func(r Request) string { return r.EndDate }},
		{
			Key:       "days",
			Label:     "Days",
			Cell:      func(r Request) string { return strconv.FormatFloat(r.Days, 'f', -1, 64) },
			Sortable:  true,
			SortValue: func(r Request) any { return r.Days },
		},
		{Key: "reason", Label: "Reason", Cell: func(r Request) string { return r.Reason }},
		{Key: "status", Label: "Status", Cell: func(r Request) string { return label(StatusLabels, r.Status) }, Sortable: true},
		{Key: "submittedDate", Label: "Submitted", Cell: func(r Request) string { return r.SubmittedDate }, Sortable: true},
	},
	SearchKeys: []string{"employeeName", "type", "reason"},
}
