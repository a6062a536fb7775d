package schedules

import (
	"strconv"

	"workwise/internal/listing"
)

func hours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "h"
}

var Table = listing.Table[Schedule]{
	Columns: []listing.Column[Schedule]{
		{Key: "name", Label: "Name", Cell: func(s Schedule) string { return s.Name }, Sortable: true},
		{Key: "startTime", Label: "Start", Cell: func(s Schedule) string { return s.StartTime }, Sortable: true},
		{Key: "endTime", Label: "End", Cell: func(s Schedule) string { return s.EndTime }, Sortable: true},
		{Key: "totalHours", Label: "Hours", Cell: func(s Schedule) string { return hours(s.TotalHours) }, Sortable: true, SortValue: func(s Schedule) any { return s.TotalHours }},
		{Key: "days", Label: "Days", Cell: func(s Schedule) string { return s.Days }},
		{
			Key:       "assigned",
			Label:     "Employees",
			Cell:      func(s Schedule) string { return strconv.Itoa(len(s.Assignments)) },
			Sortable:  true,
			SortValue: func(s Schedule) any { return len(s.Assignments) },
		},
	},
	SearchKeys: []string{"name", "days"},
}

var ShiftTable = listing.Table[Shift]{
	Columns: []listing.Column[Shift]{
		{Key: "date", Label: "Date", Cell: func(s Shift) string { return s.Date }, Sortable: true},
		{Key: "schedule", Label: "Schedule", Cell: func(s Shift) string { return s.ScheduleName }, Sortable: true},
		{Key: "hours", Label: "Hours", Cell: func(s Shift) string { return s.StartTime + " - " + s.EndTime }},
		{Key: "location", Label: "Location", Cell: func(s Shift) string { return s.Location }, Sortable: true},
		{Key: "shiftType", Label: "Shift", Cell: shiftLabel, Sortable: true},
	},
	SearchKeys: []string{"schedule", "location"},
}

func shiftLabel(s Shift) string {
	if s.ShiftType == ShiftHalfDay {
		return "Half Day"
	}
	return "Full Day"
}
