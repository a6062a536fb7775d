package evaluations

import (
	"strconv"

	"workwise/internal/listing"
)

func scoreText(e Evaluation) string {
	if e.Status == StatusPending {
		return "-"
	}
	return strconv.FormatFloat(e.Score, 'f', 1, 64) + "/5"
}

func statusText(e Evaluation) string {
	if e.Status == StatusCompleted {
		return "Completed"
	}
	return "Pending"
}

var Table = listing.Table[Evaluation]{
	Columns: []listing.Column[Evaluation]{
		{Key: "employeeName", Label: "Employee", Cell: func(e Evaluation) string { return e.EmployeeName }, Sortable: true},
		{Key: "position", Label: "Position", Cell: func(e Evaluation) string { return e.Position }, Sortable: true},
		{Key: "date", Label: "Date", Cell: func(e Evaluation) string { return e.Date }, Sortable: true},
		{Key: "score", Label: "Score", Cell: scoreText, Sortable: true, SortValue: func(e Evaluation) any { return e.Score }},
		{Key: "status", Label: "Status", Cell: statusText, Sortable: true},
		{Key: "evaluator", Label: "Evaluator", Cell: func(e Evaluation) string { return e.Evaluator }},
	},
	SearchKeys: []string{"employeeName", "position", "evaluator"},
}
