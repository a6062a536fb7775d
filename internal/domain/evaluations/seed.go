package evaluations

// Sample is a demo evaluation for the employee with EmployeeEmail.
type Sample struct {
	Evaluation
	EmployeeEmail string
}

var Samples = []Sample{
	{EmployeeEmail: "john.doe@example.com", Evaluation: Evaluation{Evaluator: "Maria Gomez (Manager)", Date: "2025-04-10", Score: 4.8, Status: StatusCompleted, Comments: "Outstanding quarter; strong technical skills and punctuality."}},
	{EmployeeEmail: "jane.smith@example.com", Evaluation: Evaluation{Evaluator: "Maria Gomez (Manager)", Date: "2025-04-05", Score: 4.5, Status: StatusCompleted}},
	{EmployeeEmail: "robert.johnson@example.com", Evaluation: Evaluation{Evaluator: "Maria Gomez (Manager)", Date: "2025-05-15", Status: StatusPending}},
	{EmployeeEmail: "mary.williams@example.com", Evaluation: Evaluation{Evaluator: "Maria Gomez (Manager)", Date: "2025-05-20", Status: StatusPending}},
	{EmployeeEmail: "michael.brown@example.com", Evaluation: Evaluation{Evaluator: "Maria Gomez (Manager)", Date: "2025-04-02", Score: 4.2, Status: StatusCompleted}},
}
