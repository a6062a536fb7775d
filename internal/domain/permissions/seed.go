package permissions

// Sample is a demo request filed by the employee with EmployeeEmail.
type Sample struct {
	Request
	EmployeeEmail string
}

var Samples = []Sample{
	{EmployeeEmail: "john.doe@example.com", Request: Request{Type: TypeVacation, StartDate: "2025-06-12", EndDate: "2025-06-26", Days: 10, Reason: "Annual family vacation", Status: StatusPending, SubmittedDate: "2025-04-28"}},
	{EmployeeEmail: "john.doe@example.com", Request: Request{Type: TypePermission, StartDate: "2025-04-10", EndDate: "2025-04-10", Days: 1, Reason: "Medical appointment", Status: StatusApproved, SubmittedDate: "2025-04-05", Comments: "Approved. Please update your pending tasks before leaving."}},
	{EmployeeEmail: "john.doe@example.com", Request: Request{Type: TypePermission, StartDate: "2025-03-02", EndDate: "2025-03-02", Days: 0.5, Reason: "Personal matters (half day)", Status: StatusRejected, SubmittedDate: "2025-02-25", Comments: "Rejected due to workload and tight deadlines that week."}},
	{EmployeeEmail: "jane.smith@example.com", Request: Request{Type: TypePermission, StartDate: "2025-05-15", EndDate: "2025-05-15", Days: 1, Reason: "Medical appointment", Status: StatusApproved, SubmittedDate: "2025-05-05"}},
	{EmployeeEmail: "mary.williams@example.com", Request: Request{Type: TypeVacation, StartDate: "2025-07-01", EndDate: "2025-07-15", Days: 10, Reason: "Summer vacation", Status: StatusPending, SubmittedDate: "2025-05-02"}},
	{EmployeeEmail: "michael.brown@example.com", Request: Request{Type: TypeLeave, StartDate: "2025-05-20", EndDate: "2025-06-03", Days: 10, Reason: "Paternity leave", Status: StatusApproved, SubmittedDate: "2025-04-20"}},
}
