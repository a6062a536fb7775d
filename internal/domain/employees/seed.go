package employees

// Sample is a demo employee; PositionName is resolved to an ID at seed time.
type Sample struct {
	Employee
	PositionName string
}

var Samples = []Sample{
	{Employee: Employee{Name: "John", Lastname: "Doe", Email: "john.doe@example.com", Phone: "(555) 123-4567", Address: "12 Main St", Company: "Workwise", Status: StatusActive}, PositionName: "Software Engineer"},
	{Employee: Employee{Name: "Jane", Lastname: "Smith", Email: "jane.smith@example.com", Phone: "(555) 987-6543", Address: "48 Oak Ave", Company: "Workwise", Status: StatusActive}, PositionName: "Marketing Specialist"},
	{Employee: Employee{Name: "Robert", Lastname: "Johnson", Email: "robert.johnson@example.com", Phone: "(555) 456-7890", Address: "7 Pine Rd", Company: "Workwise", Status: StatusVacation}, PositionName: "Financial Analyst"},
	{Employee: Employee{Name: "Mary", Lastname: "Williams", Email: "mary.williams@example.com", Phone: "(555) 321-7654", Address: "300 Elm St", Company: "Workwise", Status: StatusActive}, PositionName: "HR Coordinator"},
	{Employee: Employee{Name: "Michael", Lastname: "Brown", Email: "michael.brown@example.com", Phone: "(555) 234-5678", Address: "91 Cedar Ln", Company: "Workwise", Status: StatusLeave}, PositionName: "Product Manager"},
}
