package positions

// Samples are the demo positions loaded into the in-memory store.
var Samples = []Position{
	{Name: "Software Engineer", Description: "Develops and maintains software applications", Department: "Engineering", BaseSalary: 85000},
	{Name: "Product Manager", Description: "Oversees product development lifecycle", Department: "Product", BaseSalary: 95000},
	{Name: "Marketing Specialist", Description: "Creates and implements marketing strategies", Department: "Marketing", BaseSalary: 75000},
	{Name: "HR Coordinator", Description: "Manages HR processes and employee relations", Department: "Human Resources", BaseSalary: 65000},
	{Name: "Financial Analyst", Description: "Analyzes financial data and prepares reports", Department: "Finance", BaseSalary: 80000},
}
