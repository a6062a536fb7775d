package payroll

func stub(period, date string) Payroll {
	return Payroll{
		PayPeriod:       period,
		PaymentDate:     date,
		BaseSalary:      4000,
		Overtime:        100,
		GrossPay:        4100,
		Taxes:           820,
		Insurance:       123,
		OtherDeductions: 41,
		TotalDeductions: 984,
		NetPay:          3116,
		HoursWorked:     80,
	}
}

// Samples is the demo pay history of the linked demo employee.
var Samples = []Payroll{
	stub("May 2025 (1st half)", "2025-05-15"),
	stub("April 2025 (2nd half)", "2025-04-30"),
	stub("April 2025 (1st half)", "2025-04-15"),
	stub("March 2025 (2nd half)", "2025-03-31"),
}
