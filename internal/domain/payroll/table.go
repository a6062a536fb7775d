package payroll

import (
	"strconv"

	"workwise/internal/listing"
)

// Money renders an amount with two decimals and a dollar sign.
func Money(v float64) string {
	if v < 0 {
		return "-$" + strconv.FormatFloat(-v, 'f', 2, 64)
	}
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func amount(key, label string, get func(Payroll) float64) listing.Column[Payroll] {
	return listing.Column[Payroll]{
		Key:       key,
		Label:     label,
		Cell:      func(p Payroll) string { return Money(get(p)) },
		Sortable:  true,
		SortValue: func(p Payroll) any { return get(p) },
	}
}

var Table = listing.Table[Payroll]{
	Columns: []listing.Column[Payroll]{
		{Key: "employeeName", Label: "Employee", Cell: func(p Payroll) string { return p.EmployeeName }, Sortable: true},
		{Key: "payPeriod", Label: "Period", Cell: func(p Payroll) string { return p.PayPeriod }},
		{Key: "paymentDate", Label: "Date", Cell: func(p Payroll) string { return p.PaymentDate }, Sortable: true},
		amount("grossPay", "Gross pay", func(p Payroll) float64 { return p.GrossPay }),
		amount("totalDeductions", "Deductions", func(p Payroll) float64 { return p.TotalDeductions }),
		amount("netPay", "Net pay", func(p Payroll) float64 { return p.NetPay }),
	},
	SearchKeys: []string{"employeeName", "payPeriod"},
}
