package payroll

import "time"

type Adjustment struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Payroll is one pay stub. Amounts are recorded as issued; nothing here
// derives gross or net pay.
type Payroll struct {
	ID              string       `json:"id"`
	EmployeeID      string       `json:"employeeId"`
	EmployeeName    string       `json:"employeeName"`
	PayPeriod       string       `json:"payPeriod"`
	PaymentDate     string       `json:"paymentDate"`
	BaseSalary      float64      `json:"baseSalary"`
	Overtime        float64      `json:"overtime"`
	Bonus           float64      `json:"bonus"`
	GrossPay        float64      `json:"grossPay"`
	Taxes           float64      `json:"taxes"`
	Insurance       float64      `json:"insurance"`
	OtherDeductions float64      `json:"otherDeductions"`
	TotalDeductions float64      `json:"totalDeductions"`
	NetPay          float64      `json:"netPay"`
	HoursWorked     float64      `json:"hoursWorked"`
	Adjustments     []Adjustment `json:"adjustments"`
	CreatedAt       time.Time    `json:"createdAt"`
}

func (p Payroll) Key() string         { return p.ID }
func (p *Payroll) WithKey(id string) { p.ID = id }

// AdjustmentsTotal sums the adjustment amounts for display.
func (p Payroll) AdjustmentsTotal() float64 {
	var total float64
	for _, a := range p.Adjustments {
		total += a.Amount
	}
	return total
}

type Input struct {
	EmployeeID      string  `json:"employeeId" validate:"required"`
	PayPeriod       string  `json:"payPeriod" validate:"required,max=120"`
	PaymentDate     string  `json:"paymentDate" validate:"required,isodate"`
	BaseSalary      float64 `json:"baseSalary" validate:"gt=0"`
	Overtime        float64 `json:"overtime" validate:"gte=0"`
	Bonus           float64 `json:"bonus" validate:"gte=0"`
	GrossPay        float64 `json:"grossPay" validate:"gte=0"`
	Taxes           float64 `json:"taxes" validate:"gte=0"`
	Insurance       float64 `json:"insurance" validate:"gte=0"`
	OtherDeductions float64 `json:"otherDeductions" validate:"gte=0"`
	TotalDeductions float64 `json:"totalDeductions" validate:"gte=0"`
	NetPay          float64 `json:"netPay" validate:"gte=0"`
	HoursWorked     float64 `json:"hoursWorked" validate:"gte=0"`
}

func (in Input) Payroll() Payroll {
	return Payroll{
		EmployeeID:      in.EmployeeID,
		PayPeriod:       in.PayPeriod,
		PaymentDate:     in.PaymentDate,
		BaseSalary:      in.BaseSalary,
		Overtime:        in.Overtime,
		Bonus:           in.Bonus,
		GrossPay:        in.GrossPay,
		Taxes:           in.Taxes,
		Insurance:       in.Insurance,
		OtherDeductions: in.OtherDeductions,
		TotalDeductions: in.TotalDeductions,
		NetPay:          in.NetPay,
		HoursWorked:     in.HoursWorked,
	}
}

type AdjustmentInput struct {
	Description string  `json:"description" validate:"required,min=3,max=200"`
	Amount      float64 `json:"amount" validate:"ne=0"`
}
