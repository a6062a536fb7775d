// Package pdf renders printable documents.
package pdf

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"workwise/internal/domain/payroll"
)

type line struct {
	label  string
	amount float64
}

// WritePayslip renders p as a one-page A4 payslip.
func WritePayslip(w io.Writer, p payroll.Payroll) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Payslip "+p.PayPeriod, true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(40, 10, "Payslip")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("Employee: %s", p.EmployeeName))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Period: %s", p.PayPeriod))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Payment date: %s", p.PaymentDate))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Hours worked: %.1f", p.HoursWorked))
	doc.Ln(10)

	section(doc, "Earnings", []line{
		{"Base salary", p.BaseSalary},
		{"Overtime", p.Overtime},
		{"Bonus", p.Bonus},
		{"Gross pay", p.GrossPay},
	})
	section(doc, "Deductions", []line{
		{"Taxes", p.Taxes},
		{"Insurance", p.Insurance},
		{"Other", p.OtherDeductions},
		{"Total deductions", p.TotalDeductions},
	})
	if len(p.Adjustments) > 0 {
		adj := make([]line, 0, len(p.Adjustments))
		for _, a := range p.Adjustments {
			adj = append(adj, line{a.Description, a.Amount})
		}
		section(doc, "Adjustments", adj)
	}

	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(120, 9, "Net pay", "T", 0, "L", false, 0, "")
	doc.CellFormat(50, 9, payroll.Money(p.NetPay), "T", 1, "R", false, 0, "")

	if err := doc.Error(); err != nil {
		return err
	}
	return doc.Output(w)
}

func section(doc *gofpdf.Fpdf, title string, lines []line) {
	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, title)
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 11)
	for _, l := range lines {
		doc.CellFormat(120, 7, l.label, "", 0, "L", false, 0, "")
		doc.CellFormat(50, 7, payroll.Money(l.amount), "", 1, "R", false, 0, "")
	}
	doc.Ln(4)
}
