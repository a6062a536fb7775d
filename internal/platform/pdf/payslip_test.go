package pdf

import (
	"bytes"
	"testing"

	"workwise/internal/domain/payroll"
)

func TestWritePayslip(t *testing.T) {
	p := payroll.Payroll{
		EmployeeName: "John Doe",
		PayPeriod:    "March 2024",
		PaymentDate:  "2024-03-31",
		BaseSalary:   4000,
		GrossPay:     4200,
		NetPay:       3500,
		Adjustments:  []payroll.Adjustment{{ID: "a1", Description: "Travel", Amount: 50}},
	}
	var buf bytes.Buffer
	if err := WritePayslip(&buf, p); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected pdf header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}
