package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderPayslip lays out one payroll record as a printable A4 PDF: a title
// header, an employee info table, a two-column earnings/deductions
// breakdown and a net-pay summary box. Callers must resolve and authorize
// the record before rendering; this function only draws.
func RenderPayslip(rec Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Payslip", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Info table: employee, payslip id, month.
	pdf.SetFont("Helvetica", "", 11)
	info := [][2]string{
		{"Employee", fmt.Sprintf("%s <%s>", rec.EmployeeName, rec.EmployeeEmail)},
		{"Payslip ID", rec.ID},
		{"Month", rec.Month},
	}
	for _, row := range info {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(125, 8, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Earnings and deductions, two amount columns.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Earnings", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Deductions", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	lines := []struct {
		label     string
		amount    float64
		deduction bool
	}{
		{"Base Salary", rec.BaseSalary, false},
		{"Bonus", rec.Bonus, false},
		{"Overtime Pay", rec.OvertimePay, false},
		{"Tax", rec.Tax, true},
		{"Leave Deductions", rec.LeaveDeductions, true},
	}
	for _, line := range lines {
		pdf.CellFormat(90, 8, line.label, "1", 0, "L", false, 0, "")
		earning, deduction := "-", "-"
		if line.deduction {
			deduction = formatAmount(line.amount)
		} else {
			earning = formatAmount(line.amount)
		}
		pdf.CellFormat(40, 8, earning, "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, deduction, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Net pay summary box.
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(130, 12, "Net Pay", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 12, formatAmount(rec.NetPay), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Ln(4)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated at %s", rec.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
