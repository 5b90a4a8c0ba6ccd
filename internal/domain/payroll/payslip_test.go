package payroll

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPayslip(t *testing.T) {
	rec := Record{
		ID:            "23a6f7de-6a83-4f5f-9f1e-0dc15c9f4f21",
		EmployeeID:    "e1",
		EmployeeName:  "Asha Rao",
		EmployeeEmail: "asha@example.com",
		Month:         "2025-11",
		BaseSalary:    45000,
		Bonus:         2000,
		OvertimePay:   500,
		Tax:           3000,
		NetPay:        44500,
		GeneratedAt:   time.Date(2025, 11, 30, 12, 0, 0, 0, time.UTC),
	}

	data, err := RenderPayslip(rec)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
}

func TestRenderPayslipDeterministicSize(t *testing.T) {
	rec := Record{
		ID:           "p1",
		EmployeeName: "Ben Kim",
		Month:        "2025-10",
		BaseSalary:   30000,
		NetPay:       30000,
		GeneratedAt:  time.Date(2025, 10, 31, 9, 0, 0, 0, time.UTC),
	}

	first, err := RenderPayslip(rec)
	require.NoError(t, err)
	second, err := RenderPayslip(rec)
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
}
