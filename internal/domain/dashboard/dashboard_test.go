package dashboard

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ems/internal/db"
)

// The salary total counts only pay dates inside the clock's calendar
// month. The month of March 1999 is used so records from other suites
// sharing the database never overlap.
func TestStatsMonthSalaryExcludesOutOfRangePayDates(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool, "../../../migrations"); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := &Service{
		store: NewStore(pool),
		now:   func() time.Time { return time.Date(1999, 3, 10, 9, 0, 0, 0, time.UTC) },
	}

	before, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("failed to load baseline stats: %v", err)
	}

	var deptID string
	if err := pool.QueryRow(ctx, `
    INSERT INTO departments (name, description) VALUES ($1, $2) RETURNING id
  `, fmt.Sprintf("dash-dept-%d", time.Now().UnixNano()), "dashboard test").Scan(&deptID); err != nil {
		t.Fatalf("failed to create department: %v", err)
	}

	var empID string
	if err := pool.QueryRow(ctx, `
    INSERT INTO accounts (name, email, password_hash, role, department_id)
    VALUES ($1, $2, $3, 'employee', $4)
    RETURNING id
  `, "Dash Tester", fmt.Sprintf("dash-%d@example.com", time.Now().UnixNano()), "x", deptID).Scan(&empID); err != nil {
		t.Fatalf("failed to create employee: %v", err)
	}

	insertSalary := func(total float64, payDate time.Time) {
		t.Helper()
		_, err := pool.Exec(ctx, `
      INSERT INTO salaries (employee_id, department_id, basic_salary, allowances, deductions, total_salary, pay_date)
      VALUES ($1, $2, $3, 0, 0, $3, $4)
    `, empID, deptID, total, payDate)
		if err != nil {
			t.Fatalf("failed to insert salary: %v", err)
		}
	}

	insertSalary(12000, time.Date(1999, 3, 15, 0, 0, 0, 0, time.UTC))
	insertSalary(9999, time.Date(1999, 4, 2, 0, 0, 0, 0, time.UTC))
	insertSalary(8888, time.Date(1999, 2, 28, 0, 0, 0, 0, time.UTC))

	after, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("failed to load stats: %v", err)
	}

	if got := after.TotalSalaryThisMonth - before.TotalSalaryThisMonth; got != 12000 {
		t.Fatalf("expected month total to grow by 12000 (in-month record only), got %v", got)
	}
	if after.TotalEmployees <= before.TotalEmployees {
		t.Fatalf("expected employee count to grow, got %d -> %d", before.TotalEmployees, after.TotalEmployees)
	}
}
