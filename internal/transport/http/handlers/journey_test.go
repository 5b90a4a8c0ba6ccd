package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"ems/internal/app/server"
	"ems/internal/db"
	"ems/internal/platform/config"
)

func newTestApp(t *testing.T) (*server.App, *httptest.Server) {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:        dbURL,
		JWTSecret:          "test-secret",
		TokenTTL:           time.Hour,
		Environment:        "test",
		FrontendDir:        "frontend/dist",
		CORSOrigin:         "*",
		MigrationsDir:      "../../../../migrations",
		SeedAdminName:      "Test Admin",
		SeedAdminEmail:     "admin@test.local",
		SeedAdminPassword:  "ChangeMe123!",
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 0,
		LoginRatePerMinute: 1000,
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := db.Seed(ctx, pool, cfg); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	app := server.New(cfg, pool)
	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return app, ts
}

func TestEmployeeLeaveAndPayrollJourney(t *testing.T) {
	_, ts := newTestApp(t)
	client := ts.Client()

	adminToken := login(t, client, ts.URL, "admin@test.local", "ChangeMe123!")

	deptID := createDepartment(t, client, ts.URL, adminToken, fmt.Sprintf("Engineering-%d", time.Now().UnixNano()))

	email := fmt.Sprintf("journey-%d@example.com", time.Now().UnixNano())
	empID := createEmployee(t, client, ts.URL, adminToken, email, deptID)

	empToken := login(t, client, ts.URL, email, "Secret123!")

	// Leave: inclusive span, two calendar days.
	leavePayload := postJSON(t, client, ts.URL+"/api/v1/leave", empToken, map[string]any{
		"leaveType": "Casual",
		"startDate": "2025-11-10",
		"endDate":   "2025-11-11",
		"reason":    "Family function",
	}, http.StatusCreated)
	leaveRec := decodeObject(t, leavePayload, "leave")
	if days, _ := leaveRec["totalDays"].(float64); days != 2 {
		t.Fatalf("expected totalDays 2, got %v", leaveRec["totalDays"])
	}
	leaveID, _ := leaveRec["id"].(string)
	if leaveID == "" {
		t.Fatal("expected leave id")
	}

	decided := putJSON(t, client, ts.URL+"/api/v1/leave/"+leaveID+"/status", adminToken, map[string]any{
		"status": "Approved",
	}, http.StatusOK)
	if rec := decodeObject(t, decided, "leave"); rec["status"] != "Approved" {
		t.Fatalf("expected Approved, got %v", rec["status"])
	}

	// Attendance: second mark for the same day replaces the first.
	day := "2025-11-12"
	postJSON(t, client, ts.URL+"/api/v1/attendance", empToken, map[string]any{
		"employeeId": empID, "date": day, "status": "Present",
	}, http.StatusOK)
	postJSON(t, client, ts.URL+"/api/v1/attendance", empToken, map[string]any{
		"employeeId": empID, "date": day, "status": "Absent",
	}, http.StatusOK)

	attendancePayload := getJSON(t, client, ts.URL+"/api/v1/attendance/"+day, empToken, http.StatusOK)
	statuses := decodeObject(t, attendancePayload, "attendance")
	if got := statuses[empID]; got != "Absent" {
		t.Fatalf("expected last status Absent, got %v", got)
	}

	// Salary accepts currency-formatted strings.
	salaryPayload := postJSON(t, client, ts.URL+"/api/v1/salaries", adminToken, map[string]any{
		"employeeId":   empID,
		"departmentId": deptID,
		"basicSalary":  "₹45,000.00",
		"allowances":   5000,
		"deductions":   2000,
		"payDate":      "2025-11-30",
	}, http.StatusCreated)
	if rec := decodeObject(t, salaryPayload, "salary"); rec["totalSalary"] != 48000.0 {
		t.Fatalf("expected totalSalary 48000, got %v", rec["totalSalary"])
	}

	// Payroll: net = base + bonus + overtime - tax - leave deductions.
	payrollPayload := postJSON(t, client, ts.URL+"/api/v1/payroll", adminToken, map[string]any{
		"employeeId":  empID,
		"month":       "2025-11",
		"baseSalary":  45000,
		"bonus":       2000,
		"overtimePay": 500,
		"tax":         3000,
	}, http.StatusCreated)
	payrollRec := decodeObject(t, payrollPayload, "payroll")
	if payrollRec["netPay"] != 44500.0 {
		t.Fatalf("expected netPay 44500, got %v", payrollRec["netPay"])
	}
	payrollID, _ := payrollRec["id"].(string)

	// Payslip download for the owner.
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/payroll/"+payrollID+"/payslip", nil)
	req.Header.Set("Authorization", "Bearer "+empToken)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("payslip request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for payslip, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("expected attachment disposition, got %s", cd)
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatal("expected PDF payload")
	}

	// Unknown payroll id produces a JSON 404, never partial PDF bytes.
	req404, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/payroll/00000000-0000-0000-0000-000000000000/payslip", nil)
	req404.Header.Set("Authorization", "Bearer "+adminToken)
	resp404, err := client.Do(req404)
	if err != nil {
		t.Fatalf("payslip request failed: %v", err)
	}
	defer resp404.Body.Close()
	if resp404.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp404.StatusCode)
	}
	missBody, _ := io.ReadAll(resp404.Body)
	if bytes.Contains(missBody, []byte("%PDF")) {
		t.Fatal("404 response must not contain PDF bytes")
	}

	// Rewards feed the leaderboard.
	postJSON(t, client, ts.URL+"/api/v1/rewards", adminToken, map[string]any{
		"employeeId": empID,
		"rewardType": "Employee of the Month",
	}, http.StatusCreated)
	leaderboard := getJSON(t, client, ts.URL+"/api/v1/rewards/leaderboard", empToken, http.StatusOK)
	entries := decodeArray(t, leaderboard, "leaderboard")
	found := false
	for _, entry := range entries {
		if m, ok := entry.(map[string]any); ok && m["employeeId"] == empID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected employee on leaderboard")
	}

	// Dashboard is admin-only and aggregates without failing.
	getJSON(t, client, ts.URL+"/api/v1/dashboard/stats", empToken, http.StatusForbidden)
	stats := decodeObject(t, getJSON(t, client, ts.URL+"/api/v1/dashboard/stats", adminToken, http.StatusOK), "stats")
	if total, _ := stats["totalEmployees"].(float64); total < 1 {
		t.Fatalf("expected at least one employee, got %v", stats["totalEmployees"])
	}
}

func TestEmployeeCannotDownloadOthersPayslip(t *testing.T) {
	_, ts := newTestApp(t)
	client := ts.Client()

	adminToken := login(t, client, ts.URL, "admin@test.local", "ChangeMe123!")
	deptID := createDepartment(t, client, ts.URL, adminToken, fmt.Sprintf("Sales-%d", time.Now().UnixNano()))

	firstEmail := fmt.Sprintf("first-%d@example.com", time.Now().UnixNano())
	firstID := createEmployee(t, client, ts.URL, adminToken, firstEmail, deptID)

	secondEmail := fmt.Sprintf("second-%d@example.com", time.Now().UnixNano())
	createEmployee(t, client, ts.URL, adminToken, secondEmail, deptID)

	payrollPayload := postJSON(t, client, ts.URL+"/api/v1/payroll", adminToken, map[string]any{
		"employeeId": firstID,
		"month":      "2025-10",
		"baseSalary": 30000,
	}, http.StatusCreated)
	payrollID, _ := decodeObject(t, payrollPayload, "payroll")["id"].(string)

	secondToken := login(t, client, ts.URL, secondEmail, "Secret123!")
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/payroll/"+payrollID+"/payslip", nil)
	req.Header.Set("Authorization", "Bearer "+secondToken)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("payslip request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) string {
	t.Helper()
	payload := postJSON(t, client, baseURL+"/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	}, http.StatusOK)
	var token string
	if err := json.Unmarshal(payload["token"], &token); err != nil || token == "" {
		t.Fatal("expected token in login response")
	}
	return token
}

func createDepartment(t *testing.T, client *http.Client, baseURL, token, name string) string {
	t.Helper()
	payload := postJSON(t, client, baseURL+"/api/v1/departments", token, map[string]any{
		"name":        name,
		"description": "journey test department",
	}, http.StatusCreated)
	id, _ := decodeObject(t, payload, "department")["id"].(string)
	if id == "" {
		t.Fatal("expected department id")
	}
	return id
}

func createEmployee(t *testing.T, client *http.Client, baseURL, token, email, deptID string) string {
	t.Helper()
	payload := postJSON(t, client, baseURL+"/api/v1/employees", token, map[string]any{
		"name":         "Journey Tester",
		"email":        email,
		"password":     "Secret123!",
		"departmentId": deptID,
		"position":     "Engineer",
	}, http.StatusCreated)
	id, _ := decodeObject(t, payload, "employee")["id"].(string)
	if id == "" {
		t.Fatal("expected employee id")
	}
	return id
}

func postJSON(t *testing.T, client *http.Client, url, token string, body map[string]any, wantStatus int) map[string]json.RawMessage {
	t.Helper()
	return doJSON(t, client, http.MethodPost, url, token, body, wantStatus)
}

func putJSON(t *testing.T, client *http.Client, url, token string, body map[string]any, wantStatus int) map[string]json.RawMessage {
	t.Helper()
	return doJSON(t, client, http.MethodPut, url, token, body, wantStatus)
}

func getJSON(t *testing.T, client *http.Client, url, token string, wantStatus int) map[string]json.RawMessage {
	t.Helper()
	return doJSON(t, client, http.MethodGet, url, token, nil, wantStatus)
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, body map[string]any, wantStatus int) map[string]json.RawMessage {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d: %s", method, url, wantStatus, resp.StatusCode, raw)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("failed to decode response: %v: %s", err, raw)
	}
	return payload
}

func decodeObject(t *testing.T, payload map[string]json.RawMessage, key string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(payload[key], &out); err != nil {
		t.Fatalf("failed to decode %q: %v", key, err)
	}
	return out
}

func decodeArray(t *testing.T, payload map[string]json.RawMessage, key string) []any {
	t.Helper()
	var out []any
	if err := json.Unmarshal(payload[key], &out); err != nil {
		t.Fatalf("failed to decode %q: %v", key, err)
	}
	return out
}
