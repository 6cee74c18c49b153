package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrms/internal/middleware"
	"hrms/internal/repository"
	"hrms/internal/service"
	"hrms/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Meta       json.RawMessage `json:"meta"`
	Error      string          `json:"error"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	employeeRepo := repository.NewEmployeeRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	tx := repository.NewTransactionManager(db)
	now := func() time.Time { return time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.Use(middleware.Actor())
	api := r.Group("")
	NewEmployeeHandler(service.NewEmployeeService(employeeRepo, auditRepo, tx)).RegisterRoutes(api)
	NewTaxHandler(service.NewTaxService(employeeRepo, repository.NewDeclarationRepository(db), auditRepo, tx,
		service.WithClock(now))).RegisterRoutes(api)
	NewAuditHandler(service.NewAuditService(auditRepo)).RegisterRoutes(api)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.ActorHeader, "hr@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func createEmployee(t *testing.T, r http.Handler, code, salary string) service.EmployeeResponse {
	t.Helper()
	status, env := do(t, r, http.MethodPost, "/api/employees",
		`{"employee_code":"`+code+`","name":"Meera","email":"`+code+`@example.com","annual_salary":"`+salary+`"}`)
	require.Equal(t, http.StatusCreated, status, env.Error)

	var e service.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &e))
	return e
}

func TestComputeEndpoint(t *testing.T) {
	r := newRouter(t)

	status, env := do(t, r, http.MethodPost, "/api/tax/compute", `{
		"base_annual_salary": 1800000,
		"declaration": {
			"line_items": [
				{"section": "80C", "title": "ELSS", "amount": 200000},
				{"section": "80D", "title": "Mediclaim", "amount": 25000}
			],
			"home_loan": {"enabled": true, "interest_paid": 250000}
		}
	}`)
	require.Equal(t, http.StatusOK, status, env.Error)

	var cmp service.TaxComparisonResponse
	require.NoError(t, json.Unmarshal(env.Data, &cmp))
	// 1,800,000 - 150,000 - 25,000 - 200,000 - 50,000 = 1,375,000 taxable under the old regime.
	assert.Equal(t, 1_375_000.0, cmp.Old.TaxableIncome)
	assert.Equal(t, 150_000.0, cmp.Old.Breakdown.Section80C)
	assert.Equal(t, 200_000.0, cmp.Old.Breakdown.HouseLoss)
	assert.Equal(t, 150_800.0, cmp.New.TotalTax)
	assert.Equal(t, "NEW", cmp.Recommended)
}

func TestComputeEndpoint_BadInput(t *testing.T) {
	r := newRouter(t)

	status, env := do(t, r, http.MethodPost, "/api/tax/compute", `{"base_annual_salary": 0}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)

	status, _ = do(t, r, http.MethodPost, "/api/tax/compute", `{"base_annual_salary": "abc"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestComputeEndpoint_RejectsUnboundedAmounts(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"fd interest past float range", `{"base_annual_salary": 1800000, "declaration": {"other_income": {"enabled": true, "fd_interest": 1e400}}}`},
		{"huge exponent", `{"base_annual_salary": 1e2000000}`},
		{"base at the limit", `{"base_annual_salary": 1000000000000000}`},
		{"fractional line item", `{"base_annual_salary": 1800000, "declaration": {"line_items": [{"section": "80C", "title": "PPF", "amount": 100.555}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, r, http.MethodPost, "/api/tax/compute", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "error", env.Status)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestSaveDeclaration_UnboundedAmountIsNotStored(t *testing.T) {
	r := newRouter(t)
	e := createEmployee(t, r, "E44", "1800000")
	path := "/api/employees/" + e.ID + "/declarations/2025-26"

	status, _ := do(t, r, http.MethodPut, path, `{"other_income": {"enabled": true, "fd_interest": 1e400}}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, r, http.MethodGet, path+"/tax", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeclarationLifecycle(t *testing.T) {
	r := newRouter(t)
	e := createEmployee(t, r, "E42", "1800000")
	base := "/api/employees/" + e.ID + "/declarations"

	status, _ := do(t, r, http.MethodGet, base+"/2025-26", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, env := do(t, r, http.MethodPut, base+"/2025-26", `{
		"line_items": [{"section": "80C", "title": "PPF", "amount": 150000}],
		"previous_employment": {"enabled": true, "total_tds_deducted": 30800}
	}`)
	require.Equal(t, http.StatusOK, status, env.Error)

	status, env = do(t, r, http.MethodGet, base+"/2025-26/tax", "")
	require.Equal(t, http.StatusOK, status, env.Error)
	var summary service.TaxSummaryResponse
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 304_200.0, summary.Comparison.Old.TotalTax)
	assert.Equal(t, 150_800.0, summary.Comparison.New.TotalTax)
	require.Len(t, summary.Withholding, 2)
	assert.Equal(t, 20_000.0, summary.Withholding[1].Monthly)

	status, env = do(t, r, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, status)
	var list []service.DeclarationResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "2025-26", list[0].FinancialYear)

	status, env = do(t, r, http.MethodGet, "/api/audit-logs?limit=1", "")
	require.Equal(t, http.StatusOK, status)
	var meta struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(env.Meta, &meta))
	assert.EqualValues(t, 2, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
	var logs []service.AuditLogResponse
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "hr@example.com", logs[0].Actor)
}

func TestSaveDeclaration_Errors(t *testing.T) {
	r := newRouter(t)
	e := createEmployee(t, r, "E43", "900000")

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"bad year", "/api/employees/" + e.ID + "/declarations/2025", `{}`, http.StatusBadRequest},
		{"future sanction", "/api/employees/" + e.ID + "/declarations/2025-26",
			`{"home_loan":{"enabled":true,"sanction_date":"2026-01-01"}}`, http.StatusBadRequest},
		{"malformed body", "/api/employees/" + e.ID + "/declarations/2025-26", `{"line_items": 5}`, http.StatusBadRequest},
		{"unknown employee", "/api/employees/" + uuid.NewString() + "/declarations/2025-26", `{}`, http.StatusNotFound},
		{"malformed employee id", "/api/employees/abc/declarations/2025-26", `{}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, r, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, env.StatusCode)
		})
	}
}

func TestEmployeeEndpoints(t *testing.T) {
	r := newRouter(t)
	e := createEmployee(t, r, "E50", "1000000")

	status, _ := do(t, r, http.MethodPost, "/api/employees",
		`{"employee_code":"E50","name":"Dup","email":"other@example.com","annual_salary":"1"}`)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = do(t, r, http.MethodPost, "/api/employees", `{"name":"No code"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, r, http.MethodPost, "/api/employees",
		`{"employee_code":"E51","name":"`+strings.Repeat("x", 201)+`","email":"long@example.com","annual_salary":"1"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, r, http.MethodPost, "/api/employees",
		`{"employee_code":"E52","name":"Big","email":"big@example.com","annual_salary":"1e400"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env := do(t, r, http.MethodPut, "/api/employees/"+e.ID+"/salary", `{"annual_salary":"1250000"}`)
	require.Equal(t, http.StatusOK, status, env.Error)
	var updated service.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 1_250_000.0, updated.AnnualSalary)

	status, _ = do(t, r, http.MethodGet, "/api/employees/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, status)

	status, env = do(t, r, http.MethodGet, "/api/employees?page=1&limit=10", "")
	require.Equal(t, http.StatusOK, status)
	var list []service.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}

func TestAuditEndpoint_Filters(t *testing.T) {
	r := newRouter(t)
	a := createEmployee(t, r, "E60", "1000000")
	createEmployee(t, r, "E61", "1100000")

	status, env := do(t, r, http.MethodPut, "/api/employees/"+a.ID+"/salary", `{"annual_salary":"1200000"}`)
	require.Equal(t, http.StatusOK, status, env.Error)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"all", "", 3},
		{"by action", "?action=CREATE_EMPLOYEE", 2},
		{"action is case-insensitive", "?action=update_employee_salary", 1},
		{"by entity", "?entity_id=" + a.ID, 2},
		{"no match", "?entity_id=" + uuid.NewString(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, r, http.MethodGet, "/api/audit-logs"+tt.query, "")
			require.Equal(t, http.StatusOK, status, env.Error)
			var logs []service.AuditLogResponse
			require.NoError(t, json.Unmarshal(env.Data, &logs))
			assert.Len(t, logs, tt.want)
		})
	}
}
