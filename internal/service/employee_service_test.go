package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"hrms/internal/model"
	"hrms/internal/repository"
	"hrms/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeService(t *testing.T) (EmployeeService, AuditService) {
	t.Helper()
	db := testutil.NewDB(t)
	auditRepo := repository.NewAuditRepository(db)
	return NewEmployeeService(repository.NewEmployeeRepository(db), auditRepo, repository.NewTransactionManager(db)),
		NewAuditService(auditRepo)
}

func TestEmployeeService_CreateAndGet(t *testing.T) {
	svc, audit := newEmployeeService(t)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, CreateEmployeeRequest{
		EmployeeCode: " E100 ",
		Name:         "Ravi Kumar",
		Email:        "Ravi@Example.com",
		AnnualSalary: "1500000",
	}, "hr@example.com")
	require.NoError(t, err)
	assert.Equal(t, "E100", created.EmployeeCode)
	assert.Equal(t, "ravi@example.com", created.Email)
	assert.Equal(t, model.RoleEmployee, created.Role)
	assert.Equal(t, 1_500_000.0, created.AnnualSalary)

	got, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	logs, total, err := audit.GetAuditLogs(ctx, AuditLogQuery{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, model.ActionCreateEmployee, logs[0].Action)
	assert.Equal(t, "hr@example.com", logs[0].Actor)
	assert.Equal(t, created.ID, logs[0].EntityID)
}

func TestEmployeeService_CreateRejectsDuplicatesAndBadSalary(t *testing.T) {
	svc, audit := newEmployeeService(t)
	ctx := context.Background()

	req := CreateEmployeeRequest{EmployeeCode: "E1", Name: "A", Email: "a@example.com", AnnualSalary: "900000"}
	_, err := svc.CreateEmployee(ctx, req, "")
	require.NoError(t, err)

	dup := req
	dup.EmployeeCode = "E2"
	_, err = svc.CreateEmployee(ctx, dup, "")
	assert.True(t, errors.Is(err, ErrConflict))

	for _, salary := range []string{"0", "-5", "lots", "1e400", "1000000000000000", "900000.125"} {
		bad := req
		bad.EmployeeCode, bad.Email, bad.AnnualSalary = "E3", "c@example.com", salary
		_, err = svc.CreateEmployee(ctx, bad, "")
		assert.True(t, errors.Is(err, ErrInvalidInput), "salary %q", salary)
	}

	_, total, err := audit.GetAuditLogs(ctx, AuditLogQuery{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestEmployeeService_CreateRejectsLongName(t *testing.T) {
	svc, audit := newEmployeeService(t)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, CreateEmployeeRequest{
		EmployeeCode: "E9", Name: strings.Repeat("x", 201), Email: "x@example.com", AnnualSalary: "900000",
	}, "")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	// The limit counts characters, not bytes.
	created, err := svc.CreateEmployee(ctx, CreateEmployeeRequest{
		EmployeeCode: "E9", Name: strings.Repeat("é", 200), Email: "x@example.com", AnnualSalary: "900000",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 200, utf8.RuneCountInString(created.Name))

	logs, _, err := audit.GetAuditLogs(ctx, AuditLogQuery{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, created.Name, logs[0].EntityName)
}

func TestClipRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "abc", 5, "abc"},
		{"ascii", "abcdef", 3, "abc"},
		{"multi-byte", strings.Repeat("é", 300), 255, strings.Repeat("é", 255)},
		{"mixed", "aéb", 2, "aé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clipRunes(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestEmployeeService_UpdateSalary(t *testing.T) {
	svc, _ := newEmployeeService(t)
	ctx := context.Background()

	e, err := svc.CreateEmployee(ctx, CreateEmployeeRequest{
		EmployeeCode: "E7", Name: "B", Email: "b@example.com", AnnualSalary: "800000",
	}, "")
	require.NoError(t, err)

	updated, err := svc.UpdateSalary(ctx, e.ID, UpdateSalaryRequest{AnnualSalary: "950000.50"}, "")
	require.NoError(t, err)
	assert.Equal(t, 950_000.5, updated.AnnualSalary)

	_, err = svc.UpdateSalary(ctx, uuid.NewString(), UpdateSalaryRequest{AnnualSalary: "1"}, "")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.UpdateSalary(ctx, "nope", UpdateSalaryRequest{AnnualSalary: "1"}, "")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEmployeeService_ListPaginates(t *testing.T) {
	svc, _ := newEmployeeService(t)
	ctx := context.Background()

	for _, code := range []string{"E3", "E1", "E2"} {
		_, err := svc.CreateEmployee(ctx, CreateEmployeeRequest{
			EmployeeCode: code, Name: code, Email: code + "@example.com", AnnualSalary: "700000",
		}, "")
		require.NoError(t, err)
	}

	page, total, err := svc.ListEmployees(ctx, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "E3", page[0].EmployeeCode)
}
