package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"hrms/internal/model"
	"hrms/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Names are also written into audit entry names, which append the financial year.
const maxEmployeeNameLen = 200

// --- DTOs ---

type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required,max=32"`
	Name         string `json:"name" binding:"required,max=200"`
	Email        string `json:"email" binding:"required,email,max=255"`
	Role         string `json:"role" binding:"omitempty,oneof=SUPER_ADMIN HR_MANAGER EMPLOYEE"`
	AnnualSalary string `json:"annual_salary" binding:"required"` // Decimal string, e.g. "1800000"
}

type UpdateSalaryRequest struct {
	AnnualSalary string `json:"annual_salary" binding:"required"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	AnnualSalary float64 `json:"annual_salary"`
	CreatedAt    string  `json:"created_at"`
}

// --- Interface ---

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest, actor string) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, page, limit int) ([]EmployeeResponse, int64, error)
	UpdateSalary(ctx context.Context, id string, req UpdateSalaryRequest, actor string) (EmployeeResponse, error)
}

type employeeService struct {
	repo      repository.EmployeeRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
}

func NewEmployeeService(
	repo repository.EmployeeRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) EmployeeService {
	return &employeeService{repo: repo, auditRepo: auditRepo, txManager: txManager}
}

// --- Implementation ---

func (s *employeeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest, actor string) (EmployeeResponse, error) {
	salary, err := parseSalary(req.AnnualSalary)
	if err != nil {
		return EmployeeResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) > maxEmployeeNameLen {
		return EmployeeResponse{}, fmt.Errorf("name must be at most %d characters: %w", maxEmployeeNameLen, ErrInvalidInput)
	}

	role := req.Role
	if role == "" {
		role = model.RoleEmployee
	}

	employee := model.Employee{
		EmployeeCode: strings.TrimSpace(req.EmployeeCode),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Role:         role,
		AnnualSalary: salary,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.ExistsByCodeOrEmail(txCtx, employee.EmployeeCode, employee.Email)
		if err != nil {
			return fmt.Errorf("failed to check existing employees: %w", err)
		}
		if exists {
			return fmt.Errorf("employee code or email already exists: %w", ErrConflict)
		}

		if err := s.repo.Create(txCtx, &employee); err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		return writeAudit(txCtx, s.auditRepo, actor, model.ActionCreateEmployee, employee.ID.String(), employee.Name, map[string]interface{}{
			"employee_code": employee.EmployeeCode,
			"email":         employee.Email,
			"role":          employee.Role,
			"annual_salary": employee.AnnualSalary.String(),
		})
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	return toEmployeeResponse(employee), nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id string) (EmployeeResponse, error) {
	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return toEmployeeResponse(*employee), nil
}

func (s *employeeService) ListEmployees(ctx context.Context, page, limit int) ([]EmployeeResponse, int64, error) {
	employees, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch employees: %w", err)
	}

	res := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		res = append(res, toEmployeeResponse(e))
	}
	return res, total, nil
}

func (s *employeeService) UpdateSalary(ctx context.Context, id string, req UpdateSalaryRequest, actor string) (EmployeeResponse, error) {
	salary, err := parseSalary(req.AnnualSalary)
	if err != nil {
		return EmployeeResponse{}, err
	}

	var updated model.Employee
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		employee, err := s.findEmployee(txCtx, id)
		if err != nil {
			return err
		}
		previous := employee.AnnualSalary
		employee.AnnualSalary = salary

		if err := s.repo.Update(txCtx, employee); err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		updated = *employee

		return writeAudit(txCtx, s.auditRepo, actor, model.ActionUpdateEmployeeSalary, employee.ID.String(), employee.Name, map[string]string{
			"previous_salary": previous.String(),
			"annual_salary":   salary.String(),
		})
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// --- Helpers ---

func (s *employeeService) findEmployee(ctx context.Context, id string) (*model.Employee, error) {
	return lookupEmployee(ctx, s.repo, id)
}

func lookupEmployee(ctx context.Context, repo repository.EmployeeRepository, id string) (*model.Employee, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id %q: %w", id, ErrInvalidInput)
	}

	employee, err := repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return employee, nil
}

func parseSalary(raw string) (decimal.Decimal, error) {
	salary, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid annual_salary %q: %w", raw, ErrInvalidInput)
	}
	if err := checkAmount("annual_salary", salary); err != nil {
		return decimal.Zero, err
	}
	if !salary.IsPositive() {
		return decimal.Zero, fmt.Errorf("annual_salary must be greater than 0: %w", ErrInvalidInput)
	}
	return salary, nil
}

func toEmployeeResponse(e model.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID.String(),
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		AnnualSalary: e.AnnualSalary.InexactFloat64(),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}
