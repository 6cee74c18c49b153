package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Console roles. They are descriptive only; nothing in this service gates on them.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleHRManager  = "HR_MANAGER"
	RoleEmployee   = "EMPLOYEE"
)

// Employee is a directory entry with the salary figure the tax calculator starts from
type Employee struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeCode string          `gorm:"type:varchar(32);uniqueIndex;not null" json:"employee_code"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role         string          `gorm:"type:varchar(20);not null;default:'EMPLOYEE'" json:"role"`
	AnnualSalary decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"annual_salary"` // base annual salary before declared adjustments
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"` // GORM soft delete
}

func (e *Employee) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
