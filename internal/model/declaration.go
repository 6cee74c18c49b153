package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaxDeclaration stores an employee's declaration for one financial year as an opaque JSON document.
// (employee_id, financial_year) is unique.
type TaxDeclaration struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_tax_declarations_employee_fy" json:"employee_id"`
	Employee      *Employee      `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	FinancialYear string         `gorm:"type:varchar(7);not null;uniqueIndex:idx_tax_declarations_employee_fy" json:"financial_year"` // e.g. 2025-26
	Data          datatypes.JSON `gorm:"not null" json:"data"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (d *TaxDeclaration) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
