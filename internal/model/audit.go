package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActionCreateEmployee       = "CREATE_EMPLOYEE"
	ActionUpdateEmployeeSalary = "UPDATE_EMPLOYEE_SALARY"
	ActionSaveTaxDeclaration   = "SAVE_TAX_DECLARATION"
)

// AuditLog tracks Who, What, and When for changes to employees and declarations
type AuditLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Actor      string         `gorm:"type:varchar(255);not null;default:'system'" json:"actor"` // free-form, taken from X-Actor
	Action     string         `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string         `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string         `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    datatypes.JSON `json:"details"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}

func (a *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Actor == "" {
		a.Actor = "system"
	}
	return nil
}
