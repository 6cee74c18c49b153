package repository

import (
	"context"
	"time"

	"hrms/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeclarationRepository interface {
	Upsert(ctx context.Context, decl *model.TaxDeclaration) (*model.TaxDeclaration, error)
	Find(ctx context.Context, employeeID uuid.UUID, financialYear string) (*model.TaxDeclaration, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.TaxDeclaration, error)
}

type declarationRepository struct {
	db *gorm.DB
}

func NewDeclarationRepository(db *gorm.DB) DeclarationRepository {
	return &declarationRepository{db: db}
}

// Upsert inserts the declaration or replaces the data of the existing (employee, year) row,
// then returns the stored row.
func (r *declarationRepository) Upsert(ctx context.Context, decl *model.TaxDeclaration) (*model.TaxDeclaration, error) {
	decl.UpdatedAt = time.Now()
	err := GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "financial_year"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(decl).Error
	if err != nil {
		return nil, err
	}
	return r.Find(ctx, decl.EmployeeID, decl.FinancialYear)
}

func (r *declarationRepository) Find(ctx context.Context, employeeID uuid.UUID, financialYear string) (*model.TaxDeclaration, error) {
	var decl model.TaxDeclaration
	if err := GetDB(ctx, r.db).
		Where("employee_id = ? AND financial_year = ?", employeeID, financialYear).
		First(&decl).Error; err != nil {
		return nil, err
	}
	return &decl, nil
}

func (r *declarationRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.TaxDeclaration, error) {
	var decls []model.TaxDeclaration
	if err := GetDB(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Order("financial_year desc").
		Find(&decls).Error; err != nil {
		return nil, err
	}
	return decls, nil
}
