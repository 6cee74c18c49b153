package repository

import (
	"context"

	"hrms/internal/model"

	"gorm.io/gorm"
)

// AuditFilter narrows an audit listing. Empty fields match every entry.
type AuditFilter struct {
	Action   string
	EntityID string
}

func (f AuditFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Action != "" {
		db = db.Where("action = ?", f.Action)
	}
	if f.EntityID != "" {
		db = db.Where("entity_id = ?", f.EntityID)
	}
	return db
}

// AuditRepository stores the change trail for employees and declarations.
// Entries are append-only; nothing updates or deletes them.
type AuditRepository interface {
	// Log inserts one entry, inside the caller's transaction when ctx carries one.
	Log(ctx context.Context, entry *model.AuditLog) error
	// List returns one page of matching entries, newest first, with the total match count.
	List(ctx context.Context, filter AuditFilter, page, limit int) ([]model.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *auditRepository) List(ctx context.Context, filter AuditFilter, page, limit int) ([]model.AuditLog, int64, error) {
	var (
		logs  []model.AuditLog
		total int64
	)

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.AuditLog{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []model.AuditLog{}, 0, nil
	}

	offset := (page - 1) * limit
	if err := db.Scopes(filter.scope).Order("created_at desc").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
