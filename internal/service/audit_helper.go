package service

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"hrms/internal/model"
	"hrms/internal/repository"

	"gorm.io/datatypes"
)

// Matches the varchar(255) Actor and EntityName columns, which count characters.
const maxAuditTextLen = 255

func writeAudit(ctx context.Context, repo repository.AuditRepository, actor, action, entityID, entityName string, details interface{}) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}
	entry := &model.AuditLog{
		Actor:      clipRunes(actor, maxAuditTextLen),
		Action:     action,
		EntityID:   entityID,
		EntityName: clipRunes(entityName, maxAuditTextLen),
		Details:    datatypes.JSON(payload),
	}
	if err := repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// clipRunes cuts s to at most n characters without splitting a multi-byte rune.
func clipRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
