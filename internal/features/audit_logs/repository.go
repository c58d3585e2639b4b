package audit_logs

import (
	"time"

	"builderspace-backend/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) CreateAuditLog(auditLog *AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	if auditLog.CreatedAt.IsZero() {
		auditLog.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(auditLog).Error
}

func (r *AuditLogRepository) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*AuditLog, int64, error) {
	var logs []*AuditLog
	var total int64

	countQuery := storage.GetDb().Model(&AuditLog{}).Where("workspace_id = ?", workspaceID)
	if beforeDate != nil {
		countQuery = countQuery.Where("created_at < ?", *beforeDate)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dataQuery := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset)

	if beforeDate != nil {
		dataQuery = dataQuery.Where("created_at < ?", *beforeDate)
	}

	if err := dataQuery.Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
