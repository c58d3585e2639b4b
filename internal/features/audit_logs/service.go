package audit_logs

import (
	"builderspace-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
}

// WriteAuditLog records an audit entry. Audit writes are best-effort: a
// failure is logged and never fails the calling operation.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	workspaceID *uuid.UUID,
) {
	auditLog := &AuditLog{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: workspaceID,
		Message:     message,
	}

	if err := s.auditLogRepository.CreateAuditLog(auditLog); err != nil {
		log.Error("Failed to write audit log", "message", message, "error", err)
	}
}

func (s *AuditLogService) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	offset := request.Offset
	if offset < 0 {
		offset = 0
	}

	logs, total, err := s.auditLogRepository.GetWorkspaceAuditLogs(
		workspaceID,
		limit,
		offset,
		request.BeforeDate,
	)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: logs,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}
