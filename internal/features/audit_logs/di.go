package audit_logs

var auditLogRepository = &AuditLogRepository{}
var auditLogService = &AuditLogService{
	auditLogRepository,
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}
