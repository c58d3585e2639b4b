package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID          uuid.UUID  `json:"id"          gorm:"type:uuid;primaryKey"`
	UserID      *uuid.UUID `json:"userId"      gorm:"type:uuid;index"`
	WorkspaceID *uuid.UUID `json:"workspaceId" gorm:"type:uuid;index"`
	Message     string     `json:"message"     gorm:"type:text;not null"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"not null"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
