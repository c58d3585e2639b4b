package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an append-only group chat entry; content is stored sanitized.
type Message struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id;index"`
	SenderID    uuid.UUID `json:"senderId"    gorm:"column:sender_id"`
	Content     string    `json:"content"     gorm:"column:content"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Message) TableName() string {
	return "workspace_messages"
}
