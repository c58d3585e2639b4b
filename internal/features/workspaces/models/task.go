package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `json:"id"          gorm:"column:id;primaryKey"`
	WorkspaceID uuid.UUID  `json:"workspaceId" gorm:"column:workspace_id;index"`
	CreatorID   uuid.UUID  `json:"creatorId"   gorm:"column:creator_id"`
	Title       string     `json:"title"       gorm:"column:title"`
	Description string     `json:"description" gorm:"column:description"`
	Completed   bool       `json:"completed"   gorm:"column:completed"`
	CompletedBy *uuid.UUID `json:"completedBy" gorm:"column:completed_by"`
	CompletedAt *time.Time `json:"completedAt" gorm:"column:completed_at"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Task) TableName() string {
	return "workspace_tasks"
}
