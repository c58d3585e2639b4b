package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

type SharedLink struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id;index"`
	CreatorID   uuid.UUID `json:"creatorId"   gorm:"column:creator_id"`
	Title       string    `json:"title"       gorm:"column:title"`
	URL         string    `json:"url"         gorm:"column:url"`
	Description string    `json:"description" gorm:"column:description"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (SharedLink) TableName() string {
	return "workspace_links"
}
