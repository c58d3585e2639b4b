package workspaces_models

import (
	"time"

	"builderspace-backend/internal/features/posts"

	"github.com/google/uuid"
)

type Workspace struct {
	ID          uuid.UUID      `json:"id"          gorm:"column:id;primaryKey"`
	PostType    posts.PostType `json:"postType"    gorm:"column:post_type;uniqueIndex:idx_workspaces_post"`
	PostID      uuid.UUID      `json:"postId"      gorm:"column:post_id;uniqueIndex:idx_workspaces_post"`
	Name        string         `json:"name"        gorm:"column:name"`
	Description string         `json:"description" gorm:"column:description"`
	CreatedAt   time.Time      `json:"createdAt"   gorm:"column:created_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
