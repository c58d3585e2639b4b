package workspaces_dto

import (
	"time"

	"github.com/google/uuid"
)

// Chat DTOs
type SendMessageRequestDTO struct {
	Content string `json:"content" binding:"required"`
}

type GroupMessageResponseDTO struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id"`
	SenderID    uuid.UUID `json:"senderId"    gorm:"column:sender_id"`
	SenderName  string    `json:"senderName"  gorm:"column:sender_name"`
	Content     string    `json:"content"     gorm:"column:content"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

type GetMessagesResponseDTO struct {
	Messages []*GroupMessageResponseDTO `json:"messages"`
}

// Link DTOs
type AddLinkRequestDTO struct {
	Title       string `json:"title"       binding:"required"`
	URL         string `json:"url"         binding:"required"`
	Description string `json:"description"`
}

// Task DTOs
type CreateTaskRequestDTO struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
}

type UpdateTaskRequestDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
